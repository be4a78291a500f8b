package applicability

import (
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"strings"

	"github.com/nilp0inter/cpe/cpe"
	"github.com/nilp0inter/cpe/internal/clog"
)

type xmlPlatformSpecification struct {
	XMLName   xml.Name      `xml:"platform-specification"`
	Platforms []xmlPlatform `xml:"platform"`
}

type xmlPlatform struct {
	Title       string         `xml:"title"`
	LogicalTest xmlLogicalTest `xml:"logical-test"`
}

type xmlFactRef struct {
	Name string `xml:"name,attr"`
}

// xmlLogicalTest decodes a <cpe:logical-test> element, preserving the
// document order of its nested logical-test and fact-ref children via a
// hand-rolled token loop rather than struct-tag decoding, since the two
// child kinds can be interleaved and encoding/xml's struct tags can't
// express "these two fields, in whatever order they appear".
type xmlLogicalTest struct {
	Operator string
	Negate   string
	Children []Operand
}

func (t *xmlLogicalTest) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "operator":
			t.Operator = a.Value
		case "negate":
			t.Negate = a.Value
		}
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "logical-test":
				var sub xmlLogicalTest
				if err := dec.DecodeElement(&sub, &el); err != nil {
					return err
				}
				op, err := sub.operand()
				if err != nil {
					return err
				}
				t.Children = append(t.Children, op)
			case "fact-ref":
				var ref xmlFactRef
				if err := dec.DecodeElement(&ref, &el); err != nil {
					return err
				}
				n, err := cpe.Parse(ref.Name)
				if err != nil {
					return &cpe.Error{Kind: cpe.ErrInvalidExpression, Inner: err, Op: "applicability: xml", Message: "fact-ref name does not parse: " + ref.Name}
				}
				t.Children = append(t.Children, Operand{Fact: &n})
			default:
				if err := dec.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (t xmlLogicalTest) operand() (Operand, error) {
	op, err := parseOperator(t.Operator)
	if err != nil {
		return Operand{}, err
	}
	negate, err := parseNegateAttr(t.Negate)
	if err != nil {
		return Operand{}, err
	}
	if len(t.Children) == 0 {
		return Operand{}, &cpe.Error{Kind: cpe.ErrInvalidExpression, Op: "applicability: xml", Message: "logical-test has no operands"}
	}
	return Operand{Op: op, Negate: negate, Children: t.Children}, nil
}

func parseOperator(s string) (Operator, error) {
	switch strings.ToUpper(s) {
	case "AND":
		return And, nil
	case "OR":
		return Or, nil
	default:
		return opInvalid, &cpe.Error{Kind: cpe.ErrInvalidExpression, Op: "applicability: parse", Message: "unknown operator: " + s}
	}
}

func parseNegateAttr(s string) (bool, error) {
	switch strings.ToUpper(s) {
	case "", "FALSE":
		return false, nil
	case "TRUE":
		return true, nil
	default:
		return false, &cpe.Error{Kind: cpe.ErrInvalidExpression, Op: "applicability: xml", Message: "invalid negate attribute: " + s}
	}
}

// ParseXML decodes an applicability document in the MITRE
// cpe:platform-specification XML schema (namespace
// http://cpe.mitre.org/language/2.0) into a flat [Document].
//
// ctx is used only for logging the fetch/decode of the document (this
// function itself never blocks or cancels) — a caller pulling the document
// off the network or disk can attach request-scoped attributes via
// [clog.With] and have them show up on every record logged here.
func ParseXML(ctx context.Context, r io.Reader) (Document, error) {
	slog.DebugContext(ctx, "applicability: decoding platform-specification document")
	var spec xmlPlatformSpecification
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&spec); err != nil {
		slog.WarnContext(ctx, "applicability: malformed platform-specification document", "error", err)
		return Document{}, &cpe.Error{Kind: cpe.ErrInvalidExpression, Inner: err, Op: "applicability: xml", Message: "malformed platform-specification document"}
	}
	ctx = clog.With(ctx, "platforms", len(spec.Platforms))
	slog.DebugContext(ctx, "applicability: xml decoded")
	doc := Document{Platforms: make([]Platform, 0, len(spec.Platforms))}
	for _, p := range spec.Platforms {
		root, err := p.LogicalTest.operand()
		if err != nil {
			slog.WarnContext(ctx, "applicability: invalid logical-test", "platform", p.Title, "error", err)
			return Document{}, err
		}
		doc.Platforms = append(doc.Platforms, Platform{Title: p.Title, Root: root})
	}
	return doc, nil
}
