package applicability

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/nilp0inter/cpe/cpe"
	"github.com/nilp0inter/cpe/internal/clog"
)

type jsonDocument struct {
	Configurations struct {
		Nodes []jsonNode `json:"nodes"`
	} `json:"configurations"`
}

type jsonNode struct {
	Operator string         `json:"operator"`
	Negate   bool           `json:"negate"`
	Children []jsonNode     `json:"children"`
	CPEMatch []jsonCPEMatch `json:"cpe_match"`
}

type jsonCPEMatch struct {
	CPE23URI string `json:"cpe23Uri"`
	// Vulnerable records NVD's per-match vulnerability flag. It plays no
	// part in applicability evaluation (which only asks whether a name
	// matches), so nothing in this package reads it; it is decoded and then
	// dropped, and the resulting [Document] does not carry it.
	Vulnerable bool `json:"vulnerable"`
}

// ParseJSON decodes an NVD-shaped {"configurations":{"nodes":[...]}}
// document into a [Document]. NVD has no notion of a named platform, so each
// top-level node becomes its own untitled platform; the document matches iff
// any of them does, which is exactly the top-level combination NVD expects
// of multiple configuration nodes.
//
// ctx is used only for logging the fetch/decode of the document (this
// function itself never blocks or cancels) — a caller pulling the document
// off the network or disk can attach request-scoped attributes via
// [clog.With] and have them show up on every record logged here.
func ParseJSON(ctx context.Context, r io.Reader) (Document, error) {
	slog.DebugContext(ctx, "applicability: decoding configurations document")
	var doc jsonDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		slog.WarnContext(ctx, "applicability: malformed configurations document", "error", err)
		return Document{}, &cpe.Error{Kind: cpe.ErrInvalidExpression, Inner: err, Op: "applicability: json", Message: "malformed configurations document"}
	}
	ctx = clog.With(ctx, "nodes", len(doc.Configurations.Nodes))
	slog.DebugContext(ctx, "applicability: json decoded")
	out := Document{Platforms: make([]Platform, 0, len(doc.Configurations.Nodes))}
	for i, n := range doc.Configurations.Nodes {
		op, err := flattenJSONNode(n)
		if err != nil {
			slog.WarnContext(ctx, "applicability: invalid configuration node", "index", i, "error", err)
			return Document{}, err
		}
		out.Platforms = append(out.Platforms, Platform{Root: op})
	}
	return out, nil
}

func flattenJSONNode(n jsonNode) (Operand, error) {
	op, err := parseOperator(n.Operator)
	if err != nil {
		return Operand{}, err
	}
	var children []Operand
	for _, sub := range n.Children {
		c, err := flattenJSONNode(sub)
		if err != nil {
			return Operand{}, err
		}
		children = append(children, c)
	}
	for _, m := range n.CPEMatch {
		name, err := cpe.Parse(m.CPE23URI)
		if err != nil {
			return Operand{}, &cpe.Error{Kind: cpe.ErrInvalidExpression, Inner: err, Op: "applicability: json", Message: "cpe_match entry does not parse: " + m.CPE23URI}
		}
		children = append(children, Operand{Fact: &name})
	}
	if len(children) == 0 {
		return Operand{}, &cpe.Error{Kind: cpe.ErrInvalidExpression, Op: "applicability: json", Message: "node has neither children nor cpe_match entries"}
	}
	return Operand{Op: op, Negate: n.Negate, Children: children}, nil
}
