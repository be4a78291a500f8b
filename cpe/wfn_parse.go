package cpe

import (
	"strings"
)

// attrByName maps the lowercase textual attribute tag used in WFN bindings
// to its Attribute value.
var attrByName = map[string]Attribute{
	"part": Part, "vendor": Vendor, "product": Product, "version": Version,
	"update": Update, "edition": Edition, "language": Language,
	"sw_edition": SwEdition, "target_sw": TargetSW, "target_hw": TargetHW, "other": Other,
}

// ParseWFN parses a bracketed well-formed name, e.g.
// `wfn:[part="a",vendor="acme",product="foo"]`.
func ParseWFN(s string) (Name, error) {
	if !strings.HasPrefix(s, wfnPrefix) || !strings.HasSuffix(s, "]") {
		return Name{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: wfn", Message: "missing wfn:[ ... ] delimiters"}
	}
	body := s[len(wfnPrefix) : len(s)-1]

	e := newName(V2_3).Elements[0]
	if strings.TrimSpace(body) == "" {
		return Name{Ver: V2_3, Elements: []Element{e}}, nil
	}

	for _, part := range splitEscaped(body, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		eq := strings.IndexByte(part, '=')
		if eq < 0 {
			return Name{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: wfn", Message: "expected attr=value pair, got " + part}
		}
		name := strings.TrimSpace(part[:eq])
		val := strings.TrimSpace(part[eq+1:])
		att, ok := attrByName[strings.ToLower(name)]
		if !ok {
			return Name{}, invalidAttribute(-1)
		}
		v, err := parseWFNValue(att, val)
		if err != nil {
			return Name{}, err
		}
		e[att] = v
	}
	return Name{Ver: V2_3, Elements: []Element{e}}, nil
}

func parseWFNValue(att Attribute, val string) (Value, error) {
	switch val {
	case "ANY":
		return Any(att), nil
	case "NA":
		return NA(att), nil
	}
	if len(val) < 2 || val[0] != '"' || val[len(val)-1] != '"' {
		return Value{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: wfn", Message: "value must be ANY, NA, or a quoted string: " + val}
	}
	return NewValue(att, val[1:len(val)-1])
}
