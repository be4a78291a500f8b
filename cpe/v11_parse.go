package cpe

import "strings"

// Parse11 parses a CPE 1.1 URI: "cpe://" followed by '/'-separated parts,
// each part a ';'-separated list of elements, each element a ':'-separated
// list of attribute values in the same order as the 2.2 URI binding (part,
// vendor, product, version, update, edition, language).
//
// A name with more than one element altogether describes multiple
// systems concatenated together; see [LiftToWFN] for the consequence that
// has on cross-version conversion.
func Parse11(s string) (Name, error) {
	if !strings.HasPrefix(s, v11Prefix) {
		return Name{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: 1.1", Message: "missing cpe:// prefix"}
	}
	body := s[len(v11Prefix):]
	if body == "" {
		return Name{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: 1.1", Message: "empty name body"}
	}

	var elements []Element
	for _, group := range strings.Split(body, "/") {
		if group == "" {
			continue
		}
		for _, item := range strings.Split(group, ";") {
			fields := strings.Split(item, ":")
			if len(fields) > len(uriOrder) {
				return Name{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: 1.1", Message: "too many fields in element " + item}
			}
			var e Element
			for i := range e {
				e[i] = Any(Attribute(i))
			}
			for i, f := range fields {
				att := uriOrder[i]
				v, err := valueFrom11(att, f)
				if err != nil {
					return Name{}, err
				}
				e[att] = v
			}
			elements = append(elements, e)
		}
	}
	if len(elements) == 0 {
		return Name{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: 1.1", Message: "name contains no elements"}
	}
	return Name{Ver: V1_1, Elements: elements}, nil
}

func valueFrom11(att Attribute, f string) (Value, error) {
	switch f {
	case "":
		return Empty(att), nil
	case "-":
		return NA(att), nil
	default:
		return NewValue(att, escapeDotHyphen(f))
	}
}
