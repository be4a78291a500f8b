package cpe

import "fmt"

// LiftToWFN returns the canonical eleven-attribute WFN form of n.
//
// Attributes present in n are copied directly; attributes absent from n's
// version default to ValueAny. A 1.1 name that describes more than one
// element cannot be expressed as a single WFN and is reported as
// [ErrIncompatible].
func LiftToWFN(n Name) (Name, error) {
	switch n.Ver {
	case V2_3:
		return cloneAs(n, V2_3), nil
	case V2_2:
		return fillAny(cloneAs(n, V2_3), n.Ver), nil
	case V1_1:
		// A 1.1 name with more than one element describes several systems
		// concatenated together (the elements may even carry different part
		// values); none of that has a home in a single WFN, so it is always
		// rejected rather than picking one element and discarding the rest.
		if len(n.Elements) > 1 {
			return Name{}, &Error{
				Kind:    ErrIncompatible,
				Op:      "cpe: lift",
				Message: "1.1 name with multiple elements cannot be lifted to a single WFN",
			}
		}
		return fillAny(cloneAs(n, V2_3), n.Ver), nil
	default:
		return Name{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: lift", Message: "unknown name version"}
	}
}

func cloneAs(n Name, ver NameVersion) Name {
	els := make([]Element, len(n.Elements))
	copy(els, n.Elements)
	return Name{Ver: ver, Elements: els}
}

// fillAny promotes every still-Undefined attribute beyond src's native set
// to ValueAny.
func fillAny(n Name, src NameVersion) Name {
	native := src.numAttr()
	for ei := range n.Elements {
		for a := native; a < NumAttr; a++ {
			if n.Elements[ei][a].Kind == ValueUndefined {
				n.Elements[ei][a] = Any(Attribute(a))
			}
		}
	}
	return n
}

// LowerFromWFN converts wfn (or any name, which is first lifted) into the
// requested target version, failing with [ErrIncompatible] when the target
// cannot represent a value the source carries.
//
// A wildcard part value can never be lowered into any bound encoding, per
// the specification's open question resolution. Lowering to 2.2 keeps
// sw_edition/target_sw/target_hw/other as separate attributes when any of
// them carries a non-ANY value (AsURI then packs them into the edition
// field) and resets all four to ValueUndefined otherwise.
func LowerFromWFN(wfn Name, target NameVersion) (Name, error) {
	lifted, err := LiftToWFN(wfn)
	if err != nil {
		return Name{}, err
	}
	el := lifted.Elements[0]
	if p := el[Part]; p.Kind == ValueSet && hasWildcard(p.V) {
		return Name{}, &Error{Kind: ErrIncompatible, Op: "cpe: lower", Message: "part attribute cannot carry a wildcard in any bound encoding"}
	}

	switch target {
	case V2_3:
		return Name{Ver: V2_3, Elements: []Element{el}}, nil
	case V2_2:
		out := el
		needsPacking := false
		for _, a := range [...]Attribute{SwEdition, TargetSW, TargetHW, Other} {
			if out[a].Kind != ValueAny && out[a].Kind != ValueUndefined {
				needsPacking = true
			}
		}
		if !needsPacking {
			for _, a := range [...]Attribute{SwEdition, TargetSW, TargetHW, Other} {
				out[a] = Value{Kind: ValueUndefined, Att: a}
			}
			return Name{Ver: V2_2, Elements: []Element{out}}, nil
		}
		return Name{Ver: V2_2, Elements: []Element{out}}, nil
	case V1_1:
		for _, a := range [...]Attribute{SwEdition, TargetSW, TargetHW, Other} {
			if el[a].Kind != ValueAny && el[a].Kind != ValueUndefined {
				return Name{}, &Error{
					Kind:    ErrIncompatible,
					Op:      "cpe: lower",
					Message: fmt.Sprintf("1.1 cannot represent a non-ANY %v", a),
				}
			}
		}
		out := el
		for a := int(Language) + 1; a < NumAttr; a++ {
			out[a] = Value{Kind: ValueUndefined, Att: Attribute(a)}
		}
		return Name{Ver: V1_1, Elements: []Element{out}}, nil
	default:
		return Name{}, &Error{Kind: ErrInvalidFormat, Op: "cpe: lower", Message: "unknown target version"}
	}
}

func hasWildcard(s string) bool {
	for _, r := range s {
		if r == '*' || r == '?' {
			return true
		}
	}
	return false
}
