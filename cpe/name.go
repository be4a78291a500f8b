package cpe

// Element is one system identifier's worth of attribute values, always
// indexed in 2.3 binding order regardless of the source version. Attributes
// that don't exist in a version (sw_edition, target_sw, target_hw, other for
// 1.1/2.2) are ValueAny in a parsed name and ValueUndefined in a name
// returned by [LowerFromWFN].
type Element [NumAttr]Value

// Name is a parsed CPE name: a specification version together with an
// ordered collection of [Element]s.
//
// Every 2.2 and 2.3 name has exactly one element. A 1.1 name may describe
// several systems concatenated together, in which case it has more than one;
// matching and conversion treat that case specially, as the specification
// requires.
type Name struct {
	Ver      NameVersion
	Elements []Element
}

// newName allocates a Name with a single element, every attribute defaulted
// to ValueAny — the default used when a textual encoding elides a field.
func newName(ver NameVersion) Name {
	var e Element
	for i := range e {
		e[i] = Any(Attribute(i))
	}
	return Name{Ver: ver, Elements: []Element{e}}
}

// Get returns the list of component values for the given attribute across
// every element of the name. The length is always at least 1, and greater
// than 1 only for a multi-element 1.1 name.
func (n Name) Get(att Attribute) []Value {
	out := make([]Value, len(n.Elements))
	for i, e := range n.Elements {
		out[i] = e[att]
	}
	return out
}

// partIn reports whether any element of n has the given part tag.
func (n Name) partIn(tag string) bool {
	for _, e := range n.Elements {
		v := e[Part]
		if v.Kind == ValueSet && v.V == tag {
			return true
		}
	}
	return false
}

// IsHardware reports whether the name describes a hardware platform.
func (n Name) IsHardware() bool { return n.partIn("h") }

// IsOperatingSystem reports whether the name describes an operating system.
func (n Name) IsOperatingSystem() bool { return n.partIn("o") }

// IsApplication reports whether the name describes an application.
func (n Name) IsApplication() bool { return n.partIn("a") }

// Equals reports whether n and o are equal once both are lifted to WFN:
// equality is encoding-agnostic. An empty 2.2 URI field compares equal to
// ANY; in a 1.1 name it stays a distinct value.
func (n Name) Equals(o Name) bool {
	ln, err1 := LiftToWFN(n)
	lo, err2 := LiftToWFN(o)
	if err1 != nil || err2 != nil {
		return false
	}
	if len(ln.Elements) != len(lo.Elements) {
		return false
	}
	for i := range ln.Elements {
		for a := 0; a < NumAttr; a++ {
			x, y := ln.Elements[i][a], lo.Elements[i][a]
			if n.Ver != V1_1 {
				x = collapseEmpty(x)
			}
			if o.Ver != V1_1 {
				y = collapseEmpty(y)
			}
			if !x.Equals(y) {
				return false
			}
		}
	}
	return true
}
