package cpe

// Relation indicates the relation between two values of the same attribute,
// following the CPE Name Matching specification's table of pairwise
// comparisons (NIST IR 7696).
type Relation uint

// The possible relations between two attribute values.
const (
	relationInvalid Relation = iota
	Superset                 // known is a proper or non-proper superset of candidate
	Subset                   // known is a proper or non-proper subset of candidate
	Equal                    // known and candidate are the same
	Disjoint                 // known and candidate share nothing
)

func (r Relation) String() string {
	switch r {
	case Superset:
		return "SUPERSET"
	case Subset:
		return "SUBSET"
	case Equal:
		return "EQUAL"
	case Disjoint:
		return "DISJOINT"
	default:
		return "UNDEFINED"
	}
}

// CompareValue reports the relation of known to candidate, per the matching
// specification's table 6-2. Unlike [Value.Contains], this distinguishes a
// proper superset from equality, which callers that want a richer answer
// than a boolean may want (e.g. reporting "these are the same product" vs.
// "the candidate is merely covered").
func CompareValue(known, candidate Value) Relation {
	k, c := collapseEmpty(known), collapseEmpty(candidate)
	switch k.Kind {
	case ValueAny, ValueUndefined:
		switch c.Kind {
		case ValueAny, ValueUndefined:
			return Equal
		default:
			return Superset
		}
	case ValueNA:
		switch c.Kind {
		case ValueAny, ValueUndefined:
			return Subset
		case ValueNA:
			return Equal
		default:
			return Disjoint
		}
	case ValueSet:
		switch c.Kind {
		case ValueAny, ValueUndefined:
			return Subset
		case ValueNA:
			return Disjoint
		case ValueSet:
			if k.V == c.V {
				return Equal
			}
			if patternMatch(k.V, c.V) {
				return Superset
			}
			if patternMatch(c.V, k.V) {
				return Subset
			}
			return Disjoint
		}
	}
	return Disjoint
}

// collapseEmpty treats ValueEmpty identically to ValueAny for comparison
// purposes, per the specification.
func collapseEmpty(v Value) Value {
	if v.Kind == ValueEmpty {
		v.Kind = ValueAny
	}
	return v
}

// Contains is the per-component matching relation (⊆ in component space):
// it reports whether known covers candidate.
func Contains(known, candidate Value) bool {
	return known.Contains(candidate)
}

// NameContains implements name matching: N ⊇ X iff for every attribute a,
// N.Get(a) ⊇ X.Get(a). An attribute the candidate leaves logical (Any,
// Undefined, or Empty) asserts no constraint and is always satisfied,
// regardless of what the known side says there — this is what lets a short
// candidate like "cpe:/o:microsoft:windows_2000", which only ever sets
// part/vendor/product, match a known name that pins down update and edition.
//
// For a multi-element 1.1 list, the relation holds iff every candidate value
// is contained by the known value at the same position; when the known side
// has fewer elements than the candidate, its last element is reused (a
// single-element known name covers every position of a multi-element
// candidate).
func NameContains(known, candidate Name) bool {
	for a := Attribute(0); int(a) < NumAttr; a++ {
		ns := known.Get(a)
		xs := candidate.Get(a)
		for i, xv := range xs {
			switch xv.Kind {
			case ValueAny, ValueUndefined, ValueEmpty:
				continue
			}
			nv := ns[minInt(i, len(ns)-1)]
			if !nv.Contains(xv) {
				return false
			}
		}
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// NameSet is an unordered collection of known [Name]s, the "K" of the
// specification's matching relation.
type NameSet []Name

// Matches reports whether any member of k covers x: "Set K matches X iff any
// element N ∈ K satisfies N ⊇ X." It short-circuits on the first success.
//
// Both sides are lifted to WFN before comparison (per the cross-version
// bridge). A pair that cannot be lifted is reported as non-matching, never
// as an error, by design.
func (k NameSet) Matches(x Name) bool {
	lx, err := LiftToWFN(x)
	if err != nil {
		return false
	}
	for _, n := range k {
		ln, err := LiftToWFN(n)
		if err != nil {
			continue
		}
		if NameContains(ln, lx) {
			return true
		}
	}
	return false
}
