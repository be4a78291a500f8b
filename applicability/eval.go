package applicability

import "github.com/nilp0inter/cpe/cpe"

// Evaluate reports whether op holds against the known name set k, recursing
// with short-circuit AND/OR and inverting the result when op is negated.
func Evaluate(op Operand, k cpe.NameSet) bool {
	var result bool
	switch {
	case op.Fact != nil:
		// The fact is the pattern side of the relation (it is the fact-ref
		// that may carry a wildcard, e.g. version "8.*"), and each of k's
		// names is a candidate observation about the target; the fact holds
		// if it covers any one of them.
		factAsKnown := cpe.NameSet{*op.Fact}
		for _, n := range k {
			if factAsKnown.Matches(n) {
				result = true
				break
			}
		}
	case op.Op == And:
		result = true
		for _, c := range op.Children {
			if !Evaluate(c, k) {
				result = false
				break
			}
		}
	case op.Op == Or:
		for _, c := range op.Children {
			if Evaluate(c, k) {
				result = true
				break
			}
		}
	}
	if op.Negate {
		result = !result
	}
	return result
}

// DocumentMatches reports whether any platform in d evaluates true against k.
func DocumentMatches(d Document, k cpe.NameSet) bool {
	for _, p := range d.Platforms {
		if Evaluate(p.Root, k) {
			return true
		}
	}
	return false
}
