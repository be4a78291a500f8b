package cpe

import "testing"

func TestCompareValue(t *testing.T) {
	any := Any(Vendor)
	na := NA(Vendor)
	simple := mustValue(t, Vendor, "acme")
	star := mustValue(t, Vendor, "a*")

	tt := []struct {
		name        string
		known, cand Value
		want        Relation
	}{
		{"any vs any", any, any, Equal},
		{"any vs simple", any, simple, Superset},
		{"na vs any", na, any, Subset},
		{"na vs na", na, na, Equal},
		{"na vs simple", na, simple, Disjoint},
		{"simple vs itself", simple, simple, Equal},
		{"simple vs any", simple, any, Subset},
		{"simple vs na", simple, na, Disjoint},
		{"wildcard vs simple", star, simple, Superset},
		{"simple vs wildcard", simple, star, Subset},
	}
	for _, tc := range tt {
		if got := CompareValue(tc.known, tc.cand); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

// A literal escaped asterisk must never be read as a wildcard by the
// richer Relation comparison either, not just by Value.Contains.
func TestCompareValueEscapedWildcard(t *testing.T) {
	literalStar := mustValue(t, Version, `8\.\*`)
	unrelated := mustValue(t, Version, `8\.9`)
	if got := CompareValue(literalStar, unrelated); got != Disjoint {
		t.Errorf("got %v, want Disjoint", got)
	}
	if got := CompareValue(literalStar, literalStar); got != Equal {
		t.Errorf("got %v, want Equal", got)
	}
	realWildcard := mustValue(t, Version, `8\.*`)
	if got := CompareValue(realWildcard, unrelated); got != Superset {
		t.Errorf("got %v, want Superset", got)
	}
}

func TestRelationString(t *testing.T) {
	tt := []struct {
		r    Relation
		want string
	}{
		{Superset, "SUPERSET"},
		{Subset, "SUBSET"},
		{Equal, "EQUAL"},
		{Disjoint, "DISJOINT"},
		{relationInvalid, "UNDEFINED"},
	}
	for _, tc := range tt {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("Relation(%d).String() = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestNameContains(t *testing.T) {
	n := MustParse(`cpe:2.3:o:microsoft:windows_2000:*:*:*:*:*:*:*:*`)
	x := MustParse(`cpe:2.3:o:microsoft:windows_2000:2000:*:pro:*:*:*:*:*`)
	if !NameContains(n, x) {
		t.Fatal("expected generic windows_2000 name to contain the specific pro edition")
	}
	// A candidate that pins down an edition conflicting with the known
	// name's edition must not match, even though both otherwise agree.
	home := MustParse(`cpe:2.3:o:microsoft:windows_2000:2000:*:home:*:*:*:*:*`)
	specific := MustParse(`cpe:2.3:o:microsoft:windows_2000:2000:*:pro:*:*:*:*:*`)
	if NameContains(specific, home) {
		t.Fatal("did not expect a conflicting edition to be contained")
	}
}

// Scenario 3 from the specification's end-to-end worked examples: a set of
// known names matches a broader candidate when any one member covers it.
func TestScenarioNameSetMatches(t *testing.T) {
	k := NameSet{
		MustParse(`cpe:/o:microsoft:windows_2000::sp3:pro`),
		MustParse(`cpe:/a:microsoft:ie:5.5`),
	}
	x := MustParse(`cpe:/o:microsoft:windows_2000`)
	if !k.Matches(x) {
		t.Fatal("expected K to match X")
	}
}

func TestNameSetMatchesNoCoverage(t *testing.T) {
	k := NameSet{
		MustParse(`cpe:/a:microsoft:ie:5.5`),
	}
	x := MustParse(`cpe:/o:microsoft:windows_2000`)
	if k.Matches(x) {
		t.Fatal("did not expect an unrelated set to match")
	}
}

func TestNameSetMatchesEmpty(t *testing.T) {
	var k NameSet
	x := MustParse(`cpe:/o:microsoft:windows_2000`)
	if k.Matches(x) {
		t.Fatal("expected an empty set to match nothing")
	}
}
