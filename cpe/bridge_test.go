package cpe

import "testing"

func TestLiftToWFNFillsAny(t *testing.T) {
	n := MustParse(`cpe:/a:microsoft:ie:5.5`)
	wfn, err := LiftToWFN(n)
	if err != nil {
		t.Fatalf("LiftToWFN: %v", err)
	}
	e := wfn.Elements[0]
	for _, a := range [...]Attribute{SwEdition, TargetSW, TargetHW, Other} {
		if e[a].Kind != ValueAny {
			t.Errorf("%v: got kind %v, want ValueAny", a, e[a].Kind)
		}
	}
}

func TestLowerFromWFNRejectsWildcardPart(t *testing.T) {
	n, err := ParseWFN(`wfn:[part="?",vendor="acme",product="foo"]`)
	if err != nil {
		t.Fatalf("ParseWFN: %v", err)
	}
	if _, err := LowerFromWFN(n, V2_3); err == nil {
		t.Fatal("expected lowering a wildcard part to fail")
	}
}

func TestLowerFromWFNTo11RejectsPackedAttrs(t *testing.T) {
	n := MustParse(`cpe:2.3:a:hp:insight_diagnostics:7.4.0.1570:*:*:*:online:win2003:x64:*`)
	if _, err := LowerFromWFN(n, V1_1); err == nil {
		t.Fatal("expected lowering a name with a non-ANY sw_edition to 1.1 to fail")
	}
}

func TestLowerFromWFNTo11DropsUnsupportedAttrs(t *testing.T) {
	n := MustParse(`cpe:2.3:a:microsoft:internet_explorer:8.0.6001:beta:*:*:*:*:*:*`)
	out, err := LowerFromWFN(n, V1_1)
	if err != nil {
		t.Fatalf("LowerFromWFN: %v", err)
	}
	e := out.Elements[0]
	for a := int(SwEdition); a < NumAttr; a++ {
		if e[Attribute(a)].Kind != ValueUndefined {
			t.Errorf("%v: got kind %v, want ValueUndefined after lowering to 1.1", Attribute(a), e[Attribute(a)].Kind)
		}
	}
}

func TestLowerFromWFNTo22PacksWhenNeeded(t *testing.T) {
	n := MustParse(`cpe:2.3:a:hp:insight_diagnostics:7.4.0.1570:*:*:*:online:win2003:x64:*`)
	uri, err := n.AsURI()
	if err != nil {
		t.Fatalf("AsURI: %v", err)
	}
	want := `cpe:/a:hp:insight_diagnostics:7.4.0.1570::~~online~win2003~x64~`
	if uri != want {
		t.Errorf("got  %s\nwant %s", uri, want)
	}
}

func TestRoundTripThrough22URI(t *testing.T) {
	n := MustParse(`cpe:2.3:a:microsoft:internet_explorer:8.0.6001:beta:*:*:*:*:*:*`)
	fs, err := n.AsFS()
	if err != nil {
		t.Fatalf("AsFS: %v", err)
	}
	uri, err := n.AsURI()
	if err != nil {
		t.Fatalf("AsURI: %v", err)
	}
	back, err := ParseURI(uri)
	if err != nil {
		t.Fatalf("ParseURI(%q): %v", uri, err)
	}
	fs2, err := back.AsFS()
	if err != nil {
		t.Fatalf("AsFS after round trip: %v", err)
	}
	if fs2 != fs {
		t.Errorf("round trip through 2.2 URI diverged: got %q, want %q", fs2, fs)
	}
}
