package cpe

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFSRoundTrip(t *testing.T) {
	tt := []string{
		`cpe:2.3:a:microsoft:internet_explorer:8.0.6001:beta:*:*:*:*:*:*`,
		`cpe:2.3:a:microsoft:internet_explorer:8.*:sp?:*:*:*:*:*:*`,
		`cpe:2.3:a:hp:insight_diagnostics:7.4.0.1570:-:*:*:online:win2003:x64:*`,
		`cpe:2.3:a:foo\\bar:big\$money_2010:*:*:*:*:special:ipod_touch:80gb:*`,
	}
	for _, in := range tt {
		n, err := ParseFS(in)
		if err != nil {
			t.Errorf("ParseFS(%q): %v", in, err)
			continue
		}
		out, err := n.AsFS()
		if err != nil {
			t.Errorf("AsFS after ParseFS(%q): %v", in, err)
			continue
		}
		if out != in {
			t.Errorf("round trip: got %q, want %q", out, in)
		}
	}
}

func TestParseURIRoundTrip(t *testing.T) {
	tt := []string{
		`cpe:/a:microsoft:internet_explorer:8.0.6001:beta`,
		`cpe:/o:microsoft:windows_2000::sp3:pro`,
		`cpe:/a:microsoft:ie:5.5`,
	}
	for _, in := range tt {
		n, err := ParseURI(in)
		if err != nil {
			t.Errorf("ParseURI(%q): %v", in, err)
			continue
		}
		out, err := n.AsURI()
		if err != nil {
			t.Errorf("AsURI after ParseURI(%q): %v", in, err)
			continue
		}
		if out != in {
			t.Errorf("round trip: got %q, want %q", out, in)
		}
	}
}

// Scenario 1 from the specification's end-to-end worked examples: converting
// a 2.3 FS name to WFN must surface every attribute, including multiple
// explicit ANY entries, not just the ones the source string set explicitly.
func TestScenarioFSToWFN(t *testing.T) {
	n, err := ParseFS(`cpe:2.3:a:hp:insight_diagnostics:8.*:*:*:*:*:*:x32:*`)
	if err != nil {
		t.Fatalf("ParseFS: %v", err)
	}
	got, err := n.AsWFN()
	if err != nil {
		t.Fatalf("AsWFN: %v", err)
	}
	want := `wfn:[part="a", vendor="hp", product="insight_diagnostics", version="8\.*", update=ANY, edition=ANY, language=ANY, sw_edition=ANY, target_sw=ANY, target_hw="x32", other=ANY]`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

// Scenario 2: a packed 2.2 URI edition field unpacks into its five logical
// subfields when lifted to WFN.
func TestScenarioPackedURIToWFN(t *testing.T) {
	n, err := ParseURI(`cpe:/a:hp:insight_diagnostics:7.4.0.1570:-:~~online~win2003~x64~`)
	if err != nil {
		t.Fatalf("ParseURI: %v", err)
	}
	wfn, err := LiftToWFN(n)
	if err != nil {
		t.Fatalf("LiftToWFN: %v", err)
	}
	e := wfn.Elements[0]
	want := map[Attribute]Value{
		Update:    {Att: Update, Kind: ValueNA},
		SwEdition: {Att: SwEdition, Kind: ValueSet, V: "online"},
		TargetSW:  {Att: TargetSW, Kind: ValueSet, V: "win2003"},
		TargetHW:  {Att: TargetHW, Kind: ValueSet, V: "x64"},
	}
	got := make(map[Attribute]Value, len(want))
	for att := range want {
		got[att] = e[att]
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unpacked edition subfields (-want +got):\n%s", diff)
	}
}

// Scenario 6: constructing an invalid part value raises ErrInvalidValue.
func TestScenarioInvalidPart(t *testing.T) {
	_, err := NewValue(Part, "j")
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("got %v, want ErrInvalidValue", err)
	}
}

func TestParseWFN(t *testing.T) {
	n, err := ParseWFN(`wfn:[part="a",vendor="acme",product="foo",version="1\.0"]`)
	if err != nil {
		t.Fatalf("ParseWFN: %v", err)
	}
	e := n.Elements[0]
	if e[Part].V != "a" || e[Vendor].V != "acme" || e[Product].V != "foo" || e[Version].V != `1\.0` {
		t.Fatalf("unexpected parse result: %+v", e)
	}
	if e[Update].Kind != ValueAny {
		t.Fatalf("expected unspecified update to default to ANY, got %v", e[Update].Kind)
	}
}

func TestParse11MultiElement(t *testing.T) {
	n, err := Parse11("cpe://o:microsoft:windows_2000:::sp3:pro/a:redhat:enterprise_linux:3")
	if err != nil {
		t.Fatalf("Parse11: %v", err)
	}
	if n.Ver != V1_1 {
		t.Fatalf("got version %v, want V1_1", n.Ver)
	}
	if len(n.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(n.Elements))
	}
	if _, err := LiftToWFN(n); err == nil {
		t.Fatal("expected LiftToWFN to reject a multi-element 1.1 name")
	}
}
