package cpe

import "strings"

// AsWFN emits n as a bracketed well-formed name, lifting it to WFN first.
func (n Name) AsWFN() (string, error) {
	lifted, err := LiftToWFN(n)
	if err != nil {
		return "", err
	}
	e := lifted.Elements[0]
	var b strings.Builder
	b.WriteString("wfn:[")
	for i, att := range wfnOrder {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(att.String())
		b.WriteByte('=')
		writeWFNValue(&b, e[att])
	}
	b.WriteByte(']')
	return b.String(), nil
}

func writeWFNValue(b *strings.Builder, v Value) {
	switch v.Kind {
	case ValueAny, ValueUndefined, ValueEmpty:
		b.WriteString("ANY")
	case ValueNA:
		b.WriteString("NA")
	case ValueSet:
		b.WriteByte('"')
		b.WriteString(v.V)
		b.WriteByte('"')
	}
}

// AsFS emits n as a CPE 2.3 formatted string.
func (n Name) AsFS() (string, error) {
	lowered, err := LowerFromWFN(n, V2_3)
	if err != nil {
		return "", err
	}
	e := lowered.Elements[0]
	var b strings.Builder
	b.WriteString(fsPrefix[:len(fsPrefix)-1]) // "cpe:2.3"
	for _, att := range wfnOrder {
		b.WriteByte(':')
		writeFSValue(&b, e[att])
	}
	return b.String(), nil
}

func writeFSValue(b *strings.Builder, v Value) {
	switch v.Kind {
	case ValueAny, ValueUndefined, ValueEmpty:
		b.WriteByte('*')
	case ValueNA:
		b.WriteByte('-')
	case ValueSet:
		fsUnescape.WriteString(b, v.V)
	}
}

// fsUnescape drops the backslash in front of the three characters the
// formatted-string binding doesn't require escaped, even though the
// canonical standard form always escapes them.
var fsUnescape = strings.NewReplacer(
	`\.`, `.`,
	`\-`, `-`,
	`\_`, `_`,
)

// AsURI emits n as a CPE 2.2 URI, packing sw_edition/target_sw/target_hw/
// other into the edition field when any of them carries a non-ANY value.
func (n Name) AsURI() (string, error) {
	lowered, err := LowerFromWFN(n, V2_2)
	if err != nil {
		return "", err
	}
	e := lowered.Elements[0]

	packed := false
	for _, a := range [...]Attribute{SwEdition, TargetSW, TargetHW, Other} {
		if v := e[a]; v.Kind != ValueAny && v.Kind != ValueUndefined {
			packed = true
		}
	}

	var b strings.Builder
	b.WriteString(uriPrefix) // "cpe:/"
	for i, att := range uriOrder {
		if i > 0 {
			b.WriteByte(':')
		}
		if att == Edition && packed {
			b.WriteByte('~')
			for j, a := range [...]Attribute{Edition, SwEdition, TargetSW, TargetHW, Other} {
				if j > 0 {
					b.WriteByte('~')
				}
				writeURIValue(&b, e[a])
			}
			continue
		}
		writeURIValue(&b, e[att])
	}
	return strings.TrimRight(b.String(), ":"), nil
}

func writeURIValue(b *strings.Builder, v Value) {
	switch v.Kind {
	case ValueAny, ValueUndefined, ValueEmpty:
		// empty field
	case ValueNA:
		b.WriteByte('-')
	case ValueSet:
		b.WriteString(uriEscape.Replace(v.V))
	}
}

// uriEscape is the inverse of the percent-decoding table used when parsing
// a 2.2 URI: it turns the canonical backslash-escaped standard form into
// percent-encoded URI text. Dot and hyphen are the exception: like the FS
// binding, the URI binding allows them bare, so their escape is dropped
// rather than percent-encoded.
var uriEscape = strings.NewReplacer(
	`\?`, `%3f`,
	`\*`, `%2a`,
	`?`, `%01`,
	`*`, `%02`,
	`\.`, `.`,
	`\-`, `-`,
	`\!`, `%21`,
	`\"`, `%22`,
	`\#`, `%23`,
	`\$`, `%24`,
	`\%`, `%25`,
	`\&`, `%26`,
	`\'`, `%27`,
	`\(`, `%28`,
	`\)`, `%29`,
	`\+`, `%2b`,
	`\,`, `%2c`,
	`\/`, `%2f`,
	`\:`, `%3a`,
	`\;`, `%3b`,
	`\<`, `%3c`,
	`\=`, `%3d`,
	`\>`, `%3e`,
	`\@`, `%40`,
	`\[`, `%5b`,
	`\\`, `%5c`,
	`\]`, `%5d`,
	`\^`, `%5e`,
	"\\`", `%60`,
	`\{`, `%7b`,
	`\|`, `%7c`,
	`\}`, `%7d`,
	`\~`, `%7e`,
)
