package cpe

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// ValueKind indicates what "kind" a [Value] is.
//
// A value is either a concrete string (Set) or one of the logical values
// defined by the CPE specification.
type ValueKind uint

// These are the valid states for an attribute's value.
const (
	// ValueUndefined means the caller never supplied a value for the
	// attribute. This is distinct from ValueAny: it is the zero value of
	// [Value] and never appears in a successfully bound encoding.
	ValueUndefined ValueKind = iota
	// ValueAny is the logical value "ANY": the attribute matches anything.
	ValueAny
	// ValueNA is the logical value "NA": the attribute does not apply to
	// this product.
	ValueNA
	// ValueEmpty is the URI-encoding's empty field. It behaves like ValueAny
	// for matching purposes but is a distinct identity in 1.1 names, where
	// an elided field is not the same thing as an explicit wildcard.
	ValueEmpty
	// ValueSet is a concrete string value.
	ValueSet
)

// Value represents one attribute's worth of a [Name]: either a concrete
// string or one of the four logical values.
//
// The zero Value is ValueUndefined.
type Value struct {
	// V is the standard (decoded) form of the value when Kind is ValueSet.
	// It uses '?' and '*' as wildcard metacharacters and keeps a backslash
	// in front of any reserved character meant literally; it carries no
	// percent-encoding.
	V string
	// Att is the attribute this value was validated against.
	Att  Attribute
	Kind ValueKind
}

// NewValue constructs a concrete [Value] for the given attribute, validating
// the standard-form text against that attribute's grammar.
func NewValue(att Attribute, standard string) (Value, error) {
	if att < 0 || int(att) >= NumAttr {
		return Value{}, invalidAttribute(att)
	}
	if err := validateAttr(att, standard); err != nil {
		return Value{}, invalidValue(att, standard, err)
	}
	return Value{Kind: ValueSet, V: standard, Att: att}, nil
}

// Any returns the logical ANY value for the given attribute.
func Any(att Attribute) Value { return Value{Kind: ValueAny, Att: att} }

// NA returns the logical NA value for the given attribute.
func NA(att Attribute) Value { return Value{Kind: ValueNA, Att: att} }

// Empty returns the URI-encoding empty value for the given attribute.
func Empty(att Attribute) Value { return Value{Kind: ValueEmpty, Att: att} }

// Set replaces v's content in place, re-validating against att's grammar.
// This mirrors the "set" operation on a live component described by the
// specification.
func (v *Value) Set(att Attribute, standard string) error {
	nv, err := NewValue(att, standard)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// IsLogical reports whether v holds one of the logical values rather than a
// concrete string.
func (v Value) IsLogical() bool {
	return v.Kind != ValueSet
}

// Equals reports structural equality: same variant, and for Set values the
// same standard form and attribute.
func (v Value) Equals(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind != ValueSet {
		return true
	}
	return v.Att == o.Att && v.V == o.V
}

// Contains implements the component matching relation ("subset of" in
// component space): it reports whether v, treated as a known value, covers
// the candidate value o.
//
//   - ANY contains everything, including NA.
//   - Undefined behaves identically to ANY on either side.
//   - Empty behaves identically to ANY on either side.
//   - NA contains only NA.
//   - Set(a) contains Set(b) iff a, read as a wildcard pattern, matches b
//     exactly; two equal Sets always contain each other.
//   - Set never contains a logical value, and no logical value but ANY/
//     Undefined/Empty contains a Set.
func (v Value) Contains(o Value) bool {
	switch v.Kind {
	case ValueAny, ValueUndefined, ValueEmpty:
		return true
	case ValueNA:
		return o.Kind == ValueNA
	case ValueSet:
		if o.Kind != ValueSet {
			return false
		}
		return patternMatch(v.V, o.V)
	default:
		return false
	}
}

// nonASCII reports true if the rune is not ASCII.
func nonASCII(r rune) bool { return r > unicode.MaxASCII }

// reserved reports true if the rune is in the "reserved" set for CPE
// strings and needs quoting when it appears unescaped.
func reserved(r rune) bool {
	return (r < '0' || r > '9') &&
		(r < 'A' || r > 'Z') &&
		(r < 'a' || r > 'z') &&
		r != '_'
}

// validateAttr dispatches to the grammar appropriate for att.
func validateAttr(att Attribute, s string) error {
	switch att {
	case Part:
		return validatePart(s)
	case Language:
		return validateLanguage(s)
	default:
		return validateGeneral(s)
	}
}

func validatePart(s string) error {
	switch s {
	case "a", "o", "h", "?":
		return nil
	}
	return &Error{Kind: ErrInvalidValue, Message: "part must be one of a, o, h or ?"}
}

// validateGeneral implements the standard-form grammar shared by every
// attribute except part and language, adapted from the CPE Naming spec
// (NISTIR 7695) section 5.3.2.
//
// The standard form stored in Value.V keeps a backslash in front of any
// reserved character that is meant literally; a bare '*' or '?' is always a
// wildcard metacharacter. This is what lets "8\.\*" (a literal asterisk in a
// version string) round-trip distinctly from "8.*" (a wildcard suffix).
func validateGeneral(s string) error {
	if !utf8.ValidString(s) {
		return &Error{Kind: ErrInvalidValue, Message: "string not valid utf8"}
	}
	if strings.IndexFunc(s, nonASCII) != -1 {
		return &Error{Kind: ErrInvalidValue, Message: "string contains non-ASCII characters"}
	}
	if strings.IndexFunc(s, unicode.IsSpace) != -1 {
		return &Error{Kind: ErrInvalidValue, Message: "string contains space characters"}
	}
	if s == "" {
		return &Error{Kind: ErrInvalidValue, Message: "empty string is not a valid Set value"}
	}
	if s == "*" {
		return &Error{Kind: ErrInvalidValue, Message: "single asterisk must not be used by itself"}
	}
	if s == `\-` {
		return &Error{Kind: ErrInvalidValue, Message: "quoted hyphen must not be used by itself"}
	}
	var (
		esc           = false
		last          = len(s) - 1
		qRun, atStart = false, true
	)
	for i, r := range s {
		switch r {
		case '*':
			if esc {
				break
			}
			if i != 0 && i != last {
				return &Error{Kind: ErrInvalidValue, Message: "asterisk may only appear at the start or end"}
			}
		case '?':
			if esc {
				break
			}
			qRun = true
		case '\\':
			esc = true
			continue
		default:
			if reserved(r) && !esc {
				return &Error{Kind: ErrInvalidValue, Message: "unquoted reserved character"}
			}
		}
		if r != '?' {
			if qRun && !atStart {
				return &Error{Kind: ErrInvalidValue, Message: "question mark run must be at the start or end"}
			}
			qRun, atStart = false, false
		}
		esc = false
	}
	return nil
}

// validateLanguage implements the RFC 5646-ish language-tag grammar: a
// subtag of two to three letters, optionally followed by a hyphen and a
// region subtag (two letters, or three digits), either half of which may be
// a standalone wildcard. The hyphen may be bare or backslash-escaped (the
// escaped form is what the FS, URI and 1.1 parsers produce).
func validateLanguage(s string) error {
	if s == "" {
		return &Error{Kind: ErrInvalidValue, Message: "empty string is not a valid Set value"}
	}
	lang, region, hasRegion := s, "", false
	if i := strings.Index(s, `\-`); i != -1 {
		lang, region, hasRegion = s[:i], s[i+2:], true
	} else if i := strings.IndexByte(s, '-'); i != -1 {
		lang, region, hasRegion = s[:i], s[i+1:], true
	}
	if !validSubtag(lang, 2, 3, isAlpha) {
		return &Error{Kind: ErrInvalidValue, Message: "invalid language subtag"}
	}
	if hasRegion {
		if !validSubtag(region, 2, 2, isAlpha) && !validSubtag(region, 3, 3, isDigit) {
			return &Error{Kind: ErrInvalidValue, Message: "invalid region subtag"}
		}
	}
	// When neither subtag is a bare wildcard, defer to golang.org/x/text's
	// BCP 47 parser for full well-formedness: it catches combinations (e.g.
	// reserved or unassigned subtag values) that the CPE grammar's own
	// per-subtag length/class rules don't.
	if lang != "?" && lang != "*" && (!hasRegion || (region != "?" && region != "*")) {
		tag := lang
		if hasRegion {
			tag += "-" + region
		}
		if _, err := language.Parse(tag); err != nil {
			return &Error{Kind: ErrInvalidValue, Message: "not a well-formed BCP 47 tag: " + s, Inner: err}
		}
	}
	return nil
}

func isAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// validSubtag reports whether s is either a single wildcard character or a
// run of [min,max] runes all satisfying class.
func validSubtag(s string, min, max int, class func(rune) bool) bool {
	if s == "?" || s == "*" {
		return true
	}
	n := utf8.RuneCountInString(s)
	if n < min || n > max {
		return false
	}
	for _, r := range s {
		if !class(r) {
			return false
		}
	}
	return true
}

// escapeMask reports, for each rune of rs, whether it is a literal character
// quoted by an immediately preceding backslash, as opposed to raw text or a
// wildcard metacharacter. This is what lets a standard-form value like
// `8\.\*` (a literal trailing asterisk) be told apart from `8.*` (a
// wildcard suffix): patternMatch must only ever treat an *unescaped* '*' or
// '?' as a metacharacter.
func escapeMask(rs []rune) []bool {
	mask := make([]bool, len(rs))
	esc := false
	for i, r := range rs {
		if esc {
			mask[i] = true
			esc = false
			continue
		}
		if r == '\\' {
			esc = true
		}
	}
	return mask
}

// patternMatch reports whether pattern, interpreted as a wildcard pattern
// over the standard form alphabet ('?' = exactly one character, '*' = zero
// or more characters, both only meaningful at the ends of the string),
// matches s exactly. Matching is case-insensitive per the specification. A
// backslash-escaped '*' or '?' is a literal character, not a metacharacter,
// even at a string boundary.
func patternMatch(pattern, s string) bool {
	pattern, s = strings.ToLower(pattern), strings.ToLower(s)
	pr := []rune(pattern)
	mask := escapeMask(pr)

	hasWildcard := false
	for i, r := range pr {
		if (r == '*' || r == '?') && !mask[i] {
			hasWildcard = true
			break
		}
	}
	if !hasWildcard {
		return pattern == s
	}

	var prefixStar bool
	var leadQ int
	switch {
	case len(pr) > 0 && pr[0] == '*' && !mask[0]:
		prefixStar = true
		pr, mask = pr[1:], mask[1:]
	default:
		for len(pr) > 0 && pr[0] == '?' && !mask[0] {
			leadQ++
			pr, mask = pr[1:], mask[1:]
		}
	}

	var suffixStar bool
	var trailQ int
	switch {
	case len(pr) > 0 && pr[len(pr)-1] == '*' && !mask[len(mask)-1]:
		suffixStar = true
		pr, mask = pr[:len(pr)-1], mask[:len(mask)-1]
	default:
		for len(pr) > 0 && pr[len(pr)-1] == '?' && !mask[len(mask)-1] {
			trailQ++
			pr, mask = pr[:len(pr)-1], mask[:len(mask)-1]
		}
	}

	core := string(pr)
	coreLen := utf8.RuneCountInString(core)
	rs := []rune(s)
	n := len(rs)
	minLen := leadQ + coreLen + trailQ

	switch {
	case !prefixStar && !suffixStar:
		if n != minLen {
			return false
		}
		return string(rs[leadQ:n-trailQ]) == core
	case prefixStar && !suffixStar:
		if n < minLen {
			return false
		}
		return string(rs[n-trailQ-coreLen:n-trailQ]) == core
	case !prefixStar && suffixStar:
		if n < minLen {
			return false
		}
		return string(rs[leadQ:leadQ+coreLen]) == core
	default: // both
		if n < minLen {
			return false
		}
		return strings.Contains(string(rs[leadQ:n-trailQ]), core)
	}
}
