// Package encodeset implements the percent-encoding set predicates used by
// the URL parser and its structured setters (spec §4.B). Each named set is a
// strictness tier: c0Control is the smallest, form is unrelated to the
// others (it has its own space-to-plus rule) and is kept separate.
package encodeset

// Set is a membership table over one byte value. Index by the raw byte;
// bytes >= 0x80 are always treated as encoded regardless of what the table
// says, per spec §4.B ("Any byte >= 0x80 is always percent-encoded in any
// set").
type Set [256]bool

// Encoded reports whether b must be percent-encoded under s.
func (s *Set) Encoded(b byte) bool {
	if b >= 0x80 {
		return true
	}
	return s[b]
}

func build(base *Set, extra ...byte) Set {
	var s Set
	if base != nil {
		s = *base
	}
	for _, b := range extra {
		s[b] = true
	}
	return s
}

var (
	// C0Control: bytes < 0x20 and 0x7F.
	C0Control Set

	// Fragment: c0Control plus SP " < > `.
	Fragment Set

	// QueryNonSpecial: fragment plus '#'.
	QueryNonSpecial Set

	// QuerySpecial: queryNonSpecial plus the single-quote widening used for
	// special schemes.
	QuerySpecial Set

	// Path: queryNonSpecial plus ? ` { }.
	Path Set

	// Userinfo: path plus / : ; = @ [ \ ] ^ |.
	Userinfo Set

	// Component is the API-level set used by component setters for values
	// that are not already constrained to a narrower set (userinfo plus
	// $ % & + ,).
	Component Set
)

func init() {
	for b := 0; b < 0x20; b++ {
		C0Control[b] = true
	}
	C0Control[0x7F] = true

	Fragment = build(&C0Control, ' ', '"', '<', '>', '`')
	QueryNonSpecial = build(&Fragment, '#')
	QuerySpecial = build(&QueryNonSpecial, '\'')
	Path = build(&QueryNonSpecial, '?', '`', '{', '}')
	Userinfo = build(&Path, '/', ':', ';', '=', '@', '[', '\\', ']', '^', '|')
	Component = build(&Userinfo, '$', '%', '&', '+', ',')
}

const upperhex = "0123456789ABCDEF"

// Encode appends the percent-encoding of s (under set) to dst.
func Encode(dst []byte, s string, set *Set) []byte {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if set.Encoded(b) {
			dst = append(dst, '%', upperhex[b>>4], upperhex[b&0xF])
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}

// EncodeString is a convenience wrapper around Encode.
func EncodeString(s string, set *Set) string {
	return string(Encode(make([]byte, 0, len(s)), s, set))
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Decode percent-decodes s. Lone '%' (not followed by two hex digits) is
// passed through verbatim, per spec §4.B: "passes through invalid % sequences
// verbatim when the context allows".
func Decode(s string) string {
	hasPct := false
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			hasPct = true
			break
		}
	}
	if !hasPct {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// FormEncode implements the application/x-www-form-urlencoded byte set:
// all non [A-Za-z0-9*\-._] bytes are percent-encoded, except SP which is
// written as '+'.
func FormEncode(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == ' ':
			dst = append(dst, '+')
		case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9',
			b == '*', b == '-', b == '.', b == '_':
			dst = append(dst, b)
		default:
			dst = append(dst, '%', upperhex[b>>4], upperhex[b&0xF])
		}
	}
	return dst
}

// FormDecode reverses FormEncode: '+' decodes to space, %XX decodes as usual.
func FormDecode(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '+':
			buf = append(buf, ' ')
		case s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}
