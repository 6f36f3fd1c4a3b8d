// Package host implements the host parser (spec §4.C.1/§4.C.2): dispatch
// among opaque host, IPv4 (with historical decimal/octal/hex forms), IPv6,
// and domain, the last delegating to internal/idna.
package host

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/region23/weburl/internal/diagnostics"
	"github.com/region23/weburl/internal/encodeset"
	"github.com/region23/weburl/internal/idna"
)

// Kind is the host-variant discriminant (spec §3.2).
type Kind int

const (
	KindNone Kind = iota
	KindEmpty
	KindDomain
	KindIPv4
	KindIPv6
	KindOpaque
)

// Host is the tagged union of the five host variants.
type Host struct {
	Kind   Kind
	IPv4   uint32
	IPv6   [8]uint16
	Domain string
	Opaque string
}

// ErrKind enumerates the host-parser failure kinds (spec §4.C "Failure
// conditions").
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrHostInvalid
	ErrIPv4Invalid
	ErrIPv4PartOutOfRange
	ErrIPv6Invalid
	ErrIDNAError
)

// ParseError is returned by Parse on failure.
type ParseError struct {
	Kind  ErrKind
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("host: %v: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("host: error %v", e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func fail(kind ErrKind, cause error) (Host, []Diagnostic, error) {
	return Host{}, nil, &ParseError{Kind: kind, Cause: cause}
}

// Diagnostic is a non-fatal observation recorded while parsing a host
// (spec §7, e.g. "non-decimal IPv4 notation").
type Diagnostic struct {
	Code string
	Detail string
}

// forbiddenHostCodePoints is the 18-character set that may not appear
// unescaped in a host (spec §4.C.1 step 2 / GLOSSARY); parseOpaque exempts
// '%', which an opaque host may carry as part of a percent-escape.
var forbiddenHostCodePoints = map[rune]bool{
	0x00: true, 0x09: true, 0x0A: true, 0x0D: true, ' ': true,
	'#': true, '%': true, '/': true, ':': true, '<': true, '>': true, '?': true,
	'@': true, '[': true, '\\': true, ']': true, '^': true, '|': true,
}

// Parse dispatches on the host substring per spec §4.C.1.
func Parse(s string, special bool) (Host, []Diagnostic, error) {
	if s == "" {
		return Host{Kind: KindEmpty}, nil, nil
	}
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return fail(ErrIPv6Invalid, errors.New("unterminated IPv6 literal"))
		}
		groups, err := parseIPv6(s[1 : len(s)-1])
		if err != nil {
			return fail(ErrIPv6Invalid, err)
		}
		return Host{Kind: KindIPv6, IPv6: groups}, nil, nil
	}
	if !special {
		return parseOpaque(s)
	}

	decoded := encodeset.Decode(s)
	ascii, err := idna.ToASCIIHost(decoded)
	if err != nil {
		return fail(ErrIDNAError, err)
	}

	if looksLikeIPv4(ascii) {
		v4, ipErr := parseIPv4(ascii)
		if ipErr != nil {
			if errors.Is(ipErr, errIPv4PartOutOfRange) {
				return fail(ErrIPv4PartOutOfRange, ipErr)
			}
			return fail(ErrIPv4Invalid, ipErr)
		}
		var diags []Diagnostic
		for _, part := range strings.Split(ascii, ".") {
			if len(part) > 1 && part[0] == '0' {
				diags = append(diags, Diagnostic{Code: string(diagnostics.CodeNonDecimalIPv4), Detail: part})
			}
		}
		return Host{Kind: KindIPv4, IPv4: v4}, diags, nil
	}

	var diags []Diagnostic
	for _, r := range ascii {
		if r >= 0x80 || forbiddenHostCodePoints[r] {
			return fail(ErrHostInvalid, fmt.Errorf("forbidden host code point %q", r))
		}
	}
	return Host{Kind: KindDomain, Domain: ascii}, diags, nil
}

func parseOpaque(s string) (Host, []Diagnostic, error) {
	for _, r := range s {
		if forbiddenHostCodePoints[r] && r != '%' {
			return fail(ErrHostInvalid, fmt.Errorf("forbidden host code point %q", r))
		}
	}
	encoded := encodeset.EncodeString(s, &encodeset.C0Control)
	if encoded == "" {
		return Host{Kind: KindEmpty}, nil, nil
	}
	return Host{Kind: KindOpaque, Opaque: encoded}, nil, nil
}

// looksLikeIPv4 reports whether ascii could plausibly be an IPv4 literal:
// after dropping at most one trailing empty label, there are 1-4 labels and
// the last one is a non-empty run of the historical decimal/octal/hex digit
// alphabet. Earlier labels are not inspected here; parseIPv4 rejects them
// if they are not numbers (spec §4.C.1 step 3 sub-bullet, §4.C.2).
func looksLikeIPv4(ascii string) bool {
	parts := strings.Split(ascii, ".")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 || len(parts) > 4 {
		return false
	}
	last := parts[len(parts)-1]
	return last != "" && isIPv4Part(last)
}

func isIPv4Part(s string) bool {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		if s == "" {
			return false
		}
		for _, c := range s {
			if !isHexDigit(byte(c)) {
				return false
			}
		}
		return true
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// errIPv4PartOutOfRange distinguishes a well-formed-but-out-of-range IPv4
// part (e.g. "999" or "192.168.1.999999") from every other ipv4-invalid
// failure, so Parse can surface ErrIPv4PartOutOfRange instead of folding it
// into the generic ErrIPv4Invalid (spec §7).
var errIPv4PartOutOfRange = errors.New("ipv4: part out of range")

// parseIPv4 implements the historical decimal/octal/hex parser (spec §4.C.2).
func parseIPv4(ascii string) (uint32, error) {
	parts := strings.Split(ascii, ".")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	n := len(parts)
	if n == 0 || n > 4 {
		return 0, fmt.Errorf("ipv4: %d parts", n)
	}
	nums := make([]uint64, n)
	for i, p := range parts {
		if p == "" {
			return 0, errors.New("ipv4: empty part")
		}
		base := 10
		digits := p
		switch {
		case strings.HasPrefix(p, "0x") || strings.HasPrefix(p, "0X"):
			base = 16
			digits = p[2:]
		case len(p) > 1 && p[0] == '0':
			base = 8
			digits = p[1:]
		}
		if digits == "" {
			nums[i] = 0
			continue
		}
		v, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return 0, fmt.Errorf("ipv4: invalid part %q: %w", p, err)
		}
		nums[i] = v
	}
	for i := 0; i < n-1; i++ {
		if nums[i] > 0xFF {
			return 0, fmt.Errorf("ipv4: part %d out of range: %w", i, errIPv4PartOutOfRange)
		}
	}
	maxLast := uint64(1) << (8 * (5 - n))
	if nums[n-1] >= maxLast {
		return 0, fmt.Errorf("ipv4: last part out of range: %w", errIPv4PartOutOfRange)
	}
	var result uint64
	for i := 0; i < n-1; i++ {
		result |= nums[i] << (8 * (3 - i))
	}
	result |= nums[n-1]
	return uint32(result), nil
}
