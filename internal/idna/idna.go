// Package idna implements the UTS#46 mapping/normalize/Punycode/validate
// pipeline (spec §4.D/§4.D.1/§4.D.2). The pipeline shape — map, normalize,
// split into labels, decode/encode Punycode per label, validate, reassemble
// — is grounded on golang.org/x/text/internal/export/idna's `process`,
// `validateAndMap`, and `validateLabel` (see
// other_examples/ec0415f3_golang-text__internal-export-idna-idna.go.go in
// the retrieval pack), reimplemented against this module's own compact
// codepoint database (internal/codepoint) instead of a linked trie, and
// using golang.org/x/text/unicode/norm directly for NFC — the same
// dependency the grounding example uses, not a stdlib fallback.
package idna

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/region23/weburl/internal/codepoint"
	"github.com/region23/weburl/internal/punycode"
)

const acePrefix = "xn--"

// Options configures one run of the pipeline (spec §4.C.1 step 3 lists the
// options the URL host parser always uses; Profile below packages other
// combinations for direct callers).
type Options struct {
	UseSTD3         bool
	Transitional    bool
	CheckHyphens    bool
	CheckBidi       bool
	CheckJoiners    bool
	VerifyDNSLength bool
}

// Profile is a named, reusable Options value.
type Profile struct {
	Options
}

var (
	// ProfileHost is the profile the URL host parser uses (spec §4.C.1
	// step 3): lenient, no DNS length check, but Bidi/joiner validated.
	ProfileHost = Profile{Options{
		UseSTD3:         false,
		Transitional:    false,
		CheckHyphens:    false,
		CheckBidi:       true,
		CheckJoiners:    true,
		VerifyDNSLength: false,
	}}

	// ProfileRegistration is a stricter profile for direct callers who want
	// UTS#46 "ValidateForRegistration" semantics. spec §9's Open Question
	// about the checkHyphens=false / useStd3=true interaction is resolved
	// by *not* offering that particular combination — see SPEC_FULL.md §10.
	ProfileRegistration = Profile{Options{
		UseSTD3:         true,
		Transitional:    false,
		CheckHyphens:    true,
		CheckBidi:       true,
		CheckJoiners:    true,
		VerifyDNSLength: true,
	}}
)

// SubCause enumerates the idna-error sub-causes (spec §7).
type SubCause string

const (
	CauseMappingDisallowed    SubCause = "mapping-disallowed"
	CauseValidationBidi       SubCause = "validation-bidi"
	CauseValidationJoiner     SubCause = "validation-joiner"
	CauseValidationHyphen     SubCause = "validation-hyphen"
	CauseLeadingCombining     SubCause = "validation-leading-combining"
	CausePunycodeDecode       SubCause = "punycode-decode"
	CausePunycodeEncode       SubCause = "punycode-encode"
	CauseDNSLength            SubCause = "dns-length"
)

// Error is the idna-error failure kind, carrying the offending label and a
// sub-cause (spec §7).
type Error struct {
	Label string
	Cause SubCause
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("idna: label %q: %s: %v", e.Label, e.Cause, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(label string, cause SubCause, err error) error {
	return &Error{Label: label, Cause: cause, Err: err}
}

// ToASCIIHost runs ProfileHost.ToASCII — the entry point internal/host uses
// for the special-scheme domain branch (spec §4.C.1 step 3).
func ToASCIIHost(s string) (string, error) {
	return ProfileHost.ToASCII(s)
}

// ToUnicode converts a domain to its Unicode form (spec §4.D "toUnicode").
func (p Profile) ToUnicode(s string) (string, error) {
	return p.process(s, false)
}

// ToASCII converts a domain to its ASCII/Punycode form (spec §4.D "toASCII").
func (p Profile) ToASCII(s string) (string, error) {
	return p.process(s, true)
}

func (p Profile) process(s string, toASCII bool) (string, error) {
	mapped, err := p.mapAndNormalize(s)
	if err != nil {
		return "", err
	}

	trailingDot := strings.HasSuffix(mapped, ".")
	var rawLabels []string
	if trailingDot {
		rawLabels = strings.Split(mapped[:len(mapped)-1], ".")
	} else {
		rawLabels = strings.Split(mapped, ".")
	}

	labels := make([]string, len(rawLabels))
	for i, raw := range rawLabels {
		label := raw
		if strings.HasPrefix(strings.ToLower(label), acePrefix) {
			decoded, err := punycode.Decode(label[len(acePrefix):])
			if err != nil {
				return "", fail(label, CausePunycodeDecode, err)
			}
			label = string(decoded)
			label = norm.NFC.String(label)
		}
		if err := p.validateLabel(label); err != nil {
			return "", err
		}
		labels[i] = label
	}

	if p.CheckBidi {
		if err := p.validateBidi(labels); err != nil {
			return "", err
		}
	}

	if toASCII {
		for i, label := range labels {
			if !isASCII(label) {
				encoded, err := punycode.Encode([]rune(label))
				if err != nil {
					return "", fail(label, CausePunycodeEncode, err)
				}
				labels[i] = acePrefix + encoded
			}
			if p.VerifyDNSLength && (len(labels[i]) == 0 || len(labels[i]) > 63) {
				return "", fail(labels[i], CauseDNSLength, fmt.Errorf("label length %d", len(labels[i])))
			}
		}
	}

	result := strings.Join(labels, ".")
	if trailingDot {
		result += "."
	}
	if toASCII && p.VerifyDNSLength {
		n := len(result)
		if n > 0 && result[n-1] == '.' {
			n--
		}
		if n == 0 || n > 253 {
			return "", fail(result, CauseDNSLength, fmt.Errorf("domain length %d", n))
		}
	}
	return result, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// mapAndNormalize implements spec §4.D step 1 (mapping) then step 2 (NFC),
// mirroring validateAndMap/normalize in the grounding example.
func (p Profile) mapAndNormalize(s string) (string, error) {
	var b strings.Builder
	for _, r := range s {
		entry := codepoint.LookupMapping(r)
		switch entry.Status {
		case codepoint.StatusValid:
			b.WriteRune(r)
		case codepoint.StatusDisallowedSTD3Valid:
			if p.UseSTD3 {
				return "", fail(string(r), CauseMappingDisallowed, fmt.Errorf("disallowed_STD3_valid rune %U", r))
			}
			b.WriteRune(r)
		case codepoint.StatusIgnored:
			// dropped
		case codepoint.StatusMapped:
			for _, m := range entry.Map(r) {
				b.WriteRune(m)
			}
		case codepoint.StatusDisallowedSTD3Mapped:
			if p.UseSTD3 {
				return "", fail(string(r), CauseMappingDisallowed, fmt.Errorf("disallowed_STD3_mapped rune %U", r))
			}
			for _, m := range entry.Map(r) {
				b.WriteRune(m)
			}
		case codepoint.StatusDeviation:
			if p.Transitional {
				for _, m := range entry.Map(r) {
					b.WriteRune(m)
				}
			} else {
				b.WriteRune(r)
			}
		case codepoint.StatusDisallowed:
			return "", fail(string(r), CauseMappingDisallowed, fmt.Errorf("disallowed rune %U", r))
		default:
			return "", fail(string(r), CauseMappingDisallowed, fmt.Errorf("unknown status for rune %U", r))
		}
	}
	return norm.NFC.String(b.String()), nil
}
