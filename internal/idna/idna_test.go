package idna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToASCIIHost_AlreadyASCII(t *testing.T) {
	out, err := ToASCIIHost("example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", out)
}

func TestToASCIIHost_UppercaseFolds(t *testing.T) {
	out, err := ToASCIIHost("EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "example.com", out)
}

func TestToASCIIHost_NBSPMapsToSpaceAndPassesIDNA(t *testing.T) {
	// U+00A0 maps to space (StatusDisallowedSTD3Mapped, UseSTD3=false so it
	// is allowed through mapping); the resulting space is left for the host
	// parser's forbidden-host-code-point check, not idna, to reject.
	out, err := ToASCIIHost("a b")
	require.NoError(t, err)
	assert.Equal(t, "a b", out)
}

func TestToASCIIHost_TrailingDotPreserved(t *testing.T) {
	out, err := ToASCIIHost("example.com.")
	require.NoError(t, err)
	assert.Equal(t, "example.com.", out)
}

func TestToASCIIHost_NonASCIIEncodesToPunycode(t *testing.T) {
	// U+05D0..U+05EA (Hebrew) are seeded as valid + Bidi R_AL.
	out, err := ToASCIIHost(string(rune(0x05D0)))
	require.NoError(t, err)
	assert.Equal(t, "xn--", out[:4])
}

func TestToASCIIHost_RoundTripsThroughToUnicode(t *testing.T) {
	ascii, err := ToASCIIHost(string(rune(0x05D0)))
	require.NoError(t, err)
	unicodeForm, err := ProfileHost.ToUnicode(ascii)
	require.NoError(t, err)
	assert.Equal(t, string(rune(0x05D0)), unicodeForm)
}

func TestToASCIIHost_DisallowedCodePointRejected(t *testing.T) {
	_, err := ToASCIIHost(string(rune(0x0080)))
	require.Error(t, err)
	var idnaErr *Error
	require.ErrorAs(t, err, &idnaErr)
	assert.Equal(t, CauseMappingDisallowed, idnaErr.Cause)
}

func TestToASCIIHost_CapitalSharpSMapsToSS(t *testing.T) {
	out, err := ToASCIIHost(string(rune(0x1E9E)))
	require.NoError(t, err)
	assert.Equal(t, "ss", out)
}

func TestToASCIIHost_DeviationSharpSPreservedNonTransitional(t *testing.T) {
	out, err := ProfileHost.ToASCII(string(rune(0x00DF)))
	require.NoError(t, err)
	assert.Equal(t, "xn--", out[:4])
}

func TestToASCIIHost_EmptyLabelRejected(t *testing.T) {
	_, err := ToASCIIHost("a..b")
	require.Error(t, err)
}

func TestValidateJoiners_ZWNJAfterVirama(t *testing.T) {
	// Devanagari virama (0x094D) followed by ZWNJ is permitted regardless
	// of joining-type context (RFC 5892 Appendix A.1).
	label := string([]rune{0x0915, 0x094D, 0x200C, 0x0916})
	err := validateJoiners(label, []rune(label))
	assert.NoError(t, err)
}

func TestValidateJoiners_BareZWJRejected(t *testing.T) {
	label := string([]rune{'a', 0x200D, 'b'})
	err := validateJoiners(label, []rune(label))
	assert.Error(t, err)
}

func TestValidateJoiners_ZWNJWithDJoiningContext(t *testing.T) {
	// Arabic BEH (dual-joining, 0x0628) on both sides of ZWNJ satisfies the
	// joining-context exception (RFC 5892 Appendix A.1).
	label := string([]rune{0x0628, 0x200C, 0x0628})
	err := validateJoiners(label, []rune(label))
	assert.NoError(t, err)
}

func TestValidateBidi_RTLLabelWithENOnlyAccepted(t *testing.T) {
	// Hebrew R_AL start followed by an EN digit: rule 4 only rejects EN
	// mixed with AN, and the seed data has no AN code point, so an EN-only
	// RTL label is checked directly against validateRTLLabel.
	runes := []rune{0x05D0, '1'} // '1' is seeded BidiEN
	err := validateRTLLabel(runes)
	assert.NoError(t, err) // only EN present, not mixed with AN: allowed.
}

func TestValidateBidi_LTRLabelWithRTLCharRejected(t *testing.T) {
	err := validateLTRLabel([]rune{'a', 0x05D0})
	assert.Error(t, err)
}
