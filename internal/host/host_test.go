package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyHostIsEmptyKind(t *testing.T) {
	h, diags, err := Parse("", true)
	require.NoError(t, err)
	assert.Equal(t, KindEmpty, h.Kind)
	assert.Empty(t, diags)
}

func TestParse_IPv4HistoricalForms(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  uint32
	}{
		{"decimal", "192.168.1.1", 0xC0A80101},
		{"octal first octet", "0300.168.1.1", 0xC0A80101},
		{"hex literal", "0xC0A80101", 0xC0A80101},
		{"shortened three-part", "192.168.257", 0xC0A80101},
		{"single integer", "3232235777", 0xC0A80101},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h, _, err := Parse(tc.input, true)
			require.NoError(t, err)
			assert.Equal(t, KindIPv4, h.Kind)
			assert.Equal(t, tc.want, h.IPv4)
		})
	}
}

func TestParse_IPv4PartOutOfRange(t *testing.T) {
	_, _, err := Parse("999.1.1.1", true)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrIPv4PartOutOfRange, pe.Kind)
}

func TestParse_BracketedIPv6CompressedForm(t *testing.T) {
	h, _, err := Parse("[2001:db8::1]", true)
	require.NoError(t, err)
	assert.Equal(t, KindIPv6, h.Kind)
	assert.Equal(t, [8]uint16{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1}, h.IPv6)
}

func TestParse_BracketedIPv6WithEmbeddedIPv4(t *testing.T) {
	h, _, err := Parse("[::ffff:192.168.1.1]", true)
	require.NoError(t, err)
	assert.Equal(t, KindIPv6, h.Kind)
	assert.Equal(t, uint16(0xffff), h.IPv6[5])
	assert.Equal(t, uint16(0xC0A8), h.IPv6[6])
	assert.Equal(t, uint16(0x0101), h.IPv6[7])
}

func TestParse_UnterminatedIPv6LiteralFails(t *testing.T) {
	_, _, err := Parse("[::1", true)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrIPv6Invalid, pe.Kind)
}

func TestParse_DomainIsLowercasedViaIDNA(t *testing.T) {
	h, _, err := Parse("EXAMPLE.com", true)
	require.NoError(t, err)
	assert.Equal(t, KindDomain, h.Kind)
	assert.Equal(t, "example.com", h.Domain)
}

func TestParse_ForbiddenHostCodePointRejectedOnDomain(t *testing.T) {
	_, _, err := Parse("exa<mple.com", true)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrHostInvalid, pe.Kind)
}

func TestParse_NonSpecialSchemeTreatsHostAsOpaque(t *testing.T) {
	h, _, err := Parse("Ex%41mple", false)
	require.NoError(t, err)
	assert.Equal(t, KindOpaque, h.Kind)
	assert.Equal(t, "Ex%41mple", h.Opaque)
}

func TestParse_OpaqueHostRejectsForbiddenCodePointExceptPercent(t *testing.T) {
	_, _, err := Parse("exa#mple", false)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrHostInvalid, pe.Kind)
}
