package idna_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xnet "golang.org/x/net/idna"

	"github.com/region23/weburl/internal/idna"
)

// externalOracle is golang.org/x/net/idna's prebuilt Lookup profile: the
// same package region23-urlparser originally called directly
// (idna.ToUnicode), kept here not as this module's production IDNA
// implementation (spec §4.D mandates our own compact database) but as a
// conformance oracle to cross-check ProfileHost against on domains within
// both implementations' well-understood overlap: plain ASCII, where
// mapping is case-folding and nothing else, and neither implementation's
// table coverage matters.
var externalOracle = xnet.Lookup

func TestExternalOracle_AgreesOnASCIIDomains(t *testing.T) {
	domains := []string{
		"example.com",
		"EXAMPLE.COM",
		"Sub.Example.Com",
		"a-b-c.example",
		"xn--fa-hia.example", // already-Punycode label, should round-trip
	}

	for _, d := range domains {
		d := d
		t.Run(d, func(t *testing.T) {
			want, err := externalOracle.ToASCII(d)
			require.NoError(t, err)

			got, err := idna.ProfileHost.ToASCII(d)
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}
}

func TestExternalOracle_AgreesOnToUnicodeRoundTrip(t *testing.T) {
	domains := []string{
		"example.com",
		"xn--fa-hia.example",
	}

	for _, d := range domains {
		d := d
		t.Run(d, func(t *testing.T) {
			want, err := externalOracle.ToUnicode(d)
			require.NoError(t, err)

			got, err := idna.ProfileHost.ToUnicode(d)
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}
}
