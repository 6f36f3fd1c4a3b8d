package punycode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RFC3492SampleStrings(t *testing.T) {
	cases := []struct {
		name  string
		label string
	}{
		{"german", "straße"},
		{"bucher", "bücher"},
		{"japanese greeting", "なぜみんな日本語を話してくれないのか"},
		{"all ascii", "helloworld"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			input := []rune(tc.label)
			encoded, err := Encode(input)
			require.NoError(t, err)

			decoded, err := Decode(encoded)
			require.NoError(t, err)

			assert.Equal(t, input, decoded)
		})
	}
}

func TestEncode_PureASCIILabelEncodesToItselfWithTrailingDelimiter(t *testing.T) {
	encoded, err := Encode([]rune("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc-", encoded)
}

func TestDecode_InvalidNonAlphanumericExtendedCharFails(t *testing.T) {
	_, err := Decode("a-b c")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecode_EmptyExtendedSectionOfPureASCIILabel(t *testing.T) {
	decoded, err := Decode("abc-")
	require.NoError(t, err)
	assert.Equal(t, []rune("abc"), decoded)
}

func TestDecode_NoDelimiterMeansNoBasicSection(t *testing.T) {
	// "fsq" decodes to the single scalar U+4F8B ("例"), with no basic
	// (ASCII) section since there is no '-' delimiter.
	decoded, err := Decode("fsq")
	require.NoError(t, err)
	assert.Equal(t, []rune("例"), decoded)
}

func TestEncode_RejectsNothingButRoundTripsLongLabel(t *testing.T) {
	label := strings.Repeat("日本語", 20)
	input := []rune(label)
	encoded, err := Encode(input)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, input, decoded)
}
