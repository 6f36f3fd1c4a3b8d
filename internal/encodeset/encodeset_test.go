package encodeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncoded_BytesAbove0x80AlwaysEncodedRegardlessOfSet(t *testing.T) {
	var empty Set
	assert.True(t, empty.Encoded(0x80))
	assert.True(t, empty.Encoded(0xFF))
	assert.False(t, empty.Encoded('a'))
}

func TestEncodeString_PathSetEncodesQuestionMarkAndBraces(t *testing.T) {
	got := EncodeString("a?b{c}d", &Path)
	assert.Equal(t, "a%3Fb%7Bc%7Dd", got)
}

func TestEncodeString_UserinfoSetEncodesReservedDelimiters(t *testing.T) {
	got := EncodeString("user:pass@host", &Userinfo)
	assert.Equal(t, "user%3Apass%40host", got)
}

func TestDecode_PercentDecodesValidEscapes(t *testing.T) {
	assert.Equal(t, "a b", Decode("a%20b"))
}

func TestDecode_PassesThroughLonePercentVerbatim(t *testing.T) {
	assert.Equal(t, "100%", Decode("100%"))
	assert.Equal(t, "50% off", Decode("50% off"))
}

func TestDecode_PassesThroughInvalidHexEscapeVerbatim(t *testing.T) {
	assert.Equal(t, "a%zzb", Decode("a%zzb"))
}

func TestEncodeDecode_RoundTripsThroughComponentSet(t *testing.T) {
	original := "hello world/path?query#frag"
	encoded := EncodeString(original, &Component)
	assert.Equal(t, original, Decode(encoded))
}

func TestFormEncode_SpaceBecomesPlusAndReservedBytesPercentEncoded(t *testing.T) {
	got := string(FormEncode(nil, "a b+c=d"))
	assert.Equal(t, "a+b%2Bc%3Dd", got)
}

func TestFormDecode_ReversesFormEncode(t *testing.T) {
	assert.Equal(t, "a b+c=d", FormDecode("a+b%2Bc%3Dd"))
}

func TestFormEncodeDecode_RoundTrips(t *testing.T) {
	original := "name=Jane Doe&note=50% off!"
	encoded := string(FormEncode(nil, original))
	assert.Equal(t, original, FormDecode(encoded))
}
