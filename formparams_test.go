package weburl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/region23/weburl"
)

func TestFormParams_DecodesPlusAsSpaceAndPercentEscapes(t *testing.T) {
	u, err := weburl.Parse("http://example.com/?a=1+2&b=c%20d")
	require.NoError(t, err)

	params := u.FormParams()
	require.Len(t, params, 2)
	assert.Equal(t, weburl.FormParam{Key: "a", Value: "1 2"}, params[0])
	assert.Equal(t, weburl.FormParam{Key: "b", Value: "c d"}, params[1])
}

func TestFormParamGet_MatchesByDecodedKey(t *testing.T) {
	u, err := weburl.Parse("http://example.com/?form%61t=json")
	require.NoError(t, err)

	v, ok := u.FormParamGet("format")
	require.True(t, ok)
	assert.Equal(t, "json", v)

	_, ok = u.FormParamGet("missing")
	assert.False(t, ok)
}

func TestWithFormParam_ReplacesAllExistingEntriesForKey(t *testing.T) {
	u, err := weburl.Parse("http://example.com/?a=1&a=2&b=3")
	require.NoError(t, err)

	u2 := u.WithFormParam("a", "9")
	params := u2.FormParams()
	require.Len(t, params, 2)
	assert.Equal(t, weburl.FormParam{Key: "b", Value: "3"}, params[0])
	assert.Equal(t, weburl.FormParam{Key: "a", Value: "9"}, params[1])
}

func TestAppendFormParam_KeepsExistingEntriesForKey(t *testing.T) {
	u, err := weburl.Parse("http://example.com/?a=1")
	require.NoError(t, err)

	u2 := u.AppendFormParam("a", "2")
	params := u2.FormParams()
	require.Len(t, params, 2)
	assert.Equal(t, "1", params[0].Value)
	assert.Equal(t, "2", params[1].Value)
}

func TestWithoutFormParam_RemovesAllEntriesAndCanEmptyQuery(t *testing.T) {
	u, err := weburl.Parse("http://example.com/?a=1&b=2")
	require.NoError(t, err)

	u2 := u.WithoutFormParam("a")
	assert.Equal(t, "b=2", u2.Query())

	u3 := u2.WithoutFormParam("b")
	assert.Equal(t, "http://example.com/", u3.String())
	assert.Equal(t, "", u3.Query())
}

func TestFormParams_SpaceEncodedAsPlusRoundTrips(t *testing.T) {
	u, err := weburl.Parse("http://example.com/")
	require.NoError(t, err)

	u2 := u.WithFormParam("q", "a b")
	assert.Contains(t, u2.Query(), "+")

	v, ok := u2.FormParamGet("q")
	require.True(t, ok)
	assert.Equal(t, "a b", v)
}
