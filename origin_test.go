package weburl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/region23/weburl"
)

func TestOriginOf_TupleOriginIgnoresPathQueryFragment(t *testing.T) {
	a, err := weburl.Parse("https://example.com/a?x=1#frag")
	require.NoError(t, err)
	b, err := weburl.Parse("https://example.com/b")
	require.NoError(t, err)

	oa := weburl.OriginOf(a)
	ob := weburl.OriginOf(b)
	assert.False(t, oa.IsOpaque())
	assert.True(t, oa.Equal(ob))
}

func TestOriginOf_DifferentPortsAreDifferentOrigins(t *testing.T) {
	a, err := weburl.Parse("https://example.com:8443/a")
	require.NoError(t, err)
	b, err := weburl.Parse("https://example.com/a")
	require.NoError(t, err)

	assert.False(t, weburl.OriginOf(a).Equal(weburl.OriginOf(b)))
}

func TestOriginOf_OpaqueOriginsAreNeverEqualEvenToThemselves(t *testing.T) {
	u, err := weburl.Parse("mailto:mike@example.com")
	require.NoError(t, err)

	o := weburl.OriginOf(u)
	assert.True(t, o.IsOpaque())
	assert.False(t, o.Equal(o))

	_, ok := o.Key()
	assert.False(t, ok)
}

func TestOriginOf_BlobURLUnwrapsInnerTupleOrigin(t *testing.T) {
	u, err := weburl.Parse("blob:https://example.com/uuid")
	require.NoError(t, err)
	inner, err := weburl.Parse("https://example.com/uuid")
	require.NoError(t, err)

	o := weburl.OriginOf(u)
	assert.False(t, o.IsOpaque())
	assert.True(t, o.Equal(weburl.OriginOf(inner)))
	assert.Equal(t, "example.com", o.Host())
}

func TestOriginOf_BlobURLWithOpaqueInnerOriginStaysOpaque(t *testing.T) {
	u, err := weburl.Parse("blob:mailto:mike@example.com")
	require.NoError(t, err)

	assert.True(t, weburl.OriginOf(u).IsOpaque())
}

func TestOriginOf_FileURLIsOpaque(t *testing.T) {
	u, err := weburl.Parse("file:///C:/a")
	require.NoError(t, err)

	assert.True(t, weburl.OriginOf(u).IsOpaque())
}

func TestOrigin_KeyIsStableForEqualOrigins(t *testing.T) {
	a, err := weburl.Parse("https://example.com/a")
	require.NoError(t, err)
	b, err := weburl.Parse("https://example.com/b?q=1")
	require.NoError(t, err)

	ka, ok := weburl.OriginOf(a).Key()
	require.True(t, ok)
	kb, ok := weburl.OriginOf(b).Key()
	require.True(t, ok)
	assert.Equal(t, ka, kb)
}
