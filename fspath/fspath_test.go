package fspath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/region23/weburl"
	"github.com/region23/weburl/fspath"
)

func TestFromFilePath_POSIXAbsolutePath(t *testing.T) {
	u, err := fspath.FromFilePath("/usr/local/bin", fspath.POSIX)
	require.NoError(t, err)
	assert.Equal(t, "file:///usr/local/bin", u.String())
}

func TestFromFilePath_POSIXRejectsRelativePath(t *testing.T) {
	_, err := fspath.FromFilePath("usr/local", fspath.POSIX)
	require.Error(t, err)
	assert.True(t, fspath.IsKind(err, fspath.ErrRelativePath))
}

func TestFromFilePath_RejectsEmptyInput(t *testing.T) {
	_, err := fspath.FromFilePath("", fspath.POSIX)
	require.Error(t, err)
	assert.True(t, fspath.IsKind(err, fspath.ErrEmptyInput))
}

func TestFromFilePath_RejectsUpwardsTraversal(t *testing.T) {
	_, err := fspath.FromFilePath("/a/../b", fspath.POSIX)
	require.Error(t, err)
	assert.True(t, fspath.IsKind(err, fspath.ErrUpwardsTraversal))
}

func TestFromFilePath_WindowsDriveLetterPath(t *testing.T) {
	u, err := fspath.FromFilePath(`C:\Users\x`, fspath.Windows)
	require.NoError(t, err)
	assert.Equal(t, "file:///C:/Users/x", u.String())
}

func TestFromFilePath_WindowsUNCPath(t *testing.T) {
	u, err := fspath.FromFilePath(`\\server\share\a`, fspath.Windows)
	require.NoError(t, err)
	assert.Equal(t, "server", u.Hostname())
	assert.Equal(t, "/share/a", u.Path())
}

func TestFromFilePath_RejectsWin32NamespacedPath(t *testing.T) {
	_, err := fspath.FromFilePath(`\\?\C:\a`, fspath.Windows)
	require.Error(t, err)
	assert.True(t, fspath.IsKind(err, fspath.ErrUnsupportedWin32NamespacedPath))
}

func TestToFilePath_POSIXRoundTrip(t *testing.T) {
	u, err := fspath.FromFilePath("/usr/local/bin", fspath.POSIX)
	require.NoError(t, err)

	path, err := fspath.ToFilePath(u, fspath.POSIX)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin", path)
}

func TestToFilePath_WindowsRoundTrip(t *testing.T) {
	u, err := fspath.FromFilePath(`C:\Users\x`, fspath.Windows)
	require.NoError(t, err)

	path, err := fspath.ToFilePath(u, fspath.Windows)
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\x`, path)
}

func TestToFilePath_RejectsNonFileURL(t *testing.T) {
	u, err := weburl.Parse("http://example.com/a")
	require.NoError(t, err)

	_, err = fspath.ToFilePath(u, fspath.POSIX)
	require.Error(t, err)
	assert.True(t, fspath.IsKind(err, fspath.ErrNotAFileURL))
}

func TestToFilePath_POSIXRejectsNonLocalHost(t *testing.T) {
	u, err := weburl.Parse("file://remotehost/a/b")
	require.NoError(t, err)

	_, err = fspath.ToFilePath(u, fspath.POSIX)
	require.Error(t, err)
	assert.True(t, fspath.IsKind(err, fspath.ErrUnsupportedNonLocalFile))
}

func TestToFilePath_WindowsRejectsNotFullyQualified(t *testing.T) {
	u, err := weburl.Parse("file:///a/b")
	require.NoError(t, err)

	_, err = fspath.ToFilePath(u, fspath.Windows)
	require.Error(t, err)
	assert.True(t, fspath.IsKind(err, fspath.ErrWindowsPathNotFullyQualified))
}
