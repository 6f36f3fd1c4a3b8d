// Package fspath converts between platform filesystem paths and file: URLs
// (spec.md §6's "filesystem path conversion", a thin consumer of
// weburl.URL). It does not touch the filesystem itself — only the string
// and URL-record forms.
package fspath

import (
	"fmt"
	"strings"

	"github.com/region23/weburl"
)

// Format selects which platform path grammar FromFilePath/ToFilePath use.
type Format int

const (
	POSIX Format = iota
	Windows
)

// ErrKind is the closed failure-kind enumeration for this package
// (spec.md §6), split into the FromFilePath set and the ToFilePath set.
type ErrKind string

const (
	ErrEmptyInput                     ErrKind = "empty-input"
	ErrNullBytes                      ErrKind = "null-bytes"
	ErrRelativePath                   ErrKind = "relative-path"
	ErrUpwardsTraversal               ErrKind = "upwards-traversal"
	ErrInvalidHostname                ErrKind = "invalid-hostname"
	ErrInvalidPath                    ErrKind = "invalid-path"
	ErrUnsupportedWin32NamespacedPath ErrKind = "unsupported-win32-namespaced-path"

	ErrNotAFileURL                   ErrKind = "not-a-file-url"
	ErrEncodedNullBytes              ErrKind = "encoded-null-bytes"
	ErrEncodedPathSeparator          ErrKind = "encoded-path-separator"
	ErrUnsupportedNonLocalFile       ErrKind = "unsupported-non-local-file"
	ErrUnsupportedHostname           ErrKind = "unsupported-hostname"
	ErrWindowsPathNotFullyQualified  ErrKind = "windows-path-not-fully-qualified"
)

// Error wraps one ErrKind with enough detail to diagnose it.
type Error struct {
	Kind   ErrKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("fspath: %s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("fspath: %s", e.Kind)
}

func fail(kind ErrKind, detail string) error {
	return &Error{Kind: kind, Detail: detail}
}

// IsKind reports whether err is an *Error with the given Kind.
func IsKind(err error, kind ErrKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// FromFilePath builds a file: URL from a platform-native absolute path
// (spec.md §6). Non-absolute paths, paths containing NUL bytes or "..",
// or Windows device/UNC-namespace paths ("\\?\...", "\\.\...") are
// rejected rather than silently accepted.
func FromFilePath(path string, format Format) (*weburl.URL, error) {
	if path == "" {
		return nil, fail(ErrEmptyInput, "")
	}
	if strings.ContainsRune(path, 0) {
		return nil, fail(ErrNullBytes, "")
	}

	switch format {
	case Windows:
		return fromWindowsPath(path)
	default:
		return fromPOSIXPath(path)
	}
}

func fromPOSIXPath(path string) (*weburl.URL, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fail(ErrRelativePath, path)
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if err := checkNoUpwardsTraversal(segments); err != nil {
		return nil, err
	}
	u, err := weburl.Parse("file://" + encodeSegments(segments, "/"))
	if err != nil {
		return nil, fail(ErrInvalidPath, err.Error())
	}
	return u, nil
}

func fromWindowsPath(path string) (*weburl.URL, error) {
	if strings.HasPrefix(path, `\\?\`) || strings.HasPrefix(path, `\\.\`) {
		return nil, fail(ErrUnsupportedWin32NamespacedPath, path)
	}
	normalized := strings.ReplaceAll(path, `\`, "/")

	if strings.HasPrefix(normalized, "//") {
		// UNC path: //server/share/rest -> file://server/share/rest
		rest := strings.TrimPrefix(normalized, "//")
		parts := strings.SplitN(rest, "/", 2)
		host := parts[0]
		if host == "" {
			return nil, fail(ErrInvalidHostname, path)
		}
		var tail string
		if len(parts) == 2 {
			tail = parts[1]
		}
		segments := strings.Split(strings.Trim(tail, "/"), "/")
		if tail == "" {
			segments = nil
		}
		if err := checkNoUpwardsTraversal(segments); err != nil {
			return nil, err
		}
		u, err := weburl.Parse("file://" + host + encodeSegments(segments, "/"))
		if err != nil {
			if weburl.IsKind(err, weburl.KindHostInvalid) || weburl.IsKind(err, weburl.KindIDNAError) {
				return nil, fail(ErrInvalidHostname, host)
			}
			return nil, fail(ErrInvalidPath, err.Error())
		}
		return u, nil
	}

	if len(normalized) < 2 || !isDriveLetter(normalized[0]) || normalized[1] != ':' {
		return nil, fail(ErrRelativePath, path)
	}
	rest := normalized[2:]
	segments := strings.Split(strings.Trim(rest, "/"), "/")
	if rest == "" || rest == "/" {
		segments = nil
	}
	if err := checkNoUpwardsTraversal(segments); err != nil {
		return nil, err
	}
	drive := normalized[:2]
	all := append([]string{drive}, segments...)
	u, err := weburl.Parse("file://" + encodeSegments(all, "/"))
	if err != nil {
		return nil, fail(ErrInvalidPath, err.Error())
	}
	return u, nil
}

func checkNoUpwardsTraversal(segments []string) error {
	for _, seg := range segments {
		if seg == ".." {
			return fail(ErrUpwardsTraversal, strings.Join(segments, "/"))
		}
	}
	return nil
}

func encodeSegments(segments []string, sep string) string {
	if len(segments) == 0 {
		return "/"
	}
	return sep + strings.Join(segments, sep)
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// ToFilePath converts a file: URL back into a platform-native path
// (spec.md §6). Hosts other than "" or "localhost" are rejected for
// POSIX; for Windows they are treated as a UNC share.
func ToFilePath(u *weburl.URL, format Format) (string, error) {
	if u.Scheme() != "file" {
		return "", fail(ErrNotAFileURL, u.Scheme())
	}
	comps, ok := u.PathComponents()
	if !ok {
		return "", fail(ErrNotAFileURL, "cannot-be-a-base URL")
	}

	sep := "/"
	if format == Windows {
		sep = `\`
	}
	for _, seg := range comps.All() {
		if strings.ContainsRune(seg, 0) {
			return "", fail(ErrEncodedNullBytes, seg)
		}
		if strings.ContainsAny(seg, "/") || (format == Windows && strings.ContainsAny(seg, `\`)) {
			return "", fail(ErrEncodedPathSeparator, seg)
		}
	}

	host := u.Hostname()
	switch format {
	case Windows:
		if host != "" && host != "localhost" {
			if u.HostKind() != weburl.HostKindDomain {
				return "", fail(ErrUnsupportedHostname, host)
			}
			segs := comps.All()
			return `\\` + host + `\` + strings.Join(segs, sep), nil
		}
		segs := comps.All()
		if len(segs) == 0 || !isWindowsDriveSegment(segs[0]) {
			return "", fail(ErrWindowsPathNotFullyQualified, u.Path())
		}
		drive := segs[0]
		rest := segs[1:]
		path := drive + `\` + strings.Join(rest, sep)
		return path, nil
	default:
		if host != "" && host != "localhost" {
			return "", fail(ErrUnsupportedNonLocalFile, host)
		}
		return "/" + strings.Join(comps.All(), sep), nil
	}
}

func isWindowsDriveSegment(seg string) bool {
	return len(seg) == 2 && isDriveLetter(seg[0]) && seg[1] == ':'
}
