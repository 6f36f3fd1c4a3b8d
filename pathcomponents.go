package weburl

import (
	"strings"

	"github.com/region23/weburl/internal/encodeset"
)

// PathComponents is a random-access, percent-decoded view over a
// hierarchical URL's path segments (spec.md §4.E). It is a snapshot: call
// PathComponents again after any mutation to see the new state.
type PathComponents struct {
	segments []string // percent-decoded
}

// PathComponents returns the path segment view, or ok=false for a
// cannot-be-a-base URL, which has no structured path to index into.
func (u *URL) PathComponents() (PathComponents, bool) {
	if u.cannotBeABase {
		return PathComponents{}, false
	}
	s := u.structure
	raw := u.serialization[s.PortEnd:s.PathEnd]
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return PathComponents{}, true
	}
	parts := strings.Split(raw, "/")
	decoded := make([]string, len(parts))
	for i, p := range parts {
		decoded[i] = encodeset.Decode(p)
	}
	return PathComponents{segments: decoded}, true
}

// Len reports the number of path segments.
func (c PathComponents) Len() int { return len(c.segments) }

// At returns the percent-decoded segment at i.
func (c PathComponents) At(i int) string { return c.segments[i] }

// All returns every percent-decoded segment, in order.
func (c PathComponents) All() []string {
	out := make([]string, len(c.segments))
	copy(out, c.segments)
	return out
}

// AppendPathComponent returns a copy of u with a new segment appended to the path
// (spec.md §4.E).
func (u *URL) AppendPathComponent(segment string) (*URL, error) {
	c, ok := u.PathComponents()
	if !ok {
		return nil, newError(KindPathComponentSeparator, "cannot append a path component on a cannot-be-a-base URL")
	}
	return u.withPathSegments(append(c.All(), segment)), nil
}

// RemoveLastPathComponent returns a copy of u with its final path segment
// removed (spec.md §4.E). Removing the last remaining segment of an
// absolute path leaves a single empty segment, matching "/" for root.
func (u *URL) RemoveLastPathComponent() (*URL, error) {
	c, ok := u.PathComponents()
	if !ok {
		return nil, newError(KindPathComponentSeparator, "cannot remove a path component on a cannot-be-a-base URL")
	}
	if c.Len() == 0 {
		return u.clone(), nil
	}
	rest := c.All()[:c.Len()-1]
	if len(rest) == 0 {
		rest = []string{""}
	}
	return u.withPathSegments(rest), nil
}

// WithPathComponents returns a copy of u with its entire path segment list
// replaced (spec.md §4.E range-replacement).
func (u *URL) WithPathComponents(segments []string) (*URL, error) {
	if u.cannotBeABase {
		return nil, newError(KindPathComponentSeparator, "cannot set path components on a cannot-be-a-base URL")
	}
	return u.withPathSegments(segments), nil
}
