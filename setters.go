package weburl

import (
	"strconv"
	"strings"

	"github.com/region23/weburl/internal/encodeset"
	"github.com/region23/weburl/internal/host"
)

// splice replaces serialization[start:end] with replacement, shifts every
// structure offset at or after end by the resulting length delta, and
// returns the new URL. This is the mechanism every setter in this file
// builds on (spec.md §4.E): each setter computes the byte range its own
// component occupies, re-encodes the new value, and lets splice take care
// of keeping every later component's offset correct.
func (u *URL) splice(start, end int, replacement string) *URL {
	cp := u.clone()
	cp.serialization = u.serialization[:start] + replacement + u.serialization[end:]
	delta := len(replacement) - (end - start)
	shift := func(off int) int {
		if off >= end {
			return off + delta
		}
		return off
	}
	cp.structure.SchemeEnd = shift(u.structure.SchemeEnd)
	cp.structure.UsernameEnd = shift(u.structure.UsernameEnd)
	cp.structure.PasswordEnd = shift(u.structure.PasswordEnd)
	cp.structure.HostEnd = shift(u.structure.HostEnd)
	cp.structure.PortEnd = shift(u.structure.PortEnd)
	cp.structure.PathEnd = shift(u.structure.PathEnd)
	cp.structure.QueryEnd = shift(u.structure.QueryEnd)
	cp.structure.FragmentEnd = shift(u.structure.FragmentEnd)
	return cp
}

// WithScheme returns a copy with a new scheme (spec.md §4.E). Changing
// between a special and a non-special scheme, or away from "file", is
// rejected (KindSchemeChangeForbidden) since that would require re-deriving
// the whole authority/path shape rather than a pure rename.
func (u *URL) WithScheme(scheme string) (*URL, error) {
	scheme = strings.ToLower(scheme)
	if len(scheme) == 0 || !isASCIIAlpha(scheme[0]) {
		return nil, newError(KindInvalidScheme, "scheme must start with a letter")
	}
	for i := 1; i < len(scheme); i++ {
		if !isSchemeChar(scheme[i]) {
			return nil, newError(KindInvalidScheme, "scheme contains an invalid character")
		}
	}
	newKind := schemeKindOf(scheme)
	if newKind.isSpecial() != u.schemeKind.isSpecial() {
		return nil, newError(KindSchemeChangeForbidden, "cannot change between special and non-special schemes")
	}
	if (newKind == SchemeFile) != (u.schemeKind == SchemeFile) {
		return nil, newError(KindSchemeChangeForbidden, "cannot change to or from the file scheme")
	}
	cp := u.splice(0, u.structure.SchemeEnd, scheme)
	cp.schemeKind = newKind
	return cp, nil
}

// WithUsername returns a copy with the username set (spec.md §4.E).
// Credentials are rejected on hosts that cannot carry them (file scheme,
// or no host at all).
func (u *URL) WithUsername(username string) (*URL, error) {
	if err := u.checkCredentialsAllowed(); err != nil {
		return nil, err
	}
	_, password, hasPassword := u.currentCredentials()
	encoded := encodeset.EncodeString(username, &encodeset.Userinfo)
	return u.spliceCredentials(encoded, password, hasPassword), nil
}

// WithPassword returns a copy with the password set (spec.md §4.E).
func (u *URL) WithPassword(password string) (*URL, error) {
	if err := u.checkCredentialsAllowed(); err != nil {
		return nil, err
	}
	username, _, _ := u.currentCredentials()
	if password == "" {
		return u.spliceCredentials(username, "", false), nil
	}
	encoded := encodeset.EncodeString(password, &encodeset.Userinfo)
	return u.spliceCredentials(username, encoded, true), nil
}

// currentCredentials reads back the already-encoded username and password
// substrings straight out of the serialization, so WithUsername/WithPassword
// can rebuild the whole userinfo span without double-encoding the piece
// that isn't changing.
func (u *URL) currentCredentials() (username, password string, hasPassword bool) {
	s := u.structure
	username = u.serialization[s.SchemeEnd+3 : s.UsernameEnd]
	hasPassword = s.PasswordEnd > s.UsernameEnd
	if hasPassword {
		password = u.serialization[s.UsernameEnd+1 : s.PasswordEnd]
	}
	return username, password, hasPassword
}

// spliceCredentials rewrites the whole "username[:password]@" span (already
// SchemeEnd+3 to SchemeEnd+3 when there is none) with freshly assembled
// values, adding or dropping the "@" delimiter as needed. splice's generic
// offset shift can't infer this span's internal shape, so UsernameEnd and
// PasswordEnd are fixed up explicitly afterward.
func (u *URL) spliceCredentials(username, password string, hasPassword bool) *URL {
	s := u.structure
	end := s.SchemeEnd + 3
	if s.PasswordEnd > s.SchemeEnd+3 {
		end = s.PasswordEnd + 1
	}

	var b strings.Builder
	b.WriteString(username)
	if hasPassword {
		b.WriteByte(':')
		b.WriteString(password)
	}
	if b.Len() > 0 {
		b.WriteByte('@')
	}

	cp := u.splice(s.SchemeEnd+3, end, b.String())
	cp.structure.UsernameEnd = s.SchemeEnd + 3 + len(username)
	cp.structure.PasswordEnd = cp.structure.UsernameEnd
	if hasPassword {
		cp.structure.PasswordEnd += 1 + len(password)
	}
	return cp
}

func (u *URL) checkCredentialsAllowed() error {
	if u.schemeKind == SchemeFile || u.structure.HostKind == HostKindNone || u.structure.HostKind == HostKindEmpty {
		return newError(KindCredentialsForbidden, "this URL's host cannot carry credentials")
	}
	return nil
}

// WithHostname returns a copy with the host replaced, re-running the host
// parser (spec.md §4.E). The port, if any, is preserved.
func (u *URL) WithHostname(hostname string) (*URL, error) {
	s := u.structure
	if s.HostEnd < s.SchemeEnd+3 {
		return nil, newError(KindHostInvalid, "this URL has no authority to host-set")
	}
	decoded := encodeset.Decode(hostname)
	h, _, err := host.Parse(decoded, u.schemeKind.isSpecial())
	if err != nil {
		return nil, wrapHostError(err)
	}
	if u.schemeKind.isSpecial() && (h.Kind == host.KindNone || h.Kind == host.KindEmpty) {
		return nil, newError(KindHostMissing, "special scheme requires a non-empty host")
	}
	cp := u.splice(hostSpanStart(s), s.HostEnd, h.String())
	cp.hostValue = h
	cp.structure.HostKind = hostKindOf(h.Kind)
	return cp, nil
}

// hostSpanStart locates where the host substring begins: right after the
// userinfo "@" when credentials are present, otherwise right after "//".
func hostSpanStart(s Structure) int {
	if s.PasswordEnd > s.SchemeEnd+3 {
		return s.PasswordEnd + 1
	}
	return s.SchemeEnd + 3
}

// WithPort returns a copy with the port set, or removed when port == "".
func (u *URL) WithPort(port string) (*URL, error) {
	s := u.structure
	if s.HostKind == HostKindNone || s.HostKind == HostKindEmpty || u.schemeKind == SchemeFile {
		return nil, newError(KindPortInvalid, "this URL's host cannot carry a port")
	}
	if port == "" {
		return u.splice(s.HostEnd, s.PortEnd, ""), nil
	}
	for i := 0; i < len(port); i++ {
		if !isASCIIDigit(port[i]) {
			return nil, newError(KindPortInvalid, "port contains a non-digit")
		}
	}
	v, err := strconv.Atoi(port)
	if err != nil || v > 65535 {
		return nil, newError(KindPortOutOfRange, "port exceeds 65535")
	}
	if def, ok := u.schemeKind.defaultPort(); ok && v == def {
		return u.splice(s.HostEnd, s.PortEnd, ""), nil
	}
	cp := u.splice(s.HostEnd, s.PortEnd, ":"+strconv.Itoa(v))
	// With no previous port, splice also shifts HostEnd (== PortEnd).
	cp.structure.HostEnd = s.HostEnd
	return cp, nil
}

// WithPath returns a copy with the path replaced wholesale. path must
// include its leading '/' for hierarchical URLs; it is rejected on
// cannot-be-a-base URLs, which have no structured path to assign into.
func (u *URL) WithPath(path string) (*URL, error) {
	if u.cannotBeABase {
		return nil, newError(KindPathComponentSeparator, "cannot set a structured path on a cannot-be-a-base URL")
	}
	s := u.structure
	segments := splitPathSegments(path, u.schemeKind.isSpecial())
	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(encodeset.EncodeString(seg, &encodeset.Path))
	}
	cp := u.splice(s.PortEnd, s.PathEnd, b.String())
	// Offsets before the path are unchanged; splice shifts those equal to
	// PortEnd when the URL had no path.
	st := s
	st.PathEnd, st.QueryEnd, st.FragmentEnd = cp.structure.PathEnd, cp.structure.QueryEnd, cp.structure.FragmentEnd
	cp.structure = st
	return cp, nil
}

// withPathSegments splices an already-decoded segment list directly,
// percent-encoding each segment exactly once under the path set (plus '/',
// written as %2F so a segment stays one segment) with no dot-segment
// interpretation — the mechanism PathComponents mutators use, as opposed to
// WithPath's raw-string re-parse.
func (u *URL) withPathSegments(segments []string) *URL {
	s := u.structure
	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(encodeset.EncodeString(seg, &encodeset.Path), "/", "%2F"))
	}
	cp := u.splice(s.PortEnd, s.PathEnd, b.String())
	// Offsets before the path are unchanged; splice shifts those equal to
	// PortEnd when the URL had no path.
	st := s
	st.PathEnd, st.QueryEnd, st.FragmentEnd = cp.structure.PathEnd, cp.structure.QueryEnd, cp.structure.FragmentEnd
	cp.structure = st
	return cp
}

// WithQuery returns a copy with the query set, or removed when query == ""
// and removed is true.
func (u *URL) WithQuery(query string, removed bool) *URL {
	s := u.structure
	if removed {
		return u.splice(s.PathEnd, s.QueryEnd, "")
	}
	set := &encodeset.QueryNonSpecial
	if u.IsSpecial() {
		set = &encodeset.QuerySpecial
	}
	cp := u.splice(s.PathEnd, s.QueryEnd, "?"+encodeset.EncodeString(query, set))
	// Offsets through PathEnd are unchanged; splice shifts those equal to
	// PathEnd when the URL had no query.
	st := s
	st.QueryEnd, st.FragmentEnd = cp.structure.QueryEnd, cp.structure.FragmentEnd
	cp.structure = st
	return cp
}

// WithFragment returns a copy with the fragment set, or removed when
// fragment == "" and removed is true.
func (u *URL) WithFragment(fragment string, removed bool) *URL {
	s := u.structure
	if removed {
		return u.splice(s.QueryEnd, s.FragmentEnd, "")
	}
	cp := u.splice(s.QueryEnd, s.FragmentEnd, "#"+encodeset.EncodeString(fragment, &encodeset.Fragment))
	// Offsets through QueryEnd are unchanged; splice shifts those equal to
	// QueryEnd when the URL had no fragment.
	st := s
	st.FragmentEnd = cp.structure.FragmentEnd
	cp.structure = st
	return cp
}

// WithHost is the combined-form convenience setter for Host() (spec.md §6's
// "host (hostname+port)"): it splits host on the bracket-aware rule
// parseHostAndPort uses during parsing, then applies WithHostname and, if a
// port was present, WithPort.
func (u *URL) WithHost(host string) (*URL, error) {
	hostPart := host
	portPart := ""
	hasPort := false
	if strings.HasPrefix(host, "[") {
		if closeIdx := strings.IndexByte(host, ']'); closeIdx >= 0 {
			hostPart = host[:closeIdx+1]
			if closeIdx+1 < len(host) && host[closeIdx+1] == ':' {
				portPart = host[closeIdx+2:]
				hasPort = true
			}
		}
	} else if i := strings.LastIndexByte(host, ':'); i >= 0 {
		hostPart, portPart = host[:i], host[i+1:]
		hasPort = true
	}

	cp, err := u.WithHostname(hostPart)
	if err != nil {
		return nil, err
	}
	if !hasPort {
		return cp, nil
	}
	return cp.WithPort(portPart)
}
