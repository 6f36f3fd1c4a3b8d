package weburl

import (
	"strconv"
	"strings"

	"github.com/region23/weburl/internal/diagnostics"
	"github.com/region23/weburl/internal/encodeset"
	"github.com/region23/weburl/internal/host"
)

// parser holds the mutable state threaded through the state-machine
// functions below (spec.md §4.C). Each state function named after the
// spec's own state names consumes some input, writes into buf/structure,
// and returns an error on failure; finish builds the URL from that state.
// The original teacher parser collapsed all of this
// into five regexes run once — here the same overall shape (split into
// scheme/authority/path/query/fragment, then subdivide authority) is
// generalized into the full WHATWG sequence of states.
type parser struct {
	input string
	base  *URL
	diags *diagnostics.Sink

	schemeKind SchemeKind
	buf        strings.Builder
	structure  Structure
	hostVal    host.Host
	cannotBeABase bool
	hasOpaquePath bool
}

// Parse parses rawInput into a URL, optionally relative to base (spec.md
// §4.C). It returns a *ParseError (wrapped with github.com/pkg/errors) on
// failure.
func Parse(rawInput string, opts ...ParseOption) (*URL, error) {
	cfg := newConfig(opts)
	p := &parser{base: cfg.base, diags: diagnostics.NewSink(cfg.logger)}
	p.input = preprocess(rawInput, p.diags)

	if err := p.run(); err != nil {
		return nil, err
	}
	return p.finish(), nil
}

// preprocess strips leading/trailing C0-control-or-space and removes every
// interior ASCII tab/CR/LF (spec.md §4.C "Tab/newline handling").
func preprocess(s string, diags *diagnostics.Sink) string {
	start, end := 0, len(s)
	for start < end && s[start] <= 0x20 {
		start++
	}
	for end > start && s[end-1] <= 0x20 {
		end--
	}
	s = s[start:end]

	hasTabNewline := false
	for i := 0; i < len(s); i++ {
		if s[i] == 0x09 || s[i] == 0x0A || s[i] == 0x0D {
			hasTabNewline = true
			break
		}
	}
	if !hasTabNewline {
		return s
	}
	diags.Record(diagnostics.CodeTabOrNewlineRemoved, "removed interior ASCII tab/CR/LF")
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x09 || s[i] == 0x0A || s[i] == 0x0D {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// run drives the state machine's top level: scheme-start, no-scheme,
// relative, and the special/file branches that follow from it.
func (p *parser) run() error {
	if scheme, rest, ok := splitScheme(p.input); ok {
		return p.afterScheme(scheme, rest)
	}
	return p.stateNoScheme()
}

// splitScheme implements scheme-start/scheme: a leading ALPHA followed by
// ALPHA/DIGIT/+/-/. run, terminated by ':'.
func splitScheme(s string) (scheme, rest string, ok bool) {
	if len(s) == 0 || !isASCIIAlpha(s[0]) {
		return "", s, false
	}
	i := 1
	for i < len(s) && isSchemeChar(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ':' {
		return "", s, false
	}
	return strings.ToLower(s[:i]), s[i+1:], true
}

func isASCIIAlpha(b byte) bool { return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' }
func isASCIIDigit(b byte) bool { return '0' <= b && b <= '9' }
func isSchemeChar(b byte) bool {
	return isASCIIAlpha(b) || isASCIIDigit(b) || b == '+' || b == '-' || b == '.'
}

// afterScheme implements the scheme state's dispatch once ':' is consumed
// (spec.md §4.C "scheme" bullet).
func (p *parser) afterScheme(scheme, rest string) error {
	p.schemeKind = schemeKindOf(scheme)
	p.writeScheme(scheme)

	if p.schemeKind == SchemeFile {
		return p.stateFile(rest)
	}
	if p.schemeKind.isSpecial() {
		if p.base != nil && p.base.Scheme() == scheme {
			return p.stateSpecialRelativeOrAuthority(rest)
		}
		return p.stateSpecialAuthoritySlashes(rest)
	}
	if strings.HasPrefix(rest, "/") {
		return p.statePathOrAuthority(rest[1:])
	}
	p.cannotBeABase = true
	p.markNoAuthority()
	return p.stateOpaquePath(rest)
}

// markNoAuthority records that this URL has no userinfo/host/port component
// at all: every offset collapses to the position right after the scheme's
// ':' (spec.md §3.1's "absence via equal adjacent offsets" convention).
func (p *parser) markNoAuthority() {
	end := p.buf.Len()
	p.structure.UsernameEnd = end
	p.structure.PasswordEnd = end
	p.structure.HostKind = HostKindNone
	p.structure.HostEnd = end
	p.structure.PortEnd = end
}

func (p *parser) writeScheme(scheme string) {
	p.buf.WriteString(scheme)
	p.structure.SchemeEnd = p.buf.Len()
	p.buf.WriteByte(':')
}

// stateNoScheme implements the no-scheme state: with no base, failure; with
// an opaque-path base, only a fragment is permitted; otherwise resolve as a
// relative reference.
func (p *parser) stateNoScheme() error {
	if p.base == nil {
		return newError(KindMissingScheme, "no scheme and no base URL")
	}
	if p.base.hasOpaquePath {
		if !strings.HasPrefix(p.input, "#") {
			return newError(KindMissingScheme, "relative reference against an opaque-path base")
		}
		p.schemeKind = p.base.schemeKind
		p.writeScheme(p.base.Scheme())
		p.cannotBeABase = p.base.cannotBeABase
		p.hasOpaquePath = true
		p.markNoAuthority()
		if err := p.inheritFromBase(p.base, false, true, true); err != nil {
			return err
		}
		return p.stateFragment(p.input[1:])
	}
	return p.stateRelative(p.input)
}

// stateSpecialRelativeOrAuthority: url is special and shares base's scheme;
// "//" still introduces a fresh authority, otherwise fall through to a
// relative reference.
func (p *parser) stateSpecialRelativeOrAuthority(rest string) error {
	if strings.HasPrefix(rest, "//") {
		return p.stateSpecialAuthorityIgnoreSlashes(rest[2:])
	}
	p.diags.Record(diagnostics.CodeSpecialSchemeMissingSlash, "")
	return p.stateRelativeWithScheme(rest)
}

// statePathOrAuthority: a non-special scheme followed by a single '/'; a
// second '/' introduces an authority, otherwise it's a path.
func (p *parser) statePathOrAuthority(rest string) error {
	if strings.HasPrefix(rest, "/") {
		return p.stateAuthority(rest[1:])
	}
	p.markNoAuthority()
	return p.statePathStart("/" + rest)
}

// stateRelative resolves rest as a relative reference against p.base,
// inheriting scheme (and, depending on the leading characters, authority
// and/or path) per spec.md §4.C's "relative"/"relative slash" states.
func (p *parser) stateRelative(rest string) error {
	p.schemeKind = p.base.schemeKind
	p.writeScheme(p.base.Scheme())
	return p.stateRelativeWithScheme(rest)
}

// stateRelativeWithScheme continues relative resolution once the scheme has
// already been written (used both by stateRelative and by the special
// same-scheme fallthrough, which keeps the URL's own written scheme).
func (p *parser) stateRelativeWithScheme(rest string) error {
	switch {
	case strings.HasPrefix(rest, "//"):
		return p.stateSpecialAuthorityIgnoreSlashes(rest[2:])
	case strings.HasPrefix(rest, "/"), p.schemeKind.isSpecial() && strings.HasPrefix(rest, "\\"):
		return p.stateRelativeSlash(rest[1:])
	case strings.HasPrefix(rest, "?"), strings.HasPrefix(rest, "#"):
		// A fragment-only reference keeps base's query; a query reference
		// replaces it.
		if err := p.inheritFromBase(p.base, true, true, strings.HasPrefix(rest, "#")); err != nil {
			return err
		}
		_, query, hasQuery, fragment, hasFragment := splitQueryFragment(rest)
		return p.afterPath(query, hasQuery, fragment, hasFragment)
	case rest == "":
		return p.inheritFromBase(p.base, true, true, true)
	default:
		if err := p.inheritFromBase(p.base, true, true, false); err != nil {
			return err
		}
		p.popLastPathSegment()
		return p.statePath(rest)
	}
}

// stateRelativeSlash implements relative-slash: one leading slash/backslash
// means "replace the path, keep the authority"; a second one means a fresh
// authority.
func (p *parser) stateRelativeSlash(rest string) error {
	if p.schemeKind.isSpecial() && (strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, "\\")) {
		return p.stateSpecialAuthorityIgnoreSlashes(rest[1:])
	}
	if err := p.inheritAuthorityOnly(p.base); err != nil {
		return err
	}
	return p.statePathStart("/" + rest)
}

func (p *parser) stateSpecialAuthoritySlashes(rest string) error {
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
	}
	return p.stateSpecialAuthorityIgnoreSlashes(rest)
}

func (p *parser) stateSpecialAuthorityIgnoreSlashes(rest string) error {
	for strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, "\\") {
		rest = rest[1:]
	}
	return p.stateAuthority(rest)
}

// stateAuthority splits userinfo from host:port and parses each (spec.md
// §4.C "Authority parsing reads the prefix until an unescaped /, \
// (special only), ?, or #, bookmarking the last @").
func (p *parser) stateAuthority(rest string) error {
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '/' || c == '?' || c == '#' || (p.schemeKind.isSpecial() && c == '\\') {
			end = i
			break
		}
	}
	authority, afterAuthority := rest[:end], rest[end:]

	p.buf.WriteString("//")

	atPos := strings.LastIndexByte(authority, '@')
	if atPos >= 0 {
		p.writeUserinfo(authority[:atPos])
		authority = authority[atPos+1:]
	} else {
		p.structure.UsernameEnd = p.buf.Len()
		p.structure.PasswordEnd = p.buf.Len()
	}

	if err := p.parseHostAndPort(authority); err != nil {
		return err
	}
	return p.statePathStart(afterAuthority)
}

// writeUserinfo writes "user[:pass]@" and is only called once "//" has
// already been written by the caller.
func (p *parser) writeUserinfo(userinfo string) {
	username, password, hasPassword := userinfo, "", false
	if i := strings.IndexByte(userinfo, ':'); i >= 0 {
		username, password, hasPassword = userinfo[:i], userinfo[i+1:], true
	}
	p.buf.WriteString(encodeset.EncodeString(encodeset.Decode(username), &encodeset.Userinfo))
	p.structure.UsernameEnd = p.buf.Len()
	if hasPassword {
		p.buf.WriteByte(':')
		p.buf.WriteString(encodeset.EncodeString(encodeset.Decode(password), &encodeset.Userinfo))
	}
	p.structure.PasswordEnd = p.buf.Len()
	p.buf.WriteByte('@')
}

// parseHostAndPort splits host[:port] and dispatches to the host parser and
// the port state.
func (p *parser) parseHostAndPort(authority string) error {
	hostPart := authority
	portPart := ""
	hasPort := false
	if strings.HasPrefix(authority, "[") {
		if closeIdx := strings.IndexByte(authority, ']'); closeIdx >= 0 {
			hostPart = authority[:closeIdx+1]
			if closeIdx+1 < len(authority) && authority[closeIdx+1] == ':' {
				portPart = authority[closeIdx+2:]
				hasPort = true
			}
		}
	} else if i := strings.LastIndexByte(authority, ':'); i >= 0 {
		hostPart, portPart = authority[:i], authority[i+1:]
		hasPort = true
	}

	if hostPart == "" && p.schemeKind.isSpecial() {
		return newError(KindHostMissing, "special scheme requires a non-empty host")
	}

	h, diags, err := host.Parse(hostPart, p.schemeKind.isSpecial())
	if err != nil {
		return wrapHostError(err)
	}
	for _, d := range diags {
		p.diags.Record(diagnostics.Code(d.Code), d.Detail)
	}
	if p.schemeKind.isSpecial() && (h.Kind == host.KindNone || h.Kind == host.KindEmpty) {
		return newError(KindHostMissing, "special scheme requires a non-empty host")
	}
	p.hostVal = h
	p.buf.WriteString(h.String())
	p.structure.HostKind = hostKindOf(h.Kind)
	p.structure.HostEnd = p.buf.Len()
	p.structure.PortEnd = p.buf.Len()

	if !hasPort {
		return nil
	}
	return p.statePort(portPart)
}

func wrapHostError(err error) error {
	var he *host.ParseError
	if as, ok := err.(*host.ParseError); ok {
		he = as
	}
	if he == nil {
		return newErrorWrap(KindHostInvalid, err.Error(), err)
	}
	switch he.Kind {
	case host.ErrIPv4Invalid:
		return newErrorWrap(KindIPv4Invalid, he.Error(), err)
	case host.ErrIPv4PartOutOfRange:
		return newErrorWrap(KindIPv4PartOutOfRange, he.Error(), err)
	case host.ErrIPv6Invalid:
		return newErrorWrap(KindIPv6Invalid, he.Error(), err)
	case host.ErrIDNAError:
		return newIDNAError(he.Cause)
	default:
		return newErrorWrap(KindHostInvalid, he.Error(), err)
	}
}

// statePort parses decimal digits, rejecting values over 65535 and eliding
// the default port for the scheme.
func (p *parser) statePort(portPart string) error {
	if portPart == "" {
		return nil
	}
	for i := 0; i < len(portPart); i++ {
		if !isASCIIDigit(portPart[i]) {
			return newError(KindPortInvalid, "port contains a non-digit")
		}
	}
	v, err := strconv.Atoi(portPart)
	if err != nil || v > 65535 {
		return newError(KindPortOutOfRange, "port exceeds 65535")
	}
	if def, ok := p.schemeKind.defaultPort(); ok && v == def {
		return nil
	}
	p.buf.WriteByte(':')
	p.buf.WriteString(strconv.Itoa(v))
	p.structure.PortEnd = p.buf.Len()
	return nil
}

// stateFile implements the file-scheme branch (spec.md §4.C "Windows drive
// letters"). This module supports the common "file://host/path" and
// "file:///path" forms and single-segment drive-letter normalization; it
// does not implement every Windows-specific corner the full WHATWG
// algorithm does (documented as a scope note in DESIGN.md).
func (p *parser) stateFile(rest string) error {
	p.structure.UsernameEnd = p.buf.Len()
	p.structure.PasswordEnd = p.buf.Len()
	p.structure.HostKind = HostKindEmpty
	p.structure.HostEnd = p.buf.Len()
	p.structure.PortEnd = p.buf.Len()

	switch {
	case strings.HasPrefix(rest, "//"):
		return p.stateFileHost(rest[2:])
	case strings.HasPrefix(rest, "/"), strings.HasPrefix(rest, "\\"):
		return p.statePathStart("/" + strings.TrimLeft(rest, "/\\"))
	case p.base != nil && p.base.schemeKind == SchemeFile:
		if err := p.inheritFromBase(p.base, true, true, false); err != nil {
			return err
		}
		p.popLastPathSegment()
		return p.statePath(rest)
	default:
		return p.statePathStart("/" + rest)
	}
}

func (p *parser) stateFileHost(rest string) error {
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		if rest[i] == '/' || rest[i] == '\\' || rest[i] == '?' || rest[i] == '#' {
			end = i
			break
		}
	}
	hostPart, afterHost := rest[:end], rest[end:]

	p.buf.WriteString("//")

	if isWindowsDriveLetter(hostPart) {
		p.structure.HostEnd = p.buf.Len()
		p.structure.PortEnd = p.buf.Len()
		return p.statePathStart("/" + rest)
	}
	if hostPart == "" {
		p.structure.HostEnd = p.buf.Len()
		p.structure.PortEnd = p.buf.Len()
		if !strings.HasPrefix(afterHost, "/") {
			afterHost = "/" + afterHost
		}
		return p.statePathStart(afterHost)
	}
	h, _, err := host.Parse(hostPart, true)
	if err != nil {
		return wrapHostError(err)
	}
	if h.Kind == host.KindDomain && h.Domain == "localhost" {
		h = host.Host{Kind: host.KindEmpty}
	}
	p.hostVal = h
	p.buf.WriteString(h.String())
	p.structure.HostKind = hostKindOf(h.Kind)
	p.structure.HostEnd = p.buf.Len()
	p.structure.PortEnd = p.buf.Len()
	return p.statePathStart(afterHost)
}

func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

// statePathStart hands off into the path state. Every caller already
// normalized rest to start with a single '/' (or is the authority-parsed
// tail, which is empty or starts with '/', '?', or '#'); the
// opaque-path/cannot-be-a-base branch was already taken directly from
// afterScheme for schemes that never reach an authority at all.
func (p *parser) statePathStart(rest string) error {
	return p.statePath(rest)
}

// statePath implements the path state: split on '/' (and '\' for special
// schemes), drop single-dot segments, pop on double-dot segments.
func (p *parser) statePath(rest string) error {
	pathPart, query, hasQuery, fragment, hasFragment := splitQueryFragment(rest)
	if p.schemeKind.isSpecial() && strings.Contains(pathPart, "\\") {
		p.diags.Record(diagnostics.CodeBackslashInPath, pathPart)
	}
	segments := splitPathSegments(pathPart, p.schemeKind.isSpecial())

	out := p.currentSegments()

	for i, seg := range segments {
		last := i == len(segments)-1
		switch seg {
		case ".":
			// dropped; a trailing "." still leaves the path ending in '/'
			if last {
				out = append(out, "")
			}
		case "..":
			atDriveRoot := p.schemeKind == SchemeFile && len(out) == 1 && isWindowsDriveLetter(out[0])
			if len(out) > 0 && !atDriveRoot {
				out = out[:len(out)-1]
			}
			if last {
				out = append(out, "")
			}
		default:
			if p.schemeKind == SchemeFile && len(out) == 0 && isWindowsDriveLetter(seg) {
				seg = string(seg[0]) + ":"
			}
			out = append(out, encodeset.EncodeString(seg, &encodeset.Path))
		}
	}
	p.writePathSegments(out)
	return p.afterPath(query, hasQuery, fragment, hasFragment)
}

// currentSegments decodes the path already written (if any) back into
// segments, so relative-reference path merging can pop/append. Since this
// module builds the path progressively in p.buf, we track segments via the
// structure offsets rather than re-parsing; callers that need the prior
// segments call this only right after inheritFromBase populated them.
func (p *parser) currentSegments() []string {
	s := p.structure
	if s.PathEnd <= s.PortEnd {
		return nil
	}
	path := p.buf.String()[s.PortEnd:s.PathEnd]
	if path == "" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	return parts
}

func (p *parser) writePathSegments(segments []string) {
	s := p.buf.String()[:p.structure.PortEnd]
	p.buf.Reset()
	p.buf.WriteString(s)
	for _, seg := range segments {
		p.buf.WriteByte('/')
		p.buf.WriteString(seg)
	}
	p.structure.PathEnd = p.buf.Len()
	p.structure.QueryEnd = p.buf.Len()
	p.structure.FragmentEnd = p.buf.Len()
}

// popLastPathSegment removes the final segment of the inherited base path,
// used by relative-reference merging (spec.md's "merge paths" step).
func (p *parser) popLastPathSegment() {
	segs := p.currentSegments()
	if len(segs) > 0 {
		segs = segs[:len(segs)-1]
	}
	p.writePathSegments(segs)
}

func splitPathSegments(path string, special bool) []string {
	if path == "" {
		return nil
	}
	replacer := func(r rune) rune {
		if special && r == '\\' {
			return '/'
		}
		return r
	}
	normalized := strings.Map(replacer, path)
	normalized = strings.TrimPrefix(normalized, "/")
	if normalized == "" {
		return []string{""}
	}
	return strings.Split(normalized, "/")
}

// splitQueryFragment peels off an optional "?query" and/or "#fragment" tail.
// hasQuery/hasFragment distinguish "absent" from "present but empty", which
// the path state needs to decide whether to emit a bare trailing '?' or '#'.
func splitQueryFragment(rest string) (path, query string, hasQuery bool, fragment string, hasFragment bool) {
	if fragIdx := strings.IndexByte(rest, '#'); fragIdx >= 0 {
		fragment, hasFragment = rest[fragIdx+1:], true
		rest = rest[:fragIdx]
	}
	if queryIdx := strings.IndexByte(rest, '?'); queryIdx >= 0 {
		query, hasQuery = rest[queryIdx+1:], true
		rest = rest[:queryIdx]
	}
	return rest, query, hasQuery, fragment, hasFragment
}

func (p *parser) afterPath(query string, hasQuery bool, fragment string, hasFragment bool) error {
	if hasQuery {
		if err := p.stateQuery(query); err != nil {
			return err
		}
	}
	if hasFragment {
		return p.stateFragment(fragment)
	}
	return nil
}

// stateOpaquePath carries the rest of the input verbatim (percent-encoded
// under the C0-control set) as a single, never-simplified path segment.
func (p *parser) stateOpaquePath(rest string) error {
	path, query, hasQuery, fragment, hasFragment := splitQueryFragment(rest)
	p.buf.WriteString(encodeset.EncodeString(path, &encodeset.C0Control))
	p.structure.PathEnd = p.buf.Len()
	p.structure.QueryEnd = p.buf.Len()
	p.structure.FragmentEnd = p.buf.Len()
	p.hasOpaquePath = true
	return p.afterPath(query, hasQuery, fragment, hasFragment)
}

// stateQuery percent-encodes under the scheme-appropriate query set.
func (p *parser) stateQuery(q string) error {
	set := &encodeset.QueryNonSpecial
	if p.schemeKind.isSpecial() {
		set = &encodeset.QuerySpecial
	}
	p.buf.WriteByte('?')
	p.buf.WriteString(encodeset.EncodeString(q, set))
	p.structure.QueryEnd = p.buf.Len()
	p.structure.FragmentEnd = p.buf.Len()
	return nil
}

// stateFragment percent-encodes under the fragment set.
func (p *parser) stateFragment(f string) error {
	p.buf.WriteByte('#')
	p.buf.WriteString(encodeset.EncodeString(f, &encodeset.Fragment))
	p.structure.FragmentEnd = p.buf.Len()
	return nil
}

// inheritFromBase copies base's authority (if withAuthority), path (if
// withPath), and query (if withQuery), used by relative-reference
// resolution. The scheme is written by the caller; the fragment is never
// copied.
func (p *parser) inheritFromBase(base *URL, withAuthority, withPath, withQuery bool) error {
	if withAuthority {
		if err := p.inheritAuthorityOnly(base); err != nil {
			return err
		}
	}
	if withPath {
		baseStruct := base.structure
		rawPath := base.serialization[baseStruct.PortEnd:baseStruct.PathEnd]
		p.buf.WriteString(rawPath)
		p.structure.PathEnd = p.buf.Len()
		p.structure.QueryEnd = p.buf.Len()
		p.structure.FragmentEnd = p.buf.Len()
		p.hasOpaquePath = base.hasOpaquePath
	}
	if withQuery {
		baseStruct := base.structure
		if baseStruct.QueryEnd > baseStruct.PathEnd {
			p.buf.WriteString(base.serialization[baseStruct.PathEnd:baseStruct.QueryEnd])
		}
		p.structure.QueryEnd = p.buf.Len()
		p.structure.FragmentEnd = p.buf.Len()
	}
	return nil
}

// inheritAuthorityOnly copies base's "//user:pass@host:port" span verbatim.
// This relies on p.structure.SchemeEnd == baseStruct.SchemeEnd, which always
// holds here: every caller has just written base's own scheme string, so the
// two offset tables stay aligned and base's absolute offsets can be reused
// directly as this URL's offsets.
func (p *parser) inheritAuthorityOnly(base *URL) error {
	baseStruct := base.structure
	prefix := base.serialization[baseStruct.SchemeEnd+1 : baseStruct.HostEnd]
	p.buf.WriteString(prefix)
	p.structure.UsernameEnd = baseStruct.UsernameEnd
	p.structure.PasswordEnd = baseStruct.PasswordEnd
	p.structure.HostKind = baseStruct.HostKind
	p.structure.HostEnd = baseStruct.HostEnd
	p.hostVal = base.hostValue
	p.structure.PortEnd = p.buf.Len()
	if baseStruct.PortEnd > baseStruct.HostEnd {
		p.buf.WriteString(base.serialization[baseStruct.HostEnd:baseStruct.PortEnd])
		p.structure.PortEnd = p.buf.Len()
	}
	return nil
}

func (p *parser) finish() *URL {
	return &URL{
		serialization: p.buf.String(),
		structure:     p.structure,
		schemeKind:    p.schemeKind,
		cannotBeABase: p.cannotBeABase,
		hasOpaquePath: p.hasOpaquePath,
		hostValue:     p.hostVal,
		diagnostics:   p.diags.Entries(),
	}
}
