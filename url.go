// Package weburl implements a WHATWG URL Living Standard parser, serializer,
// normalizer, and structured mutator (spec.md §1). The state machine design
// is grounded in shape on the teacher's region23-urlparser (split-then-derive
// instead of character-by-character dispatch originally), generalized here
// into the full WHATWG state machine per spec.md §4.C; the teacher's own
// splitter survives, adapted, as the legacycompat equivalence partner.
package weburl

import (
	"github.com/region23/weburl/internal/diagnostics"
	"github.com/region23/weburl/internal/host"
)

// HostKind mirrors internal/host.Kind at the public API surface (spec.md §3.1).
type HostKind int

const (
	HostKindNone HostKind = iota
	HostKindEmpty
	HostKindDomain
	HostKindIPv4
	HostKindIPv6
	HostKindOpaque
)

func hostKindOf(k host.Kind) HostKind {
	switch k {
	case host.KindEmpty:
		return HostKindEmpty
	case host.KindDomain:
		return HostKindDomain
	case host.KindIPv4:
		return HostKindIPv4
	case host.KindIPv6:
		return HostKindIPv6
	case host.KindOpaque:
		return HostKindOpaque
	default:
		return HostKindNone
	}
}

func (k HostKind) String() string {
	switch k {
	case HostKindEmpty:
		return "empty"
	case HostKindDomain:
		return "domain"
	case HostKindIPv4:
		return "ipv4"
	case HostKindIPv6:
		return "ipv6"
	case HostKindOpaque:
		return "opaque"
	default:
		return "none"
	}
}

// SchemeKind is the special-scheme discriminant (spec.md §3.1).
type SchemeKind int

const (
	SchemeOther SchemeKind = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
	SchemeFTP
	SchemeFile
)

func schemeKindOf(scheme string) SchemeKind {
	switch scheme {
	case "http":
		return SchemeHTTP
	case "https":
		return SchemeHTTPS
	case "ws":
		return SchemeWS
	case "wss":
		return SchemeWSS
	case "ftp":
		return SchemeFTP
	case "file":
		return SchemeFile
	default:
		return SchemeOther
	}
}

func (k SchemeKind) isSpecial() bool { return k != SchemeOther }

func (k SchemeKind) defaultPort() (int, bool) {
	switch k {
	case SchemeHTTP, SchemeWS:
		return 80, true
	case SchemeHTTPS, SchemeWSS:
		return 443, true
	case SchemeFTP:
		return 21, true
	default:
		return 0, false
	}
}

// Structure holds the offset table locating every component within
// serialization (spec.md §3.1). All offsets are exclusive end positions;
// absence of a component is represented by equal adjacent offsets, per the
// rules documented on each field.
type Structure struct {
	SchemeEnd   int // exclusive of the ':'
	UsernameEnd int
	PasswordEnd int // == UsernameEnd when no password
	HostKind    HostKind
	HostEnd     int
	PortEnd     int // port absent iff PortEnd == HostEnd
	PathEnd     int
	QueryEnd    int // query absent iff QueryEnd == PathEnd
	FragmentEnd int // fragment absent iff FragmentEnd == QueryEnd; always len(serialization)
}

// Diagnostic is a non-fatal observation recorded during parsing (spec.md §7).
type Diagnostic = diagnostics.Entry

// URL is the immutable-until-mutated WHATWG URL record (spec.md §3.1). The
// zero value is not a valid URL; construct with Parse.
type URL struct {
	serialization string
	structure     Structure
	schemeKind    SchemeKind
	cannotBeABase bool
	hasOpaquePath bool

	hostValue host.Host

	diagnostics []Diagnostic
}

// String returns the record's WHATWG serialization (invariant S1).
func (u *URL) String() string { return u.serialization }

// IsSpecial reports whether the URL's scheme is one of the six special
// schemes (spec.md GLOSSARY).
func (u *URL) IsSpecial() bool { return u.schemeKind.isSpecial() }

// SchemeKind returns the scheme discriminant.
func (u *URL) SchemeKind() SchemeKind { return u.schemeKind }

// Structure returns a copy of the record's offset table.
func (u *URL) Structure() Structure { return u.structure }

// CannotBeABase reports the cannot-be-a-base flag (spec.md §3.1/GLOSSARY).
func (u *URL) CannotBeABase() bool { return u.cannotBeABase }

// HasOpaquePath reports whether the path is a single opaque segment.
func (u *URL) HasOpaquePath() bool { return u.hasOpaquePath }

// Diagnostics returns the non-fatal diagnostics recorded while parsing this
// record (spec.md §7).
func (u *URL) Diagnostics() []Diagnostic { return u.diagnostics }

// Scheme returns the scheme, lowercase, without the trailing ':'.
func (u *URL) Scheme() string { return u.serialization[:u.structure.SchemeEnd] }

// Username returns the percent-encoded username, or "" if absent. The
// authority, when present, always starts "//" right after the scheme's ':'
// (spec.md §4.C); userinfo, in turn, starts right after that "//".
func (u *URL) Username() string {
	s := u.structure
	authorityStart := s.SchemeEnd + 3
	if s.HostEnd < authorityStart || s.UsernameEnd <= authorityStart {
		return ""
	}
	return u.serialization[authorityStart:s.UsernameEnd]
}

// Password returns the percent-encoded password, or "" if absent.
func (u *URL) Password() string {
	s := u.structure
	authorityStart := s.SchemeEnd + 3
	if s.HostEnd < authorityStart || s.PasswordEnd <= s.UsernameEnd {
		return ""
	}
	return u.serialization[s.UsernameEnd+1 : s.PasswordEnd] // skip ':'
}

// HostKind returns the parsed host variant.
func (u *URL) HostKind() HostKind { return u.structure.HostKind }

// Hostname returns the serialized hostname, bracketed (e.g. "[::1]") when
// the host is IPv6, per WHATWG host serialization.
func (u *URL) Hostname() string {
	return u.hostValue.String()
}

// Port returns the port string, or "" if absent/default.
func (u *URL) Port() string {
	s := u.structure
	if s.PortEnd <= s.HostEnd {
		return ""
	}
	return u.serialization[s.HostEnd+1 : s.PortEnd] // skip ':'
}

// Path returns the path component, including its leading '/' when present.
func (u *URL) Path() string {
	s := u.structure
	return u.serialization[s.PortEnd:s.PathEnd]
}

// Query returns the query component without its leading '?', or "" if
// absent.
func (u *URL) Query() string {
	s := u.structure
	if s.QueryEnd <= s.PathEnd {
		return ""
	}
	return u.serialization[s.PathEnd+1 : s.QueryEnd]
}

// Fragment returns the fragment component without its leading '#', or "" if
// absent.
func (u *URL) Fragment() string {
	s := u.structure
	if s.FragmentEnd <= s.QueryEnd {
		return ""
	}
	return u.serialization[s.QueryEnd+1 : s.FragmentEnd]
}

// Host returns hostname+port combined (spec.md §6, "host (hostname+port)").
func (u *URL) Host() string {
	h := u.Hostname()
	if p := u.Port(); p != "" {
		return h + ":" + p
	}
	return h
}

// clone returns a deep-enough copy for copy-on-write mutation: URL is a
// value type (spec.md §3.4) so simple assignment already copies every field
// here (host.Host and Structure are themselves value types, and
// diagnostics/serialization are replaced wholesale on mutation, never
// appended-to in place).
func (u *URL) clone() *URL {
	cp := *u
	return &cp
}
