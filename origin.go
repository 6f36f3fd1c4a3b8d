package weburl

// Origin is the tuple (scheme, host, port) origin spec.md §6 describes, or
// an opaque marker for URLs the algorithm assigns no tuple origin to.
// Per spec.md's P8, an opaque origin is never equal to any other origin,
// including itself — Equal always returns false when either side is
// opaque, and Key reports ok=false so callers cannot accidentally use an
// opaque origin as a map key and have two distinct opaque origins collide.
type Origin struct {
	opaque bool
	scheme string
	host   string
	port   string // "" means the scheme's default port
}

// OriginOf computes u's origin (spec.md §6). Only http(s)/ws(s)/ftp
// URLs with a host carry a tuple origin; everything else — including
// cannot-be-a-base URLs and file URLs (file's origin is left
// implementation-defined by the standard) — is opaque. "blob:" URLs are the
// one exception among non-special schemes: a blob URL's origin is whatever
// origin its opaque path itself parses to, so "blob:http://example.com/x"
// carries http://example.com's tuple origin rather than being opaque.
func OriginOf(u *URL) Origin {
	if u.schemeKind == SchemeOther && u.Scheme() == "blob" {
		return blobOrigin(u)
	}
	if u.cannotBeABase || u.schemeKind == SchemeFile || u.schemeKind == SchemeOther {
		return Origin{opaque: true}
	}
	if u.structure.HostKind == HostKindNone || u.structure.HostKind == HostKindEmpty {
		return Origin{opaque: true}
	}
	return Origin{
		scheme: u.Scheme(),
		host:   u.Hostname(),
		port:   u.Port(),
	}
}

// blobOrigin implements blob URL origin unwrapping: the inner URL held in
// the opaque path is parsed on its own, and its origin (tuple or opaque) is
// what the blob URL's origin becomes.
func blobOrigin(u *URL) Origin {
	inner, err := Parse(u.Path())
	if err != nil {
		return Origin{opaque: true}
	}
	return OriginOf(inner)
}

// IsOpaque reports whether this is an opaque origin.
func (o Origin) IsOpaque() bool { return o.opaque }

// Scheme, Host, and Port return the tuple components; all are "" for an
// opaque origin.
func (o Origin) Scheme() string { return o.scheme }
func (o Origin) Host() string   { return o.host }
func (o Origin) Port() string   { return o.port }

// Equal implements same-origin comparison (spec.md §6). Two opaque origins
// are never equal, even to themselves (P8).
func (o Origin) Equal(other Origin) bool {
	if o.opaque || other.opaque {
		return false
	}
	return o.scheme == other.scheme && o.host == other.host && o.port == other.port
}

// Key returns a stable string usable as a map key for tuple origins, with
// ok=false for opaque origins — callers must handle opaque origins
// explicitly rather than risk two distinct opaque origins colliding under
// the same key.
func (o Origin) Key() (string, bool) {
	if o.opaque {
		return "", false
	}
	return o.scheme + "://" + o.host + ":" + o.port, true
}
