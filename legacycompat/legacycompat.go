// Package legacycompat is the "legacy URL compatibility shim" spec.md §1/§6
// names as an out-of-scope external collaborator: a regex-based, lenient
// URL splitter in the style this module's teacher (region23-urlparser)
// shipped, kept here as an equivalence-contract partner for the real
// `weburl` parser rather than deleted. It intentionally does not implement
// the WHATWG state machine — it is the thing `weburl` is an upgrade from,
// and `TestEquivalent` in `legacycompat_test.go` runs Equivalent on one URL
// where the two agree and one where they do not.
package legacycompat

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/purell"
	"golang.org/x/net/idna"

	"github.com/region23/weburl"
)

// Userinfo is an immutable encapsulation of username and password details
// for a URL. An existing Userinfo value is guaranteed to have a username
// set (potentially empty), and optionally a password.
type Userinfo struct {
	Username    string
	Password    string
	PasswordSet bool
}

// URL represents the legacy, regex-split view of a URL.
type URL struct {
	Input  string
	Opaque string // encoded opaque

	Scheme      string
	DoubleSlash string
	User        *Userinfo
	Host        string
	Port        string
	Authority   string
	Path        string
	Query       string
	Fragment    string

	Relative bool
}

// Parse parses rawURL into the legacy, regex-based URL struct. Input made
// only of letters, digits, '-' and '.' (such as "example.com" or
// "index.php") is treated as a relative path ("./example.com"); anything
// else is split by the regexes, so "example.com:8080" lands in Host and
// Port. Parse keeps the host's case; Normalize lowercases it.
func Parse(rawURL string) (*URL, error) {
	isPrimitivePath, err := isPrimitivePath(rawURL)
	if err != nil {
		return nil, err
	}
	if isPrimitivePath {
		return &URL{
			Input:    rawURL,
			Relative: true,
			Path:     `./` + rawURL,
		}, nil
	}

	result := &URL{Input: rawURL}
	result.Scheme, result.DoubleSlash, result.Opaque, result.Query, result.Fragment = Split(rawURL)
	result.Authority, result.Path = splitAuthorityFromPath(result.Opaque)
	result.User, result.Host, result.Port = splitUserinfoHostPortFromAuthority(result.Authority)

	if result.Scheme == "" && result.DoubleSlash == "" && result.Authority == "" && result.Port == "" {
		result.Relative = true
	}

	return result, nil
}

var (
	domainRegexp = regexp.MustCompile(`^([a-zA-Z0-9-]{1,63}\.)+[a-zA-Z0-9][a-zA-Z0-9-]{0,61}[a-zA-Z0-9]$`)
	ipv4Regexp   = regexp.MustCompile(`^[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}$`)
	ipv6Regexp   = regexp.MustCompile(`^\[[a-fA-F0-9:]+\]$`)
)

func isPrimitivePath(rawURL string) (bool, error) {
	return regexp.MatchString(`^[a-zA-Z0-9-.]*$`, rawURL)
}

// Split splits a URL into its major components (scheme, opaque, query,
// fragment).
func Split(rawURL string) (string, string, string, string, string) {
	parts := []string{
		"^(?P<firstgroup>(?P<scheme>[^:?/\\.]+):)?",
		"(?P<doubleslash>(//)?)",
		"(?P<opaque>[^?#]+)?",
		"(\\?(?P<query>[^#]+))?",
		"(#(?P<fragment>.*))?",
	}

	r := regexp.MustCompile(strings.Join(parts, ""))
	matches := namedMatches(r.FindStringSubmatch(rawURL), r)

	// "localhost" in the scheme position isn't a scheme; Go's regexp has
	// no negative lookahead to exclude it directly.
	if matches["scheme"] == `localhost` {
		if matches["firstgroup"] == "localhost:" {
			matches["opaque"] = matches["firstgroup"] + matches["opaque"]
		} else {
			matches["opaque"] = matches["scheme"] + matches["opaque"]
		}
		matches["scheme"] = ""
	}

	return matches["scheme"], matches["doubleslash"], matches["opaque"], matches["query"], matches["fragment"]
}

func splitAuthorityFromPath(opaque string) (string, string) {
	r := regexp.MustCompile("(?P<authority>[^/]+)?(?P<path>/.*)?")
	matches := namedMatches(r.FindStringSubmatch(opaque), r)

	if strings.Contains(matches["authority"], `.php`) || strings.Contains(matches["authority"], `.html`) || strings.Contains(matches["authority"], `.htm`) {
		matches["path"] = matches["authority"] + matches["path"]
		matches["authority"] = ""
		if strings.Index(matches["path"], "/") == -1 && strings.Index(matches["path"], "./") == -1 && strings.Index(matches["path"], "../") == -1 {
			matches["path"] = `./` + matches["path"]
		}
	}
	if matches["authority"] == `..` || matches["authority"] == `.` {
		if strings.Index(matches["path"], "/") == 0 {
			matches["path"] = matches["authority"] + matches["path"]
			matches["authority"] = ""
		}
	}

	return matches["authority"], matches["path"]
}

func splitUserinfoHostPortFromAuthority(authority string) (*Userinfo, string, string) {
	userinfo := &Userinfo{}
	if delimPos := strings.LastIndex(authority, "@"); delimPos != -1 {
		uinfo := strings.Split(authority[0:delimPos], ":")
		if len(uinfo[0]) > 0 {
			userinfo.Username = uinfo[0]
		}
		if len(uinfo) > 1 && len(uinfo[1]) > 0 {
			userinfo.Password = uinfo[1]
			userinfo.PasswordSet = true
		}
		authority = authority[delimPos+1:]
	}

	parts := []string{
		"(", "(\\[(?P<host6>[^\\]]+)\\])", "|", "(?P<host>[^:]+)", ")?",
		"(:(?P<port>[0-9]+))?",
	}

	r := regexp.MustCompile(strings.Join(parts, ""))
	matches := namedMatches(r.FindStringSubmatch(authority), r)
	if matches["host"] == "" {
		matches["host"] = matches["host6"]
	}

	return userinfo, matches["host"], matches["port"]
}

func namedMatches(matches []string, r *regexp.Regexp) map[string]string {
	result := make(map[string]string)
	for i, name := range r.SubexpNames() {
		if name == "" {
			continue
		}
		if i >= len(matches) {
			result[name] = ""
		} else {
			result[name] = matches[i]
		}
	}
	return result
}

// ToNetURL converts a legacycompat.URL into a net/url.URL.
func (u *URL) ToNetURL() *url.URL {
	host := ""
	if u.Host != "" {
		host = u.Host
		if u.Port != "" {
			host = fmt.Sprintf("%s:%s", host, u.Port)
		}
	}

	ret := &url.URL{
		Scheme:   u.Scheme,
		Host:     host,
		Path:     u.Path,
		RawPath:  u.Path,
		RawQuery: u.Query,
		Fragment: u.Fragment,
	}

	if u.Authority == "" {
		ret.Opaque = u.Opaque
	}

	return ret
}

const normalizeFlags purell.NormalizationFlags = purell.FlagRemoveDefaultPort |
	purell.FlagDecodeDWORDHost | purell.FlagDecodeOctalHost | purell.FlagDecodeHexHost |
	purell.FlagRemoveUnnecessaryHostDots | purell.FlagRemoveDotSegments | purell.FlagRemoveDuplicateSlashes |
	purell.FlagUppercaseEscapes | purell.FlagDecodeUnnecessaryEscapes | purell.FlagEncodeNecessaryEscapes |
	purell.FlagSortQuery

// Normalize returns the legacy-normalized URL string: host dots collapsed,
// default port removed, duplicate slashes and dot-segments removed, query
// sorted, escapes canonicalized, and Punycode decoded to Unicode.
func (u *URL) Normalize() (string, error) {
	host, err := idna.ToUnicode(u.Host)
	if err != nil {
		return "", err
	}

	u.Host = strings.ToLower(host)
	u.Scheme = strings.ToLower(u.Scheme)

	netURL := u.ToNetURL()
	normalized := purell.NormalizeURL(netURL, normalizeFlags)
	return normalized, nil
}

// Equivalent reports whether this legacy regex-based parser and the WHATWG
// state machine agree on rawURL: it runs the legacy Parse+Normalize path and
// compares the result against weburl.Parse(rawURL).String(). Disagreement is
// expected and reported rather than treated as an error — the two parsers
// are intentionally not bit-for-bit equivalent (the legacy splitter has no
// notion of special schemes, default ports vary in what they elide, and it
// never validates a host the way internal/host does), so this is a
// migration-diagnostics helper, not an assertion of correctness either way.
func Equivalent(rawURL string) (equal bool, legacy string, modern string, err error) {
	legacyURL, err := Parse(rawURL)
	if err != nil {
		return false, "", "", err
	}
	legacy, err = legacyURL.Normalize()
	if err != nil {
		return false, "", "", err
	}

	modernURL, err := weburl.Parse(rawURL)
	if err != nil {
		return false, legacy, "", err
	}
	modern = modernURL.String()

	return legacy == modern, legacy, modern, nil
}
