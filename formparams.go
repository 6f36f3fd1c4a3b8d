package weburl

import (
	"strings"

	"github.com/region23/weburl/internal/encodeset"
)

// FormParam is one decoded key/value pair from an
// application/x-www-form-urlencoded query (spec.md §4.E).
type FormParam struct {
	Key   string
	Value string
}

// FormParams parses u's query as application/x-www-form-urlencoded
// (spec.md §4.E), decoding '+' to space and percent-escapes, in order.
func (u *URL) FormParams() []FormParam {
	raw := u.Query()
	if raw == "" {
		return nil
	}
	pairs := strings.Split(raw, "&")
	out := make([]FormParam, 0, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		out = append(out, FormParam{
			Key:   encodeset.FormDecode(key),
			Value: encodeset.FormDecode(value),
		})
	}
	return out
}

// FormParamGet returns the first value for key, decoded, and whether key
// was present at all. Comparison is by decoded key, so "format" matches a
// query containing "form%61t" (spec.md §4.E example).
func (u *URL) FormParamGet(key string) (string, bool) {
	for _, p := range u.FormParams() {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// WithFormParam returns a copy of u with every existing entry for key
// removed and a single new key=value entry appended (spec.md §4.E "set").
func (u *URL) WithFormParam(key, value string) *URL {
	kept := make([]FormParam, 0)
	for _, p := range u.FormParams() {
		if p.Key != key {
			kept = append(kept, p)
		}
	}
	kept = append(kept, FormParam{Key: key, Value: value})
	return u.WithQuery(encodeFormParams(kept), false)
}

// AppendFormParam returns a copy of u with a new key=value entry appended,
// keeping any existing entries for key (spec.md §4.E "append").
func (u *URL) AppendFormParam(key, value string) *URL {
	all := append(u.FormParams(), FormParam{Key: key, Value: value})
	return u.WithQuery(encodeFormParams(all), false)
}

// WithoutFormParam returns a copy of u with every entry for key removed.
func (u *URL) WithoutFormParam(key string) *URL {
	kept := make([]FormParam, 0)
	for _, p := range u.FormParams() {
		if p.Key != key {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return u.WithQuery("", true)
	}
	return u.WithQuery(encodeFormParams(kept), false)
}

func encodeFormParams(params []FormParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(string(encodeset.FormEncode(nil, p.Key)))
		b.WriteByte('=')
		b.WriteString(string(encodeset.FormEncode(nil, p.Value)))
	}
	return b.String()
}
