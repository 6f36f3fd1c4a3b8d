// Package conformance loads and runs WHATWG-shaped URL conformance fixtures
// (spec.md §6's "persisted test vectors"): urltestdata.json-shaped parse
// cases and setters_tests.json-shaped setter cases. The full upstream
// fixture files are not in this module's retrieval pack, so only curated
// subsets live under testdata/ — but the loaders and runner accept the
// real upstream grammar unchanged, so a full fixture file can be dropped in
// without code changes.
package conformance

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/region23/weburl"
)

// URLTestCase is one entry of urltestdata.json. Upstream mixes plain
// strings (section comments) into the same array as test objects; LoadURLTestData
// filters those out.
type URLTestCase struct {
	Input         string            `json:"input"`
	Base          string            `json:"base"`
	Href          string            `json:"href"`
	Origin        string            `json:"origin"`
	Protocol      string            `json:"protocol"`
	Username      string            `json:"username"`
	Password      string            `json:"password"`
	Host          string            `json:"host"`
	Hostname      string            `json:"hostname"`
	Port          string            `json:"port"`
	Pathname      string            `json:"pathname"`
	Search        string            `json:"search"`
	Hash          string `json:"hash"`
	SearchParams  string `json:"searchParams"`
	FailureWanted bool   `json:"failure"`
}

// LoadURLTestData reads a urltestdata.json-shaped fixture file.
func LoadURLTestData(path string) ([]URLTestCase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	cases := make([]URLTestCase, 0, len(entries))
	for _, entry := range entries {
		var tc URLTestCase
		if err := json.Unmarshal(entry, &tc); err != nil {
			continue // a bare string comment entry, not a test case
		}
		if tc.Input == "" {
			continue
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

// Run parses tc.Input (against tc.Base, if any) and compares every
// component the fixture specifies. It returns a descriptive error on the
// first mismatch, or on an unexpected success/failure.
func Run(tc URLTestCase) error {
	var opts []weburl.ParseOption
	if tc.Base != "" {
		base, err := weburl.Parse(tc.Base)
		if err != nil {
			if tc.FailureWanted {
				return nil
			}
			return fmt.Errorf("base %q failed to parse: %w", tc.Base, err)
		}
		opts = append(opts, weburl.WithBaseURL(base))
	}

	u, err := weburl.Parse(tc.Input, opts...)
	if tc.FailureWanted {
		if err == nil {
			return fmt.Errorf("input %q: expected failure, got %q", tc.Input, u.String())
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("input %q: unexpected failure: %w", tc.Input, err)
	}

	checks := []struct {
		name, want, got string
	}{
		{"href", tc.Href, u.String()},
		{"protocol", tc.Protocol, protocolOf(u)},
		{"username", tc.Username, u.Username()},
		{"password", tc.Password, u.Password()},
		{"hostname", tc.Hostname, u.Hostname()},
		{"port", tc.Port, u.Port()},
		{"pathname", tc.Pathname, u.Path()},
		{"search", tc.Search, searchOf(u)},
		{"hash", tc.Hash, hashOf(u)},
	}
	for _, c := range checks {
		if c.want == "" {
			continue
		}
		if c.want != c.got {
			return fmt.Errorf("input %q: %s mismatch: want %q, got %q", tc.Input, c.name, c.want, c.got)
		}
	}
	return nil
}

func protocolOf(u *weburl.URL) string {
	if u.Scheme() == "" {
		return ""
	}
	return u.Scheme() + ":"
}

func searchOf(u *weburl.URL) string {
	if u.Query() == "" {
		return ""
	}
	return "?" + u.Query()
}

func hashOf(u *weburl.URL) string {
	if u.Fragment() == "" {
		return ""
	}
	return "#" + u.Fragment()
}

// SetterTestCase is one entry in a setters_tests.json attribute group.
type SetterTestCase struct {
	Href     string            `json:"href"`
	NewValue string            `json:"new_value"`
	Expected map[string]string `json:"expected"`
}

// SetterTestData is the setters_tests.json shape: one named group per
// settable attribute, plus a "comment" group (an array of strings) this
// loader ignores.
type SetterTestData map[string]json.RawMessage

// LoadSetterTestData reads a setters_tests.json-shaped fixture file.
func LoadSetterTestData(path string) (SetterTestData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data SetterTestData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// Cases returns the decoded test cases for one attribute group (e.g.
// "hostname", "port"), skipping the "comment" group.
func (d SetterTestData) Cases(attribute string) ([]SetterTestCase, error) {
	raw, ok := d[attribute]
	if !ok {
		return nil, nil
	}
	var cases []SetterTestCase
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// RunSetter parses tc.Href, applies setter to the URL it produces, and
// compares the resulting href with tc.Expected["href"]; other expected
// fields are not compared. A setter error passes when no href is expected
// or the expected href is the unchanged original.
func RunSetter(tc SetterTestCase, setter func(*weburl.URL, string) (*weburl.URL, error)) error {
	u, err := weburl.Parse(tc.Href)
	if err != nil {
		return fmt.Errorf("href %q: failed to parse: %w", tc.Href, err)
	}
	u2, err := setter(u, tc.NewValue)
	if err != nil {
		if want, ok := tc.Expected["href"]; ok && want != u.String() {
			return fmt.Errorf("href %q + %q: setter failed: %w", tc.Href, tc.NewValue, err)
		}
		return nil
	}
	if want, ok := tc.Expected["href"]; ok && want != u2.String() {
		return fmt.Errorf("href %q + %q: want href %q, got %q", tc.Href, tc.NewValue, want, u2.String())
	}
	return nil
}
