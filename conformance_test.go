package weburl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/region23/weburl"
	"github.com/region23/weburl/conformance"
)

func TestConformance_URLTestData(t *testing.T) {
	cases, err := conformance.LoadURLTestData("testdata/urltestdata.json")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Input, func(t *testing.T) {
			assert.NoError(t, conformance.Run(tc))
		})
	}
}

func TestConformance_SetterTestData(t *testing.T) {
	data, err := conformance.LoadSetterTestData("testdata/setters_tests.json")
	require.NoError(t, err)

	protocolCases, err := data.Cases("protocol")
	require.NoError(t, err)
	for _, tc := range protocolCases {
		tc := tc
		assert.NoError(t, conformance.RunSetter(tc, func(u *weburl.URL, v string) (*weburl.URL, error) {
			return u.WithScheme(v)
		}))
	}

	hostnameCases, err := data.Cases("hostname")
	require.NoError(t, err)
	for _, tc := range hostnameCases {
		tc := tc
		assert.NoError(t, conformance.RunSetter(tc, func(u *weburl.URL, v string) (*weburl.URL, error) {
			return u.WithHostname(v)
		}))
	}

	portCases, err := data.Cases("port")
	require.NoError(t, err)
	for _, tc := range portCases {
		tc := tc
		assert.NoError(t, conformance.RunSetter(tc, func(u *weburl.URL, v string) (*weburl.URL, error) {
			return u.WithPort(v)
		}))
	}

	pathnameCases, err := data.Cases("pathname")
	require.NoError(t, err)
	for _, tc := range pathnameCases {
		tc := tc
		assert.NoError(t, conformance.RunSetter(tc, func(u *weburl.URL, v string) (*weburl.URL, error) {
			return u.WithPath(v)
		}))
	}
}
