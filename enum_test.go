// File: propread/enum_test.go
package propread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type environment string

const (
	envDev  environment = "dev"
	envProd environment = "prod"
)

func TestEnumParsing(t *testing.T) {
	e := NewEnum(map[string]environment{
		"dev":  envDev,
		"prod": envProd,
	})

	t.Run("MatchIgnoresCase", func(t *testing.T) {
		for _, raw := range []string{"dev", "DEV", "Dev"} {
			v, err := e.ParseValue(raw)
			require.NoError(t, err)
			assert.Equal(t, envDev, v)
		}
	})

	t.Run("UnknownValue", func(t *testing.T) {
		_, err := e.ParseValue("staging")
		require.Error(t, err)

		var uerr *UnknownValueError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "staging", uerr.Value)
	})

	t.Run("BlankWithoutDefault", func(t *testing.T) {
		_, err := e.ParseValue("")
		assert.Error(t, err)

		_, err = e.ParseValue("   ")
		assert.Error(t, err)
	})

	t.Run("BlankWithDefault", func(t *testing.T) {
		v, err := e.WithDefault(envProd).ParseValue("")
		require.NoError(t, err)
		assert.Equal(t, envProd, v)

		// The default belongs to the derived parser only.
		_, err = e.ParseValue("")
		assert.Error(t, err)
	})

	t.Run("ImplementsParser", func(t *testing.T) {
		var p Parser = e
		v, err := p.Parse("prod")
		require.NoError(t, err)
		assert.Equal(t, envProd, v)
	})
}

func TestBrowser(t *testing.T) {
	t.Run("UnmarshalTextIgnoresCase", func(t *testing.T) {
		var b Browser
		require.NoError(t, b.UnmarshalText([]byte("FIREFOX")))
		assert.Equal(t, BrowserFirefox, b)
	})

	t.Run("UnmarshalTextRejectsUnknown", func(t *testing.T) {
		var b Browser
		err := b.UnmarshalText([]byte("edge"))
		require.Error(t, err)

		var uerr *UnknownValueError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "edge", uerr.Value)
	})

	t.Run("ParserDefaultsToChromeOnBlank", func(t *testing.T) {
		v, err := BrowserParser().Parse("")
		require.NoError(t, err)
		assert.Equal(t, BrowserChrome, v)
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "chrome", BrowserChrome.String())
	})
}
