// File: propread/placeholder_test.go
package propread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWithoutTokens(t *testing.T) {
	r := NewResolver()

	t.Run("PlainTextIsIdentity", func(t *testing.T) {
		resolved, err := r.Resolve("configurations/app.properties")
		require.NoError(t, err)
		assert.Equal(t, "configurations/app.properties", resolved)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		resolved, err := r.Resolve("")
		require.NoError(t, err)
		assert.Equal(t, "", resolved)
	})
}

func TestResolveTokens(t *testing.T) {
	t.Run("SingleEnvToken", func(t *testing.T) {
		t.Setenv("PROPREAD_TEST_ENV", "dev")

		resolved, err := NewResolver().Resolve("config-${PROPREAD_TEST_ENV}.properties")
		require.NoError(t, err)
		assert.Equal(t, "config-dev.properties", resolved)
	})

	t.Run("MultipleTokens", func(t *testing.T) {
		t.Setenv("PROPREAD_TEST_DIR", "/etc/app")
		t.Setenv("PROPREAD_TEST_ENV", "qa")

		resolved, err := NewResolver().Resolve("${PROPREAD_TEST_DIR}/config-${PROPREAD_TEST_ENV}.properties")
		require.NoError(t, err)
		assert.Equal(t, "/etc/app/config-qa.properties", resolved)
	})

	t.Run("PropertyStoreBeforeEnvironment", func(t *testing.T) {
		t.Setenv("PROPREAD_TEST_ENV", "from-env")
		SetProperty("PROPREAD_TEST_ENV", "from-props")
		t.Cleanup(ClearProperties)

		resolved, err := NewResolver().Resolve("${PROPREAD_TEST_ENV}")
		require.NoError(t, err)
		assert.Equal(t, "from-props", resolved)
	})

	t.Run("ResolvedValuesAreNotRescanned", func(t *testing.T) {
		SetProperty("PROPREAD_OUTER", "${PROPREAD_INNER}")
		SetProperty("PROPREAD_INNER", "should-not-appear")
		t.Cleanup(ClearProperties)

		resolved, err := NewResolver().Resolve("x-${PROPREAD_OUTER}-y")
		require.NoError(t, err)
		assert.Equal(t, "x-${PROPREAD_INNER}-y", resolved)
	})

	t.Run("CustomLookups", func(t *testing.T) {
		first := func(key string) (string, bool) { return "", false }
		second := func(key string) (string, bool) { return "v-" + key, true }

		resolved, err := NewResolver(first, second).Resolve("${A}/${B}")
		require.NoError(t, err)
		assert.Equal(t, "v-A/v-B", resolved)
	})
}

func TestResolveFailures(t *testing.T) {
	t.Run("UnresolvedTokenNamesKey", func(t *testing.T) {
		_, err := NewResolver().Resolve("config-${PROPREAD_DEFINITELY_UNSET}.properties")
		require.Error(t, err)

		var perr *PlaceholderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "PROPREAD_DEFINITELY_UNSET", perr.Key)
		assert.Equal(t, "config-${PROPREAD_DEFINITELY_UNSET}.properties", perr.Text)
	})
}

func TestResolveUnterminatedToken(t *testing.T) {
	t.Run("RemainderEmittedVerbatim", func(t *testing.T) {
		resolved, err := NewResolver().Resolve("config-${UNTERMINATED")
		require.NoError(t, err)
		assert.Equal(t, "config-${UNTERMINATED", resolved)
	})

	t.Run("LiteralTailAfterResolvedToken", func(t *testing.T) {
		t.Setenv("PROPREAD_TEST_ENV", "dev")

		resolved, err := NewResolver().Resolve("a-${PROPREAD_TEST_ENV}-b-${TAIL")
		require.NoError(t, err)
		assert.Equal(t, "a-dev-b-${TAIL", resolved)
	})
}
