// File: propread/convenience_test.go
package propread

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quickConfig struct {
	Name string `property:"name" default:"anonymous"`
	Port int    `property:"port"`
}

func (quickConfig) Resource() string {
	return "${PROPREAD_QUICK_DIR}/quick.properties"
}

func TestBindConvenience(t *testing.T) {
	path := writeFixture(t, "quick.properties", "port=8080\n")
	SetProperty("PROPREAD_QUICK_DIR", filepath.Dir(path))
	t.Cleanup(ClearProperties)

	t.Run("Bind", func(t *testing.T) {
		var cfg quickConfig
		require.NoError(t, Bind(&cfg))
		assert.Equal(t, "anonymous", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("MustBind", func(t *testing.T) {
		var cfg quickConfig
		assert.NotPanics(t, func() { MustBind(&cfg) })
		assert.Equal(t, 8080, cfg.Port)
	})
}

func TestBindFileConvenience(t *testing.T) {
	path := writeFixture(t, "explicit.properties", "name=explicit\nport=9090\n")

	var cfg quickConfig
	require.NoError(t, BindFile(path, &cfg))
	assert.Equal(t, "explicit", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
}

func TestMustBindPanics(t *testing.T) {
	var target struct {
		Value string `property:"key"`
	}
	assert.Panics(t, func() { MustBind(&target) })
}
