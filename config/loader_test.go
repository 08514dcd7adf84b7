package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 600*time.Second, cfg.CatalogTTL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 20, cfg.DisplayCap)
	assert.NotEmpty(t, cfg.AIHost)
	assert.NotEmpty(t, cfg.AIModel)
	assert.Empty(t, cfg.AIAPIKey)
}

func TestLoad(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
	})

	t.Run("env overrides defaults", func(t *testing.T) {
		t.Setenv("SERMONSEARCH_ADDR", ":9999")
		t.Setenv("SERMONSEARCH_CATALOG_URL", "https://example.com/export.csv")
		t.Setenv("SERMONSEARCH_AI_API_KEY", "secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr)
		assert.Equal(t, "https://example.com/export.csv", cfg.CatalogURL)
		assert.Equal(t, "secret", cfg.AIAPIKey)
	})

	t.Run("file layered under env", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		yaml := "addr: \":7070\"\ncatalog_url: https://file.example/export.csv\npage_size: 5\n"
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

		t.Setenv("SERMONSEARCH_CONFIG", path)
		t.Setenv("SERMONSEARCH_ADDR", ":9999")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr, "env wins over the file")
		assert.Equal(t, "https://file.example/export.csv", cfg.CatalogURL)
		assert.Equal(t, 5, cfg.PageSize)
	})

	t.Run("missing file errors", func(t *testing.T) {
		t.Setenv("SERMONSEARCH_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := Load()
		assert.ErrorIs(t, err, ErrLoadConfig)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := New()
		cfg.CatalogURL = "https://example.com/export.csv"
		return cfg
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing addr", func(t *testing.T) {
		cfg := valid()
		cfg.Addr = ""
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("missing catalog url", func(t *testing.T) {
		cfg := New()
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("display cap below page size", func(t *testing.T) {
		cfg := valid()
		cfg.DisplayCap = 5
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("non-positive page size", func(t *testing.T) {
		cfg := valid()
		cfg.PageSize = 0
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}
