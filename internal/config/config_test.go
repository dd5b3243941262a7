package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/gnr/internal/core/observability/log"
)

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	for _, name := range []string{"gnr.yaml", "gnr.yml", "gnr.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, WriteDefault(path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Defaults(), cfg)
		})
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("log:\n  level: debug\ncodec:\n  strict_versions: true\n"), 0o600))
	cfg, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Codec.StrictVersions)
	assert.Equal(t, Defaults().Database, cfg.Database)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)

	tomlPath := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[database]\npath = \":memory:\"\n[cache]\nttl = \"30s\"\n"), 0o600))
	cfg, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadRejects(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "gnr.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log:\n  level: loud\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "unknown log level")

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("[database]\npath = \"\"\n"), 0o600))
	_, err = Load(empty)
	assert.ErrorContains(t, err, "Path")

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("cache:\n  ttl: -1s\n"), 0o600))
	_, err = Load(negative)
	assert.ErrorContains(t, err, "TTL")
}

func TestFromViperEnvOverrides(t *testing.T) {
	t.Setenv("GNR_DATABASE_PATH", "/tmp/gnr-test.db")
	t.Setenv("GNR_CODEC_STRICT_VERSIONS", "true")
	t.Setenv("GNR_CACHE_TTL", "1m")

	cfg, err := FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/gnr-test.db", cfg.Database.Path)
	assert.True(t, cfg.Codec.StrictVersions)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestFromViperFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n  console: false\n"), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, cfg.LogOptions().Level)
	assert.False(t, cfg.LogOptions().Console)
	assert.Equal(t, Defaults().Database.Path, cfg.Database.Path)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/gnr")
	assert.Equal(t, "/home/gnr/state/x.db", ExpandHome("~/state/x.db"))
	assert.Equal(t, "/abs/x.db", ExpandHome("/abs/x.db"))
	assert.Equal(t, "~user/x.db", ExpandHome("~user/x.db"))
}
