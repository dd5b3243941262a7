package log

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        LevelInfo,
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelNone,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestFromZapWritesTypedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.With(String("component", "codec")).Warn("translating",
		String("type_name", "g.node.gt"),
		Int("attempt", 1),
		Strings("fields", []string{"A", "B"}),
		Error(errors.New("boom")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "codec", ctx["component"])
	assert.Equal(t, "g.node.gt", ctx["type_name"])
	assert.EqualValues(t, 1, ctx["attempt"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLogRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))
	logger.SetLevel(LevelWarn)

	logger.Log(LevelInfo, "dropped")
	logger.Log(LevelError, "kept")
	logger.Log(LevelNone, "never")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
	assert.Equal(t, LevelWarn, logger.GetLevel())
}

func TestNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Warn("nothing")
	assert.NoError(t, logger.Sync())
}

func TestNewWithOptionsWritesToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := NewWithOptions(Options{Level: LevelInfo, Dir: dir})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("stored", Int64("fingerprint", 42))
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "gnr.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"stored"`)
	assert.Contains(t, string(data), `"fingerprint":42`)
	assert.NotContains(t, string(data), "hidden")
}
