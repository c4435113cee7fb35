// internal/observability/logger_test.go
package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xkilldash9x/forkdrift/internal/config"
)

// The logger is a global singleton guarded by a sync.Once, so every test
// has to reset it before initializing its own configuration.

func TestInitialize(t *testing.T) {

	t.Run("console format writes readable output", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		var buf bytes.Buffer
		cfg := config.LoggerConfig{
			Level:       "debug",
			Format:      "console",
			ServiceName: "TestService",
		}
		Initialize(cfg, zapcore.AddSync(&buf))

		GetLogger().Info("this is a test message")

		output := buf.String()
		assert.Contains(t, output, "INFO", "output should contain the log level")
		assert.Contains(t, output, "this is a test message")
		assert.Contains(t, output, "TestService.", "console names carry a trailing dot")
	})

	t.Run("json format produces valid JSON", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		var buf bytes.Buffer
		cfg := config.LoggerConfig{
			Level:       "info",
			Format:      "json",
			ServiceName: "JSONTest",
		}
		Initialize(cfg, zapcore.AddSync(&buf))

		GetLogger().Warn("a structured message", zap.String("key", "value"))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output should be valid JSON")
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "JSONTest", entry["logger"])
		assert.Equal(t, "a structured message", entry["msg"])
		assert.Equal(t, "value", entry["key"])
	})

	t.Run("level below threshold is dropped", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		var buf bytes.Buffer
		Initialize(config.LoggerConfig{Level: "warn", Format: "json"}, zapcore.AddSync(&buf))

		GetLogger().Info("too quiet")
		assert.Empty(t, buf.String())
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		var buf bytes.Buffer
		Initialize(config.LoggerConfig{Level: "noisy", Format: "json"}, zapcore.AddSync(&buf))

		GetLogger().Debug("dropped")
		assert.Empty(t, buf.String())
		GetLogger().Info("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("log file receives JSON regardless of console format", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		logPath := filepath.Join(t.TempDir(), "forkdrift.log")
		var buf bytes.Buffer
		cfg := config.LoggerConfig{
			Level:   "debug",
			Format:  "console",
			LogFile: logPath,
			MaxSize: 1,
		}
		Initialize(cfg, zapcore.AddSync(&buf))

		GetLogger().Error("this should go to the file")
		Sync()

		content, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "this should go to the file")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(bytes.SplitN(content, []byte("\n"), 2)[0], &entry))
		assert.Equal(t, "ERROR", entry["level"])
	})

	t.Run("only the first initialization wins", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		var buf bytes.Buffer
		Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "First"}, zapcore.AddSync(&buf))
		first := GetLogger()

		var ignored bytes.Buffer
		Initialize(config.LoggerConfig{Level: "debug", Format: "json", ServiceName: "Second"}, zapcore.AddSync(&ignored))

		assert.Same(t, first, GetLogger())
		GetLogger().Info("test")
		assert.Contains(t, buf.String(), "First")
		assert.Empty(t, ignored.String())
	})
}

func TestGetLogger(t *testing.T) {
	t.Run("falls back before initialization", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		require.NotNil(t, GetLogger())
	})

	t.Run("returns the stored instance after initialization", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		var buf bytes.Buffer
		Initialize(config.LoggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
		assert.Same(t, globalLogger.Load(), GetLogger())
	})
}
