package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
	"github.com/dstapl/osrs-gph/internal/infrastructure/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for input, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(input), "level %q", input)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, config.LoggingConfig{Level: "warn", Format: "json"})

	logger.Info("dropped")
	logger.Warn("recipe skipped", "recipe", "Humidify Clay")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "recipe skipped", entry["msg"])
	assert.Equal(t, "Humidify Clay", entry["recipe"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, config.LoggingConfig{Level: "info", Format: "text"})

	logger.Info("computed overviews", "ranked", 3)

	assert.Contains(t, buf.String(), `msg="computed overviews"`)
	assert.Contains(t, buf.String(), "ranked=3")
}

func TestSetup_FileOutput(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "logs", "osrs-gph.log")
	cfg := config.LoggingConfig{Level: "info", Format: "json", Output: "file", FilePath: path}

	logger, closer, err := logging.Setup(cfg)
	require.NoError(t, err)
	logger.Info("prices refreshed", "items", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "prices refreshed")
}

func TestSetup_FileOutputRequiresPath(t *testing.T) {
	_, _, err := logging.Setup(config.LoggingConfig{Output: "file"})
	assert.Error(t, err)
}
