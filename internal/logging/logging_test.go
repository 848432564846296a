package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/petrotech/petrotech/internal/config"
)

func TestInteractiveWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "info", Format: "console"}, Options{Interactive: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petrotech.log")

	logger, err := New(config.LogConfig{Level: "info", Format: "json", File: path}, Options{Interactive: true})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("catalog loaded", zap.Int("tools", 17))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "catalog loaded", entry["msg"])
	assert.Equal(t, "petrotech", entry["logger"])
	assert.EqualValues(t, 17, entry["tools"])
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petrotech.log")

	logger, err := New(config.LogConfig{Level: "error", Format: "console", File: path}, Options{Verbose: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestInvalidSettings(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "json"}, Options{})
	assert.Error(t, err)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"}, Options{})
	assert.Error(t, err)
}
