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
)

func TestInitLogger_WritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger("test", Options{Dir: dir})
	require.NoError(t, err)

	logger.Debug("Advanced week", zap.Int("week", 2), zap.String("scenario", "n005w4"))
	_ = logger.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "test_"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &line))
	assert.Equal(t, "Advanced week", line["msg"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, float64(2), line["week"])
	assert.Contains(t, line, "timestamp")
}

func TestInitLogger_DefaultEnvName(t *testing.T) {
	dir := t.TempDir()

	_, err := InitLogger("", Options{Dir: dir})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "default_"))
}
