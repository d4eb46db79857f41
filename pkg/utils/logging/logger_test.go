package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readLogFile(t *testing.T, dir string) []map[string]any {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "test_"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestInitLogger(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := InitLogger("test", Options{Dir: dir, Console: &console})
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message", zap.Int("lineups", 3))
	require.NoError(t, logger.Sync())

	// Console only shows info and above
	assert.NotContains(t, console.String(), "debug message")
	assert.Contains(t, console.String(), "info message")

	// File gets everything as JSON
	lines := readLogFile(t, dir)
	require.Len(t, lines, 2)
	assert.Equal(t, "debug message", lines[0]["msg"])
	assert.Equal(t, "info message", lines[1]["msg"])
	assert.Equal(t, float64(3), lines[1]["lineups"])
	assert.Contains(t, lines[1], "timestamp")
}

func TestInitLogger_Verbose(t *testing.T) {
	var console bytes.Buffer

	logger, err := InitLogger("test", Options{Dir: t.TempDir(), Verbose: true, Console: &console})
	require.NoError(t, err)

	logger.Debug("debug message")
	require.NoError(t, logger.Sync())

	assert.Contains(t, console.String(), "debug message")
}
