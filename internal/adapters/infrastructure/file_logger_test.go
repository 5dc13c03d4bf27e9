package infrastructure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coolassistant.app/internal/ports"
)

func readLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	var out []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		out = append(out, entry)
	}
	require.NoError(t, scanner.Err())
	return out
}

func TestFileLoggerAdapter_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "providers.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)
	logger.now = func() time.Time { return time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC) }

	logger.Info("Air quality request completed", ports.F("provider", "openmeteo"), ports.F("duration_ms", 120))
	logger.Error("Forecast request failed", ports.F("error", fmt.Errorf("quota exceeded")))
	logger.Debug("debug")
	logger.Warn("warn")
	require.NoError(t, logger.Close())

	entries := readLines(t, path)
	require.Len(t, entries, 4)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Air quality request completed", entries[0]["message"])
	assert.Equal(t, "openmeteo", entries[0]["provider"])
	assert.Equal(t, 120.0, entries[0]["duration_ms"])
	assert.Equal(t, "2025-07-01T08:00:00Z", entries[0]["timestamp"])
	assert.Equal(t, "quota exceeded", entries[1]["error"])
	assert.Equal(t, "DEBUG", entries[2]["level"])
	assert.Equal(t, "WARN", entries[3]["level"])
}

func TestFileLoggerAdapter_ReservedKeysWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Info("real message", ports.F("message", "spoofed"), ports.F("level", "DEBUG"))
	require.NoError(t, logger.Close())

	entries := readLines(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "real message", entries[0]["message"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestFileLoggerAdapter_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				logger.Info("entry", ports.F("goroutine", g), ports.F("i", i))
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	assert.Len(t, readLines(t, path), 200)
}

func TestFileLoggerAdapter_Errors(t *testing.T) {
	_, err := NewFileLoggerAdapter("")
	assert.Error(t, err)

	logger, err := NewFileLoggerAdapter(filepath.Join(t.TempDir(), "closed.log"))
	require.NoError(t, err)
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	logger.Info("dropped after close")
}

func TestTeeLogger(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileLoggerAdapter(filepath.Join(dir, "a.log"))
	require.NoError(t, err)
	b, err := NewFileLoggerAdapter(filepath.Join(dir, "b.log"))
	require.NoError(t, err)

	tee := TeeLogger{a, b}
	tee.Warn("both", ports.F("k", "v"))
	require.NoError(t, a.Close())
	require.NoError(t, b.Close())

	assert.Len(t, readLines(t, filepath.Join(dir, "a.log")), 1)
	assert.Len(t, readLines(t, filepath.Join(dir, "b.log")), 1)
}
