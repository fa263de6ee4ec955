package logger

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "serpnav.log")

	require.NoError(t, Init(path))
	log.Printf("Logger: hello %d", 42)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Logger: hello 42")
}

func TestInitRotatesLargeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serpnav.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", maxLogSize+1)), 0644))

	require.NoError(t, Init(path))
	log.Printf("fresh")
	Close()

	old, err := os.Stat(path + ".old")
	require.NoError(t, err, "oversized log should be kept as .old")
	assert.Greater(t, old.Size(), int64(maxLogSize))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fresh")
	assert.Less(t, len(data), 1024)
}

func TestCloseDiscardsOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serpnav.log")

	require.NoError(t, Init(path))
	Close()
	log.Printf("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after close")
}
