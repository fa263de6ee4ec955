package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serpnav/internal/eventbus"
)

func TestRootCommandAcceptsQueryWords(t *testing.T) {
	cmd := newRootCmd()

	found, rest, err := cmd.Find([]string{"golang", "tui"})
	require.NoError(t, err)
	assert.Same(t, cmd, found)
	assert.Equal(t, []string{"golang", "tui"}, rest)
	assert.NoError(t, found.ValidateArgs(rest))
}

func TestRootCommandRoutesKeysSubcommand(t *testing.T) {
	cmd := newRootCmd()

	found, _, err := cmd.Find([]string{"keys"})
	require.NoError(t, err)
	assert.Equal(t, "keys", found.Name())
	assert.Error(t, found.ValidateArgs([]string{"extra"}))
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	opts := &options{
		configPath:   filepath.Join(t.TempDir(), "config.toml"),
		provider:     "ddg",
		chordTimeout: 750 * time.Millisecond,
	}
	cfg, err := loadConfig(opts, bus)
	require.NoError(t, err)
	assert.Equal(t, "ddg", cfg.Search.Provider)
	assert.Equal(t, 750, cfg.Keys.ChordTimeoutMS)
}
