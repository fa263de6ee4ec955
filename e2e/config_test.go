//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigFileCreation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	configPath := tf.ConfigPath()
	_, err = os.Stat(configPath)
	require.True(t, os.IsNotExist(err), "No config should exist initially")

	require.NoError(t, tf.StartWithResults("golang"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("serpnav"), "Should show serpnav title")

	tf.Quit()
	require.True(t, tf.WaitExit(2*time.Second), "app did not exit after quit")

	configContent, err := os.ReadFile(configPath)
	require.NoError(t, err, "Config file should be created on first run")

	configStr := string(configContent)
	require.Contains(t, configStr, "version = 1", "Config should contain version")
	require.Contains(t, configStr, "chord_timeout_ms = 500", "Config should contain the chord window")
	require.Contains(t, configStr, "provider = 'duckduckgo'", "Config should contain the provider")
}

func TestConfigKeepsRunningAfterNavigate(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteConfig(`
version = 1

[ui]
quit_on_navigate = false
`))

	require.NoError(t, tf.StartWithResults("golang"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Documentation"), "Should show results")

	tf.Enter()
	log, ok := tf.WaitForOpened("navigate https://go.dev/doc/", 3*time.Second)
	require.True(t, ok, "Enter should open the focused result, open log: %q", log)
	require.False(t, tf.WaitExit(500*time.Millisecond), "App should keep running")

	tf.Quit()
}
