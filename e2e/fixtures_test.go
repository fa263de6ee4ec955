//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fixturePattern is the --from-file pattern for testdata/page-N.html,
// set by TestMain
var fixturePattern = "testdata/page-%d.html"

// CreateTestWorkspace creates the temporary $HOME for one app run
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// ClipboardPath is where the app writes clipboard text
func (tf *TUITestFramework) ClipboardPath() string {
	return filepath.Join(tf.workspace, "clipboard.txt")
}

// OpenLogPath is where the app records opened links
func (tf *TUITestFramework) OpenLogPath() string {
	return filepath.Join(tf.workspace, "opened.log")
}

// ConfigPath is the default config location under the isolated $HOME
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, ".config", "serpnav", "config.toml")
}

// WriteConfig writes a config file before the app starts
func (tf *TUITestFramework) WriteConfig(content string) error {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return err
		}
	}
	path := tf.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// StartWithResults launches the app on the saved result pages
func (tf *TUITestFramework) StartWithResults(query string, extra ...string) error {
	args := append([]string{"--from-file", fixturePattern}, extra...)
	args = append(args, query)
	return tf.StartApp(args...)
}

// WaitForClipboard waits until the clipboard file holds want
func (tf *TUITestFramework) WaitForClipboard(want string, timeout time.Duration) (string, bool) {
	return tf.waitForFile(tf.ClipboardPath(), func(s string) bool { return s == want }, timeout)
}

// WaitForOpened waits until the open log contains line
func (tf *TUITestFramework) WaitForOpened(line string, timeout time.Duration) (string, bool) {
	return tf.waitForFile(tf.OpenLogPath(), func(s string) bool { return strings.Contains(s, line) }, timeout)
}

func (tf *TUITestFramework) waitForFile(path string, pred func(string) bool, timeout time.Duration) (string, bool) {
	deadline := time.Now().Add(timeout)
	for {
		data, _ := os.ReadFile(path)
		if pred(string(data)) {
			return string(data), true
		}
		if time.Now().After(deadline) {
			return string(data), false
		}
		time.Sleep(25 * time.Millisecond)
	}
}
