// Package testutil provides shared test helpers for creating config files, word lists and puzzles.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// DefaultWords is the word list written by SetupTestConfig.
var DefaultWords = []string{"listen", "silent", "enlist", "banana", "cat", "act", "tac"}

// DefaultPuzzle is the word search written by SetupTestConfig.
const DefaultPuzzle = "C A T X\nO D O G\nW E B Z\n"

// WriteWordList writes words, one per line, to name under dir and returns the path.
func WriteWordList(t *testing.T, dir, name string, words ...string) string {
	t.Helper()

	content := strings.Join(words, "\n")
	if len(words) > 0 {
		content += "\n"
	}
	return WriteFile(t, dir, name, content)
}

// WriteFile writes content to name under dir and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ConfigOption configures optional fields when creating a config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	matchMode string
	format    string
}

// WithMatchMode sets dictionary.match_mode.
func WithMatchMode(mode string) ConfigOption {
	return func(c *testConfig) {
		c.matchMode = mode
	}
}

// WithFormat sets output.format.
func WithFormat(format string) ConfigOption {
	return func(c *testConfig) {
		c.format = format
	}
}

// SetupTestConfig creates a word list, a puzzle and a config file pointing to them.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		matchMode: "charset",
		format:    "text",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	wordListPath := WriteWordList(t, tmpDir, "wordlist", DefaultWords...)
	puzzlePath := WriteFile(t, tmpDir, "wordsearch.txt", DefaultPuzzle)

	configContent := fmt.Sprintf(`dictionary:
  path: %s
  match_mode: %s
wordsearch:
  path: %s
output:
  format: %s
`,
		wordListPath,
		cfg.matchMode,
		puzzlePath,
		cfg.format,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
