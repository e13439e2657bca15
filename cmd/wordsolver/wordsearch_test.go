package main

import (
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/wordsolver/internal/testutil"
	"github.com/at-ishikawa/wordsolver/internal/wordsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordSearchCommand(t *testing.T) {
	cmd := newWordSearchCommand()

	assert.Equal(t, "wordsearch [symbol...]", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	printFlag := cmd.Flags().Lookup("print")
	assert.NotNil(t, printFlag)
	assert.Equal(t, "false", printFlag.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("grid"))
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}

func TestWordSearchCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T, tmpDir, configPath string) []string
		stdin   string
		wantOut string
	}{
		{
			name: "symbols as separate arguments",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				return []string{"wordsearch", "--config", configPath, "G", "O", "D"}
			},
			wantOut: "Word found at (3,1)\n",
		},
		{
			name: "symbols as a single argument",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				return []string{"wordsearch", "--config", configPath, "C O W"}
			},
			wantOut: "Word found at (0,0)\n",
		},
		{
			name: "not found",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				return []string{"wordsearch", "--config", configPath, "D", "O", "O"}
			},
			wantOut: "Word not found\n",
		},
		{
			name: "grid flag overrides the config file",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				path := testutil.WriteFile(t, tmpDir, "other.txt", "x y\nz w\n")
				return []string{"wordsearch", "--config", configPath, "--grid", path, "w", "x"}
			},
			wantOut: "Word found at (1,1)\n",
		},
		{
			name: "print the grid",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				path := testutil.WriteFile(t, tmpDir, "other.txt", "x y\nz w\n")
				return []string{"wordsearch", "--config", configPath, "--grid", path, "--print", "x", "y"}
			},
			wantOut: "x\ty\nz\tw\nWord found at (0,0)\n",
		},
		{
			name: "yaml format",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				return []string{"wordsearch", "--config", configPath, "--format", "yaml", "D", "O", "O"}
			},
			wantOut: "word: D O O\nfound: false\n",
		},
		{
			name: "interactive",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				return []string{"wordsearch", "--config", configPath}
			},
			stdin:   "C A T\nT\n\n",
			wantOut: "Enter word: Word found at (0,0)\nEnter word: Error: finder.Find(T) > input needs to contain at least two characters\nEnter word: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := testutil.SetupTestConfig(t, tmpDir)

			got, err := executeCommand(t, tt.stdin, tt.args(t, tmpDir, configPath)...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, got)
		})
	}
}

func TestWordSearchCommand_Errors(t *testing.T) {
	t.Run("puzzle cannot be opened", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := testutil.SetupTestConfig(t, tmpDir)

		_, err := executeCommand(t, "", "wordsearch", "--config", configPath, "--grid", filepath.Join(tmpDir, "missing.txt"), "C", "A")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load word search")
		assert.Contains(t, err.Error(), "invalid filepath")
	})

	t.Run("puzzle is not configured", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := testutil.WriteFile(t, tmpDir, "config.yml", "output:\n  format: text\n")

		_, err := executeCommand(t, "", "wordsearch", "--config", configPath, "C", "A")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a word search is not configured")
	})

	t.Run("single symbol", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := testutil.SetupTestConfig(t, tmpDir)

		_, err := executeCommand(t, "", "wordsearch", "--config", configPath, "C")
		assert.ErrorIs(t, err, wordsearch.ErrWordTooShort)
	})
}
