package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/at-ishikawa/wordsolver/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_FlagsOverrideBrokenConfigPaths(t *testing.T) {
	tests := []struct {
		name         string
		args         func(t *testing.T, tmpDir, configPath string) []string
		wantContains []string
	}{
		{
			name: "unscramble",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				path := testutil.WriteWordList(t, tmpDir, "words", testutil.DefaultWords...)
				return []string{"unscramble", "--config", configPath, "--dictionary", path, "tinsel"}
			},
			wantContains: []string{"listen", "silent", "enlist"},
		},
		{
			name: "dictionary report",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				path := testutil.WriteWordList(t, tmpDir, "words", testutil.DefaultWords...)
				return []string{"dictionary", "report", "--config", configPath, "--dictionary", path}
			},
			wantContains: []string{"Words:                  7"},
		},
		{
			name: "wordsearch",
			args: func(t *testing.T, tmpDir, configPath string) []string {
				path := testutil.WriteFile(t, tmpDir, "puzzle.txt", testutil.DefaultPuzzle)
				return []string{"wordsearch", "--config", configPath, "--grid", path, "C", "A", "T"}
			},
			wantContains: []string{"Word found at (0,0)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := testutil.WriteFile(t, tmpDir, "config.yml", fmt.Sprintf(
				"dictionary:\n  path: %s\nwordsearch:\n  path: %s\n",
				filepath.Join(tmpDir, "missing"),
				filepath.Join(tmpDir, "missing.txt"),
			))

			got, err := executeCommand(t, "", tt.args(t, tmpDir, configPath)...)
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestCommands_BrokenConfigPathFailsWithoutFlag(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := testutil.WriteFile(t, tmpDir, "config.yml", fmt.Sprintf(
		"dictionary:\n  path: %s\n",
		filepath.Join(tmpDir, "missing"),
	))

	_, err := executeCommand(t, "", "unscramble", "--config", configPath, "cat")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to load dictionary"), err.Error())
}
