package main

import (
	"fmt"

	"github.com/at-ishikawa/wordsolver/internal/cli"
	"github.com/at-ishikawa/wordsolver/internal/config"
	"github.com/at-ishikawa/wordsolver/internal/dictionary"
	"github.com/spf13/cobra"
)

func newUnscrambleCommand() *cobra.Command {
	var dictionaryPath string
	var matchMode MatchMode
	var format Format

	cmd := &cobra.Command{
		Use:   "unscramble [word...]",
		Short: "Find the dictionary words which are anagrams of the input",
		Long: `Find the dictionary words which are anagrams of each word given as an argument.
Without arguments, words are read from the standard input until an empty line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			index, err := buildIndex(dictionaryPath, matchMode, cfg)
			if err != nil {
				return err
			}
			outputFormat, err := resolveFormat(format, cfg)
			if err != nil {
				return err
			}

			unscrambleCLI := cli.NewUnscrambleCLI(index, cmd.InOrStdin(), cmd.OutOrStdout(), outputFormat)
			if len(args) == 0 {
				return unscrambleCLI.Run(cmd.Context(), unscrambleCLI)
			}
			for _, word := range args {
				if err := unscrambleCLI.Unscramble(word); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dictionaryPath, "dictionary", "", "word list path or glob pattern. Overrides dictionary.path in the config file")
	flags.Var(&matchMode, "match", fmt.Sprintf("how anagrams are confirmed. Possible values are %v", dictionary.AllMatchModes))
	flags.Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", cli.AllFormats))
	return cmd
}

func buildIndex(flagPath string, flagMatchMode MatchMode, cfg *config.Config) (*dictionary.Index, error) {
	path := firstNonEmpty(flagPath, cfg.Dictionary.Path)
	if path == "" {
		return nil, fmt.Errorf("a word list is not configured. Set --dictionary or dictionary.path in the config file")
	}

	mode := dictionary.MatchMode(flagMatchMode)
	if mode == "" {
		var err error
		mode, err = dictionary.ParseMatchMode(cfg.Dictionary.MatchMode)
		if err != nil {
			return nil, fmt.Errorf("dictionary.ParseMatchMode > %w", err)
		}
	}

	index, err := dictionary.BuildFromPattern(path, dictionary.WithMatchMode(mode))
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return index, nil
}
