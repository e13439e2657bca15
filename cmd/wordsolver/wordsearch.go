package main

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/wordsolver/internal/cli"
	"github.com/at-ishikawa/wordsolver/internal/wordsearch"
	"github.com/spf13/cobra"
)

func newWordSearchCommand() *cobra.Command {
	var gridPath string
	var printGrid bool
	var format Format

	cmd := &cobra.Command{
		Use:   "wordsearch [symbol...]",
		Short: "Find a word in a word search puzzle",
		Long: `Find a word in a word search puzzle. A word is given as symbols separated by spaces,
for example "C A T". Without arguments, words are read from the standard input until an empty line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path := firstNonEmpty(gridPath, cfg.WordSearch.Path)
			if path == "" {
				return fmt.Errorf("a word search is not configured. Set --grid or wordsearch.path in the config file")
			}
			grid, err := wordsearch.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load word search: %w", err)
			}
			outputFormat, err := resolveFormat(format, cfg)
			if err != nil {
				return err
			}

			if printGrid {
				if _, err := fmt.Fprint(cmd.OutOrStdout(), grid.String()); err != nil {
					return fmt.Errorf("fmt.Fprint > %w", err)
				}
			}

			wordSearchCLI := cli.NewWordSearchCLI(grid, cmd.InOrStdin(), cmd.OutOrStdout(), outputFormat)
			if len(args) == 0 {
				return wordSearchCLI.Run(cmd.Context(), wordSearchCLI)
			}
			return wordSearchCLI.Find(strings.Join(args, " "))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&gridPath, "grid", "", "word search path. Overrides wordsearch.path in the config file")
	flags.BoolVar(&printGrid, "print", false, "print the puzzle before searching")
	flags.Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", cli.AllFormats))
	return cmd
}
