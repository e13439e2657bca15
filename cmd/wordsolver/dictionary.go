package main

import (
	"fmt"

	"github.com/at-ishikawa/wordsolver/internal/cli"
	"github.com/spf13/cobra"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Inspect the word list",
	}

	var dictionaryPath string
	rootCommand.PersistentFlags().StringVar(&dictionaryPath, "dictionary", "", "word list path or glob pattern. Overrides dictionary.path in the config file")

	var top int
	reportCommand := &cobra.Command{
		Use:   "report",
		Short: "Show how the words spread over fingerprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return fmt.Errorf("--top must not be negative")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			index, err := buildIndex(dictionaryPath, "", cfg)
			if err != nil {
				return err
			}
			return cli.RunDictionaryReport(cmd.OutOrStdout(), index, top)
		},
	}
	reportCommand.Flags().IntVar(&top, "top", 10, "Number of the largest fingerprints to show. 0 shows all of them")

	rootCommand.AddCommand(reportCommand)
	return &rootCommand
}
