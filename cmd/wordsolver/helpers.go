package main

import (
	"fmt"

	"github.com/at-ishikawa/wordsolver/internal/cli"
	"github.com/at-ishikawa/wordsolver/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// resolveFormat prefers the flag over the config file
func resolveFormat(flagValue Format, cfg *config.Config) (cli.Format, error) {
	if flagValue != "" {
		return cli.Format(flagValue), nil
	}
	format, err := cli.ParseFormat(cfg.Output.Format)
	if err != nil {
		return "", fmt.Errorf("cli.ParseFormat > %w", err)
	}
	return format, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
