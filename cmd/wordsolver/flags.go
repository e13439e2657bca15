package main

import (
	"fmt"

	"github.com/at-ishikawa/wordsolver/internal/cli"
	"github.com/at-ishikawa/wordsolver/internal/dictionary"
	"github.com/spf13/pflag"
)

// MatchMode is the --match flag. Empty means the config file decides.
type MatchMode string

func (m *MatchMode) Set(val string) error {
	mode, err := dictionary.ParseMatchMode(val)
	if err != nil {
		return fmt.Errorf("invalid match mode: %s. Possible values are %v", val, dictionary.AllMatchModes)
	}
	*m = MatchMode(mode)
	return nil
}

func (m MatchMode) String() string {
	return string(m)
}

func (m *MatchMode) Type() string {
	return "MatchMode"
}

// Format is the --format flag. Empty means the config file decides.
type Format string

func (f *Format) Set(val string) error {
	format, err := cli.ParseFormat(val)
	if err != nil {
		return fmt.Errorf("invalid format: %s. Possible values are %v", val, cli.AllFormats)
	}
	*f = Format(format)
	return nil
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

var (
	_ pflag.Value = (*MatchMode)(nil)
	_ pflag.Value = (*Format)(nil)
)
