package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/at-ishikawa/wordsolver/internal/wordsearch"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")

	AllFormats = []Format{FormatText, FormatYAML}
)

func ParseFormat(value string) (Format, error) {
	for _, format := range AllFormats {
		if value == string(format) {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, value)
}

// UnscrambleResult is the YAML document written for an unscramble query
type UnscrambleResult struct {
	Input   string   `yaml:"input"`
	Matches []string `yaml:"matches"`
}

// WordSearchResult is the YAML document written for a word search query
type WordSearchResult struct {
	Word     string               `yaml:"word"`
	Found    bool                 `yaml:"found"`
	Position *wordsearch.Position `yaml:"position,omitempty"`
}

// Renderer writes query results in the configured format.
// In YAML format every result is a separate document.
type Renderer struct {
	writer    io.Writer
	format    Format
	documents int
	green     *color.Color
	red       *color.Color
	yellow    *color.Color
}

func NewRenderer(writer io.Writer, format Format) *Renderer {
	return &Renderer{
		writer: writer,
		format: format,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}
}

func (r *Renderer) RenderMatches(input string, words []string) error {
	if r.format == FormatYAML {
		if words == nil {
			words = []string{}
		}
		return r.encodeYAML(UnscrambleResult{
			Input:   input,
			Matches: words,
		})
	}

	if len(words) == 0 {
		if _, err := r.yellow.Fprintln(r.writer, "No matches"); err != nil {
			return fmt.Errorf("Fprintln > %w", err)
		}
		return nil
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(r.writer, word); err != nil {
			return fmt.Errorf("Fprintln > %w", err)
		}
	}
	return nil
}

func (r *Renderer) RenderPosition(word string, position wordsearch.Position, found bool) error {
	if r.format == FormatYAML {
		result := WordSearchResult{
			Word:  word,
			Found: found,
		}
		if found {
			result.Position = &position
		}
		return r.encodeYAML(result)
	}

	var err error
	if found {
		_, err = r.green.Fprintf(r.writer, "Word found at (%d,%d)\n", position.X, position.Y)
	} else {
		_, err = r.red.Fprintln(r.writer, "Word not found")
	}
	if err != nil {
		return fmt.Errorf("Fprintf > %w", err)
	}
	return nil
}

func (r *Renderer) encodeYAML(document any) error {
	if r.documents > 0 {
		if _, err := io.WriteString(r.writer, "---\n"); err != nil {
			return fmt.Errorf("io.WriteString > %w", err)
		}
	}
	r.documents++

	encoder := yaml.NewEncoder(r.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("yaml.Encode > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("yaml.Close > %w", err)
	}
	return nil
}
