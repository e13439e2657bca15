package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/at-ishikawa/wordsolver/internal/wordsearch"
	"github.com/fatih/color"
)

//go:generate mockgen -source=wordsearch_cli.go -destination=../mocks/cli/mock_finder.go -package=mock_cli Finder

// Finder is implemented by *wordsearch.Grid
type Finder interface {
	Find(word string) (wordsearch.Position, bool, error)
}

// WordSearchCLI asks for words and prints where they are in the puzzle
type WordSearchCLI struct {
	*InteractiveCLI
	finder Finder
	red    *color.Color
}

func NewWordSearchCLI(finder Finder, stdin io.Reader, stdout io.Writer, format Format) *WordSearchCLI {
	return &WordSearchCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout, format),
		finder:         finder,
		red:            color.New(color.FgRed),
	}
}

func (cli *WordSearchCLI) Session(ctx context.Context) error {
	word, err := cli.prompt("Enter word")
	if err != nil {
		return err
	}

	err = cli.Find(word)
	if errors.Is(err, wordsearch.ErrWordTooShort) {
		// Keep asking, the puzzle is still usable
		_, _ = cli.red.Fprintf(cli.stdoutWriter, "Error: %v\n", err)
		return nil
	}
	return err
}

// Find prints the position of a single word
func (cli *WordSearchCLI) Find(word string) error {
	position, found, err := cli.finder.Find(word)
	if err != nil {
		return fmt.Errorf("finder.Find(%s) > %w", word, err)
	}
	if err := cli.renderer.RenderPosition(word, position, found); err != nil {
		return fmt.Errorf("renderer.RenderPosition(%s) > %w", word, err)
	}
	return nil
}
