package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

//go:generate mockgen -source=unscramble_cli.go -destination=../mocks/cli/mock_unscrambler.go -package=mock_cli Unscrambler

// Unscrambler is implemented by *dictionary.Index
type Unscrambler interface {
	Unscramble(input string) []string
}

// UnscrambleCLI asks for scrambled words and prints the dictionary words they unscramble to
type UnscrambleCLI struct {
	*InteractiveCLI
	unscrambler Unscrambler
}

func NewUnscrambleCLI(unscrambler Unscrambler, stdin io.Reader, stdout io.Writer, format Format) *UnscrambleCLI {
	return &UnscrambleCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout, format),
		unscrambler:    unscrambler,
	}
}

func (cli *UnscrambleCLI) Session(ctx context.Context) error {
	input, err := cli.prompt("Next word")
	if err != nil {
		return err
	}
	return cli.Unscramble(input)
}

// Unscramble prints the matches for a single input
func (cli *UnscrambleCLI) Unscramble(input string) error {
	words := cli.unscrambler.Unscramble(input)
	slog.Debug("unscrambled", "input", input, "matches", len(words))

	if err := cli.renderer.RenderMatches(input, words); err != nil {
		return fmt.Errorf("renderer.RenderMatches(%s) > %w", input, err)
	}
	return nil
}
