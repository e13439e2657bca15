// Package wordsearch loads a word search puzzle and finds words in it.
package wordsearch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrEmptyGrid    = errors.New("word search has no rows")
	ErrRaggedGrid   = errors.New("word search rows have different widths")
	ErrWordTooShort = errors.New("input needs to contain at least two characters")
)

// Direction is the step between two consecutive symbols of a word.
type Direction struct {
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

// directions are tried in this order, so a palindrome reports the first one.
var directions = []Direction{
	{DX: -1, DY: -1}, {DX: 0, DY: -1}, {DX: 1, DY: -1},
	{DX: -1, DY: 0}, {DX: 1, DY: 0},
	{DX: -1, DY: 1}, {DX: 0, DY: 1}, {DX: 1, DY: 1},
}

// Position is where a word starts and the direction it runs in.
type Position struct {
	X         int       `yaml:"x"`
	Y         int       `yaml:"y"`
	Direction Direction `yaml:"direction"`
}

// Grid is a word search puzzle. Cells are stored row-major.
type Grid struct {
	cells  []string
	width  int
	height int
}

// Load reads a word search from path.
func Load(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("invalid filepath %q: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	grid, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("Parse(%s) > %w", path, err)
	}
	return grid, nil
}

// Parse reads one row per line. Cells of a row are separated by spaces or tabs.
// Blank lines are ignored.
func Parse(r io.Reader) (*Grid, error) {
	grid := &Grid{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := strings.Fields(scanner.Text())
		if len(row) == 0 {
			continue
		}
		if grid.height == 0 {
			grid.width = len(row)
		} else if len(row) != grid.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, grid.height, len(row), grid.width)
		}
		grid.cells = append(grid.cells, row...)
		grid.height++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan > %w", err)
	}
	if grid.height == 0 {
		return nil, ErrEmptyGrid
	}
	return grid, nil
}

// Width returns the number of columns.
func (grid *Grid) Width() int {
	return grid.width
}

// Height returns the number of rows.
func (grid *Grid) Height() int {
	return grid.height
}

// InBounds reports whether (x, y) is a cell of the grid.
func (grid *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < grid.width && 0 <= y && y < grid.height
}

// At returns the symbol at (x, y).
func (grid *Grid) At(x, y int) (string, bool) {
	if !grid.InBounds(x, y) {
		return "", false
	}
	return grid.cells[y*grid.width+x], true
}

// Find looks for word, a list of symbols separated by spaces or tabs.
// Start cells are visited column by column and the first match is returned.
func (grid *Grid) Find(word string) (Position, bool, error) {
	symbols := strings.Fields(word)
	if len(symbols) < 2 {
		return Position{}, false, ErrWordTooShort
	}

	for x := 0; x < grid.width; x++ {
		for y := 0; y < grid.height; y++ {
			if direction, ok := grid.startsAt(symbols, x, y); ok {
				return Position{X: x, Y: y, Direction: direction}, true, nil
			}
		}
	}
	return Position{}, false, nil
}

func (grid *Grid) startsAt(symbols []string, x, y int) (Direction, bool) {
	if first, _ := grid.At(x, y); first != symbols[0] {
		return Direction{}, false
	}
	for _, direction := range directions {
		if grid.runsIn(symbols, x, y, direction) {
			return direction, true
		}
	}
	return Direction{}, false
}

func (grid *Grid) runsIn(symbols []string, x, y int, direction Direction) bool {
	for i := 1; i < len(symbols); i++ {
		symbol, ok := grid.At(x+direction.DX*i, y+direction.DY*i)
		if !ok || symbol != symbols[i] {
			return false
		}
	}
	return true
}

// String returns the grid with cells separated by tabs.
func (grid *Grid) String() string {
	var b strings.Builder
	for y := 0; y < grid.height; y++ {
		b.WriteString(strings.Join(grid.cells[y*grid.width:(y+1)*grid.width], "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}
