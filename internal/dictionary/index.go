package dictionary

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoWordList is returned by BuildFromPattern when no file matches the pattern.
var ErrNoWordList = errors.New("no word list matches the pattern")

// IOError is returned by Build when the word list cannot be opened.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to open a word list %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Index holds the entries of a word list sorted by fingerprint.
// It is never modified after construction, so it can be queried from
// multiple goroutines.
type Index struct {
	entries   []Entry
	matchMode MatchMode
}

type Option func(*Index)

// WithMatchMode sets how candidates are confirmed. The default is MatchModeCharset.
// A mode outside AllMatchModes makes the build fail with ErrUnknownMatchMode.
func WithMatchMode(mode MatchMode) Option {
	return func(index *Index) {
		index.matchMode = mode
	}
}

// Build loads the word list at path.
func Build(path string, opts ...Option) (*Index, error) {
	index, err := newIndex(opts...)
	if err != nil {
		return nil, err
	}
	entries, err := readWordList(path)
	if err != nil {
		return nil, err
	}

	index.setEntries(entries)
	slog.Debug("loaded a word list",
		"path", path,
		"words", index.Len(),
		"matchMode", index.matchMode,
	)
	return index, nil
}

// BuildFromPattern loads every word list matching pattern into one index.
// The pattern may use ** to match any number of directories.
// A pattern without glob characters is loaded like Build.
func BuildFromPattern(pattern string, opts ...Option) (*Index, error) {
	if !IsPattern(pattern) {
		return Build(pattern, opts...)
	}

	index, err := newIndex(opts...)
	if err != nil {
		return nil, err
	}
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("%w: %s", doublestar.ErrBadPattern, pattern)
	}
	paths, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("doublestar.FilepathGlob(%s) > %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoWordList, pattern)
	}

	var entries []Entry
	for _, path := range paths {
		fileEntries, err := readWordList(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}

	index.setEntries(entries)
	slog.Debug("loaded word lists",
		"pattern", pattern,
		"files", len(paths),
		"words", index.Len(),
		"matchMode", index.matchMode,
	)
	return index, nil
}

// IsPattern reports whether path contains glob characters.
func IsPattern(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// New reads whitespace delimited words from r.
func New(r io.Reader, opts ...Option) (*Index, error) {
	index, err := newIndex(opts...)
	if err != nil {
		return nil, err
	}
	entries, err := readEntries(r)
	if err != nil {
		return nil, err
	}

	index.setEntries(entries)
	return index, nil
}

func newIndex(opts ...Option) (*Index, error) {
	index := &Index{
		matchMode: MatchModeCharset,
	}
	for _, opt := range opts {
		opt(index)
	}
	if !slices.Contains(AllMatchModes, index.matchMode) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMatchMode, index.matchMode)
	}
	return index, nil
}

// setEntries must be called once, before the index is shared.
func (index *Index) setEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Fingerprint, b.Fingerprint)
	})
	index.entries = entries
}

func readWordList(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer func() {
		_ = file.Close()
	}()

	entries, err := readEntries(file)
	if err != nil {
		return nil, fmt.Errorf("readEntries(%s) > %w", path, err)
	}
	return entries, nil
}

func readEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		entries = append(entries, NewEntry(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan > %w", err)
	}
	return entries, nil
}

// Len returns the number of words in the index.
func (index *Index) Len() int {
	return len(index.entries)
}

// MatchMode returns the mode used to confirm candidates.
func (index *Index) MatchMode() MatchMode {
	return index.matchMode
}

// Entries returns a copy of the entries in fingerprint order.
func (index *Index) Entries() []Entry {
	return slices.Clone(index.entries)
}

// Unscramble returns the words of the index which are anagrams of input,
// in the order they are stored in the index.
func (index *Index) Unscramble(input string) []string {
	fingerprint := Fingerprint(input)
	isAnagram := index.matchMode.matcher()

	start := sort.Search(len(index.entries), func(i int) bool {
		return index.entries[i].Fingerprint >= fingerprint
	})

	var words []string
	for _, candidate := range index.entries[start:] {
		if candidate.Fingerprint != fingerprint {
			break
		}
		if len(candidate.Word) != len(input) {
			continue
		}
		if !isAnagram(candidate.Word, input) {
			continue
		}
		words = append(words, candidate.Word)
	}
	return words
}
