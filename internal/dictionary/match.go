package dictionary

import (
	"errors"
	"fmt"
)

// MatchMode decides how a candidate with the same fingerprint and length
// is confirmed as an anagram of the input.
type MatchMode string

const (
	// MatchModeCharset accepts a candidate when every character of the
	// candidate appears in the input and vice versa. Letter counts are not
	// compared, so "aabcc" and "abbbc" match each other.
	MatchModeCharset MatchMode = "charset"
	// MatchModeStrict accepts a candidate only when both words have the
	// same count of every letter.
	MatchModeStrict MatchMode = "strict"
)

var (
	ErrUnknownMatchMode = errors.New("unknown match mode")

	AllMatchModes = []MatchMode{MatchModeCharset, MatchModeStrict}
)

// ParseMatchMode converts a string to a MatchMode.
func ParseMatchMode(value string) (MatchMode, error) {
	for _, mode := range AllMatchModes {
		if value == string(mode) {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownMatchMode, value)
}

func (mode MatchMode) String() string {
	return string(mode)
}

func (mode MatchMode) matcher() func(candidate, input string) bool {
	if mode == MatchModeStrict {
		return sameLetterCounts
	}
	return sameCharacterSet
}

func sameCharacterSet(candidate, input string) bool {
	for i := 0; i < len(candidate); i++ {
		if !HasLetter(candidate[i], input) {
			return false
		}
	}
	for i := 0; i < len(input); i++ {
		if !HasLetter(input[i], candidate) {
			return false
		}
	}
	return true
}

func sameLetterCounts(candidate, input string) bool {
	var counts [256]int
	for i := 0; i < len(candidate); i++ {
		counts[toLower(candidate[i])]++
	}
	for i := 0; i < len(input); i++ {
		ch := toLower(input[i])
		if counts[ch] == 0 {
			return false
		}
		counts[ch]--
	}
	for _, count := range counts {
		if count != 0 {
			return false
		}
	}
	return true
}
