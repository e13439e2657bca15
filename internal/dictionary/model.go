// Package dictionary provides an index over a word list which answers
// anagram (unscramble) queries.
package dictionary

import "slices"

// Entry is a word of the word list together with its fingerprint.
type Entry struct {
	Word        string `yaml:"word"`
	Fingerprint int    `yaml:"fingerprint"`
}

// NewEntry creates an Entry for word.
func NewEntry(word string) Entry {
	return Entry{
		Word:        word,
		Fingerprint: Fingerprint(word),
	}
}

// Fingerprint returns the sum of the lowercase ASCII codes of word.
// Words which are anagrams of each other always share a fingerprint,
// but the reverse does not hold.
func Fingerprint(word string) int {
	sum := 0
	for i := 0; i < len(word); i++ {
		sum += int(toLower(word[i]))
	}
	return sum
}

// HasLetter reports whether word contains ch, ignoring case.
func HasLetter(ch byte, word string) bool {
	ch = toLower(ch)
	for i := 0; i < len(word); i++ {
		if toLower(word[i]) == ch {
			return true
		}
	}
	return false
}

// SortedLetters returns the bytes of word folded to lowercase ASCII, in sorted order.
// Words with equal sorted letters are true anagrams of each other.
func SortedLetters(word string) string {
	letters := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		letters[i] = toLower(word[i])
	}
	slices.Sort(letters)
	return string(letters)
}

func toLower(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
