package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/wordsolver/internal/dictionary"
	"github.com/at-ishikawa/wordsolver/internal/statistics"
)

const maxReportedWords = 5

// RunDictionaryReport displays how the words of index spread over fingerprints
func RunDictionaryReport(w io.Writer, index *dictionary.Index, top int) error {
	result := statistics.CalculateStatistics(index.Entries(), top)

	if result.Aggregate.WordsCount == 0 {
		_, err := fmt.Fprintln(w, "The word list has no words.")
		return err
	}

	var b strings.Builder
	b.WriteString("Dictionary Statistics Report\n")
	b.WriteString("============================\n\n")
	fmt.Fprintf(&b, "%-12s  %-6s  %-8s  %s\n", "Fingerprint", "Words", "Anagrams", "Examples")
	fmt.Fprintf(&b, "%-12s  %-6s  %-8s  %s\n", "-----------", "-----", "--------", "--------")

	for _, bucket := range result.Buckets {
		examples := bucket.Words
		if len(examples) > maxReportedWords {
			examples = examples[:maxReportedWords]
		}
		fmt.Fprintf(&b, "%-12d  %-6d  %-8d  %s\n",
			bucket.Fingerprint,
			len(bucket.Words),
			bucket.AnagramClasses,
			strings.Join(examples, ", "),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%-22s  %d\n", "Words:", result.Aggregate.WordsCount)
	fmt.Fprintf(&b, "%-22s  %d\n", "Fingerprints:", result.Aggregate.FingerprintsCount)
	fmt.Fprintf(&b, "%-22s  %d\n", "Anagram classes:", result.Aggregate.AnagramClasses)
	fmt.Fprintf(&b, "%-22s  %d\n", "Largest bucket:", result.Aggregate.LargestBucketSize)
	fmt.Fprintf(&b, "%-22s  %.2f\n", "Average bucket size:", result.AverageBucketSize())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("io.WriteString > %w", err)
	}
	return nil
}
