package statistics

import (
	"cmp"
	"slices"

	"github.com/at-ishikawa/wordsolver/internal/dictionary"
)

// BucketStatistics holds the words sharing one fingerprint
type BucketStatistics struct {
	Fingerprint    int
	Words          []string // in index order
	AnagramClasses int      // groups of words which are true anagrams of each other
}

// AggregateStatistics holds totals across the whole word list
type AggregateStatistics struct {
	WordsCount        int
	FingerprintsCount int
	AnagramClasses    int // distinct letter multisets, ignoring case
	LargestBucketSize int
}

// StatisticsResult holds the largest buckets and the aggregate statistics
type StatisticsResult struct {
	Buckets   []BucketStatistics
	Aggregate AggregateStatistics
}

// AverageBucketSize returns the mean number of words per fingerprint
func (result StatisticsResult) AverageBucketSize() float64 {
	if result.Aggregate.FingerprintsCount == 0 {
		return 0
	}
	return float64(result.Aggregate.WordsCount) / float64(result.Aggregate.FingerprintsCount)
}

// CalculateStatistics summarizes how the words of an index spread over fingerprints.
// entries must be sorted by fingerprint, as dictionary.Index.Entries returns them.
// Only the top largest buckets are returned; 0 means all of them.
func CalculateStatistics(entries []dictionary.Entry, top int) StatisticsResult {
	var buckets []BucketStatistics
	globalClasses := make(map[string]struct{})

	for start := 0; start < len(entries); {
		end := start
		for end < len(entries) && entries[end].Fingerprint == entries[start].Fingerprint {
			end++
		}
		buckets = append(buckets, newBucketStatistics(entries[start:end], globalClasses))
		start = end
	}

	return buildResult(buckets, len(entries), len(globalClasses), top)
}

func newBucketStatistics(entries []dictionary.Entry, globalClasses map[string]struct{}) BucketStatistics {
	bucket := BucketStatistics{
		Fingerprint: entries[0].Fingerprint,
		Words:       make([]string, 0, len(entries)),
	}
	classes := make(map[string]struct{})
	for _, entry := range entries {
		bucket.Words = append(bucket.Words, entry.Word)
		key := dictionary.SortedLetters(entry.Word)
		classes[key] = struct{}{}
		globalClasses[key] = struct{}{}
	}
	bucket.AnagramClasses = len(classes)
	return bucket
}

func buildResult(buckets []BucketStatistics, wordsCount, classesCount, top int) StatisticsResult {
	// Largest first, ties by fingerprint to keep the report stable
	slices.SortFunc(buckets, func(a, b BucketStatistics) int {
		if c := cmp.Compare(len(b.Words), len(a.Words)); c != 0 {
			return c
		}
		return cmp.Compare(a.Fingerprint, b.Fingerprint)
	})

	aggregate := AggregateStatistics{
		WordsCount:        wordsCount,
		FingerprintsCount: len(buckets),
		AnagramClasses:    classesCount,
	}
	if len(buckets) > 0 {
		aggregate.LargestBucketSize = len(buckets[0].Words)
	}
	if top > 0 && len(buckets) > top {
		buckets = buckets[:top]
	}

	return StatisticsResult{
		Buckets:   buckets,
		Aggregate: aggregate,
	}
}
