package ranking

import (
	"math"
	"sort"

	"github.com/xrash/smetrics"

	"pyroxene.dev/launcher/internal/core/desktop"
)

const (
	// DefaultLimit is the number of search results shown by the menu
	DefaultLimit = 34

	// Scale is the integer resolution scores are quantized to
	Scale = math.MaxUint32

	boostThreshold = 0.7
	prefixSize     = 4
)

// Result is one ranked entry
type Result struct {
	Entry *desktop.Entry
	Score uint64
}

// Similarity returns the Jaro-Winkler similarity of name and query in [0, 1].
// Comparison is case-sensitive and counts characters, not bytes.
func Similarity(name, query string) float64 {
	a, b := byteAlphabet(name, query)
	return smetrics.JaroWinkler(a, b, boostThreshold, prefixSize)
}

// Quantize maps a similarity onto [0, Scale] so ordering is reproducible.
// Scores further apart than 1/Scale keep their relative order.
func Quantize(sim float64) uint64 {
	switch {
	case math.IsNaN(sim) || sim <= 0:
		return 0
	case sim >= 1:
		return Scale
	}
	return uint64(math.Floor(sim * Scale))
}

// Rank orders entries by descending similarity of their name to query.
// Equal scores keep input order. An empty query yields nil so the caller
// can fall back to the category view.
func Rank(entries []*desktop.Entry, query string) []Result {
	if query == "" {
		return nil
	}

	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{Entry: e, Score: Quantize(Similarity(e.Name(), query))}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Top truncates ranked results to at most n. n <= 0 means no cap.
func Top(results []Result, n int) []Result {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}

// Entries strips scores from results
func Entries(results []Result) []*desktop.Entry {
	out := make([]*desktop.Entry, len(results))
	for i, r := range results {
		out[i] = r.Entry
	}
	return out
}

// Fraction converts a quantized score back to [0, 1] for display
func Fraction(score uint64) float64 {
	return float64(score) / Scale
}
