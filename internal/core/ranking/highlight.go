package ranking

import "github.com/sahilm/fuzzy"

// Highlight returns the positions in name that match query as a fuzzy
// subsequence, for emphasis in the search view. It does not affect order.
func Highlight(name, query string) []int {
	if query == "" || name == "" {
		return nil
	}

	matches := fuzzy.Find(query, []string{name})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
