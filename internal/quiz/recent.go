package quiz

import "strings"

// MaxRecentSearches bounds the search history.
const MaxRecentSearches = 5

// RecentSearches is a most-recent-first list of searched words without
// case-insensitive duplicates.
type RecentSearches []string

// Add moves word to the front, dropping an earlier spelling of the same
// word and anything past MaxRecentSearches.
func (r RecentSearches) Add(word string) RecentSearches {
	word = strings.TrimSpace(word)
	if word == "" {
		return r
	}

	out := make(RecentSearches, 0, MaxRecentSearches)
	out = append(out, word)
	for _, w := range r {
		if len(out) == MaxRecentSearches {
			break
		}
		if !strings.EqualFold(w, word) {
			out = append(out, w)
		}
	}
	return out
}
