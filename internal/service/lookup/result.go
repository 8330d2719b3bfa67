package lookup

import "github.com/heartmarshall/legenre/internal/domain"

// Source tells where a lookup result came from.
type Source string

const (
	SourceLocal    Source = "local"
	SourceFallback Source = "fallback"
)

// Result is the outcome of a word lookup. Entries is never nil.
type Result struct {
	Word    string
	Found   bool
	Source  Source
	Entries []domain.LexicalEntry
}

// RandomResult is a word picked uniformly from the index with its entries.
type RandomResult struct {
	Word    string
	Entries []domain.LexicalEntry
}
