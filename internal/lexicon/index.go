// Package lexicon builds the immutable word index from a Lexique-style TSV
// dataset. Pure data: reader in, index out. No network or HTTP dependencies.
package lexicon

import (
	"iter"
	"slices"

	"github.com/heartmarshall/legenre/internal/domain"
)

// Index maps a normalized word to all of its documented readings.
// An Index is read-only once built and safe for concurrent use.
type Index struct {
	entries map[string][]domain.LexicalEntry
	keys    []string
	size    int
}

// Lookup returns the entries stored under key. The key must already be
// normalized with domain.NormalizeText. The returned slice is a copy.
func (ix *Index) Lookup(key string) ([]domain.LexicalEntry, bool) {
	entries, ok := ix.entries[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(entries), true
}

// Len returns the number of distinct keys.
func (ix *Index) Len() int { return len(ix.keys) }

// Size returns the total number of stored entries across all keys.
func (ix *Index) Size() int { return ix.size }

// KeyAt returns the i-th key in insertion order. It panics if i is out of range.
func (ix *Index) KeyAt(i int) string { return ix.keys[i] }

// All iterates keys in insertion order with their entries.
// Yielded slices alias the index and must not be modified.
func (ix *Index) All() iter.Seq2[string, []domain.LexicalEntry] {
	return func(yield func(string, []domain.LexicalEntry) bool) {
		for _, k := range ix.keys {
			if !yield(k, ix.entries[k]) {
				return
			}
		}
	}
}
