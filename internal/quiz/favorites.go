package quiz

import (
	"slices"
	"strings"

	"github.com/heartmarshall/legenre/internal/domain"
)

// Favorite is a bookmarked word with the genders it resolved to.
type Favorite struct {
	Word    string          `json:"word"`
	Genders []domain.Gender `json:"genders"`
}

// Favorites is an insertion-ordered bookmark list keyed case-insensitively.
type Favorites []Favorite

// Contains reports whether word is bookmarked.
func (f Favorites) Contains(word string) bool {
	return f.index(word) >= 0
}

// Toggle adds fav or removes the bookmark with the same word. It reports
// whether the word is bookmarked afterwards.
func (f Favorites) Toggle(fav Favorite) (Favorites, bool) {
	if i := f.index(fav.Word); i >= 0 {
		return slices.Delete(slices.Clone(f), i, i+1), false
	}
	return append(slices.Clone(f), fav), true
}

func (f Favorites) index(word string) int {
	return slices.IndexFunc(f, func(fav Favorite) bool {
		return strings.EqualFold(fav.Word, word)
	})
}
