package quiz

import (
	"testing"

	"github.com/heartmarshall/legenre/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecentSearches_Add(t *testing.T) {
	t.Parallel()

	var r RecentSearches
	for _, w := range []string{"chat", "chaise", "table", "livre", "maison", "arbre"} {
		r = r.Add(w)
	}

	assert.Equal(t, RecentSearches{"arbre", "maison", "livre", "table", "chaise"}, r)
}

func TestRecentSearches_AddMovesDuplicateToFront(t *testing.T) {
	t.Parallel()

	r := RecentSearches{"chat", "chaise", "table"}

	r = r.Add("CHAISE")

	assert.Equal(t, RecentSearches{"CHAISE", "chat", "table"}, r)
}

func TestRecentSearches_AddIgnoresBlank(t *testing.T) {
	t.Parallel()

	r := RecentSearches{"chat"}

	assert.Equal(t, RecentSearches{"chat"}, r.Add("   "))
}

func TestRecentSearches_AddDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	r := RecentSearches{"chat", "chaise"}
	_ = r.Add("table")

	assert.Equal(t, RecentSearches{"chat", "chaise"}, r)
}

func TestFavorites_Toggle(t *testing.T) {
	t.Parallel()

	var f Favorites

	f, on := f.Toggle(Favorite{Word: "chaise", Genders: []domain.Gender{domain.GenderFeminine}})
	assert.True(t, on)
	assert.True(t, f.Contains("Chaise"))

	f, on = f.Toggle(Favorite{Word: "chat", Genders: []domain.Gender{domain.GenderMasculine}})
	assert.True(t, on)
	assert.Len(t, f, 2)

	f, on = f.Toggle(Favorite{Word: "CHAISE"})
	assert.False(t, on)
	assert.False(t, f.Contains("chaise"))
	assert.Equal(t, "chat", f[0].Word)
}
