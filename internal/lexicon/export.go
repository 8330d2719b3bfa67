package lexicon

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/heartmarshall/legenre/internal/domain"
)

// GenderMap returns, per key, the distinct genders attested in the index
// (masculine first). Keys with a single reading map to a one-element list.
func GenderMap(ix *Index) map[string][]domain.Gender {
	out := make(map[string][]domain.Gender, ix.Len())
	for key, entries := range ix.All() {
		var set domain.GenderSet
		for _, e := range entries {
			set.Add(e.Gender)
		}
		out[key] = set.Genders()
	}
	return out
}

// WriteGenderMap encodes GenderMap(ix) as a compact JSON object, the static
// artifact served to browser clients.
func WriteGenderMap(w io.Writer, ix *Index) error {
	if err := json.NewEncoder(w).Encode(GenderMap(ix)); err != nil {
		return fmt.Errorf("lexicon: encode gender map: %w", err)
	}
	return nil
}
