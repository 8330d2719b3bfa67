package domain

// LexicalEntry is one documented reading of a French word form.
type LexicalEntry struct {
	Word         string       `json:"word"`
	Gender       Gender       `json:"gender"`
	Lemma        string       `json:"lemma"`
	PartOfSpeech PartOfSpeech `json:"partOfSpeech"`
	Phonetic     string       `json:"phonetic"`
	Frequency    float64      `json:"frequency"`
	Number       string       `json:"number"`
}

// GenderSet is the set of genders inferred for a word outside the index.
// It holds zero, one or both genders.
type GenderSet struct {
	masculine bool
	feminine  bool
}

// NewGenderSet returns a set containing the given genders. Invalid values are ignored.
func NewGenderSet(genders ...Gender) GenderSet {
	var s GenderSet
	for _, g := range genders {
		s.Add(g)
	}
	return s
}

// Add inserts g into the set. Invalid genders are ignored.
func (s *GenderSet) Add(g Gender) {
	switch g {
	case GenderMasculine:
		s.masculine = true
	case GenderFeminine:
		s.feminine = true
	}
}

// Union adds every member of other to s.
func (s *GenderSet) Union(other GenderSet) {
	s.masculine = s.masculine || other.masculine
	s.feminine = s.feminine || other.feminine
}

func (s GenderSet) Has(g Gender) bool {
	switch g {
	case GenderMasculine:
		return s.masculine
	case GenderFeminine:
		return s.feminine
	}
	return false
}

func (s GenderSet) Len() int {
	n := 0
	if s.masculine {
		n++
	}
	if s.feminine {
		n++
	}
	return n
}

func (s GenderSet) IsEmpty() bool { return s.Len() == 0 }

// Genders lists the members, masculine first.
func (s GenderSet) Genders() []Gender {
	out := make([]Gender, 0, 2)
	if s.masculine {
		out = append(out, GenderMasculine)
	}
	if s.feminine {
		out = append(out, GenderFeminine)
	}
	return out
}
