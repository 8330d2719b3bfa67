package domain

// Gender is the grammatical gender of a French word form.
// Values are the Lexique dataset codes, which are also the wire format.
type Gender string

const (
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine:
		return true
	}
	return false
}

// Label returns the human-readable gender name.
func (g Gender) Label() string {
	switch g {
	case GenderMasculine:
		return "Masculine"
	case GenderFeminine:
		return "Feminine"
	}
	return ""
}

// PartOfSpeech is the display vocabulary for grammatical categories.
// Codes missing from the lexicon table fall back to a title-cased raw code,
// so values outside the constants below are legal.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "Noun"
	PartOfSpeechAdjective    PartOfSpeech = "Adjective"
	PartOfSpeechVerb         PartOfSpeech = "Verb"
	PartOfSpeechAdverb       PartOfSpeech = "Adverb"
	PartOfSpeechPreposition  PartOfSpeech = "Preposition"
	PartOfSpeechPronoun      PartOfSpeech = "Pronoun"
	PartOfSpeechConjunction  PartOfSpeech = "Conjunction"
	PartOfSpeechArticle      PartOfSpeech = "Article"
	PartOfSpeechOnomatopoeia PartOfSpeech = "Onomatopoeia"
	PartOfSpeechInterjection PartOfSpeech = "Interjection"
)

func (p PartOfSpeech) String() string { return string(p) }

// IsKnown reports whether p belongs to the closed display vocabulary.
func (p PartOfSpeech) IsKnown() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechAdjective, PartOfSpeechVerb, PartOfSpeechAdverb,
		PartOfSpeechPreposition, PartOfSpeechPronoun, PartOfSpeechConjunction,
		PartOfSpeechArticle, PartOfSpeechOnomatopoeia, PartOfSpeechInterjection:
		return true
	}
	return false
}
