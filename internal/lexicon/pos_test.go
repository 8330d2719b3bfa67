package lexicon

import (
	"testing"

	"github.com/heartmarshall/legenre/internal/domain"
)

func TestMapPOS(t *testing.T) {
	tests := []struct {
		input string
		want  domain.PartOfSpeech
	}{
		// Base codes
		{"NOM", domain.PartOfSpeechNoun},
		{"ADJ", domain.PartOfSpeechAdjective},
		{"VER", domain.PartOfSpeechVerb},
		{"AUX", domain.PartOfSpeechVerb},
		{"ADV", domain.PartOfSpeechAdverb},
		{"PRE", domain.PartOfSpeechPreposition},
		{"PRO", domain.PartOfSpeechPronoun},
		{"CON", domain.PartOfSpeechConjunction},
		{"ART", domain.PartOfSpeechArticle},
		{"ONO", domain.PartOfSpeechOnomatopoeia},
		{"INT", domain.PartOfSpeechInterjection},

		// Sub-categorized codes use the base
		{"ART:def", domain.PartOfSpeechArticle},
		{"ART:ind", domain.PartOfSpeechArticle},
		{"PRO:per", domain.PartOfSpeechPronoun},
		{"ADJ:num", domain.PartOfSpeechAdjective},

		// Case-insensitive
		{"nom", domain.PartOfSpeechNoun},
		{" Nom ", domain.PartOfSpeechNoun},

		// Unknown codes are title-cased
		{"LIA", domain.PartOfSpeech("Lia")},
		{"XYZ:abc", domain.PartOfSpeech("Xyz:abc")},
		{"éta", domain.PartOfSpeech("Éta")},

		// Empty
		{"", domain.PartOfSpeech("")},
		{"   ", domain.PartOfSpeech("")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := MapPOS(tt.input)
			if got != tt.want {
				t.Errorf("MapPOS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
