package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/legenre/internal/domain"
)

// posMap maps Lexique base grammatical codes (the part before ':') to the
// display vocabulary.
var posMap = map[string]domain.PartOfSpeech{
	"NOM": domain.PartOfSpeechNoun,
	"ADJ": domain.PartOfSpeechAdjective,
	"VER": domain.PartOfSpeechVerb,
	"AUX": domain.PartOfSpeechVerb,
	"ADV": domain.PartOfSpeechAdverb,
	"PRE": domain.PartOfSpeechPreposition,
	"PRO": domain.PartOfSpeechPronoun,
	"CON": domain.PartOfSpeechConjunction,
	"ART": domain.PartOfSpeechArticle,
	"ONO": domain.PartOfSpeechOnomatopoeia,
	"INT": domain.PartOfSpeechInterjection,
}

// MapPOS converts a Lexique cgram code ("NOM", "ART:def", "PRO:per") to a
// display part of speech. The lookup is case-insensitive on the base code.
// Unknown codes are title-cased ("LIA" -> "Lia"); empty input stays empty.
func MapPOS(cgram string) domain.PartOfSpeech {
	raw := strings.TrimSpace(cgram)
	if raw == "" {
		return ""
	}

	base, _, _ := strings.Cut(raw, ":")
	if pos, ok := posMap[strings.ToUpper(base)]; ok {
		return pos
	}
	return domain.PartOfSpeech(titleCase(strings.ToLower(raw)))
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
