package lookup

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/legenre/internal/domain"
)

// Lookup resolves word. A local hit never consults the fallback. A miss
// with no fallback evidence is reported as Found=false, not as an error.
func (s *Service) Lookup(ctx context.Context, word string) (*Result, error) {
	trimmed := strings.TrimSpace(word)
	key := domain.NormalizeText(trimmed)
	if key == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	if entries, ok := s.index.Lookup(key); ok {
		return &Result{
			Word:    trimmed,
			Found:   true,
			Source:  SourceLocal,
			Entries: entries,
		}, nil
	}

	if s.fallback == nil {
		return notFound(trimmed), nil
	}

	genders := s.fallback.ExtractGenders(ctx, trimmed)
	if genders.IsEmpty() {
		s.log.DebugContext(ctx, "word not found", slog.String("word", trimmed))
		return notFound(trimmed), nil
	}

	s.log.InfoContext(ctx, "word resolved by fallback",
		slog.String("word", trimmed),
		slog.Int("genders", genders.Len()),
	)

	return &Result{
		Word:    trimmed,
		Found:   true,
		Source:  SourceFallback,
		Entries: synthesize(trimmed, genders),
	}, nil
}

func notFound(word string) *Result {
	return &Result{Word: word, Entries: []domain.LexicalEntry{}}
}

// synthesize builds one minimal entry per inferred gender, masculine first.
func synthesize(word string, genders domain.GenderSet) []domain.LexicalEntry {
	gs := genders.Genders()
	entries := make([]domain.LexicalEntry, 0, len(gs))
	for _, g := range gs {
		entries = append(entries, domain.LexicalEntry{
			Word:         word,
			Gender:       g,
			Lemma:        word,
			PartOfSpeech: domain.PartOfSpeechNoun,
		})
	}
	return entries
}
