package lookup

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/heartmarshall/legenre/internal/domain"
)

type lexicalIndex interface {
	Lookup(key string) ([]domain.LexicalEntry, bool)
	Len() int
	KeyAt(i int) string
}

type genderExtractor interface {
	ExtractGenders(ctx context.Context, word string) domain.GenderSet
}

// Service resolves words against the lexical index, falling back to an
// external gender extractor on a miss.
type Service struct {
	log      *slog.Logger
	index    lexicalIndex
	fallback genderExtractor
	intn     func(n int) int
}

// NewService creates a lookup service over an immutable index.
// The fallback is disabled until SetFallback is called.
func NewService(logger *slog.Logger, index lexicalIndex) *Service {
	return &Service{
		log:   logger.With("service", "lookup"),
		index: index,
		intn:  rand.IntN,
	}
}

// SetFallback injects the optional extractor consulted on index misses.
func (s *Service) SetFallback(e genderExtractor) {
	s.fallback = e
}
