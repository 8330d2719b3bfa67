package lookup

import (
	"context"
	"fmt"

	"github.com/heartmarshall/legenre/internal/domain"
)

// Random picks a key uniformly from the index. Only indexed words are
// eligible; the fallback is never involved.
func (s *Service) Random(_ context.Context) (*RandomResult, error) {
	n := s.index.Len()
	if n == 0 {
		return nil, domain.ErrIndexEmpty
	}

	key := s.index.KeyAt(s.intn(n))
	entries, ok := s.index.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("random: key %q missing from index", key)
	}

	return &RandomResult{Word: key, Entries: entries}, nil
}
