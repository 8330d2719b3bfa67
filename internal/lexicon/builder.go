package lexicon

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/legenre/internal/domain"
)

// ctxCheckEvery is how many rows are read between context checks.
const ctxCheckEvery = 4096

// Stats holds build statistics for logging.
type Stats struct {
	TotalRows       int
	Indexed         int
	Duplicates      int
	SkippedNoWord   int
	SkippedNoGender int
	UniqueWords     int
}

// Builder accumulates records into an Index. Not safe for concurrent use;
// call Index once all records are added.
type Builder struct {
	entries map[string][]domain.LexicalEntry
	keys    []string
	stats   Stats
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string][]domain.LexicalEntry)}
}

// Add normalizes rec and appends it under its key. It returns false when the
// record is rejected (no word form, gender other than "m"/"f") or is a
// duplicate of an existing (gender, lemma) pair under the same key.
func (b *Builder) Add(rec Record) bool {
	b.stats.TotalRows++

	word := strings.TrimSpace(rec.Word)
	key := domain.NormalizeText(word)
	if key == "" {
		b.stats.SkippedNoWord++
		return false
	}

	gender := domain.Gender(rec.Gender)
	if !gender.IsValid() {
		b.stats.SkippedNoGender++
		return false
	}

	lemma := strings.TrimSpace(rec.Lemma)

	existing, seen := b.entries[key]
	for _, e := range existing {
		if e.Gender == gender && e.Lemma == lemma {
			b.stats.Duplicates++
			return false
		}
	}

	if !seen {
		b.keys = append(b.keys, key)
	}
	b.entries[key] = append(existing, domain.LexicalEntry{
		Word:         word,
		Gender:       gender,
		Lemma:        lemma,
		PartOfSpeech: MapPOS(rec.Category),
		Phonetic:     strings.TrimSpace(rec.Phonetic),
		Frequency:    parseFrequency(rec.Frequency),
		Number:       strings.TrimSpace(rec.Number),
	})
	b.stats.Indexed++
	return true
}

// Stats returns the statistics accumulated so far.
func (b *Builder) Stats() Stats {
	s := b.stats
	s.UniqueWords = len(b.keys)
	return s
}

// Index freezes the accumulated entries. The Builder must not be used afterwards.
func (b *Builder) Index() *Index {
	ix := &Index{
		entries: b.entries,
		keys:    b.keys,
		size:    b.stats.Indexed,
	}
	b.entries = nil
	b.keys = nil
	return ix
}

// Build streams a lexicon from r into an Index. Any read or parse error
// aborts the build; a partial index is never returned.
func Build(ctx context.Context, r io.Reader) (*Index, Stats, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("lexicon: %w", err)
	}

	b := NewBuilder()
	for n := 0; ; n++ {
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, b.Stats(), fmt.Errorf("lexicon: %w", err)
			}
		}

		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, b.Stats(), fmt.Errorf("lexicon: %w", err)
		}
		b.Add(rec)
	}

	stats := b.Stats()
	return b.Index(), stats, nil
}

// LoadFile opens path and builds an Index from it. Files ending in ".gz"
// are decompressed on the fly.
func LoadFile(ctx context.Context, path string) (*Index, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("lexicon: open file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("lexicon: gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return Build(ctx, r)
}

// parseFrequency parses a corpus frequency, accepting a decimal comma.
// Missing or invalid values yield 0.
func parseFrequency(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
