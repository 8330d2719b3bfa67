package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// maxLineSize is the buffer size for bufio.Scanner (1 MB).
	maxLineSize = 1 << 20

	colWord      = "ortho"
	colPhonetic  = "phon"
	colLemma     = "lemme"
	colCategory  = "cgram"
	colGender    = "genre"
	colNumber    = "nombre"
	colFrequency = "freqfilms2"
)

// ErrMalformed is returned for a lexicon stream that cannot be parsed.
var ErrMalformed = errors.New("malformed lexicon")

// Record is one raw row of the lexicon, keyed by column meaning.
// Optional columns missing from the header are left empty.
type Record struct {
	Line      int
	Word      string
	Phonetic  string
	Lemma     string
	Category  string
	Gender    string
	Number    string
	Frequency string
}

// Reader streams Records from a tab-separated lexicon with a header row.
// Only one row is held in memory at a time.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	width   int
	columns map[string]int
}

// NewReader reads the header row and returns a Reader positioned at the
// first data row. The header must name at least the ortho and genre columns.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	rd := &Reader{sc: sc}

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}
	rd.line = 1

	header := strings.Split(strings.TrimPrefix(trimEOL(sc.Text()), "\ufeff"), "\t")
	rd.width = len(header)
	rd.columns = make(map[string]int, len(header))
	for i, name := range header {
		rd.columns[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{colWord, colGender} {
		if _, ok := rd.columns[required]; !ok {
			return nil, fmt.Errorf("%w: header has no %q column", ErrMalformed, required)
		}
	}

	return rd, nil
}

// Next returns the next data row, or io.EOF when the stream is exhausted.
// Blank lines are skipped. A row whose column count differs from the header
// is reported as ErrMalformed.
func (rd *Reader) Next() (Record, error) {
	for rd.sc.Scan() {
		rd.line++
		line := trimEOL(rd.sc.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != rd.width {
			return Record{}, fmt.Errorf("%w: line %d: got %d columns, want %d",
				ErrMalformed, rd.line, len(fields), rd.width)
		}

		return Record{
			Line:      rd.line,
			Word:      rd.field(fields, colWord),
			Phonetic:  rd.field(fields, colPhonetic),
			Lemma:     rd.field(fields, colLemma),
			Category:  rd.field(fields, colCategory),
			Gender:    rd.field(fields, colGender),
			Number:    rd.field(fields, colNumber),
			Frequency: rd.field(fields, colFrequency),
		}, nil
	}

	if err := rd.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("line %d: scanner error: %w", rd.line+1, err)
	}
	return Record{}, io.EOF
}

func (rd *Reader) field(fields []string, column string) string {
	idx, ok := rd.columns[column]
	if !ok {
		return ""
	}
	return fields[idx]
}

func trimEOL(s string) string {
	return strings.TrimSuffix(s, "\r")
}
