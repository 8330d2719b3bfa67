package lexicon

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/heartmarshall/legenre/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenderMap(t *testing.T) {
	t.Parallel()

	ix := buildString(t,
		"chat\tSa\tchat\tNOM\tm\ts\t1\n"+
			"livre\tlivR\tlivre\tNOM\tf\ts\t1\n"+
			"livre\tlivR\tlivre\tNOM\tm\ts\t1\n"+
			"sens\tsAs\tsens\tNOM\tm\ts\t1\n"+
			"sens\tsAs\tsentir\tNOM\tm\ts\t1\n")

	got := GenderMap(ix)
	assert.Equal(t, map[string][]domain.Gender{
		"chat":  {domain.GenderMasculine},
		"livre": {domain.GenderMasculine, domain.GenderFeminine},
		"sens":  {domain.GenderMasculine},
	}, got)
}

func TestWriteGenderMap(t *testing.T) {
	t.Parallel()

	ix := buildString(t,
		"Chaise\tSEz\tchaise\tNOM\tf\ts\t1\n"+
			"élève\telEv\télève\tNOM\tm\ts\t1\n"+
			"élève\telEv\télève\tNOM\tf\ts\t1\n")

	var buf bytes.Buffer
	require.NoError(t, WriteGenderMap(&buf, ix))

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string][]string{
		"chaise": {"f"},
		"élève":  {"m", "f"},
	}, decoded)
}
