package subword

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordPiece_SeedVocab(t *testing.T) {
	wp := NewWordPiece(SeedVocab())

	tests := []struct {
		word string
		want []string
	}{
		{"running", []string{"running"}},
		{"unfriendly", []string{"un", "##friend", "##ly"}},
		{"tokenization", []string{"token", "##ization"}},
		{"Cats", []string{"cats"}},
		{"xyz", []string{"x", "##y", "##z"}},
		{"Ünfriendly", []string{"un", "##friend", "##ly"}},
		{"dogs!", []string{"dogs", "!"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, wp.Segment(tt.word), "Segment(%q)", tt.word)
	}
	assert.Equal(t, "##", wp.ContinuationPrefix())
}

func TestWordPiece_Unknown(t *testing.T) {
	wp := NewWordPiece(SeedVocab())

	assert.Equal(t, []string{"[UNK]"}, wp.Segment("日本"))
	assert.Equal(t, []string{"[UNK]"}, wp.Segment(strings.Repeat("a", 101)))
}

func TestLoadVocab_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("[UNK]\nplay\n##ing\n##ed\n"), 0644))

	vocab, err := LoadVocab(path)
	require.NoError(t, err)
	assert.Equal(t, 4, vocab.Size())

	wp := NewWordPiece(vocab)
	assert.Equal(t, []string{"play", "##ing"}, wp.Segment("playing"))
	assert.Equal(t, []string{"[UNK]"}, wp.Segment("walking"))
}

func TestLoadVocab_TokenizerJSON(t *testing.T) {
	content := `{
  "model": {
    "type": "WordPiece",
    "unk_token": "<unk>",
    "continuing_subword_prefix": "@@",
    "max_input_chars_per_word": 10,
    "vocab": {"<unk>": 0, "test": 1, "@@ed": 2, "@@ing": 3}
  }
}`
	path := filepath.Join(t.TempDir(), "tokenizer.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	vocab, err := LoadVocab(path)
	require.NoError(t, err)

	wp := NewWordPiece(vocab)
	assert.Equal(t, "@@", wp.ContinuationPrefix())
	assert.Equal(t, []string{"test", "@@ed"}, wp.Segment("tested"))
	assert.Equal(t, []string{"<unk>"}, wp.Segment("testingtesting"))
}

func TestLoadVocab_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadVocab(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = LoadVocab(empty)
	assert.Error(t, err)

	bpe := filepath.Join(dir, "bpe.json")
	require.NoError(t, os.WriteFile(bpe, []byte(`{"model":{"type":"BPE","vocab":{"a":0}}}`), 0644))
	_, err = LoadVocab(bpe)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	seg, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"running"}, seg.Segment("running"))

	_, err = New(Options{Type: TypeSentencePiece})
	assert.Error(t, err)

	_, err = New(Options{Type: "bpe"})
	assert.Error(t, err)
}
