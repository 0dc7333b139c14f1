// Package subword segments words into vocabulary pieces the way transformer
// tokenizers do. Vocabularies are loaded once and never mutated, so a loaded
// segmenter is safe for concurrent use.
package subword

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// DefaultUnkToken is the BERT unknown-word token.
const DefaultUnkToken = "[UNK]"

// DefaultContinuingPrefix marks pieces that continue a word.
const DefaultContinuingPrefix = "##"

//go:embed data/vocab.txt
var seedVocab []byte

// Vocab maps pieces to ids.
type Vocab struct {
	ids              map[string]int
	unkToken         string
	continuingPrefix string
	maxInputChars    int
}

// SeedVocab returns the small vocabulary compiled into the binary.
func SeedVocab() *Vocab {
	v, err := parseVocabLines(seedVocab)
	if err != nil {
		panic(err)
	}
	return v
}

// LoadVocab loads a vocabulary from path. Files named *.json are read as a
// HuggingFace tokenizer.json with a WordPiece model; anything else is read as
// a vocab.txt with one piece per line, the line number being the id.
func LoadVocab(path string) (*Vocab, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read tokenizer file %q", path)
		}
		return parseTokenizerJSON(content)
	}
	return loadVocabText(path)
}

// loadVocabText maps the file read-only and copies pieces out of the mapping.
func loadVocabText(path string) (*Vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open vocab file %q", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat vocab file %q", path)
	}
	if info.Size() == 0 {
		return nil, errors.Errorf("vocab file %q is empty", path)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mmap vocab file %q", path)
	}
	defer m.Unmap()

	return parseVocabLines(m)
}

func parseVocabLines(data []byte) (*Vocab, error) {
	v := newVocab()
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	id := 0
	for sc.Scan() {
		piece := strings.TrimRight(sc.Text(), "\r")
		if piece != "" {
			if _, dup := v.ids[piece]; !dup {
				v.ids[piece] = id
			}
		}
		id++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan vocab")
	}
	if len(v.ids) == 0 {
		return nil, errors.New("vocab has no pieces")
	}
	return v, nil
}

// tokenizerJSON is the part of tokenizer.json the segmenter needs.
type tokenizerJSON struct {
	Model struct {
		Type                    string         `json:"type"`
		Vocab                   map[string]int `json:"vocab"`
		UnkToken                string         `json:"unk_token"`
		ContinuingSubwordPrefix string         `json:"continuing_subword_prefix"`
		MaxInputCharsPerWord    int            `json:"max_input_chars_per_word"`
	} `json:"model"`
}

func parseTokenizerJSON(content []byte) (*Vocab, error) {
	var tj tokenizerJSON
	if err := json.Unmarshal(content, &tj); err != nil {
		return nil, errors.Wrap(err, "failed to parse tokenizer.json")
	}
	if tj.Model.Type != "" && tj.Model.Type != "WordPiece" {
		return nil, errors.Errorf("tokenizer.json model type %q is not WordPiece", tj.Model.Type)
	}
	if len(tj.Model.Vocab) == 0 {
		return nil, errors.New("tokenizer.json has an empty vocab")
	}

	v := newVocab()
	v.ids = tj.Model.Vocab
	if tj.Model.UnkToken != "" {
		v.unkToken = tj.Model.UnkToken
	}
	if tj.Model.ContinuingSubwordPrefix != "" {
		v.continuingPrefix = tj.Model.ContinuingSubwordPrefix
	}
	if tj.Model.MaxInputCharsPerWord > 0 {
		v.maxInputChars = tj.Model.MaxInputCharsPerWord
	}
	return v, nil
}

func newVocab() *Vocab {
	return &Vocab{
		ids:              make(map[string]int),
		unkToken:         DefaultUnkToken,
		continuingPrefix: DefaultContinuingPrefix,
		maxInputChars:    100,
	}
}

// Size is the number of pieces.
func (v *Vocab) Size() int {
	return len(v.ids)
}
