package subword

import (
	"github.com/pkg/errors"

	"textlab/internal/port"
)

const (
	TypeWordPiece     = "wordpiece"
	TypeSentencePiece = "sentencepiece"
)

// Options selects and configures a segmenter.
type Options struct {
	Type      string
	VocabPath string
}

// New builds the segmenter described by opts. A wordpiece segmenter without a
// vocab path uses the embedded seed vocabulary.
func New(opts Options) (port.Segmenter, error) {
	switch opts.Type {
	case "", TypeWordPiece:
		if opts.VocabPath == "" {
			return NewWordPiece(SeedVocab()), nil
		}
		vocab, err := LoadVocab(opts.VocabPath)
		if err != nil {
			return nil, err
		}
		return NewWordPiece(vocab), nil
	case TypeSentencePiece:
		if opts.VocabPath == "" {
			return nil, errors.New("sentencepiece segmenter needs a model path")
		}
		return NewSentencePiece(opts.VocabPath)
	}
	return nil, errors.Errorf("unsupported segmenter type: %s", opts.Type)
}
