package subword

import (
	"strings"

	esentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/pkg/errors"

	"textlab/internal/port"
)

// metaspace is the SentencePiece word-start marker (U+2581).
const metaspace = "▁"

// SentencePiece segments words with a SentencePiece model file.
type SentencePiece struct {
	proc *esentencepiece.Processor
}

var _ port.Segmenter = (*SentencePiece)(nil)

// NewSentencePiece loads a SentencePiece model proto from path.
func NewSentencePiece(path string) (*SentencePiece, error) {
	proc, err := esentencepiece.NewProcessorFromPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create sentencepiece processor from %q", path)
	}
	return &SentencePiece{proc: proc}, nil
}

// ContinuationPrefix is empty: SentencePiece marks word starts rather than continuations.
func (s *SentencePiece) ContinuationPrefix() string {
	return ""
}

// Segment returns the pieces of word with the word-start marker removed.
// Pieces that consisted only of the marker are dropped.
func (s *SentencePiece) Segment(word string) []string {
	tokens := s.proc.Encode(word)
	pieces := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		piece := strings.ReplaceAll(tok.Text, metaspace, "")
		if piece == "" {
			continue
		}
		pieces = append(pieces, piece)
	}
	return pieces
}
