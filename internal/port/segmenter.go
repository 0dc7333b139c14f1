package port

// Segmenter splits a word into vocabulary pieces.
type Segmenter interface {
	// Segment returns the pieces of word in order. Continuation pieces keep
	// their marker (for WordPiece, the "##" prefix).
	Segment(word string) []string

	// ContinuationPrefix is the marker carried by non-initial pieces, if any.
	ContinuationPrefix() string
}
