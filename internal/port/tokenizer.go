package port

// WordTokenizer splits text into normalized word tokens.
type WordTokenizer interface {
	Words(text string) []string
}
