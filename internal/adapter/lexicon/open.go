package lexicon

import (
	"fmt"
	"io"
	"os"

	"textlab/internal/port"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the dictionary at path: the embedded seed when path is empty, a
// MemoryIndex when path is a WordNet dict directory, or a BoltIndex otherwise.
// The returned closer releases the bbolt file, if any.
func Open(path string) (port.LemmaIndex, io.Closer, error) {
	if path == "" {
		idx, err := LoadMemoryIndex(SeedFS())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load seed lexicon: %w", err)
		}
		return idx, nopCloser{}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("lexicon path: %w", err)
	}
	if info.IsDir() {
		idx, err := LoadMemoryIndex(os.DirFS(path))
		if err != nil {
			return nil, nil, err
		}
		return idx, nopCloser{}, nil
	}

	idx, err := OpenBoltIndex(path)
	if err != nil {
		return nil, nil, err
	}
	return idx, idx, nil
}
