// Package lexicon provides dictionary lemma lookup over WordNet-format data.
//
// A dictionary directory holds, per part of speech, an index file
// (index.noun, index.verb, index.adj, index.adv) whose first field on each line
// is a lemma, and an exception file (noun.exc, ...) listing irregular forms
// followed by their base forms.
package lexicon

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"textlab/internal/domain"
)

//go:embed data
var seedFS embed.FS

// SeedFS returns the dictionary compiled into the binary.
func SeedFS() fs.FS {
	sub, err := fs.Sub(seedFS, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Entries is a parsed dictionary: lemmas and exceptions per part of speech.
type Entries struct {
	Lemmas     map[domain.PartOfSpeech][]string
	Exceptions map[domain.PartOfSpeech]map[string][]string
}

// Len is the total number of lemmas and exception forms.
func (e *Entries) Len() int {
	n := 0
	for _, l := range e.Lemmas {
		n += len(l)
	}
	for _, x := range e.Exceptions {
		n += len(x)
	}
	return n
}

// ReadDir parses every index and exception file present in fsys. Missing files
// are skipped; a directory without any index file is an error.
func ReadDir(fsys fs.FS) (*Entries, error) {
	e := &Entries{
		Lemmas:     make(map[domain.PartOfSpeech][]string),
		Exceptions: make(map[domain.PartOfSpeech]map[string][]string),
	}

	found := false
	for _, pos := range domain.PartsOfSpeech {
		lemmas, ok, err := readFile(fsys, "index."+pos.FileName(), parseIndex)
		if err != nil {
			return nil, err
		}
		if ok {
			found = true
			e.Lemmas[pos] = lemmas
		}

		exc, ok, err := readFile(fsys, pos.FileName()+".exc", parseExceptions)
		if err != nil {
			return nil, err
		}
		if ok {
			e.Exceptions[pos] = exc
		}
	}

	if !found {
		return nil, fmt.Errorf("no WordNet index files found")
	}
	return e, nil
}

func readFile[T any](fsys fs.FS, name string, parse func(io.Reader) (T, error)) (T, bool, error) {
	var zero T
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return v, true, nil
}

// parseIndex returns the lemma column of an index file. Lines starting with a
// space are the license header.
func parseIndex(r io.Reader) ([]string, error) {
	var lemmas []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == ' ' {
			continue
		}
		lemma, _, _ := strings.Cut(line, " ")
		lemmas = append(lemmas, strings.ToLower(lemma))
	}
	return lemmas, sc.Err()
}

func parseExceptions(r io.Reader) (map[string][]string, error) {
	exc := make(map[string][]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		form := strings.ToLower(fields[0])
		exc[form] = append(exc[form], fields[1:]...)
	}
	return exc, sc.Err()
}
