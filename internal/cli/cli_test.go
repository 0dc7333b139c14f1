package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlab/config"
	"textlab/internal/domain"
)

func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--dir", dir, "--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTokenizeCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "tokenize", "--mode", "word", "--json", "Hello, world")
	require.NoError(t, err)

	var tokens []string
	require.NoError(t, json.Unmarshal([]byte(out), &tokens))
	assert.Equal(t, []string{"Hello", "world"}, tokens)
}

func TestNGramsCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "ngrams", "--type", "bigram", "--counts=false", "--json", "the cat the cat")
	require.NoError(t, err)
	var surfaces []string
	require.NoError(t, json.Unmarshal([]byte(out), &surfaces))
	assert.Equal(t, []string{"the cat", "cat the", "the cat"}, surfaces)

	out, err = runCLI(t, dir, "ngrams", "--type", "bigram", "--counts", "--json", "the cat the cat")
	require.NoError(t, err)
	var counts []ngramCount
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(t, []ngramCount{{"the cat", 2}, {"cat the", 1}}, counts)

	_, err = runCLI(t, dir, "ngrams", "--type", "quadgram", "--counts=false", "a b")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPerplexityCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "perplexity", "--order", "2", "--json",
		"--train", "the cat sat on the mat", "the cat sat")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3.2404, res["perplexity"])

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "corpus"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corpus", "a.txt"), []byte("the cat sat"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corpus", "b.txt"), []byte("on the mat"), 0644))

	perplexityTrain = ""
	perplexityCmd.Flags().Lookup("train").Changed = false
	out, err = runCLI(t, dir, "perplexity", "--order", "2", "--json",
		"--train-glob", "corpus/*.txt", "the cat sat")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3.2404, res["perplexity"])
	perplexityTrainGlob = nil
	perplexityCmd.Flags().Lookup("train-glob").Changed = false
}

func TestDistanceCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "distance", "--json", "--matrix=false", "kitten", "sitting")
	require.NoError(t, err)
	assert.JSONEq(t, `{"distance":3,"source":"kitten","target":"sitting"}`, out)

	out, err = runCLI(t, dir, "distance", "--json", "--matrix", "ab", "b")
	require.NoError(t, err)
	assert.JSONEq(t, `{"distance":1,"source":"ab","target":"b","matrix":[[0,1],[1,1],[2,1]]}`, out)

	_, err = runCLI(t, dir, "distance", "only-one")
	assert.Error(t, err)
}

func TestMorphCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "morph", "--pos", "v", "--json", "running", "went")
	require.NoError(t, err)
	var results []domain.MorphAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "run", results[0].Lemma)
	assert.Equal(t, "run", results[0].Stem)
	assert.Equal(t, "go", results[1].Lemma)
	morphPOS = ""
}

func TestLexiconImportAndLookup(t *testing.T) {
	dir := t.TempDir()
	dict := filepath.Join(dir, "dict")
	require.NoError(t, os.MkdirAll(dict, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dict, "index.noun"), []byte("goose n 1 0 1 0 00000001\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dict, "noun.exc"), []byte("geese goose\n"), 0644))

	out, err := runCLI(t, dir, "lexicon", "import", dict)
	require.NoError(t, err)
	assert.Contains(t, out, "Import complete")
	assert.FileExists(t, filepath.Join(dir, ".textlab", "lexicon.db"))

	out, err = runCLI(t, dir, "lexicon", "info", "--json")
	require.NoError(t, err)
	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.EqualValues(t, 1, info["version"])
	assert.EqualValues(t, 2, info["entries"])

	// the imported database replaces the seed lexicon for this directory
	out, err = runCLI(t, dir, "lexicon", "lookup", "--pos", "n", "--json", "geese")
	require.NoError(t, err)
	var results []lookupResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "goose", results[0].Lemma)
	lexiconPOS = ""
	lexiconJSON = false
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "init")
	require.NoError(t, err)
	path := config.DataConfigPath(dir)
	assert.Equal(t, path, strings.TrimSpace(out))

	saved, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Perplexity.Order)
	assert.Equal(t, 1000, saved.EditDistance.MaxInputRunes)

	_, err = runCLI(t, dir, "init")
	assert.Error(t, err)

	_, err = runCLI(t, dir, "init", "--force")
	require.NoError(t, err)
	initForce = false
	initCmd.Flags().Lookup("force").Changed = false
}
