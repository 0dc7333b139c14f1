package cli

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"textlab/config"
	"textlab/internal/adapter/lexicon"
	"textlab/internal/domain"
)

var (
	lexiconOut  string
	lexiconPOS  string
	lexiconJSON bool
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the lemma dictionary",
}

var lexiconImportCmd = &cobra.Command{
	Use:   "import <wordnet-dict-dir>",
	Short: "Import a WordNet dict directory into a lexicon database",
	Long: `Read index.<pos> and <pos>.exc files from a WordNet dict directory and store
them in a bbolt database. The database under .textlab/ is picked up
automatically when morph.lexicon is not configured.

Examples:
  textlab lexicon import /usr/share/wordnet/dict
  textlab lexicon import ./dict -o /var/lib/textlab/lexicon.db`,
	Args: cobra.ExactArgs(1),
	RunE: runLexiconImport,
}

var lexiconInfoCmd = &cobra.Command{
	Use:   "info [db]",
	Short: "Show metadata of an imported lexicon database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLexiconInfo,
}

var lexiconLookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Show the lemma candidates of a word",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconLookup,
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
	lexiconCmd.AddCommand(lexiconImportCmd, lexiconInfoCmd, lexiconLookupCmd)

	lexiconImportCmd.Flags().StringVarP(&lexiconOut, "output", "o", "", "database path (default .textlab/lexicon.db under --dir)")
	lexiconInfoCmd.Flags().BoolVar(&lexiconJSON, "json", false, "output as JSON")
	lexiconLookupCmd.Flags().StringVar(&lexiconPOS, "pos", "", "part of speech: n, v, a, r (default: all)")
	lexiconLookupCmd.Flags().BoolVar(&lexiconJSON, "json", false, "output as JSON")
}

func runLexiconImport(cmd *cobra.Command, args []string) error {
	src := args[0]
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	dbPath := lexiconOut
	if dbPath == "" {
		if err := config.EnsureDataDir(GetRootDir()); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		dbPath = config.LexiconDBPath(GetRootDir())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Reading %s...\n", src)
	entries, err := lexicon.ReadDir(os.DirFS(src))
	if err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}

	var (
		bar   *progressbar.ProgressBar
		barMu sync.Mutex
	)
	start := time.Now()
	progress := func(done, total int) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Importing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}
		_ = bar.Set(done)
	}

	if err := lexicon.Import(dbPath, entries, progress); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(out, "\nImport complete:\n")
	for _, pos := range domain.PartsOfSpeech {
		fmt.Fprintf(out, "  %-10s %6d lemmas, %5d exceptions\n",
			pos.FileName(), len(entries.Lemmas[pos]), len(entries.Exceptions[pos]))
	}
	fmt.Fprintf(out, "  Duration:  %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(out, "\nLexicon stored at: %s\n", dbPath)
	return nil
}

func runLexiconInfo(cmd *cobra.Command, args []string) error {
	dbPath := config.LexiconDBPath(GetRootDir())
	if len(args) == 1 {
		dbPath = args[0]
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no lexicon found at %s. Run 'textlab lexicon import' first", dbPath)
	}

	idx, err := lexicon.OpenBoltIndex(dbPath)
	if err != nil {
		return err
	}
	defer idx.Close()

	info, err := idx.Info()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lexiconJSON {
		return printJSON(out, info)
	}
	printField(out, "Path", dbPath)
	printField(out, "Schema version", info.Version)
	printField(out, "Entries", info.Entries)
	printField(out, "Imported at", info.ImportedAt.Format(time.RFC3339))
	return nil
}

type lookupResult struct {
	POS        domain.PartOfSpeech `json:"pos"`
	Candidates []string            `json:"candidates"`
	Lemma      string              `json:"lemma,omitempty"`
}

func runLexiconLookup(cmd *cobra.Command, args []string) error {
	parts := domain.PartsOfSpeech
	if lexiconPOS != "" {
		pos, err := domain.ParsePartOfSpeech(lexiconPOS)
		if err != nil {
			return err
		}
		parts = []domain.PartOfSpeech{pos}
	}

	index, closer, err := openLexicon(GetConfig(), GetRootDir())
	if err != nil {
		return err
	}
	defer closer.Close()
	lemmatizer := lexicon.NewLemmatizer(index)

	results := make([]lookupResult, 0, len(parts))
	for _, pos := range parts {
		candidates, err := lemmatizer.Candidates(args[0], pos)
		if err != nil {
			return err
		}
		r := lookupResult{POS: pos, Candidates: candidates}
		if len(candidates) > 0 {
			r.Lemma, _ = lemmatizer.Lemma(args[0], pos)
		}
		results = append(results, r)
	}

	out := cmd.OutOrStdout()
	if lexiconJSON {
		return printJSON(out, results)
	}
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.POS.FileName(), r.Lemma, fmt.Sprint(r.Candidates)}
	}
	printTable(out, []string{"pos", "lemma", "candidates"}, rows)
	return nil
}
