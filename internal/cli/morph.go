package cli

import (
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"textlab/internal/domain"
)

var (
	morphPOS  string
	morphJSON bool
)

var morphCmd = &cobra.Command{
	Use:   "morph <word>...",
	Short: "Decompose words into subword pieces, stem and lemma",
	Long: `Analyze each word: the subword root and suffix from the vocabulary, the Porter
stem, and the dictionary lemma (the word itself when the dictionary has no entry).

Examples:
  textlab morph running
  textlab morph --pos v running played went --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMorph,
}

func init() {
	rootCmd.AddCommand(morphCmd)
	morphCmd.Flags().StringVar(&morphPOS, "pos", "", "part of speech for lemma lookup: n, v, a, r (default from config)")
	morphCmd.Flags().BoolVar(&morphJSON, "json", false, "output as JSON")
}

func runMorph(cmd *cobra.Command, args []string) error {
	cfg := *GetConfig()
	if morphPOS != "" {
		if _, err := domain.ParsePartOfSpeech(morphPOS); err != nil {
			return err
		}
		cfg.Morph.LemmaPOS = morphPOS
	}

	uc, closer, err := buildMorph(&cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer closer.Close()

	results := make([]*domain.MorphAnalysis, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, word := range args {
		g.Go(func() error {
			res, err := uc.Analyze(ctx, word)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if morphJSON {
		if len(results) == 1 {
			return printJSON(out, results[0])
		}
		return printJSON(out, results)
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.Original, r.Root, r.Suffix, r.Stem, r.Lemma}
	}
	printTable(out, []string{"word", "root", "suffix", "stem", "lemma"}, rows)
	return nil
}
