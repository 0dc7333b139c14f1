package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"textlab/internal/adapter/analyzer"
	"textlab/internal/adapter/fs"
	"textlab/internal/domain"
	"textlab/internal/logger"
	"textlab/internal/usecase"
)

var (
	perplexityTrain     string
	perplexityTrainGlob []string
	perplexityOrder     int
	perplexityJSON      bool
)

var perplexityCmd = &cobra.Command{
	Use:   "perplexity [test text...]",
	Short: "Score a text against an n-gram model of a training text",
	Long: `Train a Laplace-smoothed n-gram model on the training text and report the
perplexity of the test text under it. Lower is a better fit.

The training text comes from --train, or from the files under --dir matching
--train-glob patterns. The test text is read from the arguments or stdin.

Examples:
  textlab perplexity --train "the cat sat on the mat" "the cat sat"
  textlab perplexity --train-glob "corpus/**/*.txt" --order 3 < sample.txt`,
	RunE: runPerplexity,
}

func init() {
	rootCmd.AddCommand(perplexityCmd)
	perplexityCmd.Flags().StringVar(&perplexityTrain, "train", "", "training text")
	perplexityCmd.Flags().StringSliceVar(&perplexityTrainGlob, "train-glob", nil, "glob patterns of training files under --dir")
	perplexityCmd.Flags().IntVar(&perplexityOrder, "order", 0, "n-gram order 1-3 (default from config)")
	perplexityCmd.Flags().BoolVar(&perplexityJSON, "json", false, "output as JSON")
	perplexityCmd.MarkFlagsOneRequired("train", "train-glob")
	perplexityCmd.MarkFlagsMutuallyExclusive("train", "train-glob")
}

func runPerplexity(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	n := cfg.Perplexity.Order
	if perplexityOrder != 0 {
		n = perplexityOrder
	}
	order, err := domain.OrderFromInt(n)
	if err != nil {
		return err
	}

	training := perplexityTrain
	if len(perplexityTrainGlob) > 0 {
		walker := fs.NewWalker(perplexityTrainGlob, cfg.Corpus.Excludes, cfg.Corpus.MaxBytes)
		files, err := walker.Walk(GetRootDir())
		if err != nil {
			return fmt.Errorf("failed to scan training files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("%w: no training files match %v", domain.ErrInsufficientData, perplexityTrainGlob)
		}
		training, err = fs.ReadCorpus(files)
		if err != nil {
			return fmt.Errorf("failed to read training files: %w", err)
		}
		logger.Debug("Training corpus loaded", "files", len(files), "bytes", len(training))
	}

	test, err := inputText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	uc := usecase.NewPerplexityUseCase(analyzer.NewTokenizer(), order, cfg.Perplexity.RoundDigits)
	res, err := uc.Evaluate(cmd.Context(), training, test)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if perplexityJSON {
		return printJSON(out, map[string]any{
			"perplexity": res.Perplexity,
			"details":    res.Details,
		})
	}
	printField(out, "Perplexity", res.Perplexity)
	printField(out, "Details", res.Details)
	return nil
}
