package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"textlab/internal/adapter/analyzer"
	"textlab/internal/domain"
	"textlab/internal/usecase"
)

var (
	tokenizeMode string
	tokenizeJSON bool

	ngramType   string
	ngramCounts bool
	ngramJSON   bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text...]",
	Short: "Split text into characters or words",
	Long: `Split text into tokens. Text is read from the arguments, or from stdin
when none are given.

Examples:
  textlab tokenize hello
  echo "Hello, world" | textlab tokenize --mode word --json`,
	RunE: runTokenize,
}

var ngramsCmd = &cobra.Command{
	Use:   "ngrams [text...]",
	Short: "List the n-grams of a text",
	Long: `List the unigrams, bigrams or trigrams of a text's lowercased words in order,
duplicates included.

Examples:
  textlab ngrams --type bigram "the cat sat on the mat"
  textlab ngrams --type bigram --counts < corpus.txt`,
	RunE: runNGrams,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeMode, "mode", "m", "char", "token granularity (char, word)")
	tokenizeCmd.Flags().BoolVar(&tokenizeJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(ngramsCmd)
	ngramsCmd.Flags().StringVarP(&ngramType, "type", "t", "unigram", "n-gram type (unigram, bigram, trigram)")
	ngramsCmd.Flags().BoolVar(&ngramCounts, "counts", false, "print distinct n-grams with their counts")
	ngramsCmd.Flags().BoolVar(&ngramJSON, "json", false, "output as JSON")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text, err := inputText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	uc := usecase.NewTextUseCase(analyzer.NewTokenizer())
	tokens, err := uc.Tokenize(cmd.Context(), text, tokenizeMode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if tokenizeJSON {
		return printJSON(out, tokens)
	}
	for _, t := range tokens {
		fmt.Fprintln(out, strconv.Quote(t))
	}
	return nil
}

type ngramCount struct {
	NGram string `json:"ngram"`
	Count int    `json:"count"`
}

func runNGrams(cmd *cobra.Command, args []string) error {
	text, err := inputText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	order, err := domain.ParseNGramOrder(ngramType)
	if err != nil {
		return err
	}

	uc := usecase.NewTextUseCase(analyzer.NewTokenizer())
	model, err := uc.Model(cmd.Context(), text, order)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !ngramCounts {
		if ngramJSON {
			return printJSON(out, model.Surfaces())
		}
		for _, s := range model.Surfaces() {
			fmt.Fprintln(out, s)
		}
		return nil
	}

	counts := make([]ngramCount, 0, model.Distinct())
	for key, n := range model.Counts {
		counts = append(counts, ngramCount{NGram: key, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].NGram < counts[j].NGram
	})

	if ngramJSON {
		return printJSON(out, counts)
	}
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.NGram, strconv.Itoa(c.Count)}
	}
	printTable(out, []string{order.String(), "count"}, rows)
	printField(out, "Total", fmt.Sprintf("%d %ss, %d distinct", model.Len(), order, model.Distinct()))
	return nil
}
