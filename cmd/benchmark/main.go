package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"textlab/config"
	"textlab/internal/adapter/analyzer"
	"textlab/internal/adapter/fs"
	"textlab/internal/domain"
	"textlab/internal/usecase"
)

func main() {
	corpusDir := flag.String("corpus", ".", "Directory holding the corpus")
	glob := flag.String("glob", "**/*.txt", "Glob of corpus files")
	holdout := flag.Float64("holdout", 0.1, "Fraction of words held out for testing")
	flag.Parse()

	if *holdout <= 0 || *holdout >= 1 {
		fmt.Println("Usage: go run cmd/benchmark/main.go -corpus ./texts -glob \"**/*.txt\" -holdout 0.1")
		fmt.Println("\nReports:")
		fmt.Println("  1. Held-out perplexity per n-gram order")
		fmt.Println("  2. Evaluation time per order")
		os.Exit(1)
	}

	cfg, err := config.LoadFromDir(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	walker := fs.NewWalker([]string{*glob}, cfg.Corpus.Excludes, cfg.Corpus.MaxBytes)
	files, err := walker.Walk(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning corpus: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No files match %s under %s\n", *glob, *corpusDir)
		os.Exit(1)
	}

	text, err := fs.ReadCorpus(files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading corpus: %v\n", err)
		os.Exit(1)
	}

	tokenizer := analyzer.NewTokenizer()
	words := tokenizer.Words(text)
	split := len(words) - int(float64(len(words))*(*holdout))
	train, test := words[:split], words[split:]

	fmt.Println("PERPLEXITY BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Files:          %d\n", len(files))
	fmt.Printf("Training words: %d\n", len(train))
	fmt.Printf("Held-out words: %d\n", len(test))
	fmt.Println(strings.Repeat("-", 70))

	ctx := context.Background()
	for _, order := range domain.NGramOrders {
		uc := usecase.NewPerplexityUseCase(tokenizer, order, cfg.Perplexity.RoundDigits)

		start := time.Now()
		res, err := uc.EvaluateTokens(ctx, train, test)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-8s  error: %v\n", order, err)
			continue
		}

		fmt.Printf("%-8s  perplexity %12.4f   %6d n-grams   %s\n",
			order, res.Perplexity, res.Evaluated, elapsed.Round(time.Microsecond))
	}
	fmt.Println(strings.Repeat("=", 70))
}
