package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"textlab/config"
	"textlab/internal/logger"
)

var (
	cfgFile   string
	cfg       *config.Config
	rootDir   string
	logLevel  string
	logJSON   bool
	logSource bool
)

var rootCmd = &cobra.Command{
	Use:   "textlab",
	Short: "Text analysis toolkit - n-grams, perplexity, edit distance and morphology",
	Long: `textlab analyzes text with classical NLP algorithms: tokenization, n-gram
extraction, n-gram perplexity with Laplace smoothing, Levenshtein edit distance
and morphological decomposition (subword pieces, Porter stem, dictionary lemma).

Every analysis is available as a subcommand and over HTTP via 'textlab serve'.

Example usage:
  textlab serve                                    # Start the HTTP API
  textlab ngrams --type bigram "the cat sat"       # List bigrams
  textlab perplexity --train "the cat sat" "the cat"
  textlab distance kitten sitting --matrix
  textlab morph running unfriendly`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.ApplyEnv()

		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("log-json") {
			cfg.Logging.JSON = logJSON
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger.SetupLogger(cfg.Logging.Level, cfg.Logging.JSON, logSource)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textlab.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logSource, "log-source", false, "include source location in logs")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

func formatError(err error) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Bold(true)
	return style.Render("Error: " + err.Error())
}
