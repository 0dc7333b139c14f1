package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"textlab/internal/usecase"
)

var (
	distanceMatrix bool
	distanceJSON   bool
)

var distanceCmd = &cobra.Command{
	Use:   "distance <source> <target>",
	Short: "Compute the Levenshtein edit distance of two strings",
	Long: `Compute the minimum number of character insertions, deletions and
substitutions turning source into target.

Examples:
  textlab distance kitten sitting
  textlab distance flaw lawn --matrix`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func init() {
	rootCmd.AddCommand(distanceCmd)
	distanceCmd.Flags().BoolVar(&distanceMatrix, "matrix", false, "print the full dynamic programming matrix")
	distanceCmd.Flags().BoolVar(&distanceJSON, "json", false, "output as JSON")
}

func runDistance(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	uc := usecase.NewEditDistanceUseCase(cfg.EditDistance.MaxInputRunes, cfg.EditDistance.TrimSpace)

	res, err := uc.Distance(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	var matrix [][]int
	if distanceMatrix {
		matrix, err = uc.Matrix(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if distanceJSON {
		if matrix == nil {
			return printJSON(out, res)
		}
		return printJSON(out, struct {
			*usecase.EditDistanceResult
			Matrix [][]int `json:"matrix"`
		}{res, matrix})
	}

	if matrix != nil {
		printTable(out, matrixHeaders(res.Target), matrixRows(res.Source, matrix))
	}
	printField(out, "Distance", res.Distance)
	return nil
}

func matrixHeaders(target string) []string {
	headers := []string{"", "ε"}
	for _, r := range target {
		headers = append(headers, string(r))
	}
	return headers
}

func matrixRows(source string, matrix [][]int) [][]string {
	labels := append([]string{"ε"}, splitRunes(source)...)
	rows := make([][]string, len(matrix))
	for i, row := range matrix {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, labels[i])
		for _, v := range row {
			cells = append(cells, strconv.Itoa(v))
		}
		rows[i] = cells
	}
	return rows
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
