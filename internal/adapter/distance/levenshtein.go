// Package distance computes minimum edit distance with unit costs.
package distance

// Levenshtein returns the minimum number of single-rune insertions, deletions
// and substitutions that turn source into target.
//
// Two rolling rows sized to the shorter input are kept, so memory is
// O(min(|source|, |target|)).
func Levenshtein(source, target []rune) int {
	// The metric is symmetric; iterate over the longer input.
	if len(target) > len(source) {
		source, target = target, source
	}
	ls, lt := len(source), len(target)
	if lt == 0 {
		return ls
	}

	prev := make([]int, lt+1)
	curr := make([]int, lt+1)
	for j := 0; j <= lt; j++ {
		prev[j] = j
	}

	for i := 1; i <= ls; i++ {
		curr[0] = i
		for j := 1; j <= lt; j++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}
			x := prev[j] + 1
			if y := curr[j-1] + 1; y < x {
				x = y
			}
			if z := prev[j-1] + cost; z < x {
				x = z
			}
			curr[j] = x
		}
		prev, curr = curr, prev
	}
	return prev[lt]
}

// Strings is Levenshtein over the runes of two strings.
func Strings(source, target string) int {
	return Levenshtein([]rune(source), []rune(target))
}

// Matrix returns the full (|source|+1)x(|target|+1) grid. Cell [i][j] holds the
// distance between the first i source runes and the first j target runes.
func Matrix(source, target []rune) [][]int {
	ls, lt := len(source), len(target)
	dp := make([][]int, ls+1)
	for i := range dp {
		dp[i] = make([]int, lt+1)
		dp[i][0] = i
	}
	for j := 0; j <= lt; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= ls; i++ {
		for j := 1; j <= lt; j++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}
			dp[i][j] = min(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
		}
	}
	return dp
}
