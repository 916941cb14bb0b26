package corrector

import (
	"strconv"

	"github.com/hbollon/go-edlib"
)

// similarity is the OSA Damerau-Levenshtein distance normalized to [0,1]:
// 1 - d/max(len). Two empty strings are identical.
func similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	d := edlib.OSADamerauLevenshteinDistance(a, b)
	return 1 - float64(d)/float64(longest)
}

// editCounts holds the coarse per-candidate metrics used for filtering.
type editCounts struct {
	transpositions int
	additions      int
	deletions      int
	substitutions  int
}

func countEdits(query, word []rune) editCounts {
	c := editCounts{
		additions: len(word) - len(query),
		deletions: len(query) - len(word),
	}
	n := min(len(query), len(word))
	for i := 0; i < n; i++ {
		a, b := query[i], word[i]
		if a == b {
			continue
		}
		c.substitutions++
		// грубая эвристика перестановки: первые вхождения букв на одной позиции
		if firstIndex(query, a) == firstIndex(word, b) {
			c.transpositions++
		}
	}
	return c
}

func firstIndex(s []rune, r rune) int {
	for i, x := range s {
		if x == r {
			return i
		}
	}
	return -1
}

// round2 rounds to two decimals the way Python's round(x, 2) does:
// correctly rounded from the exact binary value, exact ties to even.
func round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
