package genetics

import (
	"strconv"
	"strings"

	. "github.com/ahmetb/go-linq"
)

// SimplifyRatio reduces counts by their greatest common divisor and joins
// them with colons, e.g. 36, 12, 12, 4 -> "9:3:3:1". Non-positive counts
// are dropped.
func SimplifyRatio(counts []int) string {
	var positive []int
	From(counts).WhereT(func(c int) bool { return c > 0 }).ToSlice(&positive)
	if len(positive) == 0 {
		return ""
	}

	divisor := positive[0]
	for _, c := range positive[1:] {
		divisor = gcd(divisor, c)
	}

	parts := make([]string, 0, len(positive))
	for _, c := range positive {
		parts = append(parts, strconv.Itoa(c/divisor))
	}
	return strings.Join(parts, ":")
}

// PhenotypeRatio is SimplifyRatio over the counts of ranked phenotype stats.
func PhenotypeRatio(stats []PhenotypeStat) string {
	var counts []int
	From(stats).SelectT(func(s PhenotypeStat) int { return s.Count }).ToSlice(&counts)
	return SimplifyRatio(counts)
}

func GenotypeRatio(stats []GenotypeStat) string {
	var counts []int
	From(stats).SelectT(func(s GenotypeStat) int { return s.Count }).ToSlice(&counts)
	return SimplifyRatio(counts)
}

func gcd(a int, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
