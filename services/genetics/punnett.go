package genetics

import (
	"errors"
	"fmt"
	"strings"
)

var ErrGameteLengthMismatch = errors.New("gametes differ in length")

// CalculatePunnett crosses parent one's gametes (rows) with parent two's
// gametes (columns). Each cell pairs the alleles at every gene position,
// sorts each pair byte-wise ("aA" becomes "Aa") and concatenates the pairs
// in gene order.
//
// All gametes of both parents must have the same length, otherwise genes
// would be paired across positions; ErrGameteLengthMismatch is returned.
func CalculatePunnett(gametes1 []string, gametes2 []string) (CrossResult, error) {
	if err := checkGameteLengths(gametes1, gametes2); err != nil {
		return CrossResult{}, err
	}

	grid := make([][]string, 0, len(gametes1))
	counts := newTallies()

	for _, g1 := range gametes1 {
		row := make([]string, 0, len(gametes2))
		for _, g2 := range gametes2 {
			genotype := combineGametes(g1, g2)

			row = append(row, genotype)
			counts.add(genotype, 1)
		}
		grid = append(grid, row)
	}

	outcomes := make(Outcomes, 0, len(counts.items))
	for _, t := range counts.items {
		outcomes = append(outcomes, Outcome{Genotype: t.key, Count: t.count})
	}

	return CrossResult{
		Grid:           grid,
		Outcomes:       outcomes,
		TotalOffspring: len(gametes1) * len(gametes2),
	}, nil
}

func combineGametes(g1 string, g2 string) string {
	var sb strings.Builder
	sb.Grow(len(g1) * 2)

	for i := 0; i < len(g1); i++ {
		first, second := g1[i], g2[i]
		if second < first {
			first, second = second, first
		}
		sb.WriteByte(first)
		sb.WriteByte(second)
	}

	return sb.String()
}

func checkGameteLengths(gametes1 []string, gametes2 []string) error {
	expected := -1
	for _, gametes := range [][]string{gametes1, gametes2} {
		for _, gamete := range gametes {
			if expected == -1 {
				expected = len(gamete)
				continue
			}
			if len(gamete) != expected {
				return fmt.Errorf("%w: gamete %q has %d alleles, expected %d",
					ErrGameteLengthMismatch, gamete, len(gamete), expected)
			}
		}
	}
	return nil
}
