package services

import (
	"fmt"
	"mendel/api/models/dtos"
	"mendel/api/services/genetics"
	"strings"
)

const walkthroughTopPhenotypes = 3

// Walkthrough explains a finished cross in four steps, from the parents'
// genotypes to the most likely phenotypes.
func Walkthrough(genes []genetics.GeneDefinition, p1Gametes []string, p2Gametes []string,
	result genetics.CrossResult, stats []genetics.PhenotypeStat) []dtos.WalkthroughStepDto {

	parents := dtos.WalkthroughStepDto{
		Title:       "1. Identify Parents",
		Description: "Determine the genotypes of both parents for each trait.",
		Details: []string{
			fmt.Sprintf("Parent 1: %s", strings.Join(genetics.ParentGenotypes(genes, genetics.ParentOne), "")),
			fmt.Sprintf("Parent 2: %s", strings.Join(genetics.ParentGenotypes(genes, genetics.ParentTwo), "")),
		},
	}

	gametes := dtos.WalkthroughStepDto{
		Title:       "2. Form Gametes",
		Description: "Through meiosis, parents pass one allele for each gene to their gametes. We find all possible combinations.",
		Details: []string{
			fmt.Sprintf("Parent 1 gametes: %s", strings.Join(p1Gametes, ", ")),
			fmt.Sprintf("Parent 2 gametes: %s", strings.Join(p2Gametes, ", ")),
		},
	}

	square := dtos.WalkthroughStepDto{
		Title:       "3. Fill Square",
		Description: "Combine row and column gametes to predict offspring genotypes.",
		Details:     []string{},
	}
	if len(result.Grid) > 0 && len(result.Grid[0]) > 0 {
		square.Details = append(square.Details,
			fmt.Sprintf("Example: %s (P1) + %s (P2) = %s", p1Gametes[0], p2Gametes[0], result.Grid[0][0]),
			fmt.Sprintf("%d x %d = %d offspring combinations", len(p1Gametes), len(p2Gametes), result.TotalOffspring))
	}

	ratios := dtos.WalkthroughStepDto{
		Title:       "4. Analyze Ratios",
		Description: "Count phenotypes to determine probabilities.",
		Details:     []string{},
	}
	for i, stat := range stats {
		if i == walkthroughTopPhenotypes {
			break
		}
		ratios.Details = append(ratios.Details,
			fmt.Sprintf("%s: %.1f%% (%s)", stat.Name, stat.Percentage, stat.Ratio))
	}

	return []dtos.WalkthroughStepDto{parents, gametes, square, ratios}
}
