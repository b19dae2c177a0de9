package genetics

import (
	"fmt"
	"strings"

	. "github.com/ahmetb/go-linq"
)

const PhenotypeSeparator = ", "

// ResolvePhenotype names the phenotype of an offspring genotype under simple
// dominance: gene i reads characters 2i and 2i+1 and shows the dominant label
// when either matches the gene's dominant symbol. Missing characters count as
// absent alleles.
func ResolvePhenotype(genotype string, defs []GeneDefinition) string {
	traits := make([]string, 0, len(defs))
	for i, def := range defs {
		if hasDominantAllele(genotype, i, def.DomSymbol) {
			traits = append(traits, def.DomPheno)
		} else {
			traits = append(traits, def.RecPheno)
		}
	}
	return strings.Join(traits, PhenotypeSeparator)
}

// PhenotypeGrid maps every genotype cell of a grid to its phenotype name.
func PhenotypeGrid(grid [][]string, defs []GeneDefinition) [][]string {
	phenotypes := make([][]string, 0, len(grid))
	for _, row := range grid {
		phenoRow := make([]string, 0, len(row))
		for _, genotype := range row {
			phenoRow = append(phenoRow, ResolvePhenotype(genotype, defs))
		}
		phenotypes = append(phenotypes, phenoRow)
	}
	return phenotypes
}

// AnalyzePhenotypes groups outcomes by phenotype, most frequent first.
// Groups with equal counts keep the order in which their first genotype
// appears in outcomes. An empty cross yields an empty list.
func AnalyzePhenotypes(outcomes Outcomes, defs []GeneDefinition) []PhenotypeStat {
	total := outcomes.Total()
	if total == 0 {
		return []PhenotypeStat{}
	}

	groups := newTallies()
	for _, outcome := range outcomes {
		groups.add(ResolvePhenotype(outcome.Genotype, defs), outcome.Count)
	}

	stats := []PhenotypeStat{}
	for _, t := range rank(groups.items) {
		stats = append(stats, PhenotypeStat{
			Name:       t.key,
			Count:      t.count,
			Percentage: percentage(t.count, total),
			Ratio:      ratio(t.count, total),
		})
	}
	return stats
}

// AnalyzeGenotypes reports the share of every distinct offspring genotype,
// ordered like AnalyzePhenotypes.
func AnalyzeGenotypes(outcomes Outcomes) []GenotypeStat {
	total := outcomes.Total()
	if total == 0 {
		return []GenotypeStat{}
	}

	genotypes := newTallies()
	for _, outcome := range outcomes {
		genotypes.add(outcome.Genotype, outcome.Count)
	}

	stats := []GenotypeStat{}
	for _, t := range rank(genotypes.items) {
		stats = append(stats, GenotypeStat{
			Genotype:   t.key,
			Count:      t.count,
			Percentage: percentage(t.count, total),
			Ratio:      ratio(t.count, total),
		})
	}
	return stats
}

func rank(items []tally) []tally {
	var ranked []tally
	From(items).
		OrderByDescendingT(func(t tally) int { return t.count }).
		ThenByT(func(t tally) int { return t.first }).
		ToSlice(&ranked)
	return ranked
}

func hasDominantAllele(genotype string, gene int, domSymbol string) bool {
	for _, offset := range []int{2 * gene, 2*gene + 1} {
		if offset < len(genotype) && genotype[offset:offset+1] == domSymbol {
			return true
		}
	}
	return false
}

func percentage(count int, total int) float64 {
	return float64(count) / float64(total) * 100
}

func ratio(count int, total int) string {
	return fmt.Sprintf("%d/%d", count, total)
}
