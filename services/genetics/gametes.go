package genetics

// GenerateGametes returns every gamete a parent can produce under independent
// assortment, given that parent's genotype for each gene in gene order.
//
// Earlier genes vary slowest and alleles keep the character order of their
// genotype string, so "Aa","Bb" yields AB, Ab, aB, ab. Identical gametes are
// kept: a homozygous "TT" still contributes two positions. No validation is
// performed; malformed genotypes give malformed gametes.
func GenerateGametes(perGeneGenotypes []string) []string {
	return foldAlleles(perGeneGenotypes, splitAlleles)
}

// GenerateDistinctGametes is GenerateGametes with each gene contributing only
// its distinct alleles, so homozygous genes collapse to a single allele.
func GenerateDistinctGametes(perGeneGenotypes []string) []string {
	return foldAlleles(perGeneGenotypes, distinctAlleles)
}

// foldAlleles builds the cartesian product gene by gene, extending every
// partial gamete with each allele of the next gene.
func foldAlleles(perGeneGenotypes []string, alleles func(string) []string) []string {
	if len(perGeneGenotypes) == 0 {
		return []string{}
	}

	partial := []string{""}
	for _, genotype := range perGeneGenotypes {
		geneAlleles := alleles(genotype)

		next := make([]string, 0, len(partial)*len(geneAlleles))
		for _, prefix := range partial {
			for _, allele := range geneAlleles {
				next = append(next, prefix+allele)
			}
		}
		partial = next
	}

	return partial
}

func splitAlleles(genotype string) []string {
	alleles := make([]string, 0, len(genotype))
	for i := 0; i < len(genotype); i++ {
		alleles = append(alleles, genotype[i:i+1])
	}
	return alleles
}

func distinctAlleles(genotype string) []string {
	alleles := make([]string, 0, len(genotype))
	seen := map[string]bool{}
	for _, allele := range splitAlleles(genotype) {
		if seen[allele] {
			continue
		}
		seen[allele] = true
		alleles = append(alleles, allele)
	}
	return alleles
}
