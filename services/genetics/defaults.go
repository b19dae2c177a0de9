package genetics

import "fmt"

// NewDefaultGene is the template used when a gene is added to a cross:
// a heterozygous A/a trait for both parents.
func NewDefaultGene(n int) GeneDefinition {
	return GeneDefinition{
		Name:       fmt.Sprintf("Gene %d", n),
		DomSymbol:  "A",
		RecSymbol:  "a",
		DomPheno:   "Dominant",
		RecPheno:   "Recessive",
		P1Genotype: "Aa",
		P2Genotype: "Aa",
	}
}
