package genetics

import (
	"errors"
	"fmt"
)

var ErrInvalidGene = errors.New("invalid gene definition")

// ValidateGene checks what the cross functions themselves assume: single
// character, distinct allele symbols and two-allele parent genotypes drawn
// from those symbols.
func ValidateGene(def GeneDefinition) error {
	if len(def.DomSymbol) != 1 || len(def.RecSymbol) != 1 {
		return fmt.Errorf("%w: %s: allele symbols must be single characters (got %q and %q)",
			ErrInvalidGene, geneLabel(def), def.DomSymbol, def.RecSymbol)
	}
	if def.DomSymbol == def.RecSymbol {
		return fmt.Errorf("%w: %s: dominant and recessive symbols are both %q",
			ErrInvalidGene, geneLabel(def), def.DomSymbol)
	}

	for _, parent := range []struct {
		label    string
		genotype string
	}{
		{"parent 1", def.P1Genotype},
		{"parent 2", def.P2Genotype},
	} {
		if len(parent.genotype) != 2 {
			return fmt.Errorf("%w: %s: %s genotype %q must have exactly two alleles",
				ErrInvalidGene, geneLabel(def), parent.label, parent.genotype)
		}
		for _, allele := range splitAlleles(parent.genotype) {
			if allele != def.DomSymbol && allele != def.RecSymbol {
				return fmt.Errorf("%w: %s: %s genotype %q uses %q, expected %q or %q",
					ErrInvalidGene, geneLabel(def), parent.label, parent.genotype,
					allele, def.DomSymbol, def.RecSymbol)
			}
		}
	}

	return nil
}

func ValidateGenes(defs []GeneDefinition) error {
	for i, def := range defs {
		if err := ValidateGene(def); err != nil {
			return fmt.Errorf("gene %d: %w", i+1, err)
		}
	}
	return nil
}

func geneLabel(def GeneDefinition) string {
	if def.Name == "" {
		return "unnamed gene"
	}
	return fmt.Sprintf("gene %q", def.Name)
}
