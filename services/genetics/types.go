// Package genetics computes Mendelian crosses: parent gametes, the Punnett
// grid of offspring genotypes and the phenotype ratios that follow from
// simple dominance. Every function is pure and safe to call concurrently.
package genetics

type (
	// GeneDefinition is one trait under study, together with the genotype
	// each parent carries for it. Symbols are single ASCII characters.
	GeneDefinition struct {
		Name       string `json:"name" yaml:"name"`
		DomSymbol  string `json:"domSymbol" yaml:"domSymbol"`
		RecSymbol  string `json:"recSymbol" yaml:"recSymbol"`
		DomPheno   string `json:"domPheno" yaml:"domPheno"`
		RecPheno   string `json:"recPheno" yaml:"recPheno"`
		P1Genotype string `json:"p1Genotype" yaml:"p1Genotype"`
		P2Genotype string `json:"p2Genotype" yaml:"p2Genotype"`
	}

	Parent int

	// Outcome is the number of grid cells holding one offspring genotype.
	Outcome struct {
		Genotype string `json:"genotype"`
		Count    int    `json:"count"`
	}

	// Outcomes is the frequency map of a cross, kept in the order each
	// genotype was first met while walking the grid row by row.
	Outcomes []Outcome

	CrossResult struct {
		Grid           [][]string `json:"grid"`
		Outcomes       Outcomes   `json:"outcomes"`
		TotalOffspring int        `json:"totalOffspring"`
	}

	PhenotypeStat struct {
		Name       string  `json:"name"`
		Count      int     `json:"count"`
		Percentage float64 `json:"percentage"`
		Ratio      string  `json:"ratio"`
	}

	GenotypeStat struct {
		Genotype   string  `json:"genotype"`
		Count      int     `json:"count"`
		Percentage float64 `json:"percentage"`
		Ratio      string  `json:"ratio"`
	}
)

const (
	ParentOne Parent = iota + 1
	ParentTwo
)

func (o Outcomes) Total() int {
	total := 0
	for _, outcome := range o {
		total += outcome.Count
	}
	return total
}

func (o Outcomes) Count(genotype string) int {
	for _, outcome := range o {
		if outcome.Genotype == genotype {
			return outcome.Count
		}
	}
	return 0
}

func (o Outcomes) Map() map[string]int {
	m := make(map[string]int, len(o))
	for _, outcome := range o {
		m[outcome.Genotype] += outcome.Count
	}
	return m
}

// ParentGenotypes lists the chosen parent's genotype for each gene, in gene order.
func ParentGenotypes(defs []GeneDefinition, parent Parent) []string {
	genotypes := make([]string, 0, len(defs))
	for _, def := range defs {
		if parent == ParentTwo {
			genotypes = append(genotypes, def.P2Genotype)
		} else {
			genotypes = append(genotypes, def.P1Genotype)
		}
	}
	return genotypes
}
