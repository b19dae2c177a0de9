package genetics

import (
	"strings"

	"mendel/api/models/constants"
	"mendel/api/models/constants/zygosity"
)

// Classify reports the zygosity of a two-allele pair for the given gene.
func Classify(pair string, def GeneDefinition) constants.Zygosity {
	if len(pair) != 2 || len(def.DomSymbol) != 1 || len(def.RecSymbol) != 1 || def.DomSymbol == def.RecSymbol {
		return zygosity.Unknown
	}

	dominant := strings.Count(pair, def.DomSymbol)
	recessive := strings.Count(pair, def.RecSymbol)

	switch {
	case dominant == 2:
		return zygosity.HomozygousDominant
	case recessive == 2:
		return zygosity.HomozygousRecessive
	case dominant == 1 && recessive == 1:
		return zygosity.Heterozygous
	default:
		return zygosity.Unknown
	}
}
