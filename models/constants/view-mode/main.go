package viewMode

import (
	"mendel/api/models/constants"
	"strings"
)

const (
	Undefined constants.ViewMode = ""
	Genotype  constants.ViewMode = "genotype"
	Phenotype constants.ViewMode = "phenotype"
	Both      constants.ViewMode = "both"
)

func CastToViewMode(text string) constants.ViewMode {
	switch strings.ToLower(text) {
	case "genotype":
		return Genotype
	case "phenotype":
		return Phenotype
	case "both":
		return Both
	default:
		return Undefined
	}
}

func IsKnownViewMode(text string) bool {
	return CastToViewMode(text) != Undefined
}

// ShowsGenotypes reports whether genotype cells should be rendered for the mode.
// An undefined mode renders everything.
func ShowsGenotypes(mode constants.ViewMode) bool {
	return mode != Phenotype
}

func ShowsPhenotypes(mode constants.ViewMode) bool {
	return mode != Genotype
}
