package zygosity

import (
	"mendel/api/models/constants"
)

const (
	Unknown constants.Zygosity = iota

	HomozygousDominant
	Heterozygous
	HomozygousRecessive
)

func IsKnown(value int) bool {
	return value > int(Unknown) && value <= int(HomozygousRecessive)
}

func ZygosityToString(zyg constants.Zygosity) string {
	switch zyg {
	case HomozygousDominant:
		return "HOMOZYGOUS_DOMINANT"
	case Heterozygous:
		return "HETEROZYGOUS"
	case HomozygousRecessive:
		return "HOMOZYGOUS_RECESSIVE"
	default:
		return "UNKNOWN"
	}
}
