package genotype

import (
	"genosplit/api/models/constants"
)

const (
	HomozygousReference constants.Genotype = iota
	Heterozygous
	HomozygousAlternate
)

// All lists every genotype in ascending order
var All = []constants.Genotype{HomozygousReference, Heterozygous, HomozygousAlternate}

func IsValid(value int) bool {
	return value >= int(HomozygousReference) && value <= int(HomozygousAlternate)
}

func GenotypeToString(gt constants.Genotype) string {
	switch gt {
	case HomozygousReference:
		return "HOMOZYGOUS_REFERENCE"
	case Heterozygous:
		return "HETEROZYGOUS"
	case HomozygousAlternate:
		return "HOMOZYGOUS_ALTERNATE"
	default:
		return "UNKNOWN"
	}
}
