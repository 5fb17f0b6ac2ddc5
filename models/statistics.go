package models

import (
	"fmt"

	"genosplit/api/models/constants"
	g "genosplit/api/models/constants/genotype"
)

// GenotypeCombination is the (father, mother) grouping key
type GenotypeCombination struct {
	Father constants.Genotype `json:"father" yaml:"father"`
	Mother constants.Genotype `json:"mother" yaml:"mother"`
}

// BothHomozygousReference is the combination whose child genotype is fixed
var BothHomozygousReference = GenotypeCombination{Father: g.HomozygousReference, Mother: g.HomozygousReference}

// AllCombinations lists the 3x3 key space, father-major
func AllCombinations() []GenotypeCombination {
	combinations := make([]GenotypeCombination, 0, len(g.All)*len(g.All))
	for _, father := range g.All {
		for _, mother := range g.All {
			combinations = append(combinations, GenotypeCombination{Father: father, Mother: mother})
		}
	}
	return combinations
}

func (gc GenotypeCombination) String() string {
	return fmt.Sprintf("(%d,%d)", gc.Father, gc.Mother)
}

// MarshalText lets combinations key json and yaml maps
func (gc GenotypeCombination) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d", gc.Father, gc.Mother)), nil
}

type CategoryProportion struct {
	Genotype   constants.Genotype `json:"genotype" yaml:"genotype"`
	Count      int                `json:"count" yaml:"count"`
	Proportion float64            `json:"proportion" yaml:"proportion"`
}

// Distribution is sorted by genotype ascending
type Distribution []CategoryProportion

func (d Distribution) Proportion(gt constants.Genotype) float64 {
	for _, cp := range d {
		if cp.Genotype == gt {
			return cp.Proportion
		}
	}
	return 0
}

func (d Distribution) Sum() float64 {
	var sum float64
	for _, cp := range d {
		sum += cp.Proportion
	}
	return sum
}

type MarginalDistributions struct {
	Father Distribution `json:"father" yaml:"father"`
	Mother Distribution `json:"mother" yaml:"mother"`
	Child  Distribution `json:"child" yaml:"child"`
}

// JointDistribution only holds observed combinations
type JointDistribution map[GenotypeCombination]float64

// Grid expands to a full father x mother matrix; absent cells are 0
func (jd JointDistribution) Grid() [3][3]float64 {
	var grid [3][3]float64
	for combination, proportion := range jd {
		grid[combination.Father][combination.Mother] = proportion
	}
	return grid
}

func (jd JointDistribution) Sum() float64 {
	var sum float64
	for _, proportion := range jd {
		sum += proportion
	}
	return sum
}

// ChildCounts is indexed by child genotype
type ChildCounts [3]int

func (cc ChildCounts) Total() int {
	return cc[0] + cc[1] + cc[2]
}

func (cc ChildCounts) Proportions() [3]float64 {
	var proportions [3]float64
	total := cc.Total()
	if total == 0 {
		return proportions
	}
	for i, count := range cc {
		proportions[i] = float64(count) / float64(total)
	}
	return proportions
}

// ConditionalDistribution covers all nine combinations
type ConditionalDistribution map[GenotypeCombination]ChildCounts

type PartitionStatistics struct {
	Partition   constants.Partition     `json:"partition" yaml:"partition"`
	RecordCount int                     `json:"recordCount" yaml:"recordCount"`
	Marginals   MarginalDistributions   `json:"marginals" yaml:"marginals"`
	Joint       JointDistribution       `json:"joint" yaml:"joint"`
	Conditional ConditionalDistribution `json:"conditional" yaml:"conditional"`
}
