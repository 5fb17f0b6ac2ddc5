package distributions

import (
	"errors"

	"genosplit/api/models"
	"genosplit/api/models/constants"
	g "genosplit/api/models/constants/genotype"
	ve "genosplit/api/models/validation-errors"
	csvRepo "genosplit/api/repositories/csv"

	"github.com/ahmetb/go-linq"
	"github.com/go-gota/gota/dataframe"
)

// MarginalDistributions normalizes the father, mother and child columns
// into per-genotype proportions, sorted by genotype.
func MarginalDistributions(records []models.VariantRecord) (models.MarginalDistributions, error) {
	if len(records) == 0 {
		return models.MarginalDistributions{}, &ve.EmptyPartitionError{}
	}
	if err := validateGenotypes(records); err != nil {
		return models.MarginalDistributions{}, err
	}

	var father, mother, child [3]int
	for _, r := range records {
		father[r.Father]++
		mother[r.Mother]++
		child[r.Child]++
	}

	total := len(records)
	return models.MarginalDistributions{
		Father: normalize(father, total),
		Mother: normalize(mother, total),
		Child:  normalize(child, total),
	}, nil
}

// JointParentDistribution returns the proportion of records per observed
// (father, mother) combination. Unobserved combinations are absent.
func JointParentDistribution(records []models.VariantRecord) (models.JointDistribution, error) {
	if len(records) == 0 {
		return nil, &ve.EmptyPartitionError{}
	}
	if err := validateGenotypes(records); err != nil {
		return nil, err
	}

	total := float64(len(records))
	joint := models.JointDistribution{}
	groupByCombination(records).ForEachT(func(group linq.Group) {
		joint[group.Key.(models.GenotypeCombination)] = float64(len(group.Group)) / total
	})

	return joint, nil
}

// ConditionalChildDistribution counts child genotypes for each of the nine
// parental combinations. Both parents homozygous-reference always yields a
// homozygous-reference child, so (0,0) carries its whole weight on 0 even
// when no such record was observed.
func ConditionalChildDistribution(records []models.VariantRecord) (models.ConditionalDistribution, error) {
	if err := validateGenotypes(records); err != nil {
		return nil, err
	}

	observed := map[models.GenotypeCombination]models.ChildCounts{}
	groupByCombination(records).ForEachT(func(group linq.Group) {
		var counts models.ChildCounts
		for _, child := range group.Group {
			counts[child.(constants.Genotype)]++
		}
		observed[group.Key.(models.GenotypeCombination)] = counts
	})

	conditional := models.ConditionalDistribution{}
	for _, combination := range models.AllCombinations() {
		if combination == models.BothHomozygousReference {
			weight := observed[combination].Total()
			if weight == 0 {
				weight = 1
			}
			conditional[combination] = models.ChildCounts{weight, 0, 0}
			continue
		}
		// zero-filled when unobserved
		conditional[combination] = observed[combination]
	}

	return conditional, nil
}

// ComputePartitionStatistics runs the three aggregations over one partition
func ComputePartitionStatistics(partition models.Partition) (*models.PartitionStatistics, error) {
	marginals, err := MarginalDistributions(partition.Records)
	if err != nil {
		return nil, withPartition(err, partition.Name)
	}
	joint, err := JointParentDistribution(partition.Records)
	if err != nil {
		return nil, withPartition(err, partition.Name)
	}
	conditional, err := ConditionalChildDistribution(partition.Records)
	if err != nil {
		return nil, withPartition(err, partition.Name)
	}

	return &models.PartitionStatistics{
		Partition:   partition.Name,
		RecordCount: len(partition.Records),
		Marginals:   marginals,
		Joint:       joint,
		Conditional: conditional,
	}, nil
}

// ComputeFromTable validates a raw partition table before aggregating it
func ComputeFromTable(name constants.Partition, df dataframe.DataFrame) (*models.PartitionStatistics, error) {
	partition, err := csvRepo.ToPartition(name, df)
	if err != nil {
		return nil, err
	}
	return ComputePartitionStatistics(partition)
}

func groupByCombination(records []models.VariantRecord) linq.Query {
	return linq.From(records).GroupByT(
		func(r models.VariantRecord) models.GenotypeCombination { return r.Combination() },
		func(r models.VariantRecord) constants.Genotype { return r.Child },
	)
}

// only genotypes that occur are listed
func normalize(counts [3]int, total int) models.Distribution {
	distribution := models.Distribution{}
	for _, gt := range g.All {
		if counts[gt] == 0 {
			continue
		}
		distribution = append(distribution, models.CategoryProportion{
			Genotype:   gt,
			Count:      counts[gt],
			Proportion: float64(counts[gt]) / float64(total),
		})
	}
	return distribution
}

func validateGenotypes(records []models.VariantRecord) error {
	type cell struct {
		column string
		value  constants.Genotype
	}
	for _, r := range records {
		for _, c := range []cell{
			{constants.FatherGenotypeColumn, r.Father},
			{constants.MotherGenotypeColumn, r.Mother},
			{constants.ChildGenotypeColumn, r.Child},
		} {
			if !g.IsValid(int(c.value)) {
				return &ve.GenotypeOutOfRangeError{Column: c.column, Row: r.Row, Value: c.value}
			}
		}
	}
	return nil
}

func withPartition(err error, name constants.Partition) error {
	var empty *ve.EmptyPartitionError
	if errors.As(err, &empty) {
		empty.Partition = name
	}
	var outOfRange *ve.GenotypeOutOfRangeError
	if errors.As(err, &outOfRange) {
		outOfRange.Partition = name
	}
	return err
}
