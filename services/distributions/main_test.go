package distributions

import (
	"errors"
	"strings"
	"testing"

	"genosplit/api/models"
	"genosplit/api/models/constants"
	p "genosplit/api/models/constants/partition"
	ve "genosplit/api/models/validation-errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func trio(father, mother, child constants.Genotype) models.VariantRecord {
	return models.VariantRecord{LocString: "chr1", Start: 0, End: 1, Father: father, Mother: mother, Child: child}
}

// father=[0,1,1,2], mother=[0,1,0,2], label=[0,0,1,2]
func syntheticRecords() []models.VariantRecord {
	return []models.VariantRecord{
		trio(0, 0, 0),
		trio(1, 1, 0),
		trio(1, 0, 1),
		trio(2, 2, 2),
	}
}

func combination(father, mother constants.Genotype) models.GenotypeCombination {
	return models.GenotypeCombination{Father: father, Mother: mother}
}

func TestMarginalDistributions(t *testing.T) {
	t.Run("should normalize every column to proportions", func(t *testing.T) {
		marginals, err := MarginalDistributions(syntheticRecords())
		require.NoError(t, err)

		assert.Equal(t, models.Distribution{
			{Genotype: 0, Count: 1, Proportion: 0.25},
			{Genotype: 1, Count: 2, Proportion: 0.5},
			{Genotype: 2, Count: 1, Proportion: 0.25},
		}, marginals.Father)
		assert.Equal(t, models.Distribution{
			{Genotype: 0, Count: 2, Proportion: 0.5},
			{Genotype: 1, Count: 1, Proportion: 0.25},
			{Genotype: 2, Count: 1, Proportion: 0.25},
		}, marginals.Mother)
		assert.Equal(t, models.Distribution{
			{Genotype: 0, Count: 2, Proportion: 0.5},
			{Genotype: 1, Count: 1, Proportion: 0.25},
			{Genotype: 2, Count: 1, Proportion: 0.25},
		}, marginals.Child)
	})

	t.Run("should sum to one and list only present genotypes in order", func(t *testing.T) {
		records := []models.VariantRecord{trio(2, 1, 1), trio(2, 1, 2), trio(0, 1, 1)}

		marginals, err := MarginalDistributions(records)
		require.NoError(t, err)

		for _, d := range []models.Distribution{marginals.Father, marginals.Mother, marginals.Child} {
			assert.InDelta(t, 1.0, d.Sum(), tolerance)
			for i := 1; i < len(d); i++ {
				assert.True(t, d[i-1].Genotype < d[i].Genotype)
			}
		}
		assert.Len(t, marginals.Mother, 1)
		assert.InDelta(t, 2.0/3.0, marginals.Father.Proportion(2), tolerance)
		assert.Equal(t, 0.0, marginals.Father.Proportion(1))
	})

	t.Run("should fail on an empty partition", func(t *testing.T) {
		_, err := MarginalDistributions(nil)

		assert.True(t, errors.Is(err, ve.ErrEmptyPartition))
	})

	t.Run("should fail on a genotype outside 0-2", func(t *testing.T) {
		bad := trio(0, 3, 0)
		bad.Row = 4

		_, err := MarginalDistributions([]models.VariantRecord{trio(0, 0, 0), bad})

		var outOfRange *ve.GenotypeOutOfRangeError
		require.True(t, errors.As(err, &outOfRange))
		assert.Equal(t, constants.MotherGenotypeColumn, outOfRange.Column)
		assert.Equal(t, 4, outOfRange.Row)
		assert.Equal(t, constants.Genotype(3), outOfRange.Value)
	})
}

func TestJointParentDistribution(t *testing.T) {
	t.Run("should match the synthetic partition", func(t *testing.T) {
		joint, err := JointParentDistribution(syntheticRecords())
		require.NoError(t, err)

		assert.Equal(t, models.JointDistribution{
			combination(0, 0): 0.25,
			combination(1, 1): 0.25,
			combination(1, 0): 0.25,
			combination(2, 2): 0.25,
		}, joint)
		assert.InDelta(t, 1.0, joint.Sum(), tolerance)
	})

	t.Run("should leave unobserved combinations absent and zero in the grid", func(t *testing.T) {
		joint, err := JointParentDistribution([]models.VariantRecord{trio(2, 1, 1), trio(2, 1, 2), trio(0, 2, 1)})
		require.NoError(t, err)

		_, ok := joint[combination(0, 0)]
		assert.False(t, ok)
		assert.InDelta(t, 1.0, joint.Sum(), tolerance)

		grid := joint.Grid()
		assert.InDelta(t, 2.0/3.0, grid[2][1], tolerance)
		assert.InDelta(t, 1.0/3.0, grid[0][2], tolerance)
		assert.Equal(t, 0.0, grid[0][0])
		assert.Equal(t, 0.0, grid[1][1])
	})

	t.Run("should fail on an empty partition", func(t *testing.T) {
		_, err := JointParentDistribution([]models.VariantRecord{})

		assert.True(t, errors.Is(err, ve.ErrEmptyPartition))
	})
}

func TestConditionalChildDistribution(t *testing.T) {
	t.Run("should count children per combination", func(t *testing.T) {
		conditional, err := ConditionalChildDistribution(syntheticRecords())
		require.NoError(t, err)

		assert.Len(t, conditional, 9)
		// the lone (1,0) record has label 1
		assert.Equal(t, models.ChildCounts{0, 1, 0}, conditional[combination(1, 0)])
		assert.Equal(t, models.ChildCounts{1, 0, 0}, conditional[combination(1, 1)])
		assert.Equal(t, models.ChildCounts{0, 0, 1}, conditional[combination(2, 2)])
		// unobserved combinations are zero-filled
		assert.Equal(t, models.ChildCounts{0, 0, 0}, conditional[combination(0, 2)])
		assert.Equal(t, [3]float64{0, 0, 0}, conditional[combination(0, 2)].Proportions())
	})

	t.Run("should fix (0,0) with no (0,0) records", func(t *testing.T) {
		conditional, err := ConditionalChildDistribution([]models.VariantRecord{trio(1, 2, 1), trio(2, 2, 2)})
		require.NoError(t, err)

		assert.Equal(t, models.ChildCounts{1, 0, 0}, conditional[models.BothHomozygousReference])
		assert.Equal(t, [3]float64{1, 0, 0}, conditional[models.BothHomozygousReference].Proportions())
	})

	t.Run("should put all (0,0) weight on genotype 0", func(t *testing.T) {
		// a heterozygous child of two homozygous-reference parents is a calling error
		conditional, err := ConditionalChildDistribution([]models.VariantRecord{trio(0, 0, 0), trio(0, 0, 1), trio(0, 0, 0)})
		require.NoError(t, err)

		assert.Equal(t, models.ChildCounts{3, 0, 0}, conditional[models.BothHomozygousReference])
	})

	t.Run("should not override other combinations", func(t *testing.T) {
		conditional, err := ConditionalChildDistribution([]models.VariantRecord{trio(2, 2, 1)})
		require.NoError(t, err)

		assert.Equal(t, models.ChildCounts{0, 1, 0}, conditional[combination(2, 2)])
		assert.Equal(t, models.ChildCounts{0, 0, 0}, conditional[combination(1, 1)])
	})

	t.Run("should tolerate an empty partition", func(t *testing.T) {
		conditional, err := ConditionalChildDistribution(nil)
		require.NoError(t, err)

		assert.Len(t, conditional, 9)
		assert.Equal(t, models.ChildCounts{1, 0, 0}, conditional[models.BothHomozygousReference])
	})
}

func TestComputePartitionStatistics(t *testing.T) {
	t.Run("should aggregate one partition", func(t *testing.T) {
		stats, err := ComputePartitionStatistics(models.Partition{Name: p.Validation, Records: syntheticRecords()})
		require.NoError(t, err)

		assert.Equal(t, p.Validation, stats.Partition)
		assert.Equal(t, 4, stats.RecordCount)
		assert.Len(t, stats.Joint, 4)
		assert.Len(t, stats.Conditional, 9)
	})

	t.Run("should name the empty partition", func(t *testing.T) {
		_, err := ComputePartitionStatistics(models.Partition{Name: p.Test})

		var empty *ve.EmptyPartitionError
		require.True(t, errors.As(err, &empty))
		assert.Equal(t, p.Test, empty.Partition)
	})
}

func TestComputeFromTable(t *testing.T) {
	t.Run("should aggregate a raw table", func(t *testing.T) {
		df := dataframe.ReadCSV(strings.NewReader(
			"loc_string,start,end,H12148W,M12148W,label\n" +
				"a,0,1,0,0,0\n" +
				"b,1,2,1,1,0\n" +
				"c,2,3,1,0,1\n" +
				"d,3,4,2,2,2\n"))

		stats, err := ComputeFromTable(p.Train, df)
		require.NoError(t, err)

		assert.InDelta(t, 0.25, stats.Joint[combination(1, 0)], tolerance)
		assert.Equal(t, models.ChildCounts{0, 1, 0}, stats.Conditional[combination(1, 0)])
		assert.Equal(t, models.ChildCounts{1, 0, 0}, stats.Conditional[combination(1, 1)])
	})

	t.Run("should fail when a genotype column is missing", func(t *testing.T) {
		df := dataframe.ReadCSV(strings.NewReader(
			"loc_string,start,end,H12148W,label\n" +
				"a,0,1,0,0\n"))

		_, err := ComputeFromTable(p.Train, df)

		var missing *ve.MissingColumnError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, constants.MotherGenotypeColumn, missing.Column)
		assert.Equal(t, p.Train, missing.Partition)
	})
}
