package invariants

import (
	"genosplit/api/models"

	"github.com/ahmetb/go-linq"
)

// expected end - start of every single-base variant
const VariantLength = 1

// CheckVariantLengths is true iff every record spans exactly one base.
// Zero records are vacuously valid.
func CheckVariantLengths(records []models.VariantRecord) bool {
	return linq.From(records).AllT(func(r models.VariantRecord) bool {
		return r.Length() == VariantLength
	})
}

// CheckPartitionLengths checks the union of all rows of the given partitions
func CheckPartitionLengths(partitions ...models.Partition) bool {
	for _, partition := range partitions {
		if !CheckVariantLengths(partition.Records) {
			return false
		}
	}
	return true
}

// FindInvalidLengths lists every offending row, in partition then row order
func FindInvalidLengths(partitions ...models.Partition) []models.InvalidLength {
	invalid := []models.InvalidLength{}
	for _, partition := range partitions {
		name := partition.Name
		linq.From(partition.Records).
			WhereT(func(r models.VariantRecord) bool {
				return r.Length() != VariantLength
			}).
			SelectT(func(r models.VariantRecord) models.InvalidLength {
				return models.InvalidLength{
					Partition: name,
					Row:       r.Row,
					LocString: r.LocString,
					Start:     r.Start,
					End:       r.End,
				}
			}).
			ForEachT(func(il models.InvalidLength) {
				invalid = append(invalid, il)
			})
	}
	return invalid
}
