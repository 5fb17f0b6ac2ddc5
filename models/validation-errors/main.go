package validationErrors

import (
	"errors"
	"fmt"

	"genosplit/api/models/constants"
)

/*
	Error kinds surfaced while loading and aggregating partitions.
	Each concrete type matches its sentinel through errors.Is so
	callers can branch on the kind without caring about the details.
*/
var (
	ErrMissingColumn      = errors.New("missing column")
	ErrEmptyPartition     = errors.New("empty partition")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrGenotypeOutOfRange = errors.New("genotype out of range")
)

type MissingColumnError struct {
	Partition constants.Partition
	Column    string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("partition %s: missing required column %q", e.Partition, e.Column)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }

type EmptyPartitionError struct {
	Partition constants.Partition
}

func (e *EmptyPartitionError) Error() string {
	return fmt.Sprintf("partition %s: no records to normalize", e.Partition)
}

func (e *EmptyPartitionError) Is(target error) bool { return target == ErrEmptyPartition }

// Row is 0-based and relative to the first data row; -1 when unknown
type TypeMismatchError struct {
	Partition constants.Partition
	Column    string
	Row       int
	Value     string
}

func (e *TypeMismatchError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("partition %s: column %q is not integer-typed", e.Partition, e.Column)
	}
	if len(e.Value) == 0 {
		return fmt.Sprintf("partition %s: column %q row %d: empty value", e.Partition, e.Column, e.Row)
	}
	return fmt.Sprintf("partition %s: column %q row %d: %q is not an integer", e.Partition, e.Column, e.Row, e.Value)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

type GenotypeOutOfRangeError struct {
	Partition constants.Partition
	Column    string
	Row       int
	Value     constants.Genotype
}

func (e *GenotypeOutOfRangeError) Error() string {
	return fmt.Sprintf("partition %s: column %q row %d: genotype %d not in {0,1,2}", e.Partition, e.Column, e.Row, e.Value)
}

func (e *GenotypeOutOfRangeError) Is(target error) bool { return target == ErrGenotypeOutOfRange }

// IsValidationError reports whether err stems from bad input data
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrEmptyPartition) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrGenotypeOutOfRange)
}
