package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout genosplit and it's
	associated services.
*/
type Genotype int
type Partition string
type RunState string

// Columns every partition table must expose
const (
	LocStringColumn      = "loc_string"
	StartColumn          = "start"
	EndColumn            = "end"
	FatherGenotypeColumn = "H12148W"
	MotherGenotypeColumn = "M12148W"
	ChildGenotypeColumn  = "label"
)

var RequiredColumns = []string{
	LocStringColumn,
	StartColumn,
	EndColumn,
	FatherGenotypeColumn,
	MotherGenotypeColumn,
	ChildGenotypeColumn,
}

// integer-typed subset of RequiredColumns
var IntegerColumns = []string{
	StartColumn,
	EndColumn,
	FatherGenotypeColumn,
	MotherGenotypeColumn,
	ChildGenotypeColumn,
}
