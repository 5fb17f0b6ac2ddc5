package models

import (
	"genosplit/api/models/constants"
)

// VariantRecord is one row of a partition table
type VariantRecord struct {
	LocString string             `json:"loc_string" yaml:"loc_string" mapstructure:"loc_string"`
	Start     int                `json:"start" yaml:"start" mapstructure:"start"`
	End       int                `json:"end" yaml:"end" mapstructure:"end"`
	Father    constants.Genotype `json:"H12148W" yaml:"H12148W" mapstructure:"H12148W"`
	Mother    constants.Genotype `json:"M12148W" yaml:"M12148W" mapstructure:"M12148W"`
	Child     constants.Genotype `json:"label" yaml:"label" mapstructure:"label"`

	// 0-based position within the partition's data rows
	Row int `json:"-" yaml:"-" mapstructure:"-"`
}

func (r VariantRecord) Length() int {
	return r.End - r.Start
}

func (r VariantRecord) Combination() GenotypeCombination {
	return GenotypeCombination{Father: r.Father, Mother: r.Mother}
}

type Partition struct {
	Name    constants.Partition
	Records []VariantRecord
}

func (p Partition) LocStrings() []string {
	ids := make([]string, len(p.Records))
	for i, r := range p.Records {
		ids[i] = r.LocString
	}
	return ids
}

// Dataset holds the three splits of one validation run
type Dataset struct {
	Train      Partition
	Validation Partition
	Test       Partition
}

// Partitions returns the splits in presentation order
func (d Dataset) Partitions() []Partition {
	return []Partition{d.Train, d.Validation, d.Test}
}
