package models

import (
	"genosplit/api/models/constants"

	"github.com/google/uuid"
)

type PairOverlap struct {
	Left        constants.Partition `json:"left" yaml:"left"`
	Right       constants.Partition `json:"right" yaml:"right"`
	Overlaps    bool                `json:"overlaps" yaml:"overlaps"`
	SharedCount int                 `json:"sharedCount" yaml:"sharedCount"`
}

type OverlapReport struct {
	TrainOverlapsValidation bool          `json:"trainOverlapsValidation" yaml:"trainOverlapsValidation"`
	TrainOverlapsTest       bool          `json:"trainOverlapsTest" yaml:"trainOverlapsTest"`
	TestOverlapsValidation  bool          `json:"testOverlapsValidation" yaml:"testOverlapsValidation"`
	TotalOverlapCount       int           `json:"totalOverlapCount" yaml:"totalOverlapCount"`
	Pairs                   []PairOverlap `json:"pairs" yaml:"pairs"`
	Summary                 string        `json:"summary" yaml:"summary"`
}

type InvalidLength struct {
	Partition constants.Partition `json:"partition" yaml:"partition"`
	Row       int                 `json:"row" yaml:"row"`
	LocString string              `json:"loc_string" yaml:"loc_string"`
	Start     int                 `json:"start" yaml:"start"`
	End       int                 `json:"end" yaml:"end"`
}

type LengthReport struct {
	Valid             bool            `json:"valid" yaml:"valid"`
	RecordCount       int             `json:"recordCount" yaml:"recordCount"`
	InvalidCount      int             `json:"invalidCount" yaml:"invalidCount"`
	InvalidLengthRows []InvalidLength `json:"invalidLengthRows" yaml:"invalidLengthRows"`
}

type ValidationRun struct {
	Id        uuid.UUID          `json:"id" yaml:"id"`
	State     constants.RunState `json:"state" yaml:"state"`
	Message   string             `json:"message" yaml:"message"`
	CreatedAt string             `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string             `json:"updatedAt" yaml:"updatedAt"`

	Overlaps   *OverlapReport                               `json:"overlaps,omitempty" yaml:"overlaps,omitempty"`
	Lengths    *LengthReport                                `json:"lengths,omitempty" yaml:"lengths,omitempty"`
	Statistics map[constants.Partition]*PartitionStatistics `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	// partitions whose statistics could not be computed
	PartitionErrors map[constants.Partition]string `json:"partitionErrors,omitempty" yaml:"partitionErrors,omitempty"`
}
