package dtos

import (
	"time"

	"genosplit/api/models"
	"genosplit/api/models/constants"
	g "genosplit/api/models/constants/genotype"
)

type GeneralErrorResponseDto struct {
	Code      int            `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Errors    []GeneralError `json:"errors" yaml:"errors"`
}
type GeneralError struct {
	Message string `json:"message" yaml:"message"`
}

// -- Validation runs
type ValidationRunsResponseDto struct {
	Count   int                    `json:"count" yaml:"count"`
	Results []models.ValidationRun `json:"results" yaml:"results"`
}

type OverlapResponseDto struct {
	RunId  string               `json:"runId" yaml:"runId"`
	Report models.OverlapReport `json:"report" yaml:"report"`
}

type LengthResponseDto struct {
	RunId  string              `json:"runId" yaml:"runId"`
	Report models.LengthReport `json:"report" yaml:"report"`
}

// -- Distributions
type DistributionsResponseDto struct {
	RunId       string                       `json:"runId" yaml:"runId"`
	Partition   constants.Partition          `json:"partition" yaml:"partition"`
	RecordCount int                          `json:"recordCount" yaml:"recordCount"`
	Marginals   models.MarginalDistributions `json:"marginals" yaml:"marginals"`
	// rows are father genotypes, columns mother genotypes
	JointGrid   [3][3]float64     `json:"jointGrid" yaml:"jointGrid"`
	Conditional []ConditionalCell `json:"conditional" yaml:"conditional"`
}

type ConditionalCell struct {
	Father      constants.Genotype `json:"father" yaml:"father"`
	Mother      constants.Genotype `json:"mother" yaml:"mother"`
	Label       string             `json:"label" yaml:"label"`
	Counts      [3]int             `json:"counts" yaml:"counts"`
	Proportions [3]float64         `json:"proportions" yaml:"proportions"`
}

func NewDistributionsResponseDto(runId string, stats *models.PartitionStatistics) DistributionsResponseDto {
	cells := make([]ConditionalCell, 0, 9)
	for _, combination := range models.AllCombinations() {
		counts := stats.Conditional[combination]
		cells = append(cells, ConditionalCell{
			Father:      combination.Father,
			Mother:      combination.Mother,
			Label:       g.GenotypeToString(combination.Father) + " x " + g.GenotypeToString(combination.Mother),
			Counts:      counts,
			Proportions: counts.Proportions(),
		})
	}

	return DistributionsResponseDto{
		RunId:       runId,
		Partition:   stats.Partition,
		RecordCount: stats.RecordCount,
		Marginals:   stats.Marginals,
		JointGrid:   stats.Joint.Grid(),
		Conditional: cells,
	}
}
