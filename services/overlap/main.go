package overlap

import (
	"fmt"
	"strings"

	"genosplit/api/models"
	"genosplit/api/models/constants"
	p "genosplit/api/models/constants/partition"

	"github.com/ahmetb/go-linq"
)

const summaryHeading = "Interception results:"

// DetectOverlaps checks the three identifier collections for pairwise
// intersections. Duplicates within a collection do not matter.
func DetectOverlaps(trainIds, valIds, testIds []string) models.OverlapReport {
	trainVal := sharedCount(trainIds, valIds)
	trainTest := sharedCount(trainIds, testIds)
	testVal := sharedCount(testIds, valIds)

	report := models.OverlapReport{
		TrainOverlapsValidation: trainVal > 0,
		TrainOverlapsTest:       trainTest > 0,
		TestOverlapsValidation:  testVal > 0,
		Pairs: []models.PairOverlap{
			pair(p.Train, p.Validation, trainVal),
			pair(p.Train, p.Test, trainTest),
			pair(p.Test, p.Validation, testVal),
		},
	}

	var sb strings.Builder
	sb.WriteString(summaryHeading)
	for _, po := range report.Pairs {
		if po.Overlaps {
			report.TotalOverlapCount++
			sb.WriteString(fmt.Sprintf("\n %s overlaps with %s", po.Left, po.Right))
		}
	}
	if report.TotalOverlapCount == 0 {
		sb.WriteString("\n There are no overlaps")
	}
	report.Summary = sb.String()

	return report
}

// DetectPartitionOverlaps compares the loc_string columns of a dataset
func DetectPartitionOverlaps(dataset models.Dataset) models.OverlapReport {
	return DetectOverlaps(
		dataset.Train.LocStrings(),
		dataset.Validation.LocStrings(),
		dataset.Test.LocStrings())
}

// number of distinct identifiers present in both collections
func sharedCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return linq.From(a).Intersect(linq.From(b)).Count()
}

func pair(left, right constants.Partition, shared int) models.PairOverlap {
	return models.PairOverlap{
		Left:        left,
		Right:       right,
		Overlaps:    shared > 0,
		SharedCount: shared,
	}
}
