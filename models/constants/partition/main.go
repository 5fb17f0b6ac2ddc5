package partition

import (
	"genosplit/api/models/constants"
	"strings"
)

const (
	Unknown constants.Partition = "unknown"

	Train      constants.Partition = "train"
	Validation constants.Partition = "val"
	Test       constants.Partition = "test"
)

// All lists the partitions in presentation order
var All = []constants.Partition{Train, Validation, Test}

func CastToPartition(text string) constants.Partition {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "train":
		return Train
	case "val", "validation":
		return Validation
	case "test":
		return Test
	default:
		return Unknown
	}
}

func IsKnownPartition(text string) bool {
	return CastToPartition(text) != Unknown
}
