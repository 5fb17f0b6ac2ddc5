package middleware

import (
	"fmt"
	"genosplit/api/contexts"
	p "genosplit/api/models/constants/partition"
	errorsDtos "genosplit/api/models/dtos/errors"
	"net/http"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a valid `partition` path parameter was provided
*/
func MandatePartitionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		partitionParam := c.Param("partition")
		if len(partitionParam) == 0 || !p.IsKnownPartition(partitionParam) {
			return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest(
				fmt.Sprintf("Missing or unknown partition %q ; use one of train, val, test", partitionParam)))
		}

		gc := c.(*contexts.GenosplitContext)
		gc.Partition = p.CastToPartition(partitionParam)
		return next(gc)
	}
}
