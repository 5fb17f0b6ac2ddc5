package distributions

import (
	"fmt"
	"net/http"

	"genosplit/api/contexts"
	"genosplit/api/models/dtos"
	errorsDtos "genosplit/api/models/dtos/errors"
	"genosplit/api/mvc"

	"github.com/labstack/echo"
)

// GetPartitionDistributions serves the marginal, joint and conditional
// genotype tables of one partition from the latest run
func GetPartitionDistributions(c echo.Context) error {
	gc := c.(*contexts.GenosplitContext)

	run, err := gc.ValidationService.LatestOrRun(c.Request().Context())
	if run == nil || run.Statistics == nil {
		return mvc.RespondWithError(c, err)
	}

	stats, ok := run.Statistics[gc.Partition]
	if !ok {
		// only the requested partition decides the outcome
		if message, failed := run.PartitionErrors[gc.Partition]; failed {
			return mvc.Respond(c, http.StatusUnprocessableEntity, errorsDtos.CreateSimpleUnprocessableEntity(message))
		}
		return mvc.Respond(c, http.StatusNotFound,
			errorsDtos.CreateSimpleNotFound(fmt.Sprintf("No statistics for partition %s", gc.Partition)))
	}
	return mvc.Respond(c, http.StatusOK, dtos.NewDistributionsResponseDto(run.Id.String(), stats))
}
