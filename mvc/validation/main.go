package validation

import (
	"net/http"

	"genosplit/api/contexts"
	"genosplit/api/models/dtos"
	errorsDtos "genosplit/api/models/dtos/errors"
	"genosplit/api/mvc"

	"github.com/labstack/echo"
)

func RunValidation(c echo.Context) error {
	gc := c.(*contexts.GenosplitContext)

	run, err := gc.ValidationService.Run(c.Request().Context())
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	return mvc.Respond(c, http.StatusOK, run)
}

func GetAllValidationRuns(c echo.Context) error {
	gc := c.(*contexts.GenosplitContext)

	runs := gc.ValidationService.All()
	return mvc.Respond(c, http.StatusOK, dtos.ValidationRunsResponseDto{
		Count:   len(runs),
		Results: runs,
	})
}

func GetLatestValidation(c echo.Context) error {
	gc := c.(*contexts.GenosplitContext)

	latest := gc.ValidationService.Latest()
	if latest == nil {
		return mvc.Respond(c, http.StatusNotFound, errorsDtos.CreateSimpleNotFound("No validation has been run yet"))
	}
	return mvc.Respond(c, http.StatusOK, latest)
}

func GetOverlaps(c echo.Context) error {
	gc := c.(*contexts.GenosplitContext)

	run, err := gc.ValidationService.LatestOrRun(c.Request().Context())
	if run == nil || run.Overlaps == nil {
		return mvc.RespondWithError(c, err)
	}
	return mvc.Respond(c, http.StatusOK, dtos.OverlapResponseDto{
		RunId:  run.Id.String(),
		Report: *run.Overlaps,
	})
}

func GetVariantLengths(c echo.Context) error {
	gc := c.(*contexts.GenosplitContext)

	run, err := gc.ValidationService.LatestOrRun(c.Request().Context())
	if run == nil || run.Lengths == nil {
		return mvc.RespondWithError(c, err)
	}
	return mvc.Respond(c, http.StatusOK, dtos.LengthResponseDto{
		RunId:  run.Id.String(),
		Report: *run.Lengths,
	})
}
