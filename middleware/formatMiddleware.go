package middleware

import (
	"net/http"
	"strings"

	errorsDtos "genosplit/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to reject unsupported `format` query parameters
*/
func ValidatePotentialFormatQueryParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		format := strings.ToLower(c.QueryParam("format"))
		if len(format) > 0 && format != "json" && format != "yaml" {
			return c.JSON(http.StatusBadRequest, errorsDtos.CreateSimpleBadRequest("Invalid format ; use json or yaml"))
		}

		return next(c)
	}
}
