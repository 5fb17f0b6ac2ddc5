package mvc

import (
	"net/http"
	"strings"

	errorsDtos "genosplit/api/models/dtos/errors"
	ve "genosplit/api/models/validation-errors"

	"github.com/labstack/echo"
	"gopkg.in/yaml.v2"
)

const MIMEApplicationYAML = "application/x-yaml"

// Respond writes i as JSON, or YAML when `format=yaml` is requested
func Respond(c echo.Context, code int, i interface{}) error {
	if strings.ToLower(c.QueryParam("format")) == "yaml" {
		out, err := yaml.Marshal(i)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorsDtos.CreateSimpleInternalServerError(err.Error()))
		}
		return c.Blob(code, MIMEApplicationYAML, out)
	}
	return c.JSON(code, i)
}

// RespondWithError maps data validation failures to 422, everything else to 500
func RespondWithError(c echo.Context, err error) error {
	if ve.IsValidationError(err) {
		return Respond(c, http.StatusUnprocessableEntity, errorsDtos.CreateSimpleUnprocessableEntity(err.Error()))
	}
	return Respond(c, http.StatusInternalServerError, errorsDtos.CreateSimpleInternalServerError(err.Error()))
}
