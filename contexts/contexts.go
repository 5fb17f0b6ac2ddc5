package contexts

import (
	"genosplit/api/models"
	"genosplit/api/models/constants"
	"genosplit/api/services"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the validation service and other variables
	GenosplitContext struct {
		echo.Context
		Config            *models.Config
		ValidationService *services.ValidationService

		// set by middleware
		Partition constants.Partition
	}
)
