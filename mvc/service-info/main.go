package serviceInfo

import (
	"genosplit/api/contexts"
	serviceInfo "genosplit/api/models/constants/service-info"
	"genosplit/api/mvc"

	"net/http"

	"github.com/labstack/echo"
)

func GetServiceInfo(c echo.Context) error {
	return mvc.Respond(c, http.StatusOK, map[string]interface{}{
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  c.(*contexts.GenosplitContext).Config.Api.SemVer,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"version":     c.(*contexts.GenosplitContext).Config.Api.SemVer,
	})
}
