package serviceInfo

import (
	"net/http"

	"gwas/api/contexts"
	serviceInfo "gwas/api/models/constants/service-info"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
)

// GA4GH service-info: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	cfg := c.(*contexts.AssociationContext).Config

	doc := gabs.New()
	doc.Set(serviceInfo.SERVICE_ID, "id")
	doc.Set(serviceInfo.SERVICE_NAME, "name")
	doc.Set(serviceInfo.SERVICE_DESCRIPTION, "description")
	doc.Set(serviceInfo.SERVICE_ARTIFACT, "type", "artifact")
	doc.Set(serviceInfo.SERVICE_GROUP, "type", "group")
	doc.Set(serviceInfo.SERVICE_VERSION, "type", "version")
	doc.Set(serviceInfo.SERVICE_CONTACT, "contactUrl")
	doc.Set(serviceInfo.SERVICE_VERSION, "version")
	doc.Set(cfg.Api.SupportedApiVersion, "gwas", "apiVersion")
	doc.Set(cfg.Api.SupportedMdVersion, "gwas", "mdVersion")

	return c.JSON(http.StatusOK, doc.Data())
}
