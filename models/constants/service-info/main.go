package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Association Statistics Service"
	SERVICE_DESCRIPTION ServiceInfo = "Per-variant association statistics over pre-aggregated genotype stores."
	SERVICE_CONTACT     ServiceInfo = "mailto:gwas-maintainers@example.org"

	SERVICE_GROUP       ServiceInfo = "org.gwas"
	SERVICE_ARTIFACT    ServiceInfo = "gwas-stats"
	SERVICE_VERSION     ServiceInfo = "1.0.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_GROUP, SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
)
