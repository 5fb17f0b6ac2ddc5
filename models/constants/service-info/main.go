package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Genosplit Partition Validation Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Genosplit API!"
	SERVICE_DESCRIPTION ServiceInfo = "Leakage, span and trio-genotype distribution checks for train/val/test variant splits."

	SERVICE_ARTIFACT    ServiceInfo = "genosplit"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("genosplit:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
)
