package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Mendel Cross Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Mendel Punnett square API!"
	SERVICE_DESCRIPTION ServiceInfo = "Mendelian cross calculator with phenotype ratios and a genetics tutor."

	SERVICE_ARTIFACT    ServiceInfo = "mendel"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("edu.genetics:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
