package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-engine/infrastructure/repository"
	"github.com/vfg2006/ads-report-engine/internal/api/handler/router"
	"github.com/vfg2006/ads-report-engine/internal/scheduler"
	"github.com/vfg2006/ads-report-engine/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/run",
			Method:  http.MethodPost,
			Handler: RunReport(service),
		},
		{
			Path:    "/v1/reports/vocabulary",
			Method:  http.MethodGet,
			Handler: ReportVocabulary(),
		},
	}
}

func AdAccounts(repo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(repo),
		},
	}
}

func Mirror(service *scheduler.MirrorSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/mirror/sync",
			Method:  http.MethodPost,
			Handler: RunMirrorSync(service),
		},
		{
			Path:    "/v1/mirror/status",
			Method:  http.MethodGet,
			Handler: MirrorSyncStatus(service),
		},
	}
}
