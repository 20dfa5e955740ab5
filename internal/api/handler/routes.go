package handler

import (
	"net/http"

	"github.com/vfg2006/decision-report-api/internal/api/handler/router"
	"github.com/vfg2006/decision-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/decision-report-api/internal/usecases/ingesting"
	"github.com/vfg2006/decision-report-api/internal/usecases/reporting"
	"github.com/vfg2006/decision-report-api/pkg/middleware"
)

var (
	jsonBody   = []func(http.Handler) http.Handler{middleware.LimitBody(maxBodyBytes)}
	uploadBody = []func(http.Handler) http.Handler{middleware.LimitBody(maxUploadBytes)}
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Records(service ingesting.IngestionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/files",
			Method:  http.MethodGet,
			Handler: ListDataFiles(service),
		},
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: ListRecords(service),
		},
		{
			Path:        "/v1/records/upload",
			Method:      http.MethodPost,
			Handler:     UploadRecords(service),
			Middlewares: uploadBody,
		},
	}
}

func Analysis(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis",
			Method:  http.MethodGet,
			Handler: GetAnalysis(service),
		},
		{
			Path:    "/v1/policy",
			Method:  http.MethodGet,
			Handler: GetPolicy(service),
		},
		{
			Path:    "/v1/investments/scenarios",
			Method:  http.MethodGet,
			Handler: GetInvestmentScenarios(service),
		},
		{
			Path:        "/v1/consorcio/simulate",
			Method:      http.MethodPost,
			Handler:     SimulateConsorcio(service),
			Middlewares: jsonBody,
		},
		{
			Path:        "/v1/consorcio/risk",
			Method:      http.MethodPost,
			Handler:     AssessConsorcioRisk(service),
			Middlewares: jsonBody,
		},
		{
			Path:        "/v1/decision",
			Method:      http.MethodPost,
			Handler:     Decide(service),
			Middlewares: jsonBody,
		},
	}
}

func Reports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: ListReports(service),
		},
		{
			Path:    "/v1/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
