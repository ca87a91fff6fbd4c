package handler

import (
	"net/http"

	"github.com/dashly/sales-analytics-api/internal/api/handler/router"
	"github.com/dashly/sales-analytics-api/internal/config"
	"github.com/dashly/sales-analytics-api/internal/usecases/analyzing"
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

func Analysis(service analyzing.Analyzer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analyze",
			Method:  http.MethodPost,
			Handler: Analyze(service, cfg),
		},
	}
}
