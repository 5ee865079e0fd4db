package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-engine/internal/api/handler/router"
	"github.com/vfg2006/revenue-engine/internal/usecases/analyzing"
	"github.com/vfg2006/revenue-engine/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-engine/internal/usecases/forecasting"
	"github.com/vfg2006/revenue-engine/internal/usecases/pricing"
	"github.com/vfg2006/revenue-engine/pkg/middleware"
)

// Defaults usados quando o parâmetro de consulta não é enviado
type Defaults struct {
	LookbackDays int
	UseModel     bool
	SummaryDays  int
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: IssueToken(service),
		},
	}
}

func Forecasting(service forecasting.Forecaster, defaults Defaults) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/categories/:category/occupancy",
			Method:      http.MethodGet,
			Handler:     OccupancySeries(service, defaults.LookbackDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/categories/:category/forecast",
			Method:      http.MethodGet,
			Handler:     Forecast(service, defaults.UseModel),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Pricing(service pricing.Pricer, defaults Defaults) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/categories/:category/price",
			Method:      http.MethodGet,
			Handler:     Price(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/categories/:category/prices",
			Method:      http.MethodGet,
			Handler:     PriceRange(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/categories/:category/price-summary",
			Method:      http.MethodGet,
			Handler:     PriceSummary(service, defaults.SummaryDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/categories/:category/price-history",
			Method:      http.MethodGet,
			Handler:     PriceHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/categories/:category/prices/publish",
			Method:      http.MethodPost,
			Handler:     PublishPrices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrRevenueManager()},
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/categories/:category/scenarios",
			Method:      http.MethodGet,
			Handler:     Scenarios(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/categories/:category/accuracy",
			Method:      http.MethodGet,
			Handler:     Accuracy(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/bookings/patterns",
			Method:      http.MethodGet,
			Handler:     BookingPatterns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
