package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"

	"github.com/frahmantamala/ops-dashboard/internal/activity"
	"github.com/frahmantamala/ops-dashboard/internal/employee"
	"github.com/frahmantamala/ops-dashboard/internal/jobrequest"
	"github.com/frahmantamala/ops-dashboard/internal/session"
	"github.com/frahmantamala/ops-dashboard/internal/talent"
	"github.com/frahmantamala/ops-dashboard/internal/transport"
	"github.com/frahmantamala/ops-dashboard/internal/transport/middleware"
	"github.com/frahmantamala/ops-dashboard/internal/transport/swagger"
)

const APIPrefix = "/api/v1"

// Dependencies is everything the router mounts. Nil handlers leave their routes unregistered.
type Dependencies struct {
	DB             *sqlx.DB
	OpenAPI        *OpenAPIDocument
	Authorizer     *session.Authorizer
	Limiter        *limiter.Limiter
	AllowedOrigins []string
	MetricsPath    string

	Activity   *activity.Handler
	Employee   *employee.Handler
	Talent     *talent.Handler
	JobRequest *jobrequest.Handler
}

func RegisterAllRoutes(router *chi.Mux, deps Dependencies, logger *slog.Logger) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.TraceID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.Metrics)
	router.Use(middleware.CORS(deps.AllowedOrigins))
	if deps.Limiter != nil {
		router.Use(middleware.RateLimit(deps.Limiter))
	}
	if deps.Authorizer != nil {
		router.Use(deps.Authorizer.Middleware)
	}

	if deps.OpenAPI != nil {
		router.Method(http.MethodGet, "/openapi.yml", deps.OpenAPI)
		router.Handle("/swagger/*", swagger.Handler("/openapi.yml"))
	}
	if deps.MetricsPath != "" {
		router.Handle(deps.MetricsPath, promhttp.Handler())
	}

	router.Route(APIPrefix, func(r chi.Router) {
		healthHandler := NewHealthHandler(transport.NewBaseHandler(logger), deps.DB)
		r.Get("/ping", healthHandler.Ping)
		if deps.DB != nil {
			r.Get("/health", healthHandler.Health)
		}

		r.Route("/members/{memberId}", func(mr chi.Router) {
			if deps.Activity != nil {
				mr.Get("/activities", deps.Activity.GetActivities)
			}
			if deps.Employee != nil {
				mr.Get("/employees", deps.Employee.ListEmployees)
			}
		})

		if deps.Talent != nil {
			r.Route("/talent-pool", func(tr chi.Router) {
				tr.Get("/", deps.Talent.ListTalents)
				tr.Get("/{id}/analysis", deps.Talent.GetAnalysis)
			})
		}

		if deps.JobRequest != nil {
			r.Route("/companies/{companyId}/job-requests", func(jr chi.Router) {
				jr.Get("/", deps.JobRequest.ListJobRequests)
				jr.Post("/", deps.JobRequest.CreateJobRequest)
			})
			r.Get("/job-requests/recent-titles", deps.JobRequest.RecentTitles)
		}
	})
}
