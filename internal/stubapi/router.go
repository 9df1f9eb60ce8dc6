// Package stubapi is an in-memory implementation of the job board backend
// for local development and end-to-end tests of the client.
package stubapi

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/campusjobs/jobboard/internal/core/domain"
	_ "github.com/campusjobs/jobboard/internal/stubapi/docs"
)

// Deps are the router's collaborators.
type Deps struct {
	Store *Store
	Auth  *AuthService
	Log   zerolog.Logger
	// Registry receives the HTTP metrics served on /metrics. A fresh registry
	// is created when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "jobboard_stub",
		Subsystem:  "http",
		Registerer: reg,
	}))

	// --- Dependencies ---
	authHandler := NewAuthHandler(d.Auth)
	jobHandler := NewJobHandler(d.Store)
	appHandler := NewApplicationHandler(d.Store)
	deptHandler := NewDepartmentHandler(d.Store)
	reviewHandler := NewReviewHandler(d.Store)
	healthHandler := NewHealthHandler(d.Store)

	authed := Auth(d.Auth)
	students := RequireRole(domain.RoleStudent)
	employers := RequireRole(domain.RoleEmployer)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authed)

	// --- Jobs ---
	e.GET("/jobs/", jobHandler.List)
	e.GET("/jobs/my", jobHandler.Mine, authed, employers)
	e.GET("/jobs/:id", jobHandler.Get)
	e.POST("/jobs/", jobHandler.Create, authed, employers)

	// --- Applications ---
	apps := e.Group("/applications", authed)
	apps.GET("/", appHandler.List, students)
	apps.POST("/", appHandler.Create, students)
	apps.POST("/upload-resume", appHandler.UploadResume, students, echomiddleware.BodyLimit("6M"))
	apps.GET("/by-job/:id", appHandler.ByJob, employers)
	apps.GET("/:id", appHandler.Get)
	apps.PATCH("/:id/status", appHandler.UpdateStatus, employers)
	e.GET("/uploads/resumes/:name", appHandler.Resume)

	// --- Departments ---
	depts := e.Group("/departments", authed, employers)
	depts.GET("/my-department", deptHandler.Mine)
	depts.PUT("/my-department", deptHandler.UpdateMine)
	depts.POST("/", deptHandler.Create)
	depts.DELETE("/:id", deptHandler.Delete)

	// --- Reviews ---
	e.GET("/reviews/job/:id", reviewHandler.ForJob)
	e.POST("/reviews/", reviewHandler.Create, authed, students)
	e.GET("/employer-reviews/application/:id", reviewHandler.ForApplication)
	e.POST("/employer-reviews/", reviewHandler.CreateEmployerReview, authed, employers)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			level := zerolog.InfoLevel
			if v.Error != nil {
				level = zerolog.WarnLevel
			}
			log.WithLevel(level).
				Err(v.Error).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
