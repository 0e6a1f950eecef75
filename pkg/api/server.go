// Package api is the HTTP surface: upload and job polling, the chat session
// endpoints with their SSE stream, the admin review workflow, and thin read
// endpoints over the service layer.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labtrail/labtrail/pkg/chat"
	"github.com/labtrail/labtrail/pkg/config"
	"github.com/labtrail/labtrail/pkg/database"
	"github.com/labtrail/labtrail/pkg/events"
	"github.com/labtrail/labtrail/pkg/ingest"
	"github.com/labtrail/labtrail/pkg/insight"
	"github.com/labtrail/labtrail/pkg/jobs"
	"github.com/labtrail/labtrail/pkg/services"
	"github.com/labtrail/labtrail/pkg/session"
)

// Deps aggregates everything the handlers need; main wires it once.
type Deps struct {
	Config   *config.Config
	DB       *database.Client
	Users    *services.UserService
	Patients *services.PatientService
	Reports  *services.ReportService
	Analytes *services.AnalyteService
	Reviews  *services.ReviewService
	Audit    *services.AuditService

	Sessions     *session.Store
	Registry     *events.Registry
	Jobs         *jobs.Manager
	Pool         *jobs.Pool
	Pipeline     *ingest.Pipeline
	Orchestrator *chat.Orchestrator
	Insights     *insight.Generator
}

// Server owns the router and the HTTP listener.
type Server struct {
	deps Deps
	http *http.Server
}

func NewServer(deps Deps) *Server {
	if deps.Config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{deps: deps}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())
	s.registerRoutes(router)

	s.http = &http.Server{
		Addr:              deps.Config.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", s.health)

	v1 := router.Group("/api/v1")
	v1.GET("/version", s.version)
	v1.POST("/auth/register", s.register)

	authed := v1.Group("", requireAuth(s.deps.Users, s.deps.Audit))
	{
		authed.POST("/reports", s.uploadReport)
		authed.GET("/reports/:id", s.getReport)
		authed.GET("/jobs/:id", s.getJob)

		authed.GET("/patients", s.listPatients)
		authed.GET("/patients/:id/reports", s.listPatientReports)

		authed.POST("/chat/sessions", s.createSession)
		authed.GET("/chat/sessions/:id", s.validateSession)
		authed.GET("/chat/sessions/:id/stream", s.streamSession)
		authed.POST("/chat/sessions/:id/messages", s.postMessage)
		authed.DELETE("/chat/sessions/:id", s.deleteSession)
	}

	admin := v1.Group("/admin", requireAuth(s.deps.Users, s.deps.Audit), requireAdmin())
	{
		admin.GET("/reviews", s.listReviews)
		admin.POST("/reviews/:id/resolve", s.resolveReview)
		admin.POST("/reviews/:id/skip", s.skipReview)

		admin.GET("/pending-analytes", s.listPendingAnalytes)
		admin.POST("/pending-analytes/:id/approve", s.approvePendingAnalyte)
		admin.DELETE("/pending-analytes/:id", s.discardPendingAnalyte)

		admin.GET("/analytes", s.listAnalytes)
		admin.GET("/users/:id/unmapped", s.listUnmappedParameters)
		admin.GET("/actions", s.listAdminActions)
		admin.POST("/reset", s.resetStore)
	}
}

// Run serves until ctx is canceled, then drains with a grace period.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
