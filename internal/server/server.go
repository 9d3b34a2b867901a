package server

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/gradepilot/gradepilot/internal/common"
	"github.com/gradepilot/gradepilot/internal/core/async"
	"github.com/gradepilot/gradepilot/internal/export"
	"github.com/gradepilot/gradepilot/internal/extract"
	"github.com/gradepilot/gradepilot/internal/intake"
	"github.com/gradepilot/gradepilot/internal/repository"
)

// Enqueuer is the slice of the grading queue the handlers need.
type Enqueuer interface {
	Enqueue(ctx context.Context, job async.Job) error
}

// Server wires repositories, intake, export, and the grading queue behind
// the HTTP surface.
type Server struct {
	logger    *slog.Logger
	jobsRepo  repository.JobRepository
	subsRepo  repository.SubmissionRepository
	intake    intake.Intaker
	exporter  *export.Service
	extractor extract.TextExtractor
	queue     Enqueuer
	ping      func(ctx context.Context) error
}

func NewServer(
	logger *slog.Logger,
	jobsRepo repository.JobRepository,
	subsRepo repository.SubmissionRepository,
	intaker intake.Intaker,
	exporter *export.Service,
	extractor extract.TextExtractor,
	queue Enqueuer,
	ping func(ctx context.Context) error,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:    logger,
		jobsRepo:  jobsRepo,
		subsRepo:  subsRepo,
		intake:    intaker,
		exporter:  exporter,
		extractor: extractor,
		queue:     queue,
		ping:      ping,
	}
}

// Router builds the gin engine with every route mounted under /api.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	api := router.Group("/api")
	{
		api.GET("/health", s.Health)

		api.POST("/jobs", s.CreateJob)
		api.GET("/jobs", s.ListJobs)
		api.GET("/jobs/:id", s.GetJob)
		api.DELETE("/jobs/:id", s.DeleteJob)
		api.GET("/jobs/:id/export", s.ExportJob)

		api.POST("/submissions/job/:jobId", s.UploadSubmissions)
		api.GET("/submissions/job/:jobId", s.ListSubmissions)
		api.POST("/submissions/job/:jobId/start", s.StartGrading)
		api.GET("/submissions/:id/preview", s.PreviewSubmission)
		api.PATCH("/submissions/:id", s.UpdateSubmission)
	}
	return router
}

// respondError converts the error taxonomy into a JSON error payload.
func (s *Server) respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	if status >= 500 {
		s.logger.Error("request failed",
			"path", c.FullPath(),
			"req_id", common.RequestIDFromContext(c.Request.Context()),
			"error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
