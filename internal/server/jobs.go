package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/internal/common"
	"github.com/gradepilot/gradepilot/internal/entity"
	"github.com/gradepilot/gradepilot/internal/repository"
	"github.com/gradepilot/gradepilot/internal/utils"
)

// CreateJobRequest is the POST /api/jobs payload.
type CreateJobRequest struct {
	Title                      string `json:"title"`
	TotalPoints                int    `json:"total_points"`
	Strictness                 string `json:"strictness"`
	GradeLevel                 string `json:"grade_level"`
	AssignmentInstructionsText string `json:"assignment_instructions_text"`
	RubricText                 string `json:"rubric_text"`
}

func (s *Server) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, common.InvalidArgumentError("invalid request body"))
		return
	}

	strictness, ok := constants.ParseStrictness(req.Strictness)
	if !ok {
		s.respondError(c, common.InvalidArgumentErrorf("unknown strictness %q", req.Strictness))
		return
	}

	v := common.NewValidator()
	v.Field("title", req.Title, common.Required, common.MaxLength(200))
	v.Field("total_points", req.TotalPoints, common.Positive)
	v.Field("assignment_instructions_text", req.AssignmentInstructionsText, common.Required)
	if err := v.Err(); err != nil {
		s.respondError(c, err)
		return
	}

	job, err := s.jobsRepo.Create(c.Request.Context(), &repository.CreateJobParams{
		Title:                      req.Title,
		TotalPoints:                req.TotalPoints,
		Strictness:                 strictness,
		GradeLevel:                 req.GradeLevel,
		AssignmentInstructionsText: req.AssignmentInstructionsText,
		RubricText:                 req.RubricText,
	})
	if err != nil {
		s.respondError(c, common.WrapError(err, "create job"))
		return
	}
	c.JSON(http.StatusCreated, utils.ToJob(job))
}

func (s *Server) ListJobs(c *gin.Context) {
	jobs, err := s.jobsRepo.List(c.Request.Context())
	if err != nil {
		s.respondError(c, common.WrapError(err, "list jobs"))
		return
	}
	out := make([]*entity.GradingJob, len(jobs))
	for i, j := range jobs {
		jj := utils.ToJob(j)
		jj.Submissions = nil // list view carries counts only
		out[i] = jj
	}
	c.JSON(http.StatusOK, gin.H{"jobs": out})
}

func (s *Server) GetJob(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	job, err := s.jobsRepo.GetWithSubmissions(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			s.respondError(c, common.NotFoundError("job not found"))
			return
		}
		s.respondError(c, common.WrapError(err, "get job"))
		return
	}
	c.JSON(http.StatusOK, utils.ToJob(job))
}

// DeleteJob removes a job with everything it owns. Deletion is refused
// while any submission is mid-grade.
func (s *Server) DeleteJob(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	ctx := c.Request.Context()

	if exists, err := s.jobsRepo.Exists(ctx, id); err != nil {
		s.respondError(c, common.WrapError(err, "check job"))
		return
	} else if !exists {
		s.respondError(c, common.NotFoundError("job not found"))
		return
	}

	active, err := s.subsRepo.CountActive(ctx, id)
	if err != nil {
		s.respondError(c, common.WrapError(err, "check active submissions"))
		return
	}
	if active > 0 {
		s.respondError(c, common.ConflictError(
			fmt.Sprintf("%d submission(s) still processing; retry when grading settles", active)))
		return
	}

	subs, err := s.subsRepo.ListByJob(ctx, id)
	if err != nil {
		s.respondError(c, common.WrapError(err, "list submissions"))
		return
	}

	if err := s.jobsRepo.DeleteCascade(ctx, id); err != nil {
		s.respondError(c, common.WrapError(err, "delete job"))
		return
	}

	// stored files go last, after the rows are gone
	for _, sub := range subs {
		if sub.FileURI == "" {
			continue
		}
		if err := os.Remove(sub.FileURI); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove stored file", "path", sub.FileURI, "error", err)
		}
	}
	if len(subs) > 0 {
		_ = os.Remove(filepath.Dir(subs[0].FileURI))
	}

	c.Status(http.StatusNoContent)
}

// ExportJob streams the job's grade sheet as an XLSX download.
func (s *Server) ExportJob(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	data, filename, err := s.exporter.ExportJobXLSX(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			s.respondError(c, common.NotFoundError("job not found"))
			return
		}
		s.respondError(c, common.WrapError(err, "export job"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func parseID(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("invalid %s: must be a UUID", param)
	}
	return id, nil
}
