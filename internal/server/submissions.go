package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/internal/common"
	"github.com/gradepilot/gradepilot/internal/core/async"
	"github.com/gradepilot/gradepilot/internal/entity"
	"github.com/gradepilot/gradepilot/internal/intake"
	"github.com/gradepilot/gradepilot/internal/utils"
)

// UploadSubmissions accepts multipart uploads under the "files" field.
// Each part is either a document or a zip archive of documents; a bad
// part is reported in the response without failing the batch.
func (s *Server) UploadSubmissions(c *gin.Context) {
	jobID, err := parseID(c, "jobId")
	if err != nil {
		s.respondError(c, err)
		return
	}
	ctx := c.Request.Context()

	if exists, err := s.jobsRepo.Exists(ctx, jobID); err != nil {
		s.respondError(c, common.WrapError(err, "check job"))
		return
	} else if !exists {
		s.respondError(c, common.NotFoundError("job not found"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		s.respondError(c, common.InvalidArgumentError("invalid multipart form"))
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		s.respondError(c, common.InvalidArgumentError("no files uploaded; use the 'files' field"))
		return
	}

	var results []intake.UploadResult
	var stats intake.Stats
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			results = append(results, intake.UploadResult{Filename: fh.Filename, Err: err.Error()})
			stats.Failed++
			continue
		}
		rs, st, err := s.intake.IngestUpload(ctx, jobID, fh.Filename, f)
		_ = f.Close()
		if err != nil {
			results = append(results, intake.UploadResult{Filename: fh.Filename, Err: err.Error()})
		} else {
			results = append(results, rs...)
		}
		stats.Received += st.Received
		stats.Created += st.Created
		stats.Skipped += st.Skipped
		stats.Failed += st.Failed
	}

	// A batch that creates nothing is still a handled upload; the stats
	// tell the caller what was skipped or failed.
	c.JSON(http.StatusCreated, gin.H{
		"results": results,
		"stats":   stats,
	})
}

func (s *Server) ListSubmissions(c *gin.Context) {
	jobID, err := parseID(c, "jobId")
	if err != nil {
		s.respondError(c, err)
		return
	}
	ctx := c.Request.Context()

	if exists, err := s.jobsRepo.Exists(ctx, jobID); err != nil {
		s.respondError(c, common.WrapError(err, "check job"))
		return
	} else if !exists {
		s.respondError(c, common.NotFoundError("job not found"))
		return
	}

	subs, err := s.subsRepo.ListByJob(ctx, jobID)
	if err != nil {
		s.respondError(c, common.WrapError(err, "list submissions"))
		return
	}
	out := make([]*entity.Submission, len(subs))
	for i, sub := range subs {
		e := utils.ToSubmission(sub)
		e.ExtractedText = nil // preview endpoint serves the text
		out[i] = e
	}
	c.JSON(http.StatusOK, gin.H{"submissions": out})
}

// StartGrading enqueues every PENDING and FAILED submission of the job,
// in creation order, and moves the job to PROCESSING. Submissions already
// graded or mid-grade are untouched.
func (s *Server) StartGrading(c *gin.Context) {
	jobID, err := parseID(c, "jobId")
	if err != nil {
		s.respondError(c, err)
		return
	}
	ctx := c.Request.Context()

	if exists, err := s.jobsRepo.Exists(ctx, jobID); err != nil {
		s.respondError(c, common.WrapError(err, "check job"))
		return
	} else if !exists {
		s.respondError(c, common.NotFoundError("job not found"))
		return
	}

	eligible, err := s.subsRepo.ListEligible(ctx, jobID)
	if err != nil {
		s.respondError(c, common.WrapError(err, "list eligible submissions"))
		return
	}
	if len(eligible) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"job_id":   jobID,
			"enqueued": 0,
			"message":  "no submissions eligible for grading",
		})
		return
	}

	if err := s.jobsRepo.SetStatus(ctx, jobID, constants.JobStatusProcessing); err != nil {
		s.respondError(c, common.WrapError(err, "mark job processing"))
		return
	}
	for _, sub := range eligible {
		_ = s.queue.Enqueue(ctx, async.Job{SubmissionID: sub.ID})
	}

	s.logger.Info("grading started for job", "job_id", jobID, "enqueued", len(eligible))
	c.JSON(http.StatusAccepted, gin.H{
		"job_id":   jobID,
		"enqueued": len(eligible),
	})
}

// PreviewSubmission returns the submission's extracted text, extracting
// and caching it on first request. Repeat calls serve the cache.
func (s *Server) PreviewSubmission(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	ctx := c.Request.Context()

	sub, err := s.subsRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			s.respondError(c, common.NotFoundError("submission not found"))
			return
		}
		s.respondError(c, common.WrapError(err, "get submission"))
		return
	}

	text := ""
	if sub.ExtractedText != nil {
		text = *sub.ExtractedText
	}
	if strings.TrimSpace(text) == "" {
		res, err := s.extractor.Extract(ctx, sub.FileURI)
		if err != nil {
			s.respondError(c, common.NewAppError("EXTRACTION", "could not extract text from document", common.ErrExtraction))
			return
		}
		text = res.Text
		if err := s.subsRepo.SaveExtractedText(ctx, id, text); err != nil {
			s.logger.Warn("failed to cache extracted text", "submission_id", id, "error", err)
		}
	}

	var result *entity.GradeResult
	if sub.Edges.GradeResult != nil {
		result = utils.ToGradeResult(sub.Edges.GradeResult)
	}
	c.JSON(http.StatusOK, gin.H{
		"submission_id": sub.ID,
		"student_name":  sub.StudentName,
		"filename":      sub.OriginalFilename,
		"text":          text,
		"grade_result":  result,
	})
}

// UpdateSubmissionRequest is the PATCH /api/submissions/:id payload.
type UpdateSubmissionRequest struct {
	StudentName string `json:"student_name"`
}

// UpdateSubmission sets the student name deliberately. The USER source
// pins the name against later promotion from document text.
func (s *Server) UpdateSubmission(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	var req UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, common.InvalidArgumentError("invalid request body"))
		return
	}

	v := common.NewValidator()
	v.Field("student_name", req.StudentName, common.Required, common.MaxLength(99))
	if err := v.Err(); err != nil {
		s.respondError(c, err)
		return
	}

	sub, err := s.subsRepo.UpdateStudentName(c.Request.Context(), id,
		strings.TrimSpace(req.StudentName), constants.NameSourceUser)
	if err != nil {
		if ent.IsNotFound(err) {
			s.respondError(c, common.NotFoundError("submission not found"))
			return
		}
		s.respondError(c, common.WrapError(err, "update submission"))
		return
	}
	c.JSON(http.StatusOK, utils.ToSubmission(sub))
}
