package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/internal/extract"
	"github.com/gradepilot/gradepilot/internal/llm"
	"github.com/gradepilot/gradepilot/internal/repository"
)

// Grader coordinates text extraction then LLM grading for one submission,
// driving the PENDING -> PROCESSING -> GRADED/FAILED state machine and
// closing the job out once every submission is terminal.
type Grader struct {
	logger    *slog.Logger
	extractor extract.TextExtractor
	llmGrader llm.Grader
	jobsRepo  repository.JobRepository
	subsRepo  repository.SubmissionRepository
	resRepo   repository.ResultRepository
}

func NewGrader(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	llmGrader llm.Grader,
	jobsRepo repository.JobRepository,
	subsRepo repository.SubmissionRepository,
	resRepo repository.ResultRepository,
) *Grader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Grader{
		logger:    logger,
		extractor: extractor,
		llmGrader: llmGrader,
		jobsRepo:  jobsRepo,
		subsRepo:  subsRepo,
		resRepo:   resRepo,
	}
}

// ProcessSubmission runs the full grading pass for one submission. A
// submission deleted between enqueue and dequeue is a logged no-op. Every
// failure lands the submission in FAILED with the cause persisted, and the
// job-completion check still runs so a failing tail submission can close
// the job.
func (g *Grader) ProcessSubmission(ctx context.Context, submissionID uuid.UUID) error {
	start := time.Now()

	sub, err := g.subsRepo.GetWithJob(ctx, submissionID)
	if err != nil {
		if ent.IsNotFound(err) {
			g.logger.Warn("submission gone before grading, skipping", "submission_id", submissionID)
			return nil
		}
		return fmt.Errorf("load submission: %w", err)
	}
	job := sub.Edges.Job
	if job == nil {
		return fmt.Errorf("submission %s has no job edge", submissionID)
	}

	status := constants.SubmissionStatus(sub.Status)
	if !status.Eligible() {
		g.logger.Info("submission not eligible for grading, skipping",
			"submission_id", submissionID, "status", sub.Status)
		return nil
	}

	if err := g.subsRepo.MarkProcessing(ctx, submissionID); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}
	g.logger.Info("grading started",
		"submission_id", submissionID, "job_id", job.ID, "filename", sub.OriginalFilename)

	text, err := g.submissionText(ctx, sub)
	if err != nil {
		g.fail(ctx, sub, job.ID, fmt.Sprintf("text extraction failed: %v", err))
		return fmt.Errorf("extract: %w", err)
	}

	// A scanned PDF or empty document yields no text worth sending to the
	// model; fail fast instead of paying for a meaningless call.
	if strings.TrimSpace(text) == "" {
		g.fail(ctx, sub, job.ID, "no readable text could be extracted from the document")
		return nil
	}

	g.maybePromoteName(ctx, sub, text)

	fields, _, err := g.llmGrader.Grade(ctx, llm.GradeRequest{
		SubmissionText:         text,
		AssignmentInstructions: job.AssignmentInstructionsText,
		RubricText:             deref(job.RubricText),
		Strictness:             constants.Strictness(job.Strictness),
		TotalPoints:            job.TotalPoints,
		GradeLevel:             deref(job.GradeLevel),
		FilenameHint:           sub.OriginalFilename,
	})
	if err != nil {
		g.fail(ctx, sub, job.ID, fmt.Sprintf("grading failed: %v", err))
		return fmt.Errorf("grade: %w", err)
	}

	// A re-graded submission replaces its old result; one result per
	// submission, always the latest.
	if err := g.resRepo.DeleteBySubmission(ctx, submissionID); err != nil {
		g.fail(ctx, sub, job.ID, fmt.Sprintf("store grade result: %v", err))
		return fmt.Errorf("clear stale result: %w", err)
	}
	if _, err := g.resRepo.Create(ctx, &repository.CreateResultParams{
		SubmissionID:    submissionID,
		Score:           fields.Score,
		Feedback:        fields.Feedback,
		RubricBreakdown: fields.RubricBreakdown,
	}); err != nil {
		g.fail(ctx, sub, job.ID, fmt.Sprintf("store grade result: %v", err))
		return fmt.Errorf("store result: %w", err)
	}
	if err := g.subsRepo.MarkGraded(ctx, submissionID); err != nil {
		return fmt.Errorf("mark graded: %w", err)
	}

	g.logger.Info("grading finished",
		"submission_id", submissionID, "job_id", job.ID,
		"score", fields.Score, "elapsed_ms", time.Since(start).Milliseconds())

	g.checkJobCompletion(ctx, job.ID)
	return nil
}

// submissionText returns the cached extracted text when present, otherwise
// extracts from the stored file and persists the cache before the text is
// used, so a later re-grade skips extraction even if grading fails now.
func (g *Grader) submissionText(ctx context.Context, sub *ent.Submission) (string, error) {
	if sub.ExtractedText != nil && strings.TrimSpace(*sub.ExtractedText) != "" {
		g.logger.Debug("reusing cached extracted text",
			"submission_id", sub.ID, "bytes", len(*sub.ExtractedText))
		return *sub.ExtractedText, nil
	}

	res, err := g.extractor.Extract(ctx, sub.FileURI)
	if err != nil {
		return "", err
	}
	if err := g.subsRepo.SaveExtractedText(ctx, sub.ID, res.Text); err != nil {
		// cache miss next time, but the text in hand is still good
		g.logger.Warn("failed to cache extracted text", "submission_id", sub.ID, "error", err)
	}
	return res.Text, nil
}

// maybePromoteName upgrades a filename-derived student name to one parsed
// from the document header. A name set from the document or by the user is
// never overwritten.
func (g *Grader) maybePromoteName(ctx context.Context, sub *ent.Submission, text string) {
	if constants.NameSource(sub.NameSource) != constants.NameSourceFilename {
		return
	}
	name := extract.StudentName(text)
	if name == "" || name == sub.StudentName {
		return
	}
	if _, err := g.subsRepo.UpdateStudentName(ctx, sub.ID, name, constants.NameSourceDocument); err != nil {
		g.logger.Warn("failed to promote student name", "submission_id", sub.ID, "error", err)
		return
	}
	g.logger.Info("student name promoted from document",
		"submission_id", sub.ID, "name", name)
}

// fail lands the submission in FAILED and runs the completion check. Store
// errors here are logged, not returned: the original failure is the story.
func (g *Grader) fail(ctx context.Context, sub *ent.Submission, jobID uuid.UUID, message string) {
	if err := g.subsRepo.MarkFailed(ctx, sub.ID, message); err != nil {
		g.logger.Error("failed to record submission failure",
			"submission_id", sub.ID, "error", err)
	}
	g.checkJobCompletion(ctx, jobID)
}

// checkJobCompletion re-fetches the job's submissions and flips the job to
// COMPLETED once none remain in PENDING or PROCESSING. Called after every
// terminal transition, so it is order-independent and safe to repeat.
func (g *Grader) checkJobCompletion(ctx context.Context, jobID uuid.UUID) {
	done, err := g.subsRepo.AllTerminal(ctx, jobID)
	if err != nil {
		g.logger.Error("completion check failed", "job_id", jobID, "error", err)
		return
	}
	if !done {
		return
	}
	if err := g.jobsRepo.SetStatus(ctx, jobID, constants.JobStatusCompleted); err != nil {
		g.logger.Error("failed to mark job completed", "job_id", jobID, "error", err)
		return
	}
	g.logger.Info("job completed", "job_id", jobID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
