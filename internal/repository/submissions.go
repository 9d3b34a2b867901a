package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// CreateSubmissionParams wraps parameters for creating a submission.
type CreateSubmissionParams struct {
	JobID            uuid.UUID
	StudentName      string
	OriginalFilename string
	FileURI          string
}

type SubmissionRepository interface {
	Create(ctx context.Context, params *CreateSubmissionParams) (*ent.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Submission, error)
	GetWithJob(ctx context.Context, id uuid.UUID) (*ent.Submission, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.Submission, error)
	ListEligible(ctx context.Context, jobID uuid.UUID) ([]*ent.Submission, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkGraded(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	SaveExtractedText(ctx context.Context, id uuid.UUID, text string) error
	UpdateStudentName(ctx context.Context, id uuid.UUID, name string, source constants.NameSource) (*ent.Submission, error)
	CountActive(ctx context.Context, jobID uuid.UUID) (int, error)
	AllTerminal(ctx context.Context, jobID uuid.UUID) (bool, error)
}

type submissionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubmissionRepository(client *ent.Client, logger *slog.Logger) SubmissionRepository {
	return &submissionRepository{
		client: client,
		logger: logger,
	}
}

func (r *submissionRepository) Create(ctx context.Context, params *CreateSubmissionParams) (*ent.Submission, error) {
	sub, err := r.client.Submission.Create().
		SetJobID(params.JobID).
		SetStudentName(params.StudentName).
		SetNameSource(string(constants.NameSourceFilename)).
		SetOriginalFilename(params.OriginalFilename).
		SetFileURI(params.FileURI).
		SetStatus(string(constants.SubmissionStatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create submission",
			"job_id", params.JobID, "filename", params.OriginalFilename, "error", err)
		return nil, err
	}
	return sub, nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Submission, error) {
	return r.client.Submission.Query().
		Where(submission.ID(id)).
		WithGradeResult().
		Only(ctx)
}

func (r *submissionRepository) GetWithJob(ctx context.Context, id uuid.UUID) (*ent.Submission, error) {
	return r.client.Submission.Query().
		Where(submission.ID(id)).
		WithJob().
		WithGradeResult().
		Only(ctx)
}

// ListByJob returns every submission of the job with its grade result,
// sorted by student name ascending.
func (r *submissionRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.Submission, error) {
	subs, err := r.client.Submission.Query().
		Where(submission.JobID(jobID)).
		WithGradeResult().
		Order(submission.ByStudentName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list submissions", "job_id", jobID, "error", err)
		return nil, err
	}
	return subs, nil
}

// ListEligible returns the submissions a start action may enqueue:
// PENDING and FAILED only.
func (r *submissionRepository) ListEligible(ctx context.Context, jobID uuid.UUID) ([]*ent.Submission, error) {
	subs, err := r.client.Submission.Query().
		Where(
			submission.JobID(jobID),
			submission.StatusIn(
				string(constants.SubmissionStatusPending),
				string(constants.SubmissionStatusFailed),
			),
		).
		Order(submission.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list eligible submissions", "job_id", jobID, "error", err)
		return nil, err
	}
	return subs, nil
}

func (r *submissionRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Submission.UpdateOneID(id).
		SetStatus(string(constants.SubmissionStatusProcessing)).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark submission processing", "submission_id", id, "error", err)
		return err
	}
	return nil
}

func (r *submissionRepository) MarkGraded(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Submission.UpdateOneID(id).
		SetStatus(string(constants.SubmissionStatusGraded)).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark submission graded", "submission_id", id, "error", err)
		return err
	}
	r.logger.Info("submission graded", "submission_id", id)
	return nil
}

func (r *submissionRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.client.Submission.UpdateOneID(id).
		SetStatus(string(constants.SubmissionStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark submission failed", "submission_id", id, "error", err)
		return err
	}
	r.logger.Warn("submission failed", "submission_id", id, "error", message)
	return nil
}

func (r *submissionRepository) SaveExtractedText(ctx context.Context, id uuid.UUID, text string) error {
	_, err := r.client.Submission.UpdateOneID(id).
		SetExtractedText(text).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to cache extracted text", "submission_id", id, "error", err)
		return err
	}
	return nil
}

func (r *submissionRepository) UpdateStudentName(ctx context.Context, id uuid.UUID, name string, source constants.NameSource) (*ent.Submission, error) {
	sub, err := r.client.Submission.UpdateOneID(id).
		SetStudentName(name).
		SetNameSource(string(source)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update student name", "submission_id", id, "error", err)
		return nil, err
	}
	return sub, nil
}

// CountActive counts submissions currently in PROCESSING.
func (r *submissionRepository) CountActive(ctx context.Context, jobID uuid.UUID) (int, error) {
	return r.client.Submission.Query().
		Where(
			submission.JobID(jobID),
			submission.Status(string(constants.SubmissionStatusProcessing)),
		).
		Count(ctx)
}

// AllTerminal re-fetches the job's submissions and reports whether every
// one is GRADED or FAILED. Order-independent and safe to call redundantly.
func (r *submissionRepository) AllTerminal(ctx context.Context, jobID uuid.UUID) (bool, error) {
	remaining, err := r.client.Submission.Query().
		Where(
			submission.JobID(jobID),
			submission.StatusIn(
				string(constants.SubmissionStatusPending),
				string(constants.SubmissionStatusProcessing),
			),
		).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return remaining == 0, nil
}
