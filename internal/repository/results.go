package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/gen/ent/graderesult"
)

// CreateResultParams wraps parameters for recording a grading outcome.
type CreateResultParams struct {
	SubmissionID    uuid.UUID
	Score           float64
	Feedback        string
	RubricBreakdown string
}

type ResultRepository interface {
	Create(ctx context.Context, params *CreateResultParams) (*ent.GradeResult, error)
	GetBySubmission(ctx context.Context, submissionID uuid.UUID) (*ent.GradeResult, error)
	DeleteBySubmission(ctx context.Context, submissionID uuid.UUID) error
}

type resultRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewResultRepository(client *ent.Client, logger *slog.Logger) ResultRepository {
	return &resultRepository{
		client: client,
		logger: logger,
	}
}

func (r *resultRepository) Create(ctx context.Context, params *CreateResultParams) (*ent.GradeResult, error) {
	res, err := r.client.GradeResult.Create().
		SetSubmissionID(params.SubmissionID).
		SetScore(params.Score).
		SetFeedback(params.Feedback).
		SetRubricBreakdown(params.RubricBreakdown).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create grade result",
			"submission_id", params.SubmissionID, "error", err)
		return nil, err
	}
	r.logger.Info("grade result recorded",
		"submission_id", params.SubmissionID, "score", params.Score)
	return res, nil
}

func (r *resultRepository) GetBySubmission(ctx context.Context, submissionID uuid.UUID) (*ent.GradeResult, error) {
	return r.client.GradeResult.Query().
		Where(graderesult.SubmissionID(submissionID)).
		Only(ctx)
}

// DeleteBySubmission clears a stale result ahead of a re-grade. Deleting
// nothing is not an error.
func (r *resultRepository) DeleteBySubmission(ctx context.Context, submissionID uuid.UUID) error {
	n, err := r.client.GradeResult.Delete().
		Where(graderesult.SubmissionID(submissionID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete grade result", "submission_id", submissionID, "error", err)
		return err
	}
	if n > 0 {
		r.logger.Info("stale grade result cleared", "submission_id", submissionID)
	}
	return nil
}
