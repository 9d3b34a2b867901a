package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/gen/ent/graderesult"
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// CreateJobParams wraps parameters for creating a grading job.
type CreateJobParams struct {
	Title                      string
	TotalPoints                int
	Strictness                 constants.Strictness
	GradeLevel                 string
	AssignmentInstructionsText string
	RubricText                 string
}

type JobRepository interface {
	Create(ctx context.Context, params *CreateJobParams) (*ent.GradingJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.GradingJob, error)
	GetWithSubmissions(ctx context.Context, id uuid.UUID) (*ent.GradingJob, error)
	List(ctx context.Context) ([]*ent.GradingJob, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.JobStatus) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{
		client: client,
		logger: logger,
	}
}

func (r *jobRepository) Create(ctx context.Context, params *CreateJobParams) (*ent.GradingJob, error) {
	builder := r.client.GradingJob.Create().
		SetTitle(params.Title).
		SetTotalPoints(params.TotalPoints).
		SetStrictness(string(params.Strictness)).
		SetAssignmentInstructionsText(params.AssignmentInstructionsText).
		SetStatus(string(constants.JobStatusDraft))
	if params.GradeLevel != "" {
		builder = builder.SetGradeLevel(params.GradeLevel)
	}
	if params.RubricText != "" {
		builder = builder.SetRubricText(params.RubricText)
	}

	job, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create grading job", "title", params.Title, "error", err)
		return nil, err
	}
	r.logger.Info("grading job created", "job_id", job.ID, "title", job.Title)
	return job, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.GradingJob, error) {
	return r.client.GradingJob.Get(ctx, id)
}

func (r *jobRepository) GetWithSubmissions(ctx context.Context, id uuid.UUID) (*ent.GradingJob, error) {
	return r.client.GradingJob.Query().
		Where(gradingjob.ID(id)).
		WithSubmissions(func(q *ent.SubmissionQuery) {
			q.WithGradeResult().Order(submission.ByStudentName())
		}).
		Only(ctx)
}

func (r *jobRepository) List(ctx context.Context) ([]*ent.GradingJob, error) {
	jobs, err := r.client.GradingJob.Query().
		WithSubmissions().
		Order(gradingjob.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list grading jobs", "error", err)
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.GradingJob.Query().Where(gradingjob.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check job existence", "job_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *jobRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.JobStatus) error {
	_, err := r.client.GradingJob.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update job status", "job_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("job status updated", "job_id", id, "status", status)
	return nil
}

// DeleteCascade removes the job and everything it owns: grade results
// first, then submissions, then the job row, respecting FK order.
func (r *jobRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if _, err := tx.GradeResult.Delete().
		Where(graderesult.HasSubmissionWith(submission.JobID(id))).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to delete grade results", "job_id", id, "error", err)
		return err
	}
	if _, err := tx.Submission.Delete().
		Where(submission.JobID(id)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to delete submissions", "job_id", id, "error", err)
		return err
	}
	if err := tx.GradingJob.DeleteOneID(id).Exec(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to delete job", "job_id", id, "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("job delete commit failed", "job_id", id, "error", err)
		return err
	}
	r.logger.Info("job deleted", "job_id", id)
	return nil
}
