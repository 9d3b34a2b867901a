package export

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/internal/repository"
)

type fakeJobRepo struct {
	repository.JobRepository

	job *ent.GradingJob
}

func (f *fakeJobRepo) GetWithSubmissions(_ context.Context, _ uuid.UUID) (*ent.GradingJob, error) {
	return f.job, nil
}

func strptr(s string) *string { return &s }

func TestExportJobXLSX(t *testing.T) {
	t.Parallel()

	jobID := uuid.New()
	gradedID := uuid.New()
	job := &ent.GradingJob{
		ID:          jobID,
		Title:       "Essay 1: The French Revolution",
		TotalPoints: 100,
		Status:      string(constants.JobStatusCompleted),
		Edges: ent.GradingJobEdges{
			Submissions: []*ent.Submission{
				{
					ID:               gradedID,
					JobID:            jobID,
					StudentName:      "Jane Doe",
					OriginalFilename: "jane_doe.pdf",
					Status:           string(constants.SubmissionStatusGraded),
					Edges: ent.SubmissionEdges{
						GradeResult: &ent.GradeResult{
							SubmissionID:    gradedID,
							Score:           87.5,
							Feedback:        "Strong thesis.",
							RubricBreakdown: "Thesis 35/40",
						},
					},
				},
				{
					ID:               uuid.New(),
					JobID:            jobID,
					StudentName:      "John Smith",
					OriginalFilename: "john_smith.pdf",
					Status:           string(constants.SubmissionStatusFailed),
					ErrorMessage:     strptr("no readable text could be extracted from the document"),
				},
			},
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewService(&fakeJobRepo{job: job}, logger)

	data, filename, err := svc.ExportJobXLSX(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, "essay-1-the-french-revolution-grades.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Grades")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Student Name", rows[0][0])
	assert.Equal(t, "Score (out of 100)", rows[0][3])

	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "GRADED", rows[1][2])
	assert.Equal(t, "87.5", rows[1][3])
	assert.Equal(t, "Strong thesis.", rows[1][4])

	assert.Equal(t, "John Smith", rows[2][0])
	assert.Equal(t, "FAILED", rows[2][2])
	// failed submissions leave the score cell empty
	assert.Less(t, 3, len(rows[2]))
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "essay-1-final", slugify("Essay 1: Final!"))
	assert.Equal(t, "a-b", slugify("  A -- B  "))
	assert.Equal(t, "grading-job", slugify("???"))
	assert.Equal(t, "grading-job", slugify(""))
}
