package core

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/internal/extract"
	"github.com/gradepilot/gradepilot/internal/llm"
	"github.com/gradepilot/gradepilot/internal/repository"
)

// --- fakes ---------------------------------------------------------------

type fakeJobRepo struct {
	repository.JobRepository

	statuses map[uuid.UUID]constants.JobStatus
}

func (f *fakeJobRepo) SetStatus(_ context.Context, id uuid.UUID, status constants.JobStatus) error {
	if f.statuses == nil {
		f.statuses = make(map[uuid.UUID]constants.JobStatus)
	}
	f.statuses[id] = status
	return nil
}

type fakeSubRepo struct {
	repository.SubmissionRepository

	sub          *ent.Submission // the one submission under test; nil -> not found
	statuses     []constants.SubmissionStatus
	failMessages []string
	savedText    string
	renamedTo    string
	renameSource constants.NameSource
	allTerminal  bool
}

func (f *fakeSubRepo) GetWithJob(_ context.Context, id uuid.UUID) (*ent.Submission, error) {
	if f.sub == nil || f.sub.ID != id {
		return nil, &ent.NotFoundError{}
	}
	return f.sub, nil
}

func (f *fakeSubRepo) MarkProcessing(_ context.Context, _ uuid.UUID) error {
	f.statuses = append(f.statuses, constants.SubmissionStatusProcessing)
	return nil
}

func (f *fakeSubRepo) MarkGraded(_ context.Context, _ uuid.UUID) error {
	f.statuses = append(f.statuses, constants.SubmissionStatusGraded)
	return nil
}

func (f *fakeSubRepo) MarkFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.statuses = append(f.statuses, constants.SubmissionStatusFailed)
	f.failMessages = append(f.failMessages, message)
	return nil
}

func (f *fakeSubRepo) SaveExtractedText(_ context.Context, _ uuid.UUID, text string) error {
	f.savedText = text
	return nil
}

func (f *fakeSubRepo) UpdateStudentName(_ context.Context, _ uuid.UUID, name string, source constants.NameSource) (*ent.Submission, error) {
	f.renamedTo = name
	f.renameSource = source
	return f.sub, nil
}

func (f *fakeSubRepo) AllTerminal(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.allTerminal, nil
}

type fakeResultRepo struct {
	repository.ResultRepository

	deleted int
	created []*repository.CreateResultParams
	order   []string
}

func (f *fakeResultRepo) DeleteBySubmission(_ context.Context, _ uuid.UUID) error {
	f.deleted++
	f.order = append(f.order, "delete")
	return nil
}

func (f *fakeResultRepo) Create(_ context.Context, params *repository.CreateResultParams) (*ent.GradeResult, error) {
	f.created = append(f.created, params)
	f.order = append(f.order, "create")
	return &ent.GradeResult{ID: uuid.New(), SubmissionID: params.SubmissionID, Score: params.Score}, nil
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (extract.Result, error) {
	f.calls++
	return extract.Result{Text: f.text, Method: "plain-text", Pages: 1}, f.err
}

type fakeGrader struct {
	fields llm.GradeFields
	err    error
	calls  int
	gotReq llm.GradeRequest
}

func (f *fakeGrader) Grade(_ context.Context, req llm.GradeRequest) (llm.GradeFields, []byte, error) {
	f.calls++
	f.gotReq = req
	return f.fields, nil, f.err
}

// --- helpers -------------------------------------------------------------

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func rubric(s string) *string { return &s }

func newTestSubmission(status constants.SubmissionStatus) *ent.Submission {
	jobID := uuid.New()
	return &ent.Submission{
		ID:               uuid.New(),
		JobID:            jobID,
		StudentName:      "john smith essay",
		NameSource:       string(constants.NameSourceFilename),
		OriginalFilename: "john_smith_essay.txt",
		FileURI:          "/uploads/john_smith_essay.txt",
		Status:           string(status),
		Edges: ent.SubmissionEdges{
			Job: &ent.GradingJob{
				ID:                         jobID,
				Title:                      "Essay 1",
				TotalPoints:                100,
				Strictness:                 string(constants.StrictnessStrict),
				AssignmentInstructionsText: "Write about the French Revolution.",
				RubricText:                 rubric("Thesis 40, Evidence 40, Style 20"),
				Status:                     string(constants.JobStatusProcessing),
			},
		},
	}
}

// --- tests ---------------------------------------------------------------

func TestProcessSubmissionHappyPath(t *testing.T) {
	t.Parallel()

	sub := newTestSubmission(constants.SubmissionStatusPending)
	jobs := &fakeJobRepo{}
	subs := &fakeSubRepo{sub: sub, allTerminal: true}
	results := &fakeResultRepo{}
	ext := &fakeExtractor{text: "Name: John Smith\n\nThe revolution began in 1789."}
	grd := &fakeGrader{fields: llm.GradeFields{Score: 87.5, Feedback: "Strong thesis.", RubricBreakdown: "Thesis 35/40"}}

	g := NewGrader(testLogger(), ext, grd, jobs, subs, results)
	require.NoError(t, g.ProcessSubmission(context.Background(), sub.ID))

	// transitions: PROCESSING then GRADED
	assert.Equal(t, []constants.SubmissionStatus{
		constants.SubmissionStatusProcessing,
		constants.SubmissionStatusGraded,
	}, subs.statuses)

	// extracted text cached before grading
	assert.Equal(t, ext.text, subs.savedText)

	// grade request carries the job's configuration
	assert.Equal(t, 100, grd.gotReq.TotalPoints)
	assert.Equal(t, constants.StrictnessStrict, grd.gotReq.Strictness)
	assert.Equal(t, "Thesis 40, Evidence 40, Style 20", grd.gotReq.RubricText)

	// stale result cleared before the new one is written
	assert.Equal(t, []string{"delete", "create"}, results.order)
	require.Len(t, results.created, 1)
	assert.Equal(t, 87.5, results.created[0].Score)

	// name promoted from the document header
	assert.Equal(t, "John Smith", subs.renamedTo)
	assert.Equal(t, constants.NameSourceDocument, subs.renameSource)

	// last terminal submission closes the job
	assert.Equal(t, constants.JobStatusCompleted, jobs.statuses[sub.JobID])
}

func TestProcessSubmissionWhitespaceTextFailsWithoutGrading(t *testing.T) {
	t.Parallel()

	sub := newTestSubmission(constants.SubmissionStatusPending)
	subs := &fakeSubRepo{sub: sub}
	grd := &fakeGrader{}
	ext := &fakeExtractor{text: "   \n\t  \n"}

	g := NewGrader(testLogger(), ext, grd, &fakeJobRepo{}, subs, &fakeResultRepo{})
	require.NoError(t, g.ProcessSubmission(context.Background(), sub.ID))

	assert.Equal(t, 0, grd.calls, "grader must not be called for empty text")
	require.NotEmpty(t, subs.failMessages)
	assert.Contains(t, subs.failMessages[0], "no readable text")
	assert.Equal(t, constants.SubmissionStatusFailed, subs.statuses[len(subs.statuses)-1])
}

func TestProcessSubmissionReusesCachedText(t *testing.T) {
	t.Parallel()

	sub := newTestSubmission(constants.SubmissionStatusPending)
	cached := "cached essay text"
	sub.ExtractedText = &cached

	ext := &fakeExtractor{text: "should not be used"}
	grd := &fakeGrader{fields: llm.GradeFields{Score: 50, Feedback: "ok"}}
	subs := &fakeSubRepo{sub: sub}

	g := NewGrader(testLogger(), ext, grd, &fakeJobRepo{}, subs, &fakeResultRepo{})
	require.NoError(t, g.ProcessSubmission(context.Background(), sub.ID))

	assert.Equal(t, 0, ext.calls, "extractor must not run when text is cached")
	assert.Equal(t, cached, grd.gotReq.SubmissionText)
}

func TestProcessSubmissionDoesNotOverrideUserName(t *testing.T) {
	t.Parallel()

	sub := newTestSubmission(constants.SubmissionStatusPending)
	sub.NameSource = string(constants.NameSourceUser)
	sub.StudentName = "Deliberate Name"

	ext := &fakeExtractor{text: "Name: Someone Else\n\nbody"}
	grd := &fakeGrader{fields: llm.GradeFields{Score: 70, Feedback: "fine"}}
	subs := &fakeSubRepo{sub: sub}

	g := NewGrader(testLogger(), ext, grd, &fakeJobRepo{}, subs, &fakeResultRepo{})
	require.NoError(t, g.ProcessSubmission(context.Background(), sub.ID))

	assert.Empty(t, subs.renamedTo, "a user-set name is never promoted over")
}

func TestProcessSubmissionGraderFailure(t *testing.T) {
	t.Parallel()

	sub := newTestSubmission(constants.SubmissionStatusPending)
	subs := &fakeSubRepo{sub: sub, allTerminal: true}
	jobs := &fakeJobRepo{}
	ext := &fakeExtractor{text: "real essay text"}
	grd := &fakeGrader{err: errors.New("model unavailable")}

	g := NewGrader(testLogger(), ext, grd, jobs, subs, &fakeResultRepo{})
	err := g.ProcessSubmission(context.Background(), sub.ID)
	require.Error(t, err)

	require.NotEmpty(t, subs.failMessages)
	assert.Contains(t, subs.failMessages[0], "model unavailable")
	// a failing tail submission still closes the job
	assert.Equal(t, constants.JobStatusCompleted, jobs.statuses[sub.JobID])
}

func TestProcessSubmissionMissingIsNoop(t *testing.T) {
	t.Parallel()

	subs := &fakeSubRepo{}
	grd := &fakeGrader{}
	g := NewGrader(testLogger(), &fakeExtractor{}, grd, &fakeJobRepo{}, subs, &fakeResultRepo{})

	require.NoError(t, g.ProcessSubmission(context.Background(), uuid.New()))
	assert.Empty(t, subs.statuses)
	assert.Equal(t, 0, grd.calls)
}

func TestProcessSubmissionSkipsIneligibleStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range []constants.SubmissionStatus{
		constants.SubmissionStatusProcessing,
		constants.SubmissionStatusGraded,
	} {
		sub := newTestSubmission(status)
		subs := &fakeSubRepo{sub: sub}
		grd := &fakeGrader{}

		g := NewGrader(testLogger(), &fakeExtractor{text: "text"}, grd, &fakeJobRepo{}, subs, &fakeResultRepo{})
		require.NoError(t, g.ProcessSubmission(context.Background(), sub.ID))
		assert.Empty(t, subs.statuses, "status %s must not transition", status)
		assert.Equal(t, 0, grd.calls)
	}
}

func TestProcessSubmissionNoCompletionWhileWorkRemains(t *testing.T) {
	t.Parallel()

	sub := newTestSubmission(constants.SubmissionStatusPending)
	jobs := &fakeJobRepo{}
	subs := &fakeSubRepo{sub: sub, allTerminal: false}
	ext := &fakeExtractor{text: "essay text"}
	grd := &fakeGrader{fields: llm.GradeFields{Score: 60, Feedback: "ok"}}

	g := NewGrader(testLogger(), ext, grd, jobs, subs, &fakeResultRepo{})
	require.NoError(t, g.ProcessSubmission(context.Background(), sub.ID))

	_, touched := jobs.statuses[sub.JobID]
	assert.False(t, touched, "job must stay PROCESSING while submissions remain")
}
