package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/internal/core/async"
	"github.com/gradepilot/gradepilot/internal/export"
	"github.com/gradepilot/gradepilot/internal/extract"
	"github.com/gradepilot/gradepilot/internal/intake"
	"github.com/gradepilot/gradepilot/internal/repository"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// --- fakes ---------------------------------------------------------------

type fakeJobRepo struct {
	repository.JobRepository

	jobs     map[uuid.UUID]*ent.GradingJob
	statuses map[uuid.UUID]constants.JobStatus
	deleted  []uuid.UUID
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:     make(map[uuid.UUID]*ent.GradingJob),
		statuses: make(map[uuid.UUID]constants.JobStatus),
	}
}

func (f *fakeJobRepo) Create(_ context.Context, p *repository.CreateJobParams) (*ent.GradingJob, error) {
	job := &ent.GradingJob{
		ID:                         uuid.New(),
		Title:                      p.Title,
		TotalPoints:                p.TotalPoints,
		Strictness:                 string(p.Strictness),
		AssignmentInstructionsText: p.AssignmentInstructionsText,
		Status:                     string(constants.JobStatusDraft),
	}
	if p.GradeLevel != "" {
		job.GradeLevel = &p.GradeLevel
	}
	if p.RubricText != "" {
		job.RubricText = &p.RubricText
	}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobRepo) GetWithSubmissions(_ context.Context, id uuid.UUID) (*ent.GradingJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return job, nil
}

func (f *fakeJobRepo) List(_ context.Context) ([]*ent.GradingJob, error) {
	out := make([]*ent.GradingJob, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.jobs[id]
	return ok, nil
}

func (f *fakeJobRepo) SetStatus(_ context.Context, id uuid.UUID, status constants.JobStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeJobRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	delete(f.jobs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSubRepo struct {
	repository.SubmissionRepository

	subs      map[uuid.UUID]*ent.Submission
	active    int
	saved     map[uuid.UUID]string
	renamedTo string
	renameSrc constants.NameSource
}

func newFakeSubRepo() *fakeSubRepo {
	return &fakeSubRepo{
		subs:  make(map[uuid.UUID]*ent.Submission),
		saved: make(map[uuid.UUID]string),
	}
}

func (f *fakeSubRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Submission, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return sub, nil
}

func (f *fakeSubRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]*ent.Submission, error) {
	var out []*ent.Submission
	for _, s := range f.subs {
		if s.JobID == jobID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubRepo) ListEligible(_ context.Context, jobID uuid.UUID) ([]*ent.Submission, error) {
	var out []*ent.Submission
	for _, s := range f.subs {
		if s.JobID == jobID && constants.SubmissionStatus(s.Status).Eligible() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubRepo) SaveExtractedText(_ context.Context, id uuid.UUID, text string) error {
	f.saved[id] = text
	return nil
}

func (f *fakeSubRepo) UpdateStudentName(_ context.Context, id uuid.UUID, name string, source constants.NameSource) (*ent.Submission, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	sub.StudentName = name
	sub.NameSource = string(source)
	f.renamedTo = name
	f.renameSrc = source
	return sub, nil
}

func (f *fakeSubRepo) CountActive(_ context.Context, _ uuid.UUID) (int, error) {
	return f.active, nil
}

type fakeQueue struct {
	enqueued []uuid.UUID
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	f.enqueued = append(f.enqueued, job.SubmissionID)
	return nil
}

type fakeExtractor struct {
	text  string
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (extract.Result, error) {
	f.calls++
	return extract.Result{Text: f.text, Method: "plain-text", Pages: 1}, nil
}

// --- harness -------------------------------------------------------------

type harness struct {
	router    *gin.Engine
	jobs      *fakeJobRepo
	subs      *fakeSubRepo
	queue     *fakeQueue
	extractor *fakeExtractor
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	jobs := newFakeJobRepo()
	subs := newFakeSubRepo()
	queue := &fakeQueue{}
	extractor := &fakeExtractor{text: "extracted essay text"}
	intaker := intake.NewService(t.TempDir(), 0, subRepoAdapter{subs}, logger)
	exporter := export.NewService(jobs, logger)

	srv := NewServer(logger, jobs, subs, intaker, exporter, extractor, queue, nil)
	return &harness{
		router:    srv.Router(),
		jobs:      jobs,
		subs:      subs,
		queue:     queue,
		extractor: extractor,
	}
}

// subRepoAdapter lets the intake service create rows in the fake store.
type subRepoAdapter struct {
	*fakeSubRepo
}

func (a subRepoAdapter) Create(_ context.Context, p *repository.CreateSubmissionParams) (*ent.Submission, error) {
	sub := &ent.Submission{
		ID:               uuid.New(),
		JobID:            p.JobID,
		StudentName:      p.StudentName,
		NameSource:       string(constants.NameSourceFilename),
		OriginalFilename: p.OriginalFilename,
		FileURI:          p.FileURI,
		Status:           string(constants.SubmissionStatusPending),
	}
	a.subs[sub.ID] = sub
	return sub, nil
}

func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) addSubmission(jobID uuid.UUID, status constants.SubmissionStatus) *ent.Submission {
	sub := &ent.Submission{
		ID:               uuid.New(),
		JobID:            jobID,
		StudentName:      "jane doe",
		NameSource:       string(constants.NameSourceFilename),
		OriginalFilename: "jane_doe.txt",
		FileURI:          "/tmp/jane_doe.txt",
		Status:           string(status),
	}
	h.subs.subs[sub.ID] = sub
	return sub
}

func (h *harness) addJob(t *testing.T) *ent.GradingJob {
	t.Helper()
	job, err := h.jobs.Create(context.Background(), &repository.CreateJobParams{
		Title:                      "Essay 1",
		TotalPoints:                100,
		Strictness:                 constants.StrictnessNormal,
		AssignmentInstructionsText: "Write an essay.",
	})
	require.NoError(t, err)
	return job
}

// --- job handler tests ---------------------------------------------------

func TestCreateJob(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodPost, "/api/jobs", gin.H{
		"title":                        "Essay 1",
		"total_points":                 100,
		"assignment_instructions_text": "Write about the French Revolution.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	// empty strictness defaults to NORMAL, status starts at DRAFT
	assert.Equal(t, "NORMAL", got["strictness"])
	assert.Equal(t, "DRAFT", got["status"])
}

func TestCreateJobValidation(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing title", gin.H{"total_points": 100, "assignment_instructions_text": "x"}},
		{"zero points", gin.H{"title": "t", "total_points": 0, "assignment_instructions_text": "x"}},
		{"negative points", gin.H{"title": "t", "total_points": -5, "assignment_instructions_text": "x"}},
		{"missing instructions", gin.H{"title": "t", "total_points": 100}},
		{"unknown strictness", gin.H{"title": "t", "total_points": 100, "assignment_instructions_text": "x", "strictness": "BRUTAL"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := h.do(t, http.MethodPost, "/api/jobs", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
	assert.Empty(t, h.jobs.jobs)
}

func TestGetJobNotFound(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/api/jobs/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/jobs/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteJobConflictWhileProcessing(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)
	h.subs.active = 2

	rec := h.do(t, http.MethodDelete, "/api/jobs/"+job.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, h.jobs.deleted)

	h.subs.active = 0
	rec = h.do(t, http.MethodDelete, "/api/jobs/"+job.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []uuid.UUID{job.ID}, h.jobs.deleted)
}

func TestExportJob(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)

	rec := h.do(t, http.MethodGet, "/api/jobs/"+job.ID.String()+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "essay-1-grades.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

// --- submission handler tests --------------------------------------------

func TestUploadSubmissions(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", "john_smith.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Name: John Smith\nessay body"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/submissions/job/"+job.ID.String(), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, h.subs.subs, 1)

	var got struct {
		Results []intake.UploadResult `json:"results"`
		Stats   intake.Stats          `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Results, 1)
	assert.Equal(t, "john smith", got.Results[0].StudentName)
	assert.Equal(t, uint32(1), got.Stats.Created)
}

func TestUploadSubmissionsNoFiles(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/submissions/job/"+job.ID.String(), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadSubmissionsSkipsUnsupportedTypes(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", "photo.heic")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not a document"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/submissions/job/"+job.ID.String(), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	// an unsupported file is skipped, not an error; the batch still succeeds
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Empty(t, h.subs.subs)

	var got struct {
		Stats intake.Stats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint32(0), got.Stats.Created)
	assert.Equal(t, uint32(1), got.Stats.Skipped)
	assert.Equal(t, uint32(0), got.Stats.Failed)
}

func TestUploadSubmissionsJobNotFound(t *testing.T) {
	h := newHarness(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("files", "a.txt")
	_, _ = fw.Write([]byte("x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/submissions/job/"+uuid.NewString(), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartGradingEnqueuesEligibleOnly(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)

	pending := h.addSubmission(job.ID, constants.SubmissionStatusPending)
	failed := h.addSubmission(job.ID, constants.SubmissionStatusFailed)
	h.addSubmission(job.ID, constants.SubmissionStatusGraded)
	h.addSubmission(job.ID, constants.SubmissionStatusProcessing)

	rec := h.do(t, http.MethodPost, "/api/submissions/job/"+job.ID.String()+"/start", nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	assert.ElementsMatch(t, []uuid.UUID{pending.ID, failed.ID}, h.queue.enqueued)
	assert.Equal(t, constants.JobStatusProcessing, h.jobs.statuses[job.ID])

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(2), got["enqueued"])
}

func TestStartGradingNothingEligible(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)
	h.addSubmission(job.ID, constants.SubmissionStatusGraded)

	// a job with nothing left to grade is a no-op, not an error
	rec := h.do(t, http.MethodPost, "/api/submissions/job/"+job.ID.String()+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, h.queue.enqueued)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(0), got["enqueued"])
	assert.Equal(t, "no submissions eligible for grading", got["message"])
	assert.NotContains(t, h.jobs.statuses, job.ID)
}

func TestPreviewSubmissionExtractsAndCaches(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)
	sub := h.addSubmission(job.ID, constants.SubmissionStatusPending)

	rec := h.do(t, http.MethodGet, "/api/submissions/"+sub.ID.String()+"/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, h.extractor.calls)
	assert.Equal(t, "extracted essay text", h.subs.saved[sub.ID])

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "extracted essay text", got["text"])
	assert.Nil(t, got["grade_result"]) // nothing graded yet
}

func TestPreviewSubmissionServesCache(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)
	sub := h.addSubmission(job.ID, constants.SubmissionStatusPending)
	cached := "already extracted"
	sub.ExtractedText = &cached

	rec := h.do(t, http.MethodGet, "/api/submissions/"+sub.ID.String()+"/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, h.extractor.calls)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, cached, got["text"])
}

func TestPreviewSubmissionIncludesGradeResult(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)
	sub := h.addSubmission(job.ID, constants.SubmissionStatusGraded)
	cached := "graded essay"
	sub.ExtractedText = &cached
	sub.Edges.GradeResult = &ent.GradeResult{
		ID:           uuid.New(),
		SubmissionID: sub.ID,
		Score:        87.5,
		Feedback:     "Strong thesis.",
	}

	rec := h.do(t, http.MethodGet, "/api/submissions/"+sub.ID.String()+"/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		GradeResult *struct {
			Score    float64 `json:"score"`
			Feedback string  `json:"feedback"`
		} `json:"grade_result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.GradeResult)
	assert.Equal(t, 87.5, got.GradeResult.Score)
	assert.Equal(t, "Strong thesis.", got.GradeResult.Feedback)
}

func TestUpdateSubmissionStudentName(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)
	sub := h.addSubmission(job.ID, constants.SubmissionStatusPending)

	rec := h.do(t, http.MethodPatch, "/api/submissions/"+sub.ID.String(),
		gin.H{"student_name": "  Jane Q. Doe  "})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// whitespace trimmed and provenance pinned to USER
	assert.Equal(t, "Jane Q. Doe", h.subs.renamedTo)
	assert.Equal(t, constants.NameSourceUser, h.subs.renameSrc)
}

func TestUpdateSubmissionValidation(t *testing.T) {
	h := newHarness(t)
	job := h.addJob(t)
	sub := h.addSubmission(job.ID, constants.SubmissionStatusPending)

	rec := h.do(t, http.MethodPatch, "/api/submissions/"+sub.ID.String(), gin.H{"student_name": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPatch, "/api/submissions/"+sub.ID.String(),
		gin.H{"student_name": strings.Repeat("a", 150)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPatch, "/api/submissions/"+uuid.NewString(), gin.H{"student_name": "Jane"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ok", got["status"])
}
