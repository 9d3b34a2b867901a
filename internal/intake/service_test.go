package intake

import (
	"archive/zip"
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/internal/repository"
)

type fakeSubmissionRepo struct {
	repository.SubmissionRepository

	created []*repository.CreateSubmissionParams
	failOn  string // filename substring that triggers a create error
}

func (f *fakeSubmissionRepo) Create(_ context.Context, params *repository.CreateSubmissionParams) (*ent.Submission, error) {
	if f.failOn != "" && strings.Contains(params.OriginalFilename, f.failOn) {
		return nil, assert.AnError
	}
	f.created = append(f.created, params)
	return &ent.Submission{
		ID:               uuid.New(),
		JobID:            params.JobID,
		StudentName:      params.StudentName,
		NameSource:       string(constants.NameSourceFilename),
		OriginalFilename: params.OriginalFilename,
		FileURI:          params.FileURI,
		Status:           string(constants.SubmissionStatusPending),
	}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func buildZip(t *testing.T, entries map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		if strings.HasSuffix(name, "/") {
			_, err := zw.Create(name)
			require.NoError(t, err)
			continue
		}
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestStudentNameFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"john_smith_essay.pdf", "john smith essay"},
		{"Jane Doe.docx", "Jane Doe"},
		{"  spaced  name .txt", "spaced name"},
		{"nested/dir/mary_jones.pdf", "mary jones"},
		{"no_extension", "no extension"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, StudentNameFromFilename(tc.filename), tc.filename)
	}
}

func TestIngestUploadDocument(t *testing.T) {
	t.Parallel()

	repo := &fakeSubmissionRepo{}
	svc := NewService(t.TempDir(), 0, repo, testLogger())
	jobID := uuid.New()

	results, stats, err := svc.IngestUpload(context.Background(), jobID,
		"alice_walker.txt", strings.NewReader("Name: Alice Walker\nessay body"))
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, uint32(1), stats.Created)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Equal(t, "alice walker", results[0].StudentName)
	assert.NotEmpty(t, results[0].SubmissionID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, jobID, repo.created[0].JobID)
	assert.Equal(t, "alice_walker.txt", repo.created[0].OriginalFilename)

	// file is stored under the per-job directory
	stored, err := os.ReadFile(repo.created[0].FileURI)
	require.NoError(t, err)
	assert.Contains(t, string(stored), "essay body")
	assert.Equal(t, jobID.String(), filepath.Base(filepath.Dir(repo.created[0].FileURI)))
}

func TestIngestUploadSkipsUnsupportedType(t *testing.T) {
	t.Parallel()

	repo := &fakeSubmissionRepo{}
	svc := NewService(t.TempDir(), 0, repo, testLogger())
	results, stats, err := svc.IngestUpload(context.Background(), uuid.New(),
		"photo.heic", strings.NewReader("bytes"))
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, uint32(1), stats.Skipped)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Empty(t, repo.created)
}

func TestIngestUploadEnforcesSizeLimit(t *testing.T) {
	t.Parallel()

	repo := &fakeSubmissionRepo{}
	svc := NewService(t.TempDir(), 16, repo, testLogger())

	results, stats, err := svc.IngestUpload(context.Background(), uuid.New(),
		"big.txt", strings.NewReader(strings.Repeat("x", 64)))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Err, "size limit")
	assert.Equal(t, uint32(1), stats.Failed)
	assert.Empty(t, repo.created)
}

func TestIngestArchiveExpandsDocuments(t *testing.T) {
	t.Parallel()

	repo := &fakeSubmissionRepo{}
	svc := NewService(t.TempDir(), 0, repo, testLogger())
	jobID := uuid.New()

	zr := buildZip(t, map[string]string{
		"essays/":                       "",
		"essays/john_smith.txt":         "essay one",
		"essays/jane_doe.txt":           "essay two",
		"essays/notes.xlsx":             "not a document",
		"__MACOSX/essays/john_smith":    "resource fork",
		"essays/.DS_Store":              "junk",
		".hidden/mary.txt":              "hidden dir",
		"essays/subdir/mark_jones.docx": "ignored content type ok",
	})

	results, stats, err := svc.IngestUpload(context.Background(), jobID, "batch.zip", zr)
	require.NoError(t, err)

	// three usable documents, one unsupported entry skipped
	assert.Equal(t, uint32(3), stats.Created)
	assert.Equal(t, uint32(1), stats.Skipped)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, repo.created, 3)

	var names []string
	for _, r := range results {
		if r.Err == "" && r.StudentName != "" {
			names = append(names, r.StudentName)
		}
	}
	assert.ElementsMatch(t, []string{"john smith", "jane doe", "mark jones"}, names)

	// the in-archive path is kept verbatim, so entries with the same base
	// name in different folders stay apart
	var originals []string
	for _, p := range repo.created {
		originals = append(originals, p.OriginalFilename)
	}
	assert.ElementsMatch(t, []string{
		"essays/john_smith.txt",
		"essays/jane_doe.txt",
		"essays/subdir/mark_jones.docx",
	}, originals)
}

func TestIngestArchiveKeepsSameNamedEntriesApart(t *testing.T) {
	t.Parallel()

	repo := &fakeSubmissionRepo{}
	svc := NewService(t.TempDir(), 0, repo, testLogger())

	zr := buildZip(t, map[string]string{
		"period1/jane_doe.txt": "first period essay",
		"period2/jane_doe.txt": "second period essay",
	})

	_, stats, err := svc.IngestUpload(context.Background(), uuid.New(), "batch.zip", zr)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), stats.Created)

	var originals []string
	for _, p := range repo.created {
		originals = append(originals, p.OriginalFilename)
	}
	assert.ElementsMatch(t, []string{"period1/jane_doe.txt", "period2/jane_doe.txt"}, originals)
}

func TestIngestArchiveIsolatesEntryFailures(t *testing.T) {
	t.Parallel()

	repo := &fakeSubmissionRepo{failOn: "jane"}
	svc := NewService(t.TempDir(), 0, repo, testLogger())

	zr := buildZip(t, map[string]string{
		"john.txt": "one",
		"jane.txt": "two",
		"mary.txt": "three",
	})

	results, stats, err := svc.IngestUpload(context.Background(), uuid.New(), "batch.zip", zr)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), stats.Created)
	assert.Equal(t, uint32(1), stats.Failed)

	failed := 0
	for _, r := range results {
		if r.Err != "" {
			failed++
			assert.Equal(t, "jane.txt", r.Filename)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestIngestArchiveRejectsCorruptZip(t *testing.T) {
	t.Parallel()

	svc := NewService(t.TempDir(), 0, &fakeSubmissionRepo{}, testLogger())
	_, _, err := svc.IngestUpload(context.Background(), uuid.New(),
		"broken.zip", strings.NewReader("definitely not a zip"))
	assert.Error(t, err)
}

func TestIngestDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "alice_w.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bob_k.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".DS_Store"), []byte("junk"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("skip"), 0o644))

	repo := &fakeSubmissionRepo{}
	svc := NewService(t.TempDir(), 0, repo, testLogger())

	results, stats, err := svc.IngestDirectory(context.Background(), uuid.New(), root)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), stats.Created)
	assert.Equal(t, uint32(1), stats.Skipped)
	assert.Len(t, results, 2)
}
