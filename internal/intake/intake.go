package intake

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// UploadResult is the per-file intake outcome. A zip upload expands into
// one result per usable entry.
type UploadResult struct {
	Filename     string
	SubmissionID string
	StudentName  string
	Err          string
}

// Stats summarizes an upload batch.
type Stats struct {
	Received uint32
	Created  uint32
	Skipped  uint32
	Failed   uint32
}

// Intaker is the behavior the upload handlers depend on.
type Intaker interface {
	// IngestUpload stores one uploaded file (document or zip archive)
	// under the job and creates PENDING submissions for each document.
	IngestUpload(ctx context.Context, jobID uuid.UUID, filename string, r io.Reader) ([]UploadResult, Stats, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, jobID uuid.UUID, root string) ([]UploadResult, Stats, error)
}
