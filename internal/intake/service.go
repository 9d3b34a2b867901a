package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/internal/repository"
)

// Service stores uploaded files under a per-job directory and creates
// PENDING submissions for them.
type Service struct {
	uploadsDir  string
	maxFileSize int64
	subsRepo    repository.SubmissionRepository
	logger      *slog.Logger
}

func NewService(uploadsDir string, maxFileSize int64, subsRepo repository.SubmissionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	return &Service{
		uploadsDir:  uploadsDir,
		maxFileSize: maxFileSize,
		subsRepo:    subsRepo,
		logger:      logger,
	}
}

// IngestUpload dispatches on the upload's extension: zip archives expand
// into one submission per usable entry, supported documents become a
// single submission, anything else is rejected.
func (s *Service) IngestUpload(ctx context.Context, jobID uuid.UUID, filename string, r io.Reader) ([]UploadResult, Stats, error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	switch {
	case constants.IsArchiveExt(ext):
		return s.ingestArchive(ctx, jobID, filename, r)
	case constants.IsDocumentExt(ext):
		var stats Stats
		stats.Received++
		res := s.ingestDocument(ctx, jobID, filename, r)
		if res.Err != "" {
			stats.Failed++
		} else {
			stats.Created++
		}
		return []UploadResult{res}, stats, nil
	default:
		// Not a document, not an archive: skipped, no submission, no error.
		s.logger.Debug("skipping unsupported upload", "job_id", jobID, "filename", filename)
		return nil, Stats{Received: 1, Skipped: 1}, nil
	}
}

// ingestDocument copies one document into the job's upload directory and
// creates the PENDING submission row.
func (s *Service) ingestDocument(ctx context.Context, jobID uuid.UUID, filename string, r io.Reader) UploadResult {
	out := UploadResult{Filename: filename}

	if s.maxFileSize > 0 {
		r = io.LimitReader(r, s.maxFileSize+1)
	}

	dst, err := s.storeFile(jobID, filename, r)
	if err != nil {
		s.logger.Error("failed to store upload", "job_id", jobID, "filename", filename, "error", err)
		out.Err = err.Error()
		return out
	}

	name := StudentNameFromFilename(filename)
	sub, err := s.subsRepo.Create(ctx, &repository.CreateSubmissionParams{
		JobID:            jobID,
		StudentName:      name,
		OriginalFilename: filename,
		FileURI:          dst,
	})
	if err != nil {
		out.Err = err.Error()
		return out
	}

	out.SubmissionID = sub.ID.String()
	out.StudentName = name
	s.logger.Info("submission created",
		"job_id", jobID, "submission_id", sub.ID, "filename", filename, "student_name", name)
	return out
}

// storeFile writes the upload under <uploadsDir>/<jobID>/<uuid>_<base> and
// returns the stored path. The uuid prefix keeps duplicate filenames apart.
func (s *Service) storeFile(jobID uuid.UUID, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.uploadsDir, jobID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %q: %w", dir, err)
	}

	base := filepath.Base(filename)
	dst := filepath.Join(dir, uuid.New().String()+"_"+base)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", dst, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write %q: %w", dst, err)
	}
	if s.maxFileSize > 0 && n > s.maxFileSize {
		_ = os.Remove(dst)
		return "", fmt.Errorf("file exceeds size limit of %d bytes", s.maxFileSize)
	}
	return dst, nil
}

// IngestDirectory walks root and ingests every supported document and zip
// archive found. Hidden files and directories are skipped.
func (s *Service) IngestDirectory(ctx context.Context, jobID uuid.UUID, root string) ([]UploadResult, Stats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, Stats{}, errors.New("root path is required")
	}

	var results []UploadResult
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			results = append(results, UploadResult{Filename: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !constants.IsDocumentExt(ext) && !constants.IsArchiveExt(ext) {
			stats.Skipped++
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			results = append(results, UploadResult{Filename: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		rs, st, err := s.IngestUpload(ctx, jobID, filepath.Base(path), f)
		_ = f.Close()
		if err != nil {
			results = append(results, UploadResult{Filename: path, Err: err.Error()})
		} else {
			results = append(results, rs...)
		}
		stats.Received += st.Received
		stats.Created += st.Created
		stats.Skipped += st.Skipped
		stats.Failed += st.Failed
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
