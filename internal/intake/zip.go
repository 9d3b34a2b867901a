package intake

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// macOSResourceDir is the resource-fork junk folder macOS puts in zips.
const macOSResourceDir = "__MACOSX/"

// ingestArchive expands a zip upload into one submission per usable entry.
// Directory entries, macOS resource forks, hidden files, and unsupported
// types are skipped; a bad entry fails alone without sinking the batch.
func (s *Service) ingestArchive(ctx context.Context, jobID uuid.UUID, filename string, r io.Reader) ([]UploadResult, Stats, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read archive: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open archive %q: %w", filename, err)
	}

	var results []UploadResult
	var stats Stats

	for _, entry := range zr.File {
		if skipArchiveEntry(entry) {
			continue
		}
		stats.Received++
		if !usableDocument(entry.Name) {
			s.logger.Debug("skipping unsupported archive entry",
				"archive", filename, "entry", entry.Name)
			stats.Skipped++
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			results = append(results, UploadResult{Filename: entry.Name, Err: err.Error()})
			stats.Failed++
			continue
		}
		// The full in-archive path goes through so same-named files in
		// different folders stay distinguishable.
		res := s.ingestDocument(ctx, jobID, entry.Name, rc)
		_ = rc.Close()

		results = append(results, res)
		if res.Err != "" {
			stats.Failed++
		} else {
			stats.Created++
		}
	}

	s.logger.Info("archive expanded",
		"job_id", jobID, "archive", filename,
		"created", stats.Created, "skipped", stats.Skipped, "failed", stats.Failed)
	return results, stats, nil
}

func skipArchiveEntry(entry *zip.File) bool {
	if entry.FileInfo().IsDir() {
		return true
	}
	name := entry.Name
	if strings.HasPrefix(name, macOSResourceDir) {
		return true
	}
	// hidden files anywhere in the entry path (.DS_Store and friends)
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
