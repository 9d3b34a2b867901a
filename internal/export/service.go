package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/internal/repository"
)

// Service produces XLSX grade sheets from a job's submissions.
type Service struct {
	jobsRepo repository.JobRepository
	logger   *slog.Logger
}

func NewService(jobsRepo repository.JobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobsRepo: jobsRepo, logger: logger}
}

// ExportJobXLSX returns an XLSX workbook (as bytes) with one row per
// submission, sorted by student name. Ungraded and failed submissions get
// an empty score cell so the sheet is usable mid-run.
func (s *Service) ExportJobXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, string, error) {
	start := time.Now()

	job, err := s.jobsRepo.GetWithSubmissions(ctx, jobID)
	if err != nil {
		return nil, "", fmt.Errorf("load job: %w", err)
	}
	subs := job.Edges.Submissions

	f := excelize.NewFile()
	const sheet = "Grades"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, "", err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Student Name",
		"Filename",
		"Status",
		fmt.Sprintf("Score (out of %d)", job.TotalPoints),
		"Feedback",
		"Rubric Breakdown",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sub := range subs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, sub.StudentName)
		write(2, sub.OriginalFilename)
		write(3, sub.Status)

		if res := sub.Edges.GradeResult; res != nil && sub.Status == string(constants.SubmissionStatusGraded) {
			write(4, res.Score)
			write(5, res.Feedback)
			write(6, res.RubricBreakdown)
		}
		if sub.ErrorMessage != nil {
			write(7, truncate(*sub.ErrorMessage, 200))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24) // student
	_ = f.SetColWidth(sheet, "B", "B", 32) // filename
	_ = f.SetColWidth(sheet, "C", "C", 12) // status
	_ = f.SetColWidth(sheet, "D", "D", 16) // score
	_ = f.SetColWidth(sheet, "E", "F", 60) // feedback, breakdown
	_ = f.SetColWidth(sheet, "G", "G", 40) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("xlsx write: %w", err)
	}

	filename := fmt.Sprintf("%s-grades.xlsx", slugify(job.Title))
	s.logger.Info("export.xlsx.ok",
		"job_id", jobID.String(),
		"rows", len(subs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), filename, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
