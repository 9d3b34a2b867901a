package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/internal/common"
	"github.com/gradepilot/gradepilot/internal/core"
	"github.com/gradepilot/gradepilot/internal/export"
	"github.com/gradepilot/gradepilot/internal/extract"
	"github.com/gradepilot/gradepilot/internal/intake"
	"github.com/gradepilot/gradepilot/internal/llm/openai"
	repo "github.com/gradepilot/gradepilot/internal/repository"
)

// printError prints to stderr, falling back to stdout if stderr fails.
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dbPath           = flag.String("db", "", "SQLite database path (default: in-memory)")
		dir              = flag.String("dir", "", "directory of submission documents (required)")
		out              = flag.String("out", "", "output XLSX path (default: <dir>/../grades.xlsx)")
		title            = flag.String("title", "Batch Grading", "job title")
		points           = flag.Int("points", 100, "total points")
		strictnessFlag   = flag.String("strictness", "NORMAL", "STRICT, NORMAL, or LENIENT")
		gradeLevel       = flag.String("grade-level", "", "optional grade level, e.g. '8th grade'")
		instructionsPath = flag.String("instructions", "", "path to assignment instructions text file (required)")
		rubricPath       = flag.String("rubric", "", "optional path to rubric text file")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *instructionsPath == "" {
		printError("Error: --instructions is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "grades.xlsx")
	}

	strictness, ok := constants.ParseStrictness(*strictnessFlag)
	if !ok {
		printError("Error: unknown strictness %q\n", *strictnessFlag)
		os.Exit(1)
	}

	instructions, err := os.ReadFile(*instructionsPath)
	if err != nil {
		printError("Error: read instructions: %v\n", err)
		os.Exit(1)
	}
	var rubric string
	if *rubricPath != "" {
		b, err := os.ReadFile(*rubricPath)
		if err != nil {
			printError("Error: read rubric: %v\n", err)
			os.Exit(1)
		}
		rubric = string(b)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	entc, err := repo.OpenSQLite(ctx, *dbPath, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = entc.Close() }()

	jobsRepo := repo.NewJobRepository(entc, logger)
	subsRepo := repo.NewSubmissionRepository(entc, logger)
	resRepo := repo.NewResultRepository(entc, logger)

	job, err := jobsRepo.Create(ctx, &repo.CreateJobParams{
		Title:                      *title,
		TotalPoints:                *points,
		Strictness:                 strictness,
		GradeLevel:                 *gradeLevel,
		AssignmentInstructionsText: strings.TrimSpace(string(instructions)),
		RubricText:                 strings.TrimSpace(rubric),
	})
	if err != nil {
		logger.Error("failed to create job", "error", err)
		os.Exit(1)
	}

	uploadsDir := filepath.Join(os.TempDir(), "gradepilot-batch")
	intaker := intake.NewService(uploadsDir, cfg.Uploads.MaxFileSize, subsRepo, logger)

	logger.Info("starting intake", "dir", *dir, "job_id", job.ID)
	results, stats, err := intaker.IngestDirectory(ctx, job.ID, *dir)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	for _, r := range results {
		if r.Err != "" {
			logger.Warn("intake failure", "filename", r.Filename, "error", r.Err)
			continue
		}
		id, err := uuid.Parse(r.SubmissionID)
		if err != nil {
			continue
		}
		ingested = append(ingested, id)
	}
	logger.Info("intake complete",
		"created", stats.Created, "skipped", stats.Skipped, "failed", stats.Failed)
	if len(ingested) == 0 {
		printError("Error: no submissions found under %s\n", *dir)
		os.Exit(1)
	}

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
	}, logger)
	grader := openai.NewClient(openai.Config{
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	processor := core.NewGrader(logger, extractor, grader, jobsRepo, subsRepo, resRepo)

	if err := jobsRepo.SetStatus(ctx, job.ID, constants.JobStatusProcessing); err != nil {
		logger.Error("failed to mark job processing", "error", err)
		os.Exit(1)
	}

	graded := 0
	failures := 0
	for _, id := range ingested {
		if err := processor.ProcessSubmission(ctx, id); err != nil {
			failures++
		} else {
			graded++
		}
	}

	exporter := export.NewService(jobsRepo, logger)
	xlsxBytes, _, err := exporter.ExportJobXLSX(ctx, job.ID)
	if err != nil {
		logger.Error("failed to export grade sheet", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch grading complete",
		"submissions", len(ingested), "graded", graded, "failures", failures, "output_file", *out)

	fmt.Printf("Batch grading complete!\n")
	fmt.Printf("- Submissions: %d\n", len(ingested))
	fmt.Printf("- Graded: %d\n", graded)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
