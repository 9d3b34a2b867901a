package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gradepilot/gradepilot/internal/common"
	"github.com/gradepilot/gradepilot/internal/core"
	"github.com/gradepilot/gradepilot/internal/core/async"
	"github.com/gradepilot/gradepilot/internal/export"
	"github.com/gradepilot/gradepilot/internal/extract"
	"github.com/gradepilot/gradepilot/internal/intake"
	"github.com/gradepilot/gradepilot/internal/llm/openai"
	repo "github.com/gradepilot/gradepilot/internal/repository"
	"github.com/gradepilot/gradepilot/internal/server"
)

func main() {
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	subsRepo := repo.NewSubmissionRepository(entc, logger)
	resRepo := repo.NewResultRepository(entc, logger)

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
	queue := async.NewGradingQueue(processor, logger,
		async.WithWorkers(1),
		async.WithQueueSize(512),
		async.WithProcessTimeout(5*time.Minute),
	)

	intaker := intake.NewService(cfg.Uploads.Dir, cfg.Uploads.MaxFileSize, subsRepo, logger)
	exporter := export.NewService(jobsRepo, logger)

	srv := server.NewServer(logger, jobsRepo, subsRepo, intaker, exporter, extractor, queue,
		func(ctx context.Context) error { return pool.Ping(ctx) })

	addr := cfg.Server.Addr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Router(),
	}

	logger.Info("gradepilot listening", "addr", addr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	queue.Shutdown(shutdownCtx)
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
