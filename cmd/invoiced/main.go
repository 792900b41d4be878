package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-tracker/internal/async"
	"invoice-tracker/internal/backup"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/export"
	"invoice-tracker/internal/extract"
	"invoice-tracker/internal/importer"
	"invoice-tracker/internal/ingest"
	"invoice-tracker/internal/jobs"
	"invoice-tracker/internal/notify"
	"invoice-tracker/internal/pipeline"
	repo "invoice-tracker/internal/repository"
	"invoice-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Extract.Endpoint == "" {
		logger.Error("EXTRACTOR_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewUploadJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	partiesRepo := repo.NewPartyRepository(entc, logger)

	hub := notify.NewHub(logger)
	machine := jobs.NewMachine(jobsRepo, hub, logger)

	extractor := extract.NewHTTPExtractor(extract.Config{
		Endpoint: cfg.Extract.Endpoint,
		APIKey:   cfg.Extract.APIKey,
		Timeout:  cfg.Extract.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(machine, invoicesRepo, partiesRepo, extractor, logger)
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Upload.Workers),
		async.WithQueueSize(cfg.Upload.QueueSize),
		async.WithProcessTimeout(cfg.Upload.ProcessLimit),
	)
	supervisor := pipeline.NewSupervisor(machine, queue, 2*time.Minute, cfg.Upload.ProcessLimit, logger)
	go supervisor.Run(ctx)

	intake := ingest.NewIntake(machine, queue, cfg.Upload.Dir, cfg.Upload.MaxBytes, logger)

	backups := backup.NewService(cfg.Backup, backup.NewPGDumper(cfg.Database.DSN), logger)
	if err := backups.Start(); err != nil {
		logger.Error("failed to start backup scheduler", "error", err)
		os.Exit(1)
	}
	defer backups.Stop()

	previewEngine := importer.NewPreviewEngine(invoicesRepo, logger)
	commitEngine := importer.NewCommitEngine(invoicesRepo, backups, logger)
	exporter := export.NewService(invoicesRepo, logger)

	srv := server.New(cfg.Server, server.Deps{
		Intake:  intake,
		Jobs:    machine,
		Hub:     hub,
		Preview: previewEngine,
		Commit:  commitEngine,
		Backups: backups,
		Export:  exporter,
		Health: func(ctx context.Context) error {
			return repo.HealthCheck(ctx, pool, 3*time.Second, logger)
		},
	}, logger)

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	queue.Shutdown(shutdownCtx)
	hub.Close()
}
