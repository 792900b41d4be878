package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"invoice-tracker/internal/backup"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/export"
	"invoice-tracker/internal/importer"
	"invoice-tracker/internal/ingest"
	"invoice-tracker/internal/jobs"
	"invoice-tracker/internal/notify"
)

// Deps are the collaborators the HTTP layer delegates to.
type Deps struct {
	Intake  *ingest.Intake
	Jobs    *jobs.Machine
	Hub     *notify.Hub
	Preview *importer.PreviewEngine
	Commit  *importer.CommitEngine
	Backups *backup.Service
	Export  *export.Service
	Health  func(ctx context.Context) error
}

// Server is the HTTP front of the tracker.
type Server struct {
	http *http.Server
	deps Deps
	log  *slog.Logger
}

func New(cfg common.ServerConfig, deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{deps: deps, log: logger}
	s.http = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-ID", "X-User-Name"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.deps.Hub.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(requireOwner)

		r.Post("/uploads", s.handleUpload)
		r.Get("/uploads/recent", s.handleRecentUploads)
		r.Get("/uploads/{id}", s.handleGetUpload)

		r.Post("/import/preview", s.handleImportPreview)
		r.Post("/import/commit", s.handleImportCommit)

		r.Get("/export/invoices", s.handleExportInvoices)

		r.Route("/admin/backup", func(r chi.Router) {
			r.Post("/", s.handleBackupCreate)
			r.Get("/status", s.handleBackupStatus)
			r.Get("/history", s.handleBackupHistory)
		})
	})

	return r
}

// Handler exposes the mounted router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	s.log.Info("http server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.deps.Health != nil {
		if err := s.deps.Health(r.Context()); err != nil {
			writeError(w, common.WrapError(common.ErrInternal, "database unreachable"))
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
