package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"invoice-tracker/constants"
	"invoice-tracker/internal/common"
)

// ErrBackupInProgress is returned when a snapshot is requested while a
// previous one is still running. Callers do not queue behind it.
var ErrBackupInProgress = errors.New("a backup is already in progress")

const (
	maxHistoryEntries = 100
	historyLogFile    = "backup_log.json"
)

// Dumper writes a database dump to dest. The default implementation shells
// out to pg_dump; tests inject their own.
type Dumper interface {
	Dump(ctx context.Context, dest string, compress bool) error
}

// HistoryEntry records one snapshot attempt.
type HistoryEntry struct {
	FileName    string                 `json:"fileName"`
	Reason      constants.BackupReason `json:"reason"`
	SizeBytes   int64                  `json:"sizeBytes"`
	Success     bool                   `json:"success"`
	Error       string                 `json:"error,omitempty"`
	StartedAt   time.Time              `json:"startedAt"`
	CompletedAt time.Time              `json:"completedAt"`
}

// Status is the read-only view of the service.
type Status struct {
	Enabled    bool          `json:"enabled"`
	Running    bool          `json:"running"`
	Schedule   string        `json:"schedule,omitempty"`
	MaxBackups int           `json:"maxBackups"`
	Last       *HistoryEntry `json:"last,omitempty"`
}

// Service takes database snapshots on demand and on a cron schedule.
// At most one snapshot runs at a time.
type Service struct {
	cfg    common.BackupConfig
	dumper Dumper
	log    *slog.Logger
	cron   *cron.Cron

	running sync.Mutex // held for the duration of a snapshot

	mu      sync.RWMutex // guards history
	history []HistoryEntry
}

func NewService(cfg common.BackupConfig, dumper Dumper, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{cfg: cfg, dumper: dumper, log: logger}
	s.loadHistory()
	return s
}

// loadHistory restores attempts recorded by a previous process.
func (s *Service) loadHistory() {
	raw, err := os.ReadFile(filepath.Join(s.cfg.Dir, historyLogFile))
	if err != nil {
		return
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn("backup.history_unreadable", "error", err)
		return
	}
	if len(entries) > maxHistoryEntries {
		entries = entries[len(entries)-maxHistoryEntries:]
	}
	s.history = entries
}

// Start registers the cron schedule when backups are enabled. It is a
// no-op otherwise.
func (s *Service) Start() error {
	if !s.cfg.Enabled {
		return nil
	}
	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := s.CreateSnapshot(ctx, constants.BackupScheduled); err != nil && !errors.Is(err, ErrBackupInProgress) {
			s.log.Error("backup.scheduled_failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()
	s.log.Info("backup.schedule_registered", "schedule", s.cfg.Schedule)
	return nil
}

// Stop halts the scheduler and waits for a running scheduled job.
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// CreateSnapshot dumps the database to a timestamped file under the backup
// directory. A concurrent call fails immediately with ErrBackupInProgress.
func (s *Service) CreateSnapshot(ctx context.Context, reason constants.BackupReason) error {
	if !s.running.TryLock() {
		return ErrBackupInProgress
	}
	defer s.running.Unlock()

	entry := HistoryEntry{Reason: reason, StartedAt: time.Now().UTC()}
	name := "invoice_backup_" + entry.StartedAt.Format("20060102_150405") + ".sql"
	if s.cfg.Compression {
		name += ".gz"
	}
	entry.FileName = name
	dest := filepath.Join(s.cfg.Dir, name)

	s.log.Info("backup.start", "reason", reason, "file", name)
	err := s.dump(ctx, dest)
	entry.CompletedAt = time.Now().UTC()
	if err != nil {
		entry.Error = err.Error()
		s.appendHistory(entry)
		s.log.Error("backup.failed", "reason", reason, "error", err)
		return err
	}

	if info, statErr := os.Stat(dest); statErr == nil {
		entry.SizeBytes = info.Size()
	}
	entry.Success = true
	s.appendHistory(entry)
	s.rotate()
	s.log.Info("backup.done", "reason", reason, "file", name, "bytes", entry.SizeBytes)
	return nil
}

func (s *Service) dump(ctx context.Context, dest string) error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}
	if err := s.dumper.Dump(ctx, dest, s.cfg.Compression); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}

// Status reports whether a snapshot is running and the last attempt.
func (s *Service) Status() Status {
	st := Status{
		Enabled:    s.cfg.Enabled,
		Schedule:   s.cfg.Schedule,
		MaxBackups: s.cfg.MaxBackups,
	}
	if s.running.TryLock() {
		s.running.Unlock()
	} else {
		st.Running = true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n := len(s.history); n > 0 {
		last := s.history[n-1]
		st.Last = &last
	}
	return st
}

// History returns the recorded attempts, newest last.
func (s *Service) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Service) appendHistory(e HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, e)
	if len(s.history) > maxHistoryEntries {
		s.history = s.history[len(s.history)-maxHistoryEntries:]
	}
	s.persistHistoryLocked()
}

func (s *Service) persistHistoryLocked() {
	raw, err := json.MarshalIndent(s.history, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		s.log.Warn("backup.history_write_failed", "error", err)
		return
	}
	if err := os.WriteFile(filepath.Join(s.cfg.Dir, historyLogFile), raw, 0o644); err != nil {
		s.log.Warn("backup.history_write_failed", "error", err)
	}
}

// rotate deletes the oldest backup files beyond MaxBackups.
func (s *Service) rotate() {
	if s.cfg.MaxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		s.log.Warn("backup.rotate_read_failed", "error", err)
		return
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "invoice_backup_") {
			files = append(files, e.Name())
		}
	}
	// timestamped names sort chronologically
	sort.Strings(files)
	for len(files) > s.cfg.MaxBackups {
		victim := files[0]
		files = files[1:]
		if err := os.Remove(filepath.Join(s.cfg.Dir, victim)); err != nil {
			s.log.Warn("backup.rotate_remove_failed", "file", victim, "error", err)
			continue
		}
		s.log.Info("backup.rotated", "file", victim)
	}
}
