package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-tracker/constants"
	"invoice-tracker/internal/common"
)

type fakeDumper struct {
	mu      sync.Mutex
	calls   int
	err     error
	block   chan struct{} // when set, Dump waits until closed
	payload []byte
}

func (d *fakeDumper) Dump(ctx context.Context, dest string, compress bool) error {
	d.mu.Lock()
	d.calls++
	block := d.block
	d.mu.Unlock()
	if block != nil {
		<-block
	}
	if d.err != nil {
		// simulate a partial file left behind by a failed dump
		_ = os.WriteFile(dest, []byte("partial"), 0o644)
		return d.err
	}
	payload := d.payload
	if payload == nil {
		payload = []byte("-- dump\n")
	}
	return os.WriteFile(dest, payload, 0o644)
}

func testConfig(t *testing.T, maxBackups int) common.BackupConfig {
	t.Helper()
	return common.BackupConfig{
		Enabled:     true,
		Schedule:    "0 2 * * *",
		Dir:         t.TempDir(),
		MaxBackups:  maxBackups,
		Compression: false,
	}
}

// dumpFiles lists the snapshot files in dir, ignoring the history log.
func dumpFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "invoice_backup_") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestCreateSnapshotWritesFileAndHistory(t *testing.T) {
	cfg := testConfig(t, 10)
	svc := NewService(cfg, &fakeDumper{}, nil)

	err := svc.CreateSnapshot(context.Background(), constants.BackupManual)
	require.NoError(t, err)

	files := dumpFiles(t, cfg.Dir)
	require.Len(t, files, 1)
	assert.FileExists(t, filepath.Join(cfg.Dir, historyLogFile))

	history := svc.History()
	require.Len(t, history, 1)
	assert.True(t, history[0].Success)
	assert.Equal(t, constants.BackupManual, history[0].Reason)
	assert.Positive(t, history[0].SizeBytes)
}

func TestCreateSnapshotSingleFlight(t *testing.T) {
	cfg := testConfig(t, 10)
	dumper := &fakeDumper{block: make(chan struct{})}
	svc := NewService(cfg, dumper, nil)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- svc.CreateSnapshot(context.Background(), constants.BackupManual)
	}()

	// wait for the first snapshot to take the guard
	require.Eventually(t, func() bool {
		return svc.Status().Running
	}, time.Second, 5*time.Millisecond)

	err := svc.CreateSnapshot(context.Background(), constants.BackupManual)
	assert.ErrorIs(t, err, ErrBackupInProgress)

	close(dumper.block)
	require.NoError(t, <-firstDone)
	assert.False(t, svc.Status().Running)

	// the refused call must not appear in history
	assert.Len(t, svc.History(), 1)
}

func TestCreateSnapshotFailureRemovesPartialFile(t *testing.T) {
	cfg := testConfig(t, 10)
	svc := NewService(cfg, &fakeDumper{err: errors.New("pg_dump exited 1")}, nil)

	err := svc.CreateSnapshot(context.Background(), constants.BackupScheduled)
	require.Error(t, err)

	assert.Empty(t, dumpFiles(t, cfg.Dir))

	history := svc.History()
	require.Len(t, history, 1)
	assert.False(t, history[0].Success)
	assert.Contains(t, history[0].Error, "pg_dump")
}

func TestRotationKeepsNewestFiles(t *testing.T) {
	cfg := testConfig(t, 2)
	svc := NewService(cfg, &fakeDumper{}, nil)

	// timestamped names have second precision; pre-seed aged files instead
	// of sleeping between snapshots
	old := []string{
		"invoice_backup_20240101_000000.sql",
		"invoice_backup_20240102_000000.sql",
		"invoice_backup_20240103_000000.sql",
	}
	for _, name := range old {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, name), []byte("x"), 0o644))
	}

	require.NoError(t, svc.CreateSnapshot(context.Background(), constants.BackupManual))

	files := dumpFiles(t, cfg.Dir)
	require.Len(t, files, 2)
	// the two oldest pre-seeded files are gone
	for _, name := range files {
		assert.NotEqual(t, old[0], name)
		assert.NotEqual(t, old[1], name)
	}
}

func TestHistorySurvivesRestart(t *testing.T) {
	cfg := testConfig(t, 10)
	svc := NewService(cfg, &fakeDumper{}, nil)
	require.NoError(t, svc.CreateSnapshot(context.Background(), constants.BackupManual))

	reborn := NewService(cfg, &fakeDumper{}, nil)
	history := reborn.History()
	require.Len(t, history, 1)
	assert.True(t, history[0].Success)
	assert.Equal(t, constants.BackupManual, history[0].Reason)
}

func TestHistoryIsBounded(t *testing.T) {
	cfg := testConfig(t, 0) // no rotation
	svc := NewService(cfg, &fakeDumper{}, nil)

	for i := 0; i < maxHistoryEntries+25; i++ {
		svc.appendHistory(HistoryEntry{Reason: constants.BackupScheduled})
	}
	assert.Len(t, svc.History(), maxHistoryEntries)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	cfg := testConfig(t, 1)
	cfg.Schedule = "not a cron line"
	svc := NewService(cfg, &fakeDumper{}, nil)
	assert.Error(t, svc.Start())
}

func TestStartDisabledIsNoop(t *testing.T) {
	cfg := testConfig(t, 1)
	cfg.Enabled = false
	svc := NewService(cfg, &fakeDumper{}, nil)
	require.NoError(t, svc.Start())
	svc.Stop()
}
