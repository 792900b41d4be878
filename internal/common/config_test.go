package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/invoices")

	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "./uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 6, cfg.Upload.Workers)
	assert.Equal(t, 512, cfg.Upload.QueueSize)
	assert.Equal(t, 3*time.Minute, cfg.Upload.ProcessLimit)
	assert.False(t, cfg.Backup.Enabled)
	assert.Equal(t, "0 2 * * *", cfg.Backup.Schedule)
	assert.Equal(t, 30, cfg.Backup.MaxBackups)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/invoices")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("UPLOAD_MAX_BYTES", "1048576")
	t.Setenv("UPLOAD_PROCESS_TIMEOUT", "90s")
	t.Setenv("BACKUP_ENABLED", "true")
	t.Setenv("BACKUP_MAX_COUNT", "5")

	cfg := LoadConfig()
	assert.Equal(t, ":9090", cfg.Server.HTTPAddr)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
	assert.Equal(t, 90*time.Second, cfg.Upload.ProcessLimit)
	assert.True(t, cfg.Backup.Enabled)
	assert.Equal(t, 5, cfg.Backup.MaxBackups)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/invoices")
	t.Setenv("UPLOAD_WORKERS", "many")
	t.Setenv("UPLOAD_PROCESS_TIMEOUT", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 6, cfg.Upload.Workers)
	assert.Equal(t, 3*time.Minute, cfg.Upload.ProcessLimit)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/invoices")
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Backup.Enabled = true
	cfg.Backup.Schedule = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Upload.MaxBytes = 0
	assert.Error(t, cfg.Validate())
}
