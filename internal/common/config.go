package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Upload   UploadConfig
	Extract  ExtractConfig
	Backup   BackupConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
}

// UploadConfig holds document-intake configuration
type UploadConfig struct {
	Dir          string
	MaxBytes     int64
	Workers      int
	QueueSize    int
	ProcessLimit time.Duration // supervising timeout per extraction job
}

// ExtractConfig points at the external extraction service
type ExtractConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// BackupConfig holds snapshot-related configuration
type BackupConfig struct {
	Enabled     bool
	Schedule    string // cron expression
	Dir         string
	MaxBackups  int
	Compression bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "./uploads"),
			MaxBytes:     int64(getEnvAsInt("UPLOAD_MAX_BYTES", 10<<20)),
			Workers:      getEnvAsInt("UPLOAD_WORKERS", 6),
			QueueSize:    getEnvAsInt("UPLOAD_QUEUE_SIZE", 512),
			ProcessLimit: getEnvAsDuration("UPLOAD_PROCESS_TIMEOUT", 3*time.Minute),
		},
		Extract: ExtractConfig{
			Endpoint: getEnv("EXTRACTOR_URL", ""),
			APIKey:   getEnv("EXTRACTOR_API_KEY", ""),
			Timeout:  getEnvAsDuration("EXTRACTOR_TIMEOUT", 2*time.Minute),
		},
		Backup: BackupConfig{
			Enabled:     getEnvAsBool("BACKUP_ENABLED", false),
			Schedule:    getEnv("BACKUP_SCHEDULE", "0 2 * * *"),
			Dir:         getEnv("BACKUP_PATH", "/tmp/backups"),
			MaxBackups:  getEnvAsInt("BACKUP_MAX_COUNT", 30),
			Compression: getEnvAsBool("BACKUP_COMPRESSION", true),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Upload.MaxBytes <= 0 {
		return NewAppError("CONFIG_ERROR", "UPLOAD_MAX_BYTES must be positive", ErrInvalidInput)
	}
	if c.Backup.Enabled && c.Backup.Schedule == "" {
		return NewAppError("CONFIG_ERROR", "BACKUP_SCHEDULE is required when backups are enabled", ErrInvalidInput)
	}
	return nil
}
