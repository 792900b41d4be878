package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Config for the HTTP extraction client.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// HTTPExtractor posts documents to a document-intelligence service and
// decodes its candidate response.
type HTTPExtractor struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewHTTPExtractor(cfg Config, logger *slog.Logger) *HTTPExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &HTTPExtractor{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

func (c *HTTPExtractor) Extract(ctx context.Context, path string) (*Candidate, error) {
	start := time.Now()
	c.log.Info("extract.start", "path", path, "endpoint", c.cfg.Endpoint)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			c.log.Error("close document failed", "path", path, "err", err)
		}
	}()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("extract.http_error", "path", path, "elapsed_ms", time.Since(start).Milliseconds(), "err", err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		// a non-2xx with a body is the service's typed failure
		var fail struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &fail)
		if fail.Error == "" {
			fail.Error = fmt.Sprintf("extractor returned status %d", resp.StatusCode)
		}
		c.log.Error("extract.failed", "path", path, "status", resp.StatusCode, "message", fail.Error)
		return nil, &ExtractionError{Message: fail.Error}
	}

	if err := ValidateCandidate(raw); err != nil {
		return nil, err
	}
	var cand Candidate
	if err := json.Unmarshal(raw, &cand); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	c.log.Info("extract.ok", "path", path, "elapsed_ms", time.Since(start).Milliseconds(), "confidence", cand.Confidence)
	return &cand, nil
}
