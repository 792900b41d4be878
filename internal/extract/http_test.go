package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	return path
}

func TestExtractDecodesCandidate(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		w.Write([]byte(`{"doc_type":"expense","party_name":"ACME","total_amount":"1234.56","confidence":0.9}`))
	}))
	defer srv.Close()

	ex := NewHTTPExtractor(Config{Endpoint: srv.URL, APIKey: "secret"}, nil)
	cand, err := ex.Extract(context.Background(), tempDoc(t))
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "expense", cand.DocType)
	assert.Equal(t, "1234.56", cand.TotalAmount)
}

func TestExtractTypedFailureFromService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"document is blank"}`))
	}))
	defer srv.Close()

	ex := NewHTTPExtractor(Config{Endpoint: srv.URL}, nil)
	_, err := ex.Extract(context.Background(), tempDoc(t))

	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, "document is blank", exErr.Message)
}

func TestExtractInvalidPayloadIsSchemaViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"doc_type":"refund","party_name":"ACME","total_amount":"1.00"}`))
	}))
	defer srv.Close()

	ex := NewHTTPExtractor(Config{Endpoint: srv.URL}, nil)
	_, err := ex.Extract(context.Background(), tempDoc(t))
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestExtractMissingFile(t *testing.T) {
	ex := NewHTTPExtractor(Config{Endpoint: "http://127.0.0.1:0"}, nil)
	_, err := ex.Extract(context.Background(), "/nonexistent/doc.pdf")
	assert.Error(t, err)
}
