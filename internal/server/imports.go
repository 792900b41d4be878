package server

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"invoice-tracker/constants"
	"invoice-tracker/internal/importer"
	"invoice-tracker/internal/notify"
)

// importFile pulls the single spreadsheet out of a preview or commit
// request and reports its extension.
func importFile(r *http.Request) (multipart.File, string, error) {
	if err := r.ParseMultipartForm(uploadFormMemory); err != nil {
		return nil, "", err
	}
	f, fh, err := r.FormFile("file")
	if err != nil {
		return nil, "", err
	}
	return f, filepath.Ext(fh.Filename), nil
}

func (s *Server) handleImportPreview(w http.ResponseWriter, r *http.Request) {
	f, ext, err := importFile(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "request must carry one spreadsheet in the file field")
		return
	}
	defer f.Close()
	defer r.MultipartForm.RemoveAll()

	res, err := s.deps.Preview.Preview(r.Context(), f, ext)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// commitEventData summarizes a finished bulk import for the push channel.
type commitEventData struct {
	Owner    string `json:"owner"`
	Imported int    `json:"imported"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}

func (s *Server) handleImportCommit(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	f, ext, err := importFile(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "request must carry one spreadsheet in the file field")
		return
	}
	defer f.Close()
	defer r.MultipartForm.RemoveAll()

	mode, ok := constants.ParseDuplicateMode(r.FormValue("duplicateMode"))
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "duplicateMode must be skip, update or duplicate")
		return
	}
	createBackup, _ := strconv.ParseBool(r.FormValue("createBackup"))

	res, err := s.deps.Commit.Commit(r.Context(), f, ext, importer.CommitOptions{
		Owner:         owner.ID,
		OwnerName:     owner.Name,
		DuplicateMode: mode,
		CreateBackup:  createBackup,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	s.deps.Hub.Broadcast(notify.Event{
		Type: "bulk_import",
		Data: commitEventData{
			Owner:    owner.ID,
			Imported: res.Imported,
			Updated:  res.Updated,
			Skipped:  res.Skipped,
			Failed:   res.Failed,
		},
		Timestamp: time.Now().UTC(),
	})
	writeJSON(w, http.StatusOK, res)
}
