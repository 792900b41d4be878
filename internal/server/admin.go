package server

import (
	"errors"
	"net/http"
	"time"

	"invoice-tracker/constants"
	"invoice-tracker/internal/backup"
)

func (s *Server) handleBackupCreate(w http.ResponseWriter, r *http.Request) {
	err := s.deps.Backups.CreateSnapshot(r.Context(), constants.BackupManual)
	if errors.Is(err, backup.ErrBackupInProgress) {
		writeErrorMessage(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.deps.Backups.Status())
}

func (s *Server) handleBackupStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Backups.Status())
}

func (s *Server) handleBackupHistory(w http.ResponseWriter, r *http.Request) {
	history := s.deps.Backups.History()
	if history == nil {
		history = []backup.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

func (s *Server) handleExportInvoices(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	from, err := parseDateParam(r, "from")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}

	data, err := s.deps.Export.ExportInvoicesXLSX(r.Context(), owner.ID, from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
