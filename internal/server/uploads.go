package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
)

// uploadFormMemory bounds how much of the multipart body is held in memory.
const uploadFormMemory = 32 << 20

// UploadResult reports the intake outcome for one file of a batch.
type UploadResult struct {
	FileName string            `json:"fileName"`
	Job      *entity.UploadJob `json:"job,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	if err := r.ParseMultipartForm(uploadFormMemory); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		files = r.MultipartForm.File["file"]
	}
	if len(files) == 0 {
		writeErrorMessage(w, http.StatusBadRequest, "no files in request")
		return
	}

	accepted := 0
	results := make([]UploadResult, 0, len(files))
	for _, fh := range files {
		res := UploadResult{FileName: fh.Filename}
		f, err := fh.Open()
		if err != nil {
			res.Error = "unreadable file part"
			results = append(results, res)
			continue
		}
		job, err := s.deps.Intake.AcceptFile(r.Context(), owner, fh.Filename, fh.Size, f)
		f.Close()
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Job = job
			accepted++
		}
		results = append(results, res)
	}

	status := http.StatusAccepted
	if accepted == 0 {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]any{
		"accepted": accepted,
		"results":  results,
	})
}

func (s *Server) handleRecentUploads(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	jobs, total, err := s.deps.Jobs.ListRecent(r.Context(), owner.ID, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if jobs == nil {
		jobs = []*entity.UploadJob{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"total": total,
	})
}

func (s *Server) handleGetUpload(w http.ResponseWriter, r *http.Request) {
	owner := ownerFrom(r)
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid job id")
		return
	}
	job, err := s.deps.Jobs.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	// jobs are private to their owner
	if job.OwnerID != owner.ID {
		writeError(w, common.WrapError(common.ErrNotFound, "upload job not found"))
		return
	}
	writeJSON(w, http.StatusOK, job)
}
