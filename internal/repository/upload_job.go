package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"invoice-tracker/constants"
	"invoice-tracker/gen/ent"
	"invoice-tracker/gen/ent/uploadjob"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
	"invoice-tracker/internal/jobs"
)

// UploadJobRepository persists upload jobs. It implements jobs.Store.
type UploadJobRepository interface {
	jobs.Store
}

type uploadJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewUploadJobRepository(entc *ent.Client, log *slog.Logger) UploadJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &uploadJobRepo{ent: entc, log: log}
}

func (r *uploadJobRepo) Create(ctx context.Context, p jobs.CreateParams) (*entity.UploadJob, error) {
	row, err := r.ent.UploadJob.
		Create().
		SetOwnerID(p.OwnerID).
		SetOwnerName(p.OwnerName).
		SetFileName(p.FileName).
		SetFileSize(p.FileSize).
		SetFingerprint(p.Fingerprint).
		SetFilePath(p.FilePath).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("upload_job insert failed", "file_name", p.FileName, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "creating upload job")
	}
	return uploadJobToEntity(row), nil
}

// TransitionCAS applies the status change only while the job's current
// status is in `from`, in one UPDATE. Zero affected rows means the job is
// missing or no longer in an eligible status.
func (r *uploadJobRepo) TransitionCAS(ctx context.Context, jobID uuid.UUID, from []constants.JobStatus, to constants.JobStatus, payload jobs.TransitionPayload) (*entity.UploadJob, error) {
	fromStr := make([]string, len(from))
	for i, s := range from {
		fromStr[i] = string(s)
	}

	upd := r.ent.UploadJob.
		Update().
		Where(uploadjob.IDEQ(jobID), uploadjob.StatusIn(fromStr...)).
		SetStatus(string(to))
	if payload.InvoiceID != nil {
		upd.SetInvoiceID(*payload.InvoiceID)
	}
	if payload.ErrorDetail != nil {
		upd.SetErrorDetail(*payload.ErrorDetail)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("upload_job transition failed", "job_id", jobID, "err", err)
		return nil, common.WrapError(common.ErrDatabase, "updating upload job")
	}
	if n == 0 {
		if _, err := r.Get(ctx, jobID); err != nil {
			return nil, err
		}
		return nil, jobs.ErrIllegalTransition
	}
	return r.Get(ctx, jobID)
}

func (r *uploadJobRepo) Get(ctx context.Context, jobID uuid.UUID) (*entity.UploadJob, error) {
	row, err := r.ent.UploadJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.WrapError(common.ErrNotFound, "upload job not found")
		}
		return nil, common.WrapError(common.ErrDatabase, "fetching upload job")
	}
	return uploadJobToEntity(row), nil
}

func (r *uploadJobRepo) ListRecent(ctx context.Context, ownerID string, page, limit int) ([]*entity.UploadJob, int, error) {
	q := r.ent.UploadJob.Query().Where(uploadjob.OwnerIDEQ(ownerID))
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, common.WrapError(common.ErrDatabase, "counting upload jobs")
	}
	rows, err := q.
		Order(ent.Desc(uploadjob.FieldCreatedAt)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, common.WrapError(common.ErrDatabase, "listing upload jobs")
	}
	out := make([]*entity.UploadJob, len(rows))
	for i, row := range rows {
		out[i] = uploadJobToEntity(row)
	}
	return out, total, nil
}

func (r *uploadJobRepo) ListStuck(ctx context.Context, status constants.JobStatus, updatedBefore time.Time) ([]*entity.UploadJob, error) {
	rows, err := r.ent.UploadJob.Query().
		Where(uploadjob.StatusEQ(string(status)), uploadjob.UpdatedAtLT(updatedBefore)).
		Order(ent.Asc(uploadjob.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "listing stuck upload jobs")
	}
	out := make([]*entity.UploadJob, len(rows))
	for i, row := range rows {
		out[i] = uploadJobToEntity(row)
	}
	return out, nil
}

func uploadJobToEntity(row *ent.UploadJob) *entity.UploadJob {
	return &entity.UploadJob{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		OwnerName:   row.OwnerName,
		FileName:    row.FileName,
		FileSize:    row.FileSize,
		Fingerprint: row.Fingerprint,
		FilePath:    row.FilePath,
		Status:      constants.JobStatus(row.Status),
		InvoiceID:   row.InvoiceID,
		ErrorDetail: row.ErrorDetail,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
