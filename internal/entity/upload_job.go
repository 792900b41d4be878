package entity

import (
	"time"

	"github.com/google/uuid"

	"invoice-tracker/constants"
)

// UploadJob represents one tracked unit of document intake for data
// transfer between layers.
type UploadJob struct {
	ID          uuid.UUID           `json:"id"`
	OwnerID     string              `json:"owner_id"`
	OwnerName   string              `json:"owner_name,omitempty"`
	FileName    string              `json:"file_name"`
	FileSize    int64               `json:"file_size"`
	Fingerprint string              `json:"fingerprint"`
	FilePath    string              `json:"-"`
	Status      constants.JobStatus `json:"status"`
	InvoiceID   *uuid.UUID          `json:"invoice_id,omitempty"`
	ErrorDetail *string             `json:"error_detail,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
