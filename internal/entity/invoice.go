package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Invoice represents a persisted invoice for data transfer between layers.
// Money fields carry decimal strings with two decimal places.
type Invoice struct {
	ID            uuid.UUID       `json:"id"`
	DocType       string          `json:"doc_type"`
	InvoiceClass  string          `json:"invoice_class"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	IssueDate     *time.Time      `json:"issue_date,omitempty"`
	PartyID       *uuid.UUID      `json:"party_id,omitempty"`
	PartyName     string          `json:"party_name"`
	TaxID         string          `json:"tax_id,omitempty"`
	Subtotal      string          `json:"subtotal"`
	TaxAmount     string          `json:"tax_amount"`
	OtherTaxes    string          `json:"other_taxes"`
	TotalAmount   string          `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	OwnerID       string          `json:"owner_id"`
	OwnerName     string          `json:"owner_name,omitempty"`
	FileName      string          `json:"file_name,omitempty"`
	FilePath      string          `json:"-"`
	FileSize      int64           `json:"file_size,omitempty"`
	Fingerprint   string          `json:"fingerprint,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	Source        string          `json:"source"`
	NeedsReview   bool            `json:"needs_review"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvoiceInput carries the writable fields for inserting or overwriting
// an invoice. IDs and timestamps are owned by the store.
type InvoiceInput struct {
	DocType       string
	InvoiceClass  string
	InvoiceNumber string
	IssueDate     *time.Time
	PartyID       *uuid.UUID
	PartyName     string
	TaxID         string
	Subtotal      string
	TaxAmount     string
	OtherTaxes    string
	TotalAmount   string
	PaymentStatus string
	OwnerID       string
	OwnerName     string
	FileName      string
	FilePath      string
	FileSize      int64
	Fingerprint   string
	ExtractedJSON json.RawMessage
	Source        string
	NeedsReview   bool
}
