package extract

import (
	"context"
	"fmt"
)

// Candidate is the structured invoice the extraction service produced from
// one document. Money fields are decimal strings.
type Candidate struct {
	DocType       string  `json:"doc_type"`
	InvoiceClass  string  `json:"invoice_class,omitempty"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	IssueDate     string  `json:"issue_date,omitempty"` // YYYY-MM-DD
	PartyName     string  `json:"party_name"`
	TaxID         string  `json:"tax_id,omitempty"`
	Subtotal      string  `json:"subtotal,omitempty"`
	TaxAmount     string  `json:"tax_amount,omitempty"`
	TotalAmount   string  `json:"total_amount"`
	Description   string  `json:"description,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
}

// ExtractionError is the extractor's typed failure: the service responded
// but could not produce a candidate.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

// Extractor is the external collaborator contract: given a stored file it
// returns a candidate, a typed *ExtractionError, or an infrastructure error.
// Callers bound it with a context deadline; non-response within that bound
// is treated as failure, never as "still processing".
type Extractor interface {
	Extract(ctx context.Context, path string) (*Candidate, error)
}
