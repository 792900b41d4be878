package importer

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"invoice-tracker/internal/entity"
)

// Row classifications produced by previews.
const (
	ClassNew       = "new"
	ClassDuplicate = "duplicate"
	ClassConflict  = "conflict"
	ClassError     = "error"
)

// DefaultComparedFields is the field set used to tell an exact duplicate
// from a conflicting re-statement of the same invoice.
var DefaultComparedFields = []string{
	"invoice_number",
	"issue_date",
	"total_amount",
	"party_name",
	"doc_type",
	"invoice_class",
}

// FieldDiff captures one compared field that differs between a stored
// invoice and an incoming row.
type FieldDiff struct {
	Field    string `json:"field"`
	Existing string `json:"existing"`
	Incoming string `json:"incoming"`
}

// ConflictRecord is a previewed row that matched a stored invoice (or an
// earlier row of the same batch, in which case Existing is nil).
type ConflictRecord struct {
	RowIndex       int             `json:"rowIndex"`
	Classification string          `json:"classification"`
	UniqueKey      string          `json:"uniqueKey"`
	Existing       *entity.Invoice `json:"existing,omitempty"`
	Incoming       *Candidate      `json:"incoming"`
	Differences    []FieldDiff     `json:"differences,omitempty"`
}

// Summary tallies a preview. Total always equals the sum of the other
// four counters.
type Summary struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Duplicate int `json:"duplicate"`
	Conflict  int `json:"conflict"`
	Error     int `json:"error"`
}

// PreviewResult reports what a commit of the same file would do.
type PreviewResult struct {
	Summary   Summary          `json:"summary"`
	NewRows   []*Candidate     `json:"newRows"`
	Conflicts []ConflictRecord `json:"conflicts"`
	Errors    []RowError       `json:"errors"`
}

// InvoiceLister exposes the stored invoices a preview classifies against.
type InvoiceLister interface {
	ListInvoices(ctx context.Context) ([]*entity.Invoice, error)
}

// PreviewEngine classifies import rows without mutating anything.
type PreviewEngine struct {
	store  InvoiceLister
	fields []string
	log    *slog.Logger
}

func NewPreviewEngine(store InvoiceLister, logger *slog.Logger) *PreviewEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreviewEngine{store: store, fields: DefaultComparedFields, log: logger}
}

// Preview parses the file and classifies every data row. Rows are judged
// against stored invoices indexed by both keys; a row whose key already
// appeared earlier in the same batch is reported as a duplicate with no
// stored counterpart.
func (e *PreviewEngine) Preview(ctx context.Context, r io.Reader, ext string) (*PreviewResult, error) {
	sheet, err := ParseSheet(r, ext)
	if err != nil {
		return nil, err
	}

	existing, err := e.store.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	index := buildIndex(existing)

	res := &PreviewResult{}
	seen := make(map[string]bool)
	for i, row := range sheet.Rows {
		res.Summary.Total++
		cand, err := buildCandidate(sheet, i+1, row)
		if err != nil {
			res.Summary.Error++
			res.Errors = append(res.Errors, RowError{RowIndex: i + 1, Message: err.Error()})
			continue
		}

		unique, fallback := cand.Keys()
		match := index.lookup(unique, fallback, cand.TaxID)
		switch {
		case match != nil:
			diffs := compareFields(match, cand, e.fields)
			rec := ConflictRecord{RowIndex: cand.RowIndex, UniqueKey: unique, Existing: match, Incoming: cand}
			if len(diffs) == 0 {
				rec.Classification = ClassDuplicate
				res.Summary.Duplicate++
			} else {
				rec.Classification = ClassConflict
				rec.Differences = diffs
				res.Summary.Conflict++
			}
			res.Conflicts = append(res.Conflicts, rec)
		case seen[unique]:
			res.Summary.Duplicate++
			res.Conflicts = append(res.Conflicts, ConflictRecord{
				RowIndex:       cand.RowIndex,
				Classification: ClassDuplicate,
				UniqueKey:      unique,
				Incoming:       cand,
			})
		default:
			res.Summary.New++
			res.NewRows = append(res.NewRows, cand)
		}
		seen[unique] = true
	}

	e.log.Info("import.preview",
		"total", res.Summary.Total,
		"new", res.Summary.New,
		"duplicate", res.Summary.Duplicate,
		"conflict", res.Summary.Conflict,
		"error", res.Summary.Error)
	return res, nil
}

// invoiceIndex looks stored invoices up by unique key, with the fallback
// key consulted only for rows that carry no fiscal id.
type invoiceIndex struct {
	byUnique   map[string]*entity.Invoice
	byFallback map[string]*entity.Invoice
}

func buildIndex(invoices []*entity.Invoice) *invoiceIndex {
	idx := &invoiceIndex{
		byUnique:   make(map[string]*entity.Invoice, len(invoices)),
		byFallback: make(map[string]*entity.Invoice, len(invoices)),
	}
	for _, inv := range invoices {
		unique, fallback := InvoiceKeys(inv)
		idx.byUnique[unique] = inv
		idx.byFallback[fallback] = inv
	}
	return idx
}

// add registers a freshly written invoice so later rows of the same batch
// classify against it.
func (idx *invoiceIndex) add(inv *entity.Invoice) {
	unique, fallback := InvoiceKeys(inv)
	idx.byUnique[unique] = inv
	idx.byFallback[fallback] = inv
}

func (idx *invoiceIndex) lookup(unique, fallback, taxID string) *entity.Invoice {
	if inv, ok := idx.byUnique[unique]; ok {
		return inv
	}
	if taxID == "" {
		if inv, ok := idx.byFallback[fallback]; ok {
			return inv
		}
	}
	return nil
}

func normKeyPart(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func compareFields(existing *entity.Invoice, cand *Candidate, fields []string) []FieldDiff {
	var diffs []FieldDiff
	add := func(field, oldV, newV string) {
		if oldV != newV {
			diffs = append(diffs, FieldDiff{Field: field, Existing: oldV, Incoming: newV})
		}
	}
	for _, f := range fields {
		switch f {
		case "invoice_number":
			add(f, normKeyPart(existing.InvoiceNumber), normKeyPart(cand.InvoiceNumber))
		case "issue_date":
			add(f, dateKey(existing.IssueDate), dateKey(cand.IssueDate))
		case "total_amount":
			add(f, existing.TotalAmount, cand.TotalAmount)
		case "party_name":
			add(f, NormalizeName(existing.PartyName), NormalizeName(cand.PartyName))
		case "doc_type":
			add(f, existing.DocType, cand.DocType)
		case "invoice_class":
			add(f, existing.InvoiceClass, cand.InvoiceClass)
		}
	}
	return diffs
}
