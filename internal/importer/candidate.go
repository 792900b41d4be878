package importer

import (
	"fmt"
	"strings"
	"time"

	"invoice-tracker/constants"
)

// Candidate is one normalized sheet row, ready for classification. Money
// fields are canonical 2dp decimal strings.
type Candidate struct {
	RowIndex      int        `json:"rowIndex"`
	DocType       string     `json:"docType"`
	InvoiceClass  string     `json:"invoiceClass"`
	InvoiceNumber string     `json:"invoiceNumber"`
	IssueDate     *time.Time `json:"issueDate,omitempty"`
	PartyName     string     `json:"partyName"`
	TaxID         string     `json:"taxId,omitempty"`
	Subtotal      string     `json:"subtotal"`
	TaxAmount     string     `json:"taxAmount"`
	OtherTaxes    string     `json:"otherTaxes"`
	TotalAmount   string     `json:"totalAmount"`
	PaymentStatus string     `json:"paymentStatus"`
	OwnerName     string     `json:"ownerName,omitempty"`
}

// RowError reports a row that could not be normalized, carrying the
// 1-based data row index shown to the user.
type RowError struct {
	RowIndex int    `json:"rowIndex"`
	Message  string `json:"message"`
}

// buildCandidate normalizes one data row. Rows missing a date, total or
// counterpart are rejected here and surface as error entries in previews.
func buildCandidate(s *Sheet, idx int, row []string) (*Candidate, error) {
	party := s.cell(row, FieldParty)
	if party == "" {
		return nil, fmt.Errorf("missing counterpart")
	}

	rawDate := s.cell(row, FieldDate)
	if rawDate == "" {
		return nil, fmt.Errorf("missing date")
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return nil, err
	}

	rawTotal := s.cell(row, FieldTotal)
	if rawTotal == "" {
		return nil, fmt.Errorf("missing total amount")
	}
	total, err := NormalizeAmount(rawTotal)
	if err != nil {
		return nil, fmt.Errorf("total: %w", err)
	}

	subtotal, err := NormalizeAmount(s.cell(row, FieldSubtotal))
	if err != nil {
		return nil, fmt.Errorf("subtotal: %w", err)
	}
	tax, err := NormalizeAmount(s.cell(row, FieldTax))
	if err != nil {
		return nil, fmt.Errorf("tax: %w", err)
	}
	other, err := NormalizeAmount(s.cell(row, FieldOther))
	if err != nil {
		return nil, fmt.Errorf("other taxes: %w", err)
	}

	c := &Candidate{
		RowIndex:      idx,
		DocType:       NormalizeDocType(s.cell(row, FieldDocType)),
		InvoiceClass:  normalizeClass(s.cell(row, FieldClass)),
		InvoiceNumber: strings.TrimSpace(s.cell(row, FieldNumber)),
		IssueDate:     &date,
		PartyName:     party,
		TaxID:         NormalizeTaxID(s.cell(row, FieldTaxID)),
		Subtotal:      subtotal,
		TaxAmount:     tax,
		OtherTaxes:    other,
		TotalAmount:   total,
		PaymentStatus: normalizePayment(s.cell(row, FieldStatus)),
		OwnerName:     strings.TrimSpace(s.cell(row, FieldIssuer)),
	}
	return c, nil
}

func normalizeClass(s string) string {
	c := strings.ToUpper(strings.TrimSpace(s))
	for _, valid := range constants.InvoiceClasses {
		if c == valid {
			return c
		}
	}
	return "C"
}

func normalizePayment(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paid", "pagado", "pagada", "cobrado", "cobrada":
		return constants.PaymentPaid
	case "overdue", "vencido", "vencida":
		return constants.PaymentOverdue
	default:
		return constants.PaymentPending
	}
}
