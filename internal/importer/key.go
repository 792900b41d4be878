package importer

import (
	"fmt"
	"strings"
	"time"

	"invoice-tracker/internal/entity"
)

// UniqueKey identifies an invoice by fiscal id, number, date, total, type
// and class. All components are normalized so re-imports of the same sheet
// derive the same key.
func UniqueKey(taxID, number string, date *time.Time, total, docType, class string) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s_%s",
		NormalizeTaxID(taxID),
		strings.ToLower(strings.TrimSpace(number)),
		dateKey(date),
		total,
		docType,
		strings.ToUpper(strings.TrimSpace(class)),
	)
}

// FallbackKey substitutes the normalized counterpart name for the fiscal
// id, used when a row or stored invoice carries no tax id.
func FallbackKey(partyName, number string, date *time.Time, total, docType, class string) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s_%s",
		NormalizeName(partyName),
		strings.ToLower(strings.TrimSpace(number)),
		dateKey(date),
		total,
		docType,
		strings.ToUpper(strings.TrimSpace(class)),
	)
}

func dateKey(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// InvoiceKeys derives both keys for a stored invoice.
func InvoiceKeys(inv *entity.Invoice) (unique, fallback string) {
	unique = UniqueKey(inv.TaxID, inv.InvoiceNumber, inv.IssueDate, inv.TotalAmount, inv.DocType, inv.InvoiceClass)
	fallback = FallbackKey(inv.PartyName, inv.InvoiceNumber, inv.IssueDate, inv.TotalAmount, inv.DocType, inv.InvoiceClass)
	return unique, fallback
}

// Keys derives both keys for a parsed row candidate.
func (c *Candidate) Keys() (unique, fallback string) {
	unique = UniqueKey(c.TaxID, c.InvoiceNumber, c.IssueDate, c.TotalAmount, c.DocType, c.InvoiceClass)
	fallback = FallbackKey(c.PartyName, c.InvoiceNumber, c.IssueDate, c.TotalAmount, c.DocType, c.InvoiceClass)
	return unique, fallback
}
