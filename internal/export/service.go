package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"invoice-tracker/internal/entity"
)

// InvoiceLister provides the rows an export renders.
type InvoiceLister interface {
	ListInvoicesByOwner(ctx context.Context, ownerID string, from, to *time.Time) ([]*entity.Invoice, error)
}

// Service produces XLSX bytes for invoice exports.
type Service struct {
	invoices InvoiceLister
	logger   *slog.Logger
}

func NewService(invoices InvoiceLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given owner
// and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices for the owner.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, ownerID string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invs, err := s.invoices.ListInvoicesByOwner(ctx, ownerID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Issue Date",
		"Type",
		"Class",
		"Number",
		"Counterpart",
		"Tax ID",
		"Subtotal",
		"Tax",
		"Other Taxes",
		"Total",
		"Payment Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if inv.IssueDate != nil {
			write(1, inv.IssueDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, inv.DocType)
		write(3, inv.InvoiceClass)
		write(4, inv.InvoiceNumber)
		write(5, inv.PartyName)
		write(6, inv.TaxID)
		write(7, inv.Subtotal)
		write(8, inv.TaxAmount)
		write(9, inv.OtherTaxes)
		write(10, inv.TotalAmount)
		write(11, inv.PaymentStatus)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "C", 10) // type, class
	_ = f.SetColWidth(sheet, "D", "D", 18) // number
	_ = f.SetColWidth(sheet, "E", "E", 32) // counterpart
	_ = f.SetColWidth(sheet, "F", "F", 14) // tax id
	_ = f.SetColWidth(sheet, "G", "J", 14) // amounts
	_ = f.SetColWidth(sheet, "K", "K", 14) // status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"owner_id", ownerID,
		"rows", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
