package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-tracker/internal/entity"
)

const csvHeader = "Fecha,Tipo,Cliente/Proveedor,CUIT,Numero,Subtotal,IVA,Total,Clase\n"

type staticLister struct {
	invoices []*entity.Invoice
}

func (s *staticLister) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	return s.invoices, nil
}

func storedInvoice(number, taxID, total string) *entity.Invoice {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	return &entity.Invoice{
		ID:            uuid.New(),
		DocType:       "expense",
		InvoiceClass:  "A",
		InvoiceNumber: number,
		IssueDate:     &d,
		PartyName:     "ACME S.A.",
		TaxID:         taxID,
		Subtotal:      "1020.30",
		TaxAmount:     "214.26",
		OtherTaxes:    "0.00",
		TotalAmount:   total,
	}
}

func TestPreviewClassification(t *testing.T) {
	store := &staticLister{invoices: []*entity.Invoice{
		storedInvoice("A-0001", "30123456789", "1234.56"),
	}}
	e := NewPreviewEngine(store, nil)

	file := csvHeader +
		// exact restatement of the stored invoice
		"05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n" +
		// same key but the counterpart name differs
		"05/03/2024,Egreso,ACME Group,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n" +
		// unseen invoice
		"06/03/2024,Egreso,Other Corp,30-99999999-7,B-0002,100.00,21.00,121.00,B\n" +
		// missing date
		",Egreso,Other Corp,30-99999999-7,B-0003,100.00,21.00,121.00,B\n"

	res, err := e.Preview(context.Background(), strings.NewReader(file), "csv")
	require.NoError(t, err)

	assert.Equal(t, 4, res.Summary.Total)
	assert.Equal(t, 1, res.Summary.New)
	assert.Equal(t, 1, res.Summary.Duplicate)
	assert.Equal(t, 1, res.Summary.Conflict)
	assert.Equal(t, 1, res.Summary.Error)
	assert.Equal(t, res.Summary.Total,
		res.Summary.New+res.Summary.Duplicate+res.Summary.Conflict+res.Summary.Error)

	require.Len(t, res.Conflicts, 2)
	assert.Equal(t, ClassDuplicate, res.Conflicts[0].Classification)
	assert.Empty(t, res.Conflicts[0].Differences)
	assert.Equal(t, ClassConflict, res.Conflicts[1].Classification)
	require.NotEmpty(t, res.Conflicts[1].Differences)
	assert.Equal(t, "party_name", res.Conflicts[1].Differences[0].Field)
	require.NotNil(t, res.Conflicts[1].Existing)
}

func TestPreviewInBatchRepeat(t *testing.T) {
	e := NewPreviewEngine(&staticLister{}, nil)
	row := "05/03/2024,Egreso,ACME S.A.,30-12345678-9,A-0001,1020.30,214.26,1234.56,A\n"
	res, err := e.Preview(context.Background(), strings.NewReader(csvHeader+row+row), "csv")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.New)
	assert.Equal(t, 1, res.Summary.Duplicate)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, ClassDuplicate, res.Conflicts[0].Classification)
	assert.Nil(t, res.Conflicts[0].Existing)
}

func TestPreviewFallbackKeyWithoutTaxID(t *testing.T) {
	inv := storedInvoice("A-0001", "", "1234.56")
	e := NewPreviewEngine(&staticLister{invoices: []*entity.Invoice{inv}}, nil)

	// no CUIT column value; matches through the name-based key
	row := "05/03/2024,Egreso,acme sa,,A-0001,1020.30,214.26,1234.56,A\n"
	res, err := e.Preview(context.Background(), strings.NewReader(csvHeader+row), "csv")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary.Conflict+res.Summary.Duplicate)
	assert.Zero(t, res.Summary.New)
}

func TestPreviewRejectsUnknownHeaderRow(t *testing.T) {
	e := NewPreviewEngine(&staticLister{}, nil)
	_, err := e.Preview(context.Background(), strings.NewReader("foo,bar\n1,2\n"), "csv")
	assert.Error(t, err)
}

func TestPreviewSemicolonCSV(t *testing.T) {
	e := NewPreviewEngine(&staticLister{}, nil)
	file := "Fecha;Tipo;Cliente/Proveedor;CUIT;Numero;Subtotal;IVA;Total;Clase\n" +
		"05/03/2024;Egreso;ACME S.A.;30-12345678-9;A-0001;1.020,30;214,26;1.234,56;A\n"
	res, err := e.Preview(context.Background(), strings.NewReader(file), "csv")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary.New)
	require.Len(t, res.NewRows, 1)
	assert.Equal(t, "1234.56", res.NewRows[0].TotalAmount)
}
