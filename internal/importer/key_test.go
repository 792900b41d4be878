package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"invoice-tracker/internal/entity"
)

func TestUniqueKeyNormalizesComponents(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	a := UniqueKey("30-12345678-9", " A-0001 ", &d, "1234.56", "expense", "a")
	b := UniqueKey("30123456789", "a-0001", &d, "1234.56", "expense", "A")
	assert.Equal(t, a, b)
	assert.Equal(t, "30123456789_a-0001_2024-03-05_1234.56_expense_A", a)
}

func TestUniqueKeyNilDate(t *testing.T) {
	k := UniqueKey("30123456789", "1", nil, "1.00", "income", "B")
	assert.Equal(t, "30123456789_1__1.00_income_B", k)
}

func TestFallbackKeyUsesNormalizedName(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	a := FallbackKey("ACME S.A.", "1", &d, "1.00", "expense", "A")
	b := FallbackKey("acme sa", "1", &d, "1.00", "expense", "A")
	assert.Equal(t, a, b)
}

func TestCandidateAndInvoiceKeysAgree(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	cand := &Candidate{
		DocType:       "expense",
		InvoiceClass:  "A",
		InvoiceNumber: "A-0001",
		IssueDate:     &d,
		PartyName:     "ACME S.A.",
		TaxID:         "30-12345678-9",
		TotalAmount:   "1234.56",
	}
	inv := &entity.Invoice{
		DocType:       "expense",
		InvoiceClass:  "A",
		InvoiceNumber: "a-0001",
		IssueDate:     &d,
		PartyName:     "Acme SA",
		TaxID:         "30123456789",
		TotalAmount:   "1234.56",
	}
	cu, cf := cand.Keys()
	iu, ifk := InvoiceKeys(inv)
	assert.Equal(t, iu, cu)
	assert.Equal(t, ifk, cf)
}
