package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	cases := map[string]string{
		"1234.56":      "1234.56",
		"1,234.56":     "1234.56",
		"1.234,56":     "1234.56",
		"$ 1.234,56":   "1234.56",
		"12.345.678,9": "12345678.90",
		"1,234":        "1234.00",
		"0":            "0.00",
		"":             "0.00",
		"-15,50":       "-15.50",
	}
	for in, want := range cases {
		got, err := NormalizeAmount(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestNormalizeAmountDotDecimal(t *testing.T) {
	// a lone dot is always a decimal mark for ParseFloat
	got, err := NormalizeAmount("1.234")
	require.NoError(t, err)
	assert.Equal(t, "1.23", got)
}

func TestNormalizeAmountRejectsGarbage(t *testing.T) {
	_, err := NormalizeAmount("n/a")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-05", "05/03/2024", "5/3/2024", "05-03-2024", "2024/03/05"} {
		got, err := ParseDate(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, want.Equal(got), "input %q parsed as %s", in, got)
	}
}

func TestParseDateExcelSerial(t *testing.T) {
	// 45356 is 2024-03-05 in the 1900 date system
	got, err := ParseDate("45356")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", got.Format("2006-01-02"))
}

func TestParseDateRejectsEmptyAndGarbage(t *testing.T) {
	for _, in := range []string{"", "someday", "13/13/13/13"} {
		_, err := ParseDate(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestNormalizeTaxID(t *testing.T) {
	assert.Equal(t, "30123456789", NormalizeTaxID("30-12345678-9"))
	assert.Equal(t, "30123456789", NormalizeTaxID(" 30 12345678 9 "))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, NormalizeName("ACME S.A."), NormalizeName("acme sa"))
	assert.Equal(t, "acmesa", NormalizeName("ACME S.A."))
}

func TestNormalizeDocType(t *testing.T) {
	assert.Equal(t, "income", NormalizeDocType("Ingreso"))
	assert.Equal(t, "income", NormalizeDocType("income"))
	assert.Equal(t, "expense", NormalizeDocType("Egreso"))
	assert.Equal(t, "expense", NormalizeDocType(""))
}
