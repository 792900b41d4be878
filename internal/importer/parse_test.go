package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseSheetXLSXFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Fecha", "Cliente", "Total"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"05/03/2024", "ACME", "1234.56"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	s, err := ParseSheet(buf, ".xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{FieldDate, FieldParty, FieldTotal}, s.Fields)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, "1234.56", s.cell(s.Rows[0], FieldTotal))
}

func TestParseSheetSkipsBlankRows(t *testing.T) {
	file := csvHeader +
		"05/03/2024,Egreso,ACME,301,A-1,1,0.21,1.21,A\n" +
		",,,,,,,,\n" +
		"06/03/2024,Egreso,Other,302,A-2,1,0.21,1.21,A\n"
	s, err := ParseSheet(strings.NewReader(file), "csv")
	require.NoError(t, err)
	assert.Len(t, s.Rows, 2)
}

func TestParseSheetStripsBOM(t *testing.T) {
	file := "\uFEFFFecha,Total\n05/03/2024,1.00\n"
	s, err := ParseSheet(strings.NewReader(file), "csv")
	require.NoError(t, err)
	assert.Equal(t, FieldDate, s.Fields[0])
}

func TestParseSheetShortRowCellIsEmpty(t *testing.T) {
	file := "Fecha,Cliente,Total\n05/03/2024,ACME\n"
	s, err := ParseSheet(strings.NewReader(file), "csv")
	require.NoError(t, err)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, "", s.cell(s.Rows[0], FieldTotal))
}

func TestParseSheetUnsupportedFormat(t *testing.T) {
	_, err := ParseSheet(strings.NewReader("x"), ".pdf")
	assert.Error(t, err)
}
