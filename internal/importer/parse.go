package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is a parsed spreadsheet: the resolved header mapping plus the data
// rows that follow it. Cells keeps the raw strings, positionally aligned
// with Fields.
type Sheet struct {
	Fields []string
	Rows   [][]string
}

// ParseSheet decodes an uploaded import file into rows. The format is
// chosen by extension; xlsx files are read from their first worksheet.
func ParseSheet(r io.Reader, ext string) (*Sheet, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "xlsx":
		return parseXLSX(r)
	case "csv":
		return parseCSV(r)
	default:
		return nil, fmt.Errorf("unsupported import format %q", ext)
	}
}

func parseXLSX(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return buildSheet(rows)
}

func parseCSV(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	// strip a UTF-8 BOM so the first header cell resolves
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.Comma = detectDelimiter(data)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return buildSheet(rows)
}

// detectDelimiter picks ';' over ',' when the first line favors it, since
// Spanish-locale exports commonly use semicolons.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func buildSheet(rows [][]string) (*Sheet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no rows")
	}
	fields := ResolveHeaders(rows[0])
	known := 0
	for _, f := range fields {
		if f != "" {
			known++
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("no recognized column headers")
	}

	var data [][]string
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		data = append(data, row)
	}
	return &Sheet{Fields: fields, Rows: data}, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cell returns the value of the named field in a row, or "" when the
// column is absent or the row is short.
func (s *Sheet) cell(row []string, field string) string {
	for i, f := range s.Fields {
		if f == field && i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}
