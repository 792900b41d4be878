package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"invoice-tracker/constants"
)

// ParseAmount parses a spreadsheet money cell into a float. It accepts
// plain decimals ("1234.56"), thousands-separated English ("1,234.56") and
// Argentine notation ("1.234,56"), with an optional currency sign.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		// the rightmost separator is the decimal mark
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		// a lone comma with exactly two trailing digits is a decimal mark
		if i := strings.LastIndex(s, ","); len(s)-i-1 == 2 {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// FormatAmount renders a float as the canonical 2dp decimal string.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

// NormalizeAmount parses then re-renders, producing the canonical form used
// in unique keys and stored money fields.
func NormalizeAmount(s string) (string, error) {
	v, err := ParseAmount(s)
	if err != nil {
		return "", err
	}
	return FormatAmount(v), nil
}

// excelEpoch is day 0 of Excel's 1900 date system, adjusted for its
// fictitious 1900-02-29.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate parses a spreadsheet date cell permissively: ISO, DD/MM/YYYY,
// DD-MM-YYYY, and Excel serial numbers.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range []string{"2006-01-02", "02/01/2006", "2/1/2006", "02-01-2006", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	// Excel serial date
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 200000 {
		return excelEpoch.Add(time.Duration(serial * 24 * float64(time.Hour))).Truncate(24 * time.Hour), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// NormalizeTaxID strips separators and whitespace from a fiscal id.
func NormalizeTaxID(s string) string {
	return strings.NewReplacer("-", "", " ", "", ".", "").Replace(strings.TrimSpace(s))
}

// NormalizeName lowercases a counterpart name and drops everything but
// letters and digits, so "ACME S.A." and "acme sa" collide.
func NormalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 127 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeDocType folds the type column onto income/expense; Spanish
// sheets use "Ingreso"/"Egreso".
func NormalizeDocType(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case t == constants.DocTypeIncome || strings.Contains(t, "ingreso"):
		return constants.DocTypeIncome
	default:
		return constants.DocTypeExpense
	}
}
