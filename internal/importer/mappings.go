package importer

import "strings"

// Canonical column names for a bulk-import row.
const (
	FieldDate     = "date"
	FieldDocType  = "doc_type"
	FieldIssuer   = "issuer"
	FieldParty    = "party"
	FieldTaxID    = "tax_id"
	FieldNumber   = "invoice_number"
	FieldSubtotal = "subtotal"
	FieldTax      = "tax_amount"
	FieldTotal    = "total_amount"
	FieldClass    = "invoice_class"
	FieldOther    = "other_taxes"
	FieldStatus   = "payment_status"
)

// headerAliases maps normalized spreadsheet headers to canonical fields.
// Spreadsheets arrive with Spanish and English headings; unknown headers
// are ignored, never guessed.
var headerAliases = map[string]string{
	// date
	"fecha": FieldDate,
	"date":  FieldDate,

	// document type (income/expense)
	"tipo": FieldDocType,
	"type": FieldDocType,

	// issuing partner/owner
	"emisor": FieldIssuer,
	"socio":  FieldIssuer,
	"owner":  FieldIssuer,

	// counterpart
	"cliente":           FieldParty,
	"proveedor":         FieldParty,
	"cliente/proveedor": FieldParty,
	"client":            FieldParty,
	"provider":          FieldParty,

	// fiscal id
	"cuit":   FieldTaxID,
	"tax id": FieldTaxID,
	"taxid":  FieldTaxID,

	// invoice number
	"número":         FieldNumber,
	"numero":         FieldNumber,
	"nro":            FieldNumber,
	"invoice number": FieldNumber,

	// amounts
	"subtotal":        FieldSubtotal,
	"iva":             FieldTax,
	"vat":             FieldTax,
	"tax":             FieldTax,
	"total":           FieldTotal,
	"otros":           FieldOther,
	"otros impuestos": FieldOther,
	"other taxes":     FieldOther,
	"iibb":            FieldOther,
	"ingresos brutos": FieldOther,

	// class
	"clase":        FieldClass,
	"tipo factura": FieldClass,
	"class":        FieldClass,

	// payment status
	"estado":         FieldStatus,
	"estado pago":    FieldStatus,
	"payment status": FieldStatus,
}

// normalizeHeader lowercases, trims and collapses interior whitespace so
// "  Invoice  Number " matches "invoice number".
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), " ")
}

// ResolveHeaders maps a header row to canonical field names. The returned
// slice is positional: out[i] is the canonical name for column i, or ""
// when the header is unknown and the column should be ignored.
func ResolveHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = headerAliases[normalizeHeader(h)]
	}
	return out
}
