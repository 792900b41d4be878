package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHeadersSpanish(t *testing.T) {
	got := ResolveHeaders([]string{"Fecha", "Tipo", "Cliente/Proveedor", "CUIT", "Número", "Subtotal", "IVA", "Total", "Clase", "Estado"})
	assert.Equal(t, []string{
		FieldDate, FieldDocType, FieldParty, FieldTaxID, FieldNumber,
		FieldSubtotal, FieldTax, FieldTotal, FieldClass, FieldStatus,
	}, got)
}

func TestResolveHeadersEnglishAndWhitespace(t *testing.T) {
	got := ResolveHeaders([]string{" Date ", "Invoice  Number", "TOTAL", "Provider"})
	assert.Equal(t, []string{FieldDate, FieldNumber, FieldTotal, FieldParty}, got)
}

func TestResolveHeadersIgnoresUnknown(t *testing.T) {
	got := ResolveHeaders([]string{"Fecha", "Comentario interno", "Total"})
	assert.Equal(t, []string{FieldDate, "", FieldTotal}, got)
}
