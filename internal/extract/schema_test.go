package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCandidateAccepts(t *testing.T) {
	cases := []string{
		`{"doc_type":"expense","party_name":"ACME","total_amount":"1234.56"}`,
		`{"doc_type":"income","party_name":"ACME","total_amount":"-10.5","invoice_class":"B","issue_date":"2024-03-05","confidence":0.92}`,
		`{"doc_type":"expense","party_name":"ACME","total_amount":"0","extra_field":"kept"}`,
	}
	for _, raw := range cases {
		assert.NoError(t, ValidateCandidate([]byte(raw)), raw)
	}
}

func TestValidateCandidateRejects(t *testing.T) {
	cases := []string{
		`not json`,
		`{"party_name":"ACME","total_amount":"1.00"}`,                       // missing doc_type
		`{"doc_type":"refund","party_name":"ACME","total_amount":"1.00"}`,   // bad enum
		`{"doc_type":"expense","party_name":"","total_amount":"1.00"}`,      // empty party
		`{"doc_type":"expense","party_name":"ACME","total_amount":"1.234"}`, // 3dp amount
		`{"doc_type":"expense","party_name":"ACME","total_amount":"1,00"}`,  // comma decimal
		`{"doc_type":"expense","party_name":"ACME"}`,                        // missing total
		`{"doc_type":"expense","party_name":"A","total_amount":"1","issue_date":"05/03/2024"}`,
		`{"doc_type":"expense","party_name":"A","total_amount":"1","confidence":1.5}`,
	}
	for _, raw := range cases {
		err := ValidateCandidate([]byte(raw))
		assert.ErrorIs(t, err, ErrSchemaViolation, raw)
	}
}
