// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/party"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType string `json:"doc_type,omitempty"`
	// InvoiceClass holds the value of the "invoice_class" field.
	InvoiceClass string `json:"invoice_class,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber string `json:"invoice_number,omitempty"`
	// IssueDate holds the value of the "issue_date" field.
	IssueDate *time.Time `json:"issue_date,omitempty"`
	// PartyID holds the value of the "party_id" field.
	PartyID *uuid.UUID `json:"party_id,omitempty"`
	// PartyName holds the value of the "party_name" field.
	PartyName string `json:"party_name,omitempty"`
	// TaxID holds the value of the "tax_id" field.
	TaxID string `json:"tax_id,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal string `json:"subtotal,omitempty"`
	// TaxAmount holds the value of the "tax_amount" field.
	TaxAmount string `json:"tax_amount,omitempty"`
	// OtherTaxes holds the value of the "other_taxes" field.
	OtherTaxes string `json:"other_taxes,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount string `json:"total_amount,omitempty"`
	// PaymentStatus holds the value of the "payment_status" field.
	PaymentStatus string `json:"payment_status,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// OwnerName holds the value of the "owner_name" field.
	OwnerName string `json:"owner_name,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Party holds the value of the party edge.
	Party *Party `json:"party,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*UploadJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PartyOrErr returns the Party value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) PartyOrErr() (*Party, error) {
	if e.Party != nil {
		return e.Party, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: party.Label}
	}
	return nil, &NotLoadedError{edge: "party"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) JobsOrErr() ([]*UploadJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldPartyID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoice.FieldExtractedJSON:
			values[i] = new([]byte)
		case invoice.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case invoice.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case invoice.FieldDocType, invoice.FieldInvoiceClass, invoice.FieldInvoiceNumber, invoice.FieldPartyName, invoice.FieldTaxID, invoice.FieldSubtotal, invoice.FieldTaxAmount, invoice.FieldOtherTaxes, invoice.FieldTotalAmount, invoice.FieldPaymentStatus, invoice.FieldOwnerID, invoice.FieldOwnerName, invoice.FieldFileName, invoice.FieldFilePath, invoice.FieldFingerprint, invoice.FieldSource:
			values[i] = new(sql.NullString)
		case invoice.FieldIssueDate, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (i *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for j := range columns {
		switch columns[j] {
		case invoice.FieldID:
			if value, ok := values[j].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[j])
			} else if value != nil {
				i.ID = *value
			}
		case invoice.FieldDocType:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[j])
			} else if value.Valid {
				i.DocType = value.String
			}
		case invoice.FieldInvoiceClass:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_class", values[j])
			} else if value.Valid {
				i.InvoiceClass = value.String
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[j])
			} else if value.Valid {
				i.InvoiceNumber = value.String
			}
		case invoice.FieldIssueDate:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issue_date", values[j])
			} else if value.Valid {
				i.IssueDate = new(time.Time)
				*i.IssueDate = value.Time
			}
		case invoice.FieldPartyID:
			if value, ok := values[j].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field party_id", values[j])
			} else if value.Valid {
				i.PartyID = new(uuid.UUID)
				*i.PartyID = *value.S.(*uuid.UUID)
			}
		case invoice.FieldPartyName:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field party_name", values[j])
			} else if value.Valid {
				i.PartyName = value.String
			}
		case invoice.FieldTaxID:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_id", values[j])
			} else if value.Valid {
				i.TaxID = value.String
			}
		case invoice.FieldSubtotal:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[j])
			} else if value.Valid {
				i.Subtotal = value.String
			}
		case invoice.FieldTaxAmount:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_amount", values[j])
			} else if value.Valid {
				i.TaxAmount = value.String
			}
		case invoice.FieldOtherTaxes:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field other_taxes", values[j])
			} else if value.Valid {
				i.OtherTaxes = value.String
			}
		case invoice.FieldTotalAmount:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[j])
			} else if value.Valid {
				i.TotalAmount = value.String
			}
		case invoice.FieldPaymentStatus:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_status", values[j])
			} else if value.Valid {
				i.PaymentStatus = value.String
			}
		case invoice.FieldOwnerID:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[j])
			} else if value.Valid {
				i.OwnerID = value.String
			}
		case invoice.FieldOwnerName:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_name", values[j])
			} else if value.Valid {
				i.OwnerName = value.String
			}
		case invoice.FieldFileName:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[j])
			} else if value.Valid {
				i.FileName = value.String
			}
		case invoice.FieldFilePath:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[j])
			} else if value.Valid {
				i.FilePath = value.String
			}
		case invoice.FieldFileSize:
			if value, ok := values[j].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[j])
			} else if value.Valid {
				i.FileSize = value.Int64
			}
		case invoice.FieldFingerprint:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[j])
			} else if value.Valid {
				i.Fingerprint = value.String
			}
		case invoice.FieldExtractedJSON:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case invoice.FieldSource:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[j])
			} else if value.Valid {
				i.Source = value.String
			}
		case invoice.FieldNeedsReview:
			if value, ok := values[j].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[j])
			} else if value.Valid {
				i.NeedsReview = value.Bool
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[j])
			} else if value.Valid {
				i.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[j])
			} else if value.Valid {
				i.UpdatedAt = value.Time
			}
		default:
			i.selectValues.Set(columns[j], values[j])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (i *Invoice) Value(name string) (ent.Value, error) {
	return i.selectValues.Get(name)
}

// QueryParty queries the "party" edge of the Invoice entity.
func (i *Invoice) QueryParty() *PartyQuery {
	return NewInvoiceClient(i.config).QueryParty(i)
}

// QueryJobs queries the "jobs" edge of the Invoice entity.
func (i *Invoice) QueryJobs() *UploadJobQuery {
	return NewInvoiceClient(i.config).QueryJobs(i)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (i *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(i.config).UpdateOne(i)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (i *Invoice) Unwrap() *Invoice {
	_tx, ok := i.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	i.config.driver = _tx.drv
	return i
}

// String implements the fmt.Stringer.
func (i *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", i.ID))
	builder.WriteString("doc_type=")
	builder.WriteString(i.DocType)
	builder.WriteString(", ")
	builder.WriteString("invoice_class=")
	builder.WriteString(i.InvoiceClass)
	builder.WriteString(", ")
	builder.WriteString("invoice_number=")
	builder.WriteString(i.InvoiceNumber)
	builder.WriteString(", ")
	if v := i.IssueDate; v != nil {
		builder.WriteString("issue_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := i.PartyID; v != nil {
		builder.WriteString("party_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("party_name=")
	builder.WriteString(i.PartyName)
	builder.WriteString(", ")
	builder.WriteString("tax_id=")
	builder.WriteString(i.TaxID)
	builder.WriteString(", ")
	builder.WriteString("subtotal=")
	builder.WriteString(i.Subtotal)
	builder.WriteString(", ")
	builder.WriteString("tax_amount=")
	builder.WriteString(i.TaxAmount)
	builder.WriteString(", ")
	builder.WriteString("other_taxes=")
	builder.WriteString(i.OtherTaxes)
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(i.TotalAmount)
	builder.WriteString(", ")
	builder.WriteString("payment_status=")
	builder.WriteString(i.PaymentStatus)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(i.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("owner_name=")
	builder.WriteString(i.OwnerName)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(i.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(i.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", i.FileSize))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(i.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", i.ExtractedJSON))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(i.Source)
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", i.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(i.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(i.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
