// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"invoice-tracker/gen/ent/invoice"
	"invoice-tracker/gen/ent/uploadjob"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// UploadJob is the model entity for the UploadJob schema.
type UploadJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// OwnerName holds the value of the "owner_name" field.
	OwnerName string `json:"owner_name,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// InvoiceID holds the value of the "invoice_id" field.
	InvoiceID *uuid.UUID `json:"invoice_id,omitempty"`
	// ErrorDetail holds the value of the "error_detail" field.
	ErrorDetail *string `json:"error_detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadJobQuery when eager-loading is set.
	Edges        UploadJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadJobEdges holds the relations/edges for other nodes in the graph.
type UploadJobEdges struct {
	// Invoice holds the value of the invoice edge.
	Invoice *Invoice `json:"invoice,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InvoiceOrErr returns the Invoice value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UploadJobEdges) InvoiceOrErr() (*Invoice, error) {
	if e.Invoice != nil {
		return e.Invoice, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: invoice.Label}
	}
	return nil, &NotLoadedError{edge: "invoice"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadjob.FieldInvoiceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case uploadjob.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case uploadjob.FieldOwnerID, uploadjob.FieldOwnerName, uploadjob.FieldFileName, uploadjob.FieldFingerprint, uploadjob.FieldFilePath, uploadjob.FieldStatus, uploadjob.FieldErrorDetail:
			values[i] = new(sql.NullString)
		case uploadjob.FieldCreatedAt, uploadjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case uploadjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadJob fields.
func (uj *UploadJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				uj.ID = *value
			}
		case uploadjob.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				uj.OwnerID = value.String
			}
		case uploadjob.FieldOwnerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_name", values[i])
			} else if value.Valid {
				uj.OwnerName = value.String
			}
		case uploadjob.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				uj.FileName = value.String
			}
		case uploadjob.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				uj.FileSize = value.Int64
			}
		case uploadjob.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				uj.Fingerprint = value.String
			}
		case uploadjob.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				uj.FilePath = value.String
			}
		case uploadjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				uj.Status = value.String
			}
		case uploadjob.FieldInvoiceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_id", values[i])
			} else if value.Valid {
				uj.InvoiceID = new(uuid.UUID)
				*uj.InvoiceID = *value.S.(*uuid.UUID)
			}
		case uploadjob.FieldErrorDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_detail", values[i])
			} else if value.Valid {
				uj.ErrorDetail = new(string)
				*uj.ErrorDetail = value.String
			}
		case uploadjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				uj.CreatedAt = value.Time
			}
		case uploadjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				uj.UpdatedAt = value.Time
			}
		default:
			uj.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadJob.
// This includes values selected through modifiers, order, etc.
func (uj *UploadJob) Value(name string) (ent.Value, error) {
	return uj.selectValues.Get(name)
}

// QueryInvoice queries the "invoice" edge of the UploadJob entity.
func (uj *UploadJob) QueryInvoice() *InvoiceQuery {
	return NewUploadJobClient(uj.config).QueryInvoice(uj)
}

// Update returns a builder for updating this UploadJob.
// Note that you need to call UploadJob.Unwrap() before calling this method if this UploadJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (uj *UploadJob) Update() *UploadJobUpdateOne {
	return NewUploadJobClient(uj.config).UpdateOne(uj)
}

// Unwrap unwraps the UploadJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (uj *UploadJob) Unwrap() *UploadJob {
	_tx, ok := uj.config.driver.(*txDriver)
	if !ok {
		panic("ent: UploadJob is not a transactional entity")
	}
	uj.config.driver = _tx.drv
	return uj
}

// String implements the fmt.Stringer.
func (uj *UploadJob) String() string {
	var builder strings.Builder
	builder.WriteString("UploadJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", uj.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(uj.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("owner_name=")
	builder.WriteString(uj.OwnerName)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(uj.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", uj.FileSize))
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(uj.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(uj.FilePath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(uj.Status)
	builder.WriteString(", ")
	if v := uj.InvoiceID; v != nil {
		builder.WriteString("invoice_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := uj.ErrorDetail; v != nil {
		builder.WriteString("error_detail=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(uj.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(uj.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UploadJobs is a parsable slice of UploadJob.
type UploadJobs []*UploadJob
