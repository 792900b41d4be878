// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoiceColumns holds the columns for the "invoice" table.
	InvoiceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "invoice_class", Type: field.TypeString, Default: "A"},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "issue_date", Type: field.TypeTime, Nullable: true},
		{Name: "party_name", Type: field.TypeString},
		{Name: "tax_id", Type: field.TypeString, Nullable: true},
		{Name: "subtotal", Type: field.TypeString, Default: "0.00", SchemaType: map[string]string{"postgres": "numeric(15,2)"}},
		{Name: "tax_amount", Type: field.TypeString, Default: "0.00", SchemaType: map[string]string{"postgres": "numeric(15,2)"}},
		{Name: "other_taxes", Type: field.TypeString, Default: "0.00", SchemaType: map[string]string{"postgres": "numeric(15,2)"}},
		{Name: "total_amount", Type: field.TypeString, SchemaType: map[string]string{"postgres": "numeric(15,2)"}},
		{Name: "payment_status", Type: field.TypeString, Default: "pending"},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "owner_name", Type: field.TypeString, Nullable: true},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "file_size", Type: field.TypeInt64, Nullable: true},
		{Name: "fingerprint", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "manual"},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "party_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoiceTable holds the schema information for the "invoice" table.
	InvoiceTable = &schema.Table{
		Name:       "invoice",
		Columns:    InvoiceColumns,
		PrimaryKey: []*schema.Column{InvoiceColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_party_invoices",
				Columns:    []*schema.Column{InvoiceColumns[23]},
				RefColumns: []*schema.Column{PartyColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_owner_id_issue_date",
				Unique:  false,
				Columns: []*schema.Column{InvoiceColumns[12], InvoiceColumns[4]},
			},
			{
				Name:    "invoice_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{InvoiceColumns[3]},
			},
			{
				Name:    "invoice_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{InvoiceColumns[17]},
			},
		},
	}
	// PartyColumns holds the columns for the "party" table.
	PartyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "tax_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PartyTable holds the schema information for the "party" table.
	PartyTable = &schema.Table{
		Name:       "party",
		Columns:    PartyColumns,
		PrimaryKey: []*schema.Column{PartyColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "party_name",
				Unique:  false,
				Columns: []*schema.Column{PartyColumns[1]},
			},
		},
	}
	// UploadJobColumns holds the columns for the "upload_job" table.
	UploadJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "owner_name", Type: field.TypeString, Nullable: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "fingerprint", Type: field.TypeString, Size: 64},
		{Name: "file_path", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "error_detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
	}
	// UploadJobTable holds the schema information for the "upload_job" table.
	UploadJobTable = &schema.Table{
		Name:       "upload_job",
		Columns:    UploadJobColumns,
		PrimaryKey: []*schema.Column{UploadJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "upload_job_invoice_jobs",
				Columns:    []*schema.Column{UploadJobColumns[11]},
				RefColumns: []*schema.Column{InvoiceColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uploadjob_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UploadJobColumns[1], UploadJobColumns[9]},
			},
			{
				Name:    "uploadjob_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{UploadJobColumns[7], UploadJobColumns[10]},
			},
			{
				Name:    "uploadjob_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{UploadJobColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoiceTable,
		PartyTable,
		UploadJobTable,
	}
)

func init() {
	InvoiceTable.ForeignKeys[0].RefTable = PartyTable
	InvoiceTable.Annotation = &entsql.Annotation{
		Table: "invoice",
	}
	PartyTable.Annotation = &entsql.Annotation{
		Table: "party",
	}
	UploadJobTable.ForeignKeys[0].RefTable = InvoiceTable
	UploadJobTable.Annotation = &entsql.Annotation{
		Table: "upload_job",
	}
}
