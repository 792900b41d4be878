package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"invoice-tracker/constants"
	"invoice-tracker/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocTypes...)),
		field.String("invoice_class").Default("A").
			Validate(utils.EnumValidator(constants.InvoiceClasses...)),
		field.String("invoice_number").Optional(),
		field.Time("issue_date").Optional().Nillable(),
		// explicit FK; party_name kept for counterparts not in our registry
		field.UUID("party_id", uuid.UUID{}).Optional().Nillable(),
		field.String("party_name").NotEmpty(),
		field.String("tax_id").Optional(),
		// money fields are decimal strings with 2dp, numeric(15,2) in PG
		field.String("subtotal").Default("0.00").
			SchemaType(map[string]string{dialect.Postgres: "numeric(15,2)"}),
		field.String("tax_amount").Default("0.00").
			SchemaType(map[string]string{dialect.Postgres: "numeric(15,2)"}),
		field.String("other_taxes").Default("0.00").
			SchemaType(map[string]string{dialect.Postgres: "numeric(15,2)"}),
		field.String("total_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(15,2)"}),
		field.String("payment_status").Default(constants.PaymentPending).
			Validate(utils.EnumValidator(constants.PaymentStatuses...)),
		field.String("owner_id").NotEmpty(),
		field.String("owner_name").Optional(),
		field.String("file_name").Optional(),
		field.String("file_path").Optional(),
		field.Int64("file_size").Optional(),
		// sha256 of the source document; empty for imported rows
		field.String("fingerprint").MaxLen(64).Optional(),
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		field.String("source").Default(constants.SourceManual).
			Validate(utils.EnumValidator(constants.InvoiceSources...)),
		field.Bool("needs_review").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("party", Party.Type).
			Ref("invoices").
			Field("party_id").
			Unique(),
		edge.To("jobs", UploadJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "issue_date"),
		index.Fields("invoice_number"),
		index.Fields("fingerprint"),
	}
}
