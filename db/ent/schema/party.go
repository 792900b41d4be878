package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"invoice-tracker/constants"
	"invoice-tracker/db/ent/schema/utils"
)

// Party is a counterpart on an invoice: a client we bill or a provider
// that bills us. Rows are auto-created during extraction and import.
type Party struct{ ent.Schema }

func (Party) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "party"},
	}
}

func (Party) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.PartyKinds...)),
		field.String("tax_id").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Party) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("invoices", Invoice.Type),
	}
}

func (Party) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
