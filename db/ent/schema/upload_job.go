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

type UploadJob struct{ ent.Schema }

func (UploadJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_job"},
	}
}

func (UploadJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("owner_id").NotEmpty(),
		field.String("owner_name").Optional(),
		field.String("file_name").NotEmpty(),
		field.Int64("file_size"),
		// sha256 of the uploaded content, hex-encoded
		field.String("fingerprint").MaxLen(64).NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.UUID("invoice_id", uuid.UUID{}).Optional().Nillable(),
		field.String("error_detail").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (UploadJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("jobs").
			Field("invoice_id").
			Unique(),
	}
}

func (UploadJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("status", "updated_at"),
		index.Fields("fingerprint"),
	}
}
