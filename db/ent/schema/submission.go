package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/db/ent/schema/utils"
)

// Submission is one uploaded student document awaiting or having undergone
// grading.
type Submission struct{ ent.Schema }

func (Submission) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "submissions"},
	}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("job_id", uuid.UUID{}),
		field.String("student_name").NotEmpty(),
		// provenance of student_name: FILENAME-derived names may be replaced
		// by a DOCUMENT header match; USER-set names never are.
		field.String("name_source").
			Default(string(constants.NameSourceFilename)).
			Validate(utils.EnumValidator(constants.NameSources...)),
		field.String("original_filename").NotEmpty(),
		field.String("file_uri").NotEmpty(),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Default(string(constants.SubmissionStatusPending)).
			Validate(utils.EnumValidator(constants.SubmissionStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY submissions -> ONE job (FK: submissions.job_id)
		edge.From("job", GradingJob.Type).
			Ref("submissions").
			Field("job_id").
			Unique().
			Required(),
		// ONE submission -> at most ONE grade result
		edge.To("grade_result", GradeResult.Type).
			Unique(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "status"),
		index.Fields("job_id", "student_name"),
	}
}
