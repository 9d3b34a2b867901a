package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/db/ent/schema/utils"
)

// GradingJob is a teacher-defined grading task set: shared instructions,
// rubric, and scoring configuration for a batch of submissions.
type GradingJob struct{ ent.Schema }

func (GradingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "grading_jobs"},
	}
}

func (GradingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("title").NotEmpty(),
		field.Int("total_points").Positive(),
		field.String("strictness").
			Default(string(constants.StrictnessNormal)).
			Validate(utils.EnumValidator(constants.Strictnesses...)),
		field.String("grade_level").Optional().Nillable(),
		field.String("assignment_instructions_text").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("rubric_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Default(string(constants.JobStatusDraft)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (GradingJob) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY submissions
		edge.To("submissions", Submission.Type),
	}
}
