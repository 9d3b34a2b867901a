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
)

// GradeResult is the immutable outcome of one grading attempt. The score is
// stored exactly as the grader returned it, without clamping to the job's
// point range.
type GradeResult struct{ ent.Schema }

func (GradeResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "grade_results"},
	}
}

func (GradeResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK; unique enforces the one-result-per-submission invariant
		field.UUID("submission_id", uuid.UUID{}).Unique(),
		field.Float("score").
			SchemaType(map[string]string{dialect.Postgres: "numeric(8,2)"}),
		field.String("feedback").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("rubric_breakdown").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (GradeResult) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE result -> ONE submission
		edge.From("submission", Submission.Type).
			Ref("grade_result").
			Field("submission_id").
			Unique().
			Required(),
	}
}
