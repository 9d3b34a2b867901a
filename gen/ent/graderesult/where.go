// Code generated by ent, DO NOT EDIT.

package graderesult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldID, id))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldSubmissionID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldScore, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldFeedback, v))
}

// RubricBreakdown applies equality check predicate on the "rubric_breakdown" field. It's identical to RubricBreakdownEQ.
func RubricBreakdown(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldRubricBreakdown, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldCreatedAt, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...uuid.UUID) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldScore, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContainsFold(FieldFeedback, v))
}

// RubricBreakdownEQ applies the EQ predicate on the "rubric_breakdown" field.
func RubricBreakdownEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldRubricBreakdown, v))
}

// RubricBreakdownNEQ applies the NEQ predicate on the "rubric_breakdown" field.
func RubricBreakdownNEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldRubricBreakdown, v))
}

// RubricBreakdownIn applies the In predicate on the "rubric_breakdown" field.
func RubricBreakdownIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldRubricBreakdown, vs...))
}

// RubricBreakdownNotIn applies the NotIn predicate on the "rubric_breakdown" field.
func RubricBreakdownNotIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldRubricBreakdown, vs...))
}

// RubricBreakdownGT applies the GT predicate on the "rubric_breakdown" field.
func RubricBreakdownGT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldRubricBreakdown, v))
}

// RubricBreakdownGTE applies the GTE predicate on the "rubric_breakdown" field.
func RubricBreakdownGTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldRubricBreakdown, v))
}

// RubricBreakdownLT applies the LT predicate on the "rubric_breakdown" field.
func RubricBreakdownLT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldRubricBreakdown, v))
}

// RubricBreakdownLTE applies the LTE predicate on the "rubric_breakdown" field.
func RubricBreakdownLTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldRubricBreakdown, v))
}

// RubricBreakdownContains applies the Contains predicate on the "rubric_breakdown" field.
func RubricBreakdownContains(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContains(FieldRubricBreakdown, v))
}

// RubricBreakdownHasPrefix applies the HasPrefix predicate on the "rubric_breakdown" field.
func RubricBreakdownHasPrefix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasPrefix(FieldRubricBreakdown, v))
}

// RubricBreakdownHasSuffix applies the HasSuffix predicate on the "rubric_breakdown" field.
func RubricBreakdownHasSuffix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasSuffix(FieldRubricBreakdown, v))
}

// RubricBreakdownEqualFold applies the EqualFold predicate on the "rubric_breakdown" field.
func RubricBreakdownEqualFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEqualFold(FieldRubricBreakdown, v))
}

// RubricBreakdownContainsFold applies the ContainsFold predicate on the "rubric_breakdown" field.
func RubricBreakdownContainsFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContainsFold(FieldRubricBreakdown, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.GradeResult {
	return predicate.GradeResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.GradeResult {
	return predicate.GradeResult(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeResult) predicate.GradeResult {
	return predicate.GradeResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeResult) predicate.GradeResult {
	return predicate.GradeResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeResult) predicate.GradeResult {
	return predicate.GradeResult(sql.NotPredicates(p))
}
