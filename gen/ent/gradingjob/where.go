// Code generated by ent, DO NOT EDIT.

package gradingjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldTitle, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldTotalPoints, v))
}

// Strictness applies equality check predicate on the "strictness" field. It's identical to StrictnessEQ.
func Strictness(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldStrictness, v))
}

// GradeLevel applies equality check predicate on the "grade_level" field. It's identical to GradeLevelEQ.
func GradeLevel(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldGradeLevel, v))
}

// AssignmentInstructionsText applies equality check predicate on the "assignment_instructions_text" field. It's identical to AssignmentInstructionsTextEQ.
func AssignmentInstructionsText(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldAssignmentInstructionsText, v))
}

// RubricText applies equality check predicate on the "rubric_text" field. It's identical to RubricTextEQ.
func RubricText(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldRubricText, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContainsFold(FieldTitle, v))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldTotalPoints, v))
}

// StrictnessEQ applies the EQ predicate on the "strictness" field.
func StrictnessEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldStrictness, v))
}

// StrictnessNEQ applies the NEQ predicate on the "strictness" field.
func StrictnessNEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldStrictness, v))
}

// StrictnessIn applies the In predicate on the "strictness" field.
func StrictnessIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldStrictness, vs...))
}

// StrictnessNotIn applies the NotIn predicate on the "strictness" field.
func StrictnessNotIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldStrictness, vs...))
}

// StrictnessGT applies the GT predicate on the "strictness" field.
func StrictnessGT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldStrictness, v))
}

// StrictnessGTE applies the GTE predicate on the "strictness" field.
func StrictnessGTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldStrictness, v))
}

// StrictnessLT applies the LT predicate on the "strictness" field.
func StrictnessLT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldStrictness, v))
}

// StrictnessLTE applies the LTE predicate on the "strictness" field.
func StrictnessLTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldStrictness, v))
}

// StrictnessContains applies the Contains predicate on the "strictness" field.
func StrictnessContains(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContains(FieldStrictness, v))
}

// StrictnessHasPrefix applies the HasPrefix predicate on the "strictness" field.
func StrictnessHasPrefix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasPrefix(FieldStrictness, v))
}

// StrictnessHasSuffix applies the HasSuffix predicate on the "strictness" field.
func StrictnessHasSuffix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasSuffix(FieldStrictness, v))
}

// StrictnessEqualFold applies the EqualFold predicate on the "strictness" field.
func StrictnessEqualFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEqualFold(FieldStrictness, v))
}

// StrictnessContainsFold applies the ContainsFold predicate on the "strictness" field.
func StrictnessContainsFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContainsFold(FieldStrictness, v))
}

// GradeLevelEQ applies the EQ predicate on the "grade_level" field.
func GradeLevelEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldGradeLevel, v))
}

// GradeLevelNEQ applies the NEQ predicate on the "grade_level" field.
func GradeLevelNEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldGradeLevel, v))
}

// GradeLevelIn applies the In predicate on the "grade_level" field.
func GradeLevelIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldGradeLevel, vs...))
}

// GradeLevelNotIn applies the NotIn predicate on the "grade_level" field.
func GradeLevelNotIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldGradeLevel, vs...))
}

// GradeLevelGT applies the GT predicate on the "grade_level" field.
func GradeLevelGT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldGradeLevel, v))
}

// GradeLevelGTE applies the GTE predicate on the "grade_level" field.
func GradeLevelGTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldGradeLevel, v))
}

// GradeLevelLT applies the LT predicate on the "grade_level" field.
func GradeLevelLT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldGradeLevel, v))
}

// GradeLevelLTE applies the LTE predicate on the "grade_level" field.
func GradeLevelLTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldGradeLevel, v))
}

// GradeLevelContains applies the Contains predicate on the "grade_level" field.
func GradeLevelContains(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContains(FieldGradeLevel, v))
}

// GradeLevelHasPrefix applies the HasPrefix predicate on the "grade_level" field.
func GradeLevelHasPrefix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasPrefix(FieldGradeLevel, v))
}

// GradeLevelHasSuffix applies the HasSuffix predicate on the "grade_level" field.
func GradeLevelHasSuffix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasSuffix(FieldGradeLevel, v))
}

// GradeLevelIsNil applies the IsNil predicate on the "grade_level" field.
func GradeLevelIsNil() predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIsNull(FieldGradeLevel))
}

// GradeLevelNotNil applies the NotNil predicate on the "grade_level" field.
func GradeLevelNotNil() predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotNull(FieldGradeLevel))
}

// GradeLevelEqualFold applies the EqualFold predicate on the "grade_level" field.
func GradeLevelEqualFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEqualFold(FieldGradeLevel, v))
}

// GradeLevelContainsFold applies the ContainsFold predicate on the "grade_level" field.
func GradeLevelContainsFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContainsFold(FieldGradeLevel, v))
}

// AssignmentInstructionsTextEQ applies the EQ predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextNEQ applies the NEQ predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextNEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextIn applies the In predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldAssignmentInstructionsText, vs...))
}

// AssignmentInstructionsTextNotIn applies the NotIn predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextNotIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldAssignmentInstructionsText, vs...))
}

// AssignmentInstructionsTextGT applies the GT predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextGT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextGTE applies the GTE predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextGTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextLT applies the LT predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextLT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextLTE applies the LTE predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextLTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextContains applies the Contains predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextContains(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContains(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextHasPrefix applies the HasPrefix predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextHasPrefix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasPrefix(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextHasSuffix applies the HasSuffix predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextHasSuffix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasSuffix(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextEqualFold applies the EqualFold predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextEqualFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEqualFold(FieldAssignmentInstructionsText, v))
}

// AssignmentInstructionsTextContainsFold applies the ContainsFold predicate on the "assignment_instructions_text" field.
func AssignmentInstructionsTextContainsFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContainsFold(FieldAssignmentInstructionsText, v))
}

// RubricTextEQ applies the EQ predicate on the "rubric_text" field.
func RubricTextEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldRubricText, v))
}

// RubricTextNEQ applies the NEQ predicate on the "rubric_text" field.
func RubricTextNEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldRubricText, v))
}

// RubricTextIn applies the In predicate on the "rubric_text" field.
func RubricTextIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldRubricText, vs...))
}

// RubricTextNotIn applies the NotIn predicate on the "rubric_text" field.
func RubricTextNotIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldRubricText, vs...))
}

// RubricTextGT applies the GT predicate on the "rubric_text" field.
func RubricTextGT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldRubricText, v))
}

// RubricTextGTE applies the GTE predicate on the "rubric_text" field.
func RubricTextGTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldRubricText, v))
}

// RubricTextLT applies the LT predicate on the "rubric_text" field.
func RubricTextLT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldRubricText, v))
}

// RubricTextLTE applies the LTE predicate on the "rubric_text" field.
func RubricTextLTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldRubricText, v))
}

// RubricTextContains applies the Contains predicate on the "rubric_text" field.
func RubricTextContains(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContains(FieldRubricText, v))
}

// RubricTextHasPrefix applies the HasPrefix predicate on the "rubric_text" field.
func RubricTextHasPrefix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasPrefix(FieldRubricText, v))
}

// RubricTextHasSuffix applies the HasSuffix predicate on the "rubric_text" field.
func RubricTextHasSuffix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasSuffix(FieldRubricText, v))
}

// RubricTextIsNil applies the IsNil predicate on the "rubric_text" field.
func RubricTextIsNil() predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIsNull(FieldRubricText))
}

// RubricTextNotNil applies the NotNil predicate on the "rubric_text" field.
func RubricTextNotNil() predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotNull(FieldRubricText))
}

// RubricTextEqualFold applies the EqualFold predicate on the "rubric_text" field.
func RubricTextEqualFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEqualFold(FieldRubricText, v))
}

// RubricTextContainsFold applies the ContainsFold predicate on the "rubric_text" field.
func RubricTextContainsFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContainsFold(FieldRubricText, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GradingJob {
	return predicate.GradingJob(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.GradingJob {
	return predicate.GradingJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.GradingJob {
	return predicate.GradingJob(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradingJob) predicate.GradingJob {
	return predicate.GradingJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradingJob) predicate.GradingJob {
	return predicate.GradingJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradingJob) predicate.GradingJob {
	return predicate.GradingJob(sql.NotPredicates(p))
}
