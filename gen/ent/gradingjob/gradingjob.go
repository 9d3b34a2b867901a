// Code generated by ent, DO NOT EDIT.

package gradingjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the gradingjob type in the database.
	Label = "grading_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldStrictness holds the string denoting the strictness field in the database.
	FieldStrictness = "strictness"
	// FieldGradeLevel holds the string denoting the grade_level field in the database.
	FieldGradeLevel = "grade_level"
	// FieldAssignmentInstructionsText holds the string denoting the assignment_instructions_text field in the database.
	FieldAssignmentInstructionsText = "assignment_instructions_text"
	// FieldRubricText holds the string denoting the rubric_text field in the database.
	FieldRubricText = "rubric_text"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSubmissions holds the string denoting the submissions edge name in mutations.
	EdgeSubmissions = "submissions"
	// Table holds the table name of the gradingjob in the database.
	Table = "grading_jobs"
	// SubmissionsTable is the table that holds the submissions relation/edge.
	SubmissionsTable = "submissions"
	// SubmissionsInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionsInverseTable = "submissions"
	// SubmissionsColumn is the table column denoting the submissions relation/edge.
	SubmissionsColumn = "job_id"
)

// Columns holds all SQL columns for gradingjob fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldTotalPoints,
	FieldStrictness,
	FieldGradeLevel,
	FieldAssignmentInstructionsText,
	FieldRubricText,
	FieldStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	TotalPointsValidator func(int) error
	// DefaultStrictness holds the default value on creation for the "strictness" field.
	DefaultStrictness string
	// StrictnessValidator is a validator for the "strictness" field. It is called by the builders before save.
	StrictnessValidator func(string) error
	// AssignmentInstructionsTextValidator is a validator for the "assignment_instructions_text" field. It is called by the builders before save.
	AssignmentInstructionsTextValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the GradingJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByStrictness orders the results by the strictness field.
func ByStrictness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrictness, opts...).ToFunc()
}

// ByGradeLevel orders the results by the grade_level field.
func ByGradeLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeLevel, opts...).ToFunc()
}

// ByAssignmentInstructionsText orders the results by the assignment_instructions_text field.
func ByAssignmentInstructionsText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentInstructionsText, opts...).ToFunc()
}

// ByRubricText orders the results by the rubric_text field.
func ByRubricText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRubricText, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySubmissionsCount orders the results by submissions count.
func BySubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubmissionsStep(), opts...)
	}
}

// BySubmissions orders the results by submissions terms.
func BySubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
	)
}
