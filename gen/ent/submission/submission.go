// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// FieldNameSource holds the string denoting the name_source field in the database.
	FieldNameSource = "name_source"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldFileURI holds the string denoting the file_uri field in the database.
	FieldFileURI = "file_uri"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeGradeResult holds the string denoting the grade_result edge name in mutations.
	EdgeGradeResult = "grade_result"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "submissions"
	// JobInverseTable is the table name for the GradingJob entity.
	// It exists in this package in order to avoid circular dependency with the "gradingjob" package.
	JobInverseTable = "grading_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// GradeResultTable is the table that holds the grade_result relation/edge.
	GradeResultTable = "grade_results"
	// GradeResultInverseTable is the table name for the GradeResult entity.
	// It exists in this package in order to avoid circular dependency with the "graderesult" package.
	GradeResultInverseTable = "grade_results"
	// GradeResultColumn is the table column denoting the grade_result relation/edge.
	GradeResultColumn = "submission_id"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldStudentName,
	FieldNameSource,
	FieldOriginalFilename,
	FieldFileURI,
	FieldExtractedText,
	FieldStatus,
	FieldErrorMessage,
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
	// StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	StudentNameValidator func(string) error
	// DefaultNameSource holds the default value on creation for the "name_source" field.
	DefaultNameSource string
	// NameSourceValidator is a validator for the "name_source" field. It is called by the builders before save.
	NameSourceValidator func(string) error
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// FileURIValidator is a validator for the "file_uri" field. It is called by the builders before save.
	FileURIValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}

// ByNameSource orders the results by the name_source field.
func ByNameSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameSource, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByFileURI orders the results by the file_uri field.
func ByFileURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileURI, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByGradeResultField orders the results by grade_result field.
func ByGradeResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGradeResultStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newGradeResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GradeResultInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, GradeResultTable, GradeResultColumn),
	)
}
