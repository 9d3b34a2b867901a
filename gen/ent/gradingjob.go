// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
)

// GradingJob is the model entity for the GradingJob schema.
type GradingJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// TotalPoints holds the value of the "total_points" field.
	TotalPoints int `json:"total_points,omitempty"`
	// Strictness holds the value of the "strictness" field.
	Strictness string `json:"strictness,omitempty"`
	// GradeLevel holds the value of the "grade_level" field.
	GradeLevel *string `json:"grade_level,omitempty"`
	// AssignmentInstructionsText holds the value of the "assignment_instructions_text" field.
	AssignmentInstructionsText string `json:"assignment_instructions_text,omitempty"`
	// RubricText holds the value of the "rubric_text" field.
	RubricText *string `json:"rubric_text,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GradingJobQuery when eager-loading is set.
	Edges        GradingJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GradingJobEdges holds the relations/edges for other nodes in the graph.
type GradingJobEdges struct {
	// Submissions holds the value of the submissions edge.
	Submissions []*Submission `json:"submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e GradingJobEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[0] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradingJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gradingjob.FieldTotalPoints:
			values[i] = new(sql.NullInt64)
		case gradingjob.FieldTitle, gradingjob.FieldStrictness, gradingjob.FieldGradeLevel, gradingjob.FieldAssignmentInstructionsText, gradingjob.FieldRubricText, gradingjob.FieldStatus:
			values[i] = new(sql.NullString)
		case gradingjob.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case gradingjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradingJob fields.
func (_m *GradingJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gradingjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gradingjob.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case gradingjob.FieldTotalPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points", values[i])
			} else if value.Valid {
				_m.TotalPoints = int(value.Int64)
			}
		case gradingjob.FieldStrictness:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strictness", values[i])
			} else if value.Valid {
				_m.Strictness = value.String
			}
		case gradingjob.FieldGradeLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade_level", values[i])
			} else if value.Valid {
				_m.GradeLevel = new(string)
				*_m.GradeLevel = value.String
			}
		case gradingjob.FieldAssignmentInstructionsText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_instructions_text", values[i])
			} else if value.Valid {
				_m.AssignmentInstructionsText = value.String
			}
		case gradingjob.FieldRubricText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rubric_text", values[i])
			} else if value.Valid {
				_m.RubricText = new(string)
				*_m.RubricText = value.String
			}
		case gradingjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case gradingjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradingJob.
// This includes values selected through modifiers, order, etc.
func (_m *GradingJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmissions queries the "submissions" edge of the GradingJob entity.
func (_m *GradingJob) QuerySubmissions() *SubmissionQuery {
	return NewGradingJobClient(_m.config).QuerySubmissions(_m)
}

// Update returns a builder for updating this GradingJob.
// Note that you need to call GradingJob.Unwrap() before calling this method if this GradingJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradingJob) Update() *GradingJobUpdateOne {
	return NewGradingJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradingJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradingJob) Unwrap() *GradingJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradingJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradingJob) String() string {
	var builder strings.Builder
	builder.WriteString("GradingJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("total_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPoints))
	builder.WriteString(", ")
	builder.WriteString("strictness=")
	builder.WriteString(_m.Strictness)
	builder.WriteString(", ")
	if v := _m.GradeLevel; v != nil {
		builder.WriteString("grade_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("assignment_instructions_text=")
	builder.WriteString(_m.AssignmentInstructionsText)
	builder.WriteString(", ")
	if v := _m.RubricText; v != nil {
		builder.WriteString("rubric_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GradingJobs is a parsable slice of GradingJob.
type GradingJobs []*GradingJob
