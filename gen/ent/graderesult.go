// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/graderesult"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// GradeResult is the model entity for the GradeResult schema.
type GradeResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SubmissionID holds the value of the "submission_id" field.
	SubmissionID uuid.UUID `json:"submission_id,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// RubricBreakdown holds the value of the "rubric_breakdown" field.
	RubricBreakdown string `json:"rubric_breakdown,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GradeResultQuery when eager-loading is set.
	Edges        GradeResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GradeResultEdges holds the relations/edges for other nodes in the graph.
type GradeResultEdges struct {
	// Submission holds the value of the submission edge.
	Submission *Submission `json:"submission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubmissionOrErr returns the Submission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GradeResultEdges) SubmissionOrErr() (*Submission, error) {
	if e.Submission != nil {
		return e.Submission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: submission.Label}
	}
	return nil, &NotLoadedError{edge: "submission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradeResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graderesult.FieldScore:
			values[i] = new(sql.NullFloat64)
		case graderesult.FieldFeedback, graderesult.FieldRubricBreakdown:
			values[i] = new(sql.NullString)
		case graderesult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case graderesult.FieldID, graderesult.FieldSubmissionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradeResult fields.
func (_m *GradeResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graderesult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case graderesult.FieldSubmissionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value != nil {
				_m.SubmissionID = *value
			}
		case graderesult.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case graderesult.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case graderesult.FieldRubricBreakdown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rubric_breakdown", values[i])
			} else if value.Valid {
				_m.RubricBreakdown = value.String
			}
		case graderesult.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GradeResult.
// This includes values selected through modifiers, order, etc.
func (_m *GradeResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmission queries the "submission" edge of the GradeResult entity.
func (_m *GradeResult) QuerySubmission() *SubmissionQuery {
	return NewGradeResultClient(_m.config).QuerySubmission(_m)
}

// Update returns a builder for updating this GradeResult.
// Note that you need to call GradeResult.Unwrap() before calling this method if this GradeResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradeResult) Update() *GradeResultUpdateOne {
	return NewGradeResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradeResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradeResult) Unwrap() *GradeResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradeResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradeResult) String() string {
	var builder strings.Builder
	builder.WriteString("GradeResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("submission_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmissionID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("rubric_breakdown=")
	builder.WriteString(_m.RubricBreakdown)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GradeResults is a parsable slice of GradeResult.
type GradeResults []*GradeResult
