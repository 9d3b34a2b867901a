// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/graderesult"
	"github.com/gradepilot/gradepilot/gen/ent/predicate"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// GradeResultUpdate is the builder for updating GradeResult entities.
type GradeResultUpdate struct {
	config
	hooks    []Hook
	mutation *GradeResultMutation
}

// Where appends a list predicates to the GradeResultUpdate builder.
func (_u *GradeResultUpdate) Where(ps ...predicate.GradeResult) *GradeResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *GradeResultUpdate) SetSubmissionID(v uuid.UUID) *GradeResultUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableSubmissionID(v *uuid.UUID) *GradeResultUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GradeResultUpdate) SetScore(v float64) *GradeResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableScore(v *float64) *GradeResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GradeResultUpdate) AddScore(v float64) *GradeResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeResultUpdate) SetFeedback(v string) *GradeResultUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableFeedback(v *string) *GradeResultUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetRubricBreakdown sets the "rubric_breakdown" field.
func (_u *GradeResultUpdate) SetRubricBreakdown(v string) *GradeResultUpdate {
	_u.mutation.SetRubricBreakdown(v)
	return _u
}

// SetNillableRubricBreakdown sets the "rubric_breakdown" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableRubricBreakdown(v *string) *GradeResultUpdate {
	if v != nil {
		_u.SetRubricBreakdown(*v)
	}
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *GradeResultUpdate) SetSubmission(v *Submission) *GradeResultUpdate {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the GradeResultMutation object of the builder.
func (_u *GradeResultUpdate) Mutation() *GradeResultMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *GradeResultUpdate) ClearSubmission() *GradeResultUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeResultUpdate) check() error {
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GradeResult.submission"`)
	}
	return nil
}

func (_u *GradeResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graderesult.Table, graderesult.Columns, sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(graderesult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(graderesult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(graderesult.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.RubricBreakdown(); ok {
		_spec.SetField(graderesult.FieldRubricBreakdown, field.TypeString, value)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   graderesult.SubmissionTable,
			Columns: []string{graderesult.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   graderesult.SubmissionTable,
			Columns: []string{graderesult.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graderesult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeResultUpdateOne is the builder for updating a single GradeResult entity.
type GradeResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeResultMutation
}

// SetSubmissionID sets the "submission_id" field.
func (_u *GradeResultUpdateOne) SetSubmissionID(v uuid.UUID) *GradeResultUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableSubmissionID(v *uuid.UUID) *GradeResultUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GradeResultUpdateOne) SetScore(v float64) *GradeResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableScore(v *float64) *GradeResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GradeResultUpdateOne) AddScore(v float64) *GradeResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeResultUpdateOne) SetFeedback(v string) *GradeResultUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableFeedback(v *string) *GradeResultUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetRubricBreakdown sets the "rubric_breakdown" field.
func (_u *GradeResultUpdateOne) SetRubricBreakdown(v string) *GradeResultUpdateOne {
	_u.mutation.SetRubricBreakdown(v)
	return _u
}

// SetNillableRubricBreakdown sets the "rubric_breakdown" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableRubricBreakdown(v *string) *GradeResultUpdateOne {
	if v != nil {
		_u.SetRubricBreakdown(*v)
	}
	return _u
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *GradeResultUpdateOne) SetSubmission(v *Submission) *GradeResultUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the GradeResultMutation object of the builder.
func (_u *GradeResultUpdateOne) Mutation() *GradeResultMutation {
	return _u.mutation
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *GradeResultUpdateOne) ClearSubmission() *GradeResultUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// Where appends a list predicates to the GradeResultUpdate builder.
func (_u *GradeResultUpdateOne) Where(ps ...predicate.GradeResult) *GradeResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeResultUpdateOne) Select(field string, fields ...string) *GradeResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeResult entity.
func (_u *GradeResultUpdateOne) Save(ctx context.Context) (*GradeResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeResultUpdateOne) SaveX(ctx context.Context) *GradeResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeResultUpdateOne) check() error {
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GradeResult.submission"`)
	}
	return nil
}

func (_u *GradeResultUpdateOne) sqlSave(ctx context.Context) (_node *GradeResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graderesult.Table, graderesult.Columns, sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graderesult.FieldID)
		for _, f := range fields {
			if !graderesult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graderesult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(graderesult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(graderesult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(graderesult.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.RubricBreakdown(); ok {
		_spec.SetField(graderesult.FieldRubricBreakdown, field.TypeString, value)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   graderesult.SubmissionTable,
			Columns: []string{graderesult.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   graderesult.SubmissionTable,
			Columns: []string{graderesult.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GradeResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graderesult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
