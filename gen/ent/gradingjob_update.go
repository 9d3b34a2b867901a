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
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
	"github.com/gradepilot/gradepilot/gen/ent/predicate"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// GradingJobUpdate is the builder for updating GradingJob entities.
type GradingJobUpdate struct {
	config
	hooks    []Hook
	mutation *GradingJobMutation
}

// Where appends a list predicates to the GradingJobUpdate builder.
func (_u *GradingJobUpdate) Where(ps ...predicate.GradingJob) *GradingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *GradingJobUpdate) SetTitle(v string) *GradingJobUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GradingJobUpdate) SetNillableTitle(v *string) *GradingJobUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *GradingJobUpdate) SetTotalPoints(v int) *GradingJobUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *GradingJobUpdate) SetNillableTotalPoints(v *int) *GradingJobUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *GradingJobUpdate) AddTotalPoints(v int) *GradingJobUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetStrictness sets the "strictness" field.
func (_u *GradingJobUpdate) SetStrictness(v string) *GradingJobUpdate {
	_u.mutation.SetStrictness(v)
	return _u
}

// SetNillableStrictness sets the "strictness" field if the given value is not nil.
func (_u *GradingJobUpdate) SetNillableStrictness(v *string) *GradingJobUpdate {
	if v != nil {
		_u.SetStrictness(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *GradingJobUpdate) SetGradeLevel(v string) *GradingJobUpdate {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *GradingJobUpdate) SetNillableGradeLevel(v *string) *GradingJobUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// ClearGradeLevel clears the value of the "grade_level" field.
func (_u *GradingJobUpdate) ClearGradeLevel() *GradingJobUpdate {
	_u.mutation.ClearGradeLevel()
	return _u
}

// SetAssignmentInstructionsText sets the "assignment_instructions_text" field.
func (_u *GradingJobUpdate) SetAssignmentInstructionsText(v string) *GradingJobUpdate {
	_u.mutation.SetAssignmentInstructionsText(v)
	return _u
}

// SetNillableAssignmentInstructionsText sets the "assignment_instructions_text" field if the given value is not nil.
func (_u *GradingJobUpdate) SetNillableAssignmentInstructionsText(v *string) *GradingJobUpdate {
	if v != nil {
		_u.SetAssignmentInstructionsText(*v)
	}
	return _u
}

// SetRubricText sets the "rubric_text" field.
func (_u *GradingJobUpdate) SetRubricText(v string) *GradingJobUpdate {
	_u.mutation.SetRubricText(v)
	return _u
}

// SetNillableRubricText sets the "rubric_text" field if the given value is not nil.
func (_u *GradingJobUpdate) SetNillableRubricText(v *string) *GradingJobUpdate {
	if v != nil {
		_u.SetRubricText(*v)
	}
	return _u
}

// ClearRubricText clears the value of the "rubric_text" field.
func (_u *GradingJobUpdate) ClearRubricText() *GradingJobUpdate {
	_u.mutation.ClearRubricText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GradingJobUpdate) SetStatus(v string) *GradingJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GradingJobUpdate) SetNillableStatus(v *string) *GradingJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *GradingJobUpdate) AddSubmissionIDs(ids ...uuid.UUID) *GradingJobUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *GradingJobUpdate) AddSubmissions(v ...*Submission) *GradingJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the GradingJobMutation object of the builder.
func (_u *GradingJobUpdate) Mutation() *GradingJobMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *GradingJobUpdate) ClearSubmissions() *GradingJobUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *GradingJobUpdate) RemoveSubmissionIDs(ids ...uuid.UUID) *GradingJobUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *GradingJobUpdate) RemoveSubmissions(v ...*Submission) *GradingJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradingJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradingJobUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := gradingjob.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "GradingJob.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := gradingjob.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "GradingJob.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strictness(); ok {
		if err := gradingjob.StrictnessValidator(v); err != nil {
			return &ValidationError{Name: "strictness", err: fmt.Errorf(`ent: validator failed for field "GradingJob.strictness": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentInstructionsText(); ok {
		if err := gradingjob.AssignmentInstructionsTextValidator(v); err != nil {
			return &ValidationError{Name: "assignment_instructions_text", err: fmt.Errorf(`ent: validator failed for field "GradingJob.assignment_instructions_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := gradingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GradingJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GradingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradingjob.Table, gradingjob.Columns, sqlgraph.NewFieldSpec(gradingjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gradingjob.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(gradingjob.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(gradingjob.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Strictness(); ok {
		_spec.SetField(gradingjob.FieldStrictness, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(gradingjob.FieldGradeLevel, field.TypeString, value)
	}
	if _u.mutation.GradeLevelCleared() {
		_spec.ClearField(gradingjob.FieldGradeLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AssignmentInstructionsText(); ok {
		_spec.SetField(gradingjob.FieldAssignmentInstructionsText, field.TypeString, value)
	}
	if value, ok := _u.mutation.RubricText(); ok {
		_spec.SetField(gradingjob.FieldRubricText, field.TypeString, value)
	}
	if _u.mutation.RubricTextCleared() {
		_spec.ClearField(gradingjob.FieldRubricText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gradingjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gradingjob.SubmissionsTable,
			Columns: []string{gradingjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gradingjob.SubmissionsTable,
			Columns: []string{gradingjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gradingjob.SubmissionsTable,
			Columns: []string{gradingjob.SubmissionsColumn},
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
			err = &NotFoundError{gradingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradingJobUpdateOne is the builder for updating a single GradingJob entity.
type GradingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradingJobMutation
}

// SetTitle sets the "title" field.
func (_u *GradingJobUpdateOne) SetTitle(v string) *GradingJobUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GradingJobUpdateOne) SetNillableTitle(v *string) *GradingJobUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *GradingJobUpdateOne) SetTotalPoints(v int) *GradingJobUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *GradingJobUpdateOne) SetNillableTotalPoints(v *int) *GradingJobUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *GradingJobUpdateOne) AddTotalPoints(v int) *GradingJobUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetStrictness sets the "strictness" field.
func (_u *GradingJobUpdateOne) SetStrictness(v string) *GradingJobUpdateOne {
	_u.mutation.SetStrictness(v)
	return _u
}

// SetNillableStrictness sets the "strictness" field if the given value is not nil.
func (_u *GradingJobUpdateOne) SetNillableStrictness(v *string) *GradingJobUpdateOne {
	if v != nil {
		_u.SetStrictness(*v)
	}
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *GradingJobUpdateOne) SetGradeLevel(v string) *GradingJobUpdateOne {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *GradingJobUpdateOne) SetNillableGradeLevel(v *string) *GradingJobUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// ClearGradeLevel clears the value of the "grade_level" field.
func (_u *GradingJobUpdateOne) ClearGradeLevel() *GradingJobUpdateOne {
	_u.mutation.ClearGradeLevel()
	return _u
}

// SetAssignmentInstructionsText sets the "assignment_instructions_text" field.
func (_u *GradingJobUpdateOne) SetAssignmentInstructionsText(v string) *GradingJobUpdateOne {
	_u.mutation.SetAssignmentInstructionsText(v)
	return _u
}

// SetNillableAssignmentInstructionsText sets the "assignment_instructions_text" field if the given value is not nil.
func (_u *GradingJobUpdateOne) SetNillableAssignmentInstructionsText(v *string) *GradingJobUpdateOne {
	if v != nil {
		_u.SetAssignmentInstructionsText(*v)
	}
	return _u
}

// SetRubricText sets the "rubric_text" field.
func (_u *GradingJobUpdateOne) SetRubricText(v string) *GradingJobUpdateOne {
	_u.mutation.SetRubricText(v)
	return _u
}

// SetNillableRubricText sets the "rubric_text" field if the given value is not nil.
func (_u *GradingJobUpdateOne) SetNillableRubricText(v *string) *GradingJobUpdateOne {
	if v != nil {
		_u.SetRubricText(*v)
	}
	return _u
}

// ClearRubricText clears the value of the "rubric_text" field.
func (_u *GradingJobUpdateOne) ClearRubricText() *GradingJobUpdateOne {
	_u.mutation.ClearRubricText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GradingJobUpdateOne) SetStatus(v string) *GradingJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GradingJobUpdateOne) SetNillableStatus(v *string) *GradingJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *GradingJobUpdateOne) AddSubmissionIDs(ids ...uuid.UUID) *GradingJobUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *GradingJobUpdateOne) AddSubmissions(v ...*Submission) *GradingJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the GradingJobMutation object of the builder.
func (_u *GradingJobUpdateOne) Mutation() *GradingJobMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *GradingJobUpdateOne) ClearSubmissions() *GradingJobUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *GradingJobUpdateOne) RemoveSubmissionIDs(ids ...uuid.UUID) *GradingJobUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *GradingJobUpdateOne) RemoveSubmissions(v ...*Submission) *GradingJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the GradingJobUpdate builder.
func (_u *GradingJobUpdateOne) Where(ps ...predicate.GradingJob) *GradingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradingJobUpdateOne) Select(field string, fields ...string) *GradingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradingJob entity.
func (_u *GradingJobUpdateOne) Save(ctx context.Context) (*GradingJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradingJobUpdateOne) SaveX(ctx context.Context) *GradingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradingJobUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := gradingjob.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "GradingJob.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := gradingjob.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "GradingJob.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strictness(); ok {
		if err := gradingjob.StrictnessValidator(v); err != nil {
			return &ValidationError{Name: "strictness", err: fmt.Errorf(`ent: validator failed for field "GradingJob.strictness": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentInstructionsText(); ok {
		if err := gradingjob.AssignmentInstructionsTextValidator(v); err != nil {
			return &ValidationError{Name: "assignment_instructions_text", err: fmt.Errorf(`ent: validator failed for field "GradingJob.assignment_instructions_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := gradingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GradingJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GradingJobUpdateOne) sqlSave(ctx context.Context) (_node *GradingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradingjob.Table, gradingjob.Columns, sqlgraph.NewFieldSpec(gradingjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradingjob.FieldID)
		for _, f := range fields {
			if !gradingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradingjob.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gradingjob.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(gradingjob.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(gradingjob.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Strictness(); ok {
		_spec.SetField(gradingjob.FieldStrictness, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(gradingjob.FieldGradeLevel, field.TypeString, value)
	}
	if _u.mutation.GradeLevelCleared() {
		_spec.ClearField(gradingjob.FieldGradeLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AssignmentInstructionsText(); ok {
		_spec.SetField(gradingjob.FieldAssignmentInstructionsText, field.TypeString, value)
	}
	if value, ok := _u.mutation.RubricText(); ok {
		_spec.SetField(gradingjob.FieldRubricText, field.TypeString, value)
	}
	if _u.mutation.RubricTextCleared() {
		_spec.ClearField(gradingjob.FieldRubricText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gradingjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gradingjob.SubmissionsTable,
			Columns: []string{gradingjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gradingjob.SubmissionsTable,
			Columns: []string{gradingjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gradingjob.SubmissionsTable,
			Columns: []string{gradingjob.SubmissionsColumn},
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
	_node = &GradingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
