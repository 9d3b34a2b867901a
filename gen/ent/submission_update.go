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
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
	"github.com/gradepilot/gradepilot/gen/ent/predicate"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *SubmissionUpdate) SetJobID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableJobID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *SubmissionUpdate) SetStudentName(v string) *SubmissionUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStudentName(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetNameSource sets the "name_source" field.
func (_u *SubmissionUpdate) SetNameSource(v string) *SubmissionUpdate {
	_u.mutation.SetNameSource(v)
	return _u
}

// SetNillableNameSource sets the "name_source" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableNameSource(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetNameSource(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *SubmissionUpdate) SetOriginalFilename(v string) *SubmissionUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableOriginalFilename(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileURI sets the "file_uri" field.
func (_u *SubmissionUpdate) SetFileURI(v string) *SubmissionUpdate {
	_u.mutation.SetFileURI(v)
	return _u
}

// SetNillableFileURI sets the "file_uri" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableFileURI(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetFileURI(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *SubmissionUpdate) SetExtractedText(v string) *SubmissionUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableExtractedText(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *SubmissionUpdate) ClearExtractedText() *SubmissionUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v string) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionUpdate) SetErrorMessage(v string) *SubmissionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableErrorMessage(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubmissionUpdate) ClearErrorMessage() *SubmissionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetJob sets the "job" edge to the GradingJob entity.
func (_u *SubmissionUpdate) SetJob(v *GradingJob) *SubmissionUpdate {
	return _u.SetJobID(v.ID)
}

// SetGradeResultID sets the "grade_result" edge to the GradeResult entity by ID.
func (_u *SubmissionUpdate) SetGradeResultID(id uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetGradeResultID(id)
	return _u
}

// SetNillableGradeResultID sets the "grade_result" edge to the GradeResult entity by ID if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGradeResultID(id *uuid.UUID) *SubmissionUpdate {
	if id != nil {
		_u = _u.SetGradeResultID(*id)
	}
	return _u
}

// SetGradeResult sets the "grade_result" edge to the GradeResult entity.
func (_u *SubmissionUpdate) SetGradeResult(v *GradeResult) *SubmissionUpdate {
	return _u.SetGradeResultID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the GradingJob entity.
func (_u *SubmissionUpdate) ClearJob() *SubmissionUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearGradeResult clears the "grade_result" edge to the GradeResult entity.
func (_u *SubmissionUpdate) ClearGradeResult() *SubmissionUpdate {
	_u.mutation.ClearGradeResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := submission.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "Submission.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameSource(); ok {
		if err := submission.NameSourceValidator(v); err != nil {
			return &ValidationError{Name: "name_source", err: fmt.Errorf(`ent: validator failed for field "Submission.name_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := submission.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Submission.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileURI(); ok {
		if err := submission.FileURIValidator(v); err != nil {
			return &ValidationError{Name: "file_uri", err: fmt.Errorf(`ent: validator failed for field "Submission.file_uri": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.job"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(submission.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameSource(); ok {
		_spec.SetField(submission.FieldNameSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(submission.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileURI(); ok {
		_spec.SetField(submission.FieldFileURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(submission.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(submission.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submission.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(submission.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.JobTable,
			Columns: []string{submission.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gradingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.JobTable,
			Columns: []string{submission.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gradingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GradeResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   submission.GradeResultTable,
			Columns: []string{submission.GradeResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GradeResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   submission.GradeResultTable,
			Columns: []string{submission.GradeResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetJobID sets the "job_id" field.
func (_u *SubmissionUpdateOne) SetJobID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableJobID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *SubmissionUpdateOne) SetStudentName(v string) *SubmissionUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStudentName(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetNameSource sets the "name_source" field.
func (_u *SubmissionUpdateOne) SetNameSource(v string) *SubmissionUpdateOne {
	_u.mutation.SetNameSource(v)
	return _u
}

// SetNillableNameSource sets the "name_source" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableNameSource(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetNameSource(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *SubmissionUpdateOne) SetOriginalFilename(v string) *SubmissionUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableOriginalFilename(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileURI sets the "file_uri" field.
func (_u *SubmissionUpdateOne) SetFileURI(v string) *SubmissionUpdateOne {
	_u.mutation.SetFileURI(v)
	return _u
}

// SetNillableFileURI sets the "file_uri" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableFileURI(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetFileURI(*v)
	}
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *SubmissionUpdateOne) SetExtractedText(v string) *SubmissionUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableExtractedText(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *SubmissionUpdateOne) ClearExtractedText() *SubmissionUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v string) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionUpdateOne) SetErrorMessage(v string) *SubmissionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableErrorMessage(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubmissionUpdateOne) ClearErrorMessage() *SubmissionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetJob sets the "job" edge to the GradingJob entity.
func (_u *SubmissionUpdateOne) SetJob(v *GradingJob) *SubmissionUpdateOne {
	return _u.SetJobID(v.ID)
}

// SetGradeResultID sets the "grade_result" edge to the GradeResult entity by ID.
func (_u *SubmissionUpdateOne) SetGradeResultID(id uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetGradeResultID(id)
	return _u
}

// SetNillableGradeResultID sets the "grade_result" edge to the GradeResult entity by ID if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGradeResultID(id *uuid.UUID) *SubmissionUpdateOne {
	if id != nil {
		_u = _u.SetGradeResultID(*id)
	}
	return _u
}

// SetGradeResult sets the "grade_result" edge to the GradeResult entity.
func (_u *SubmissionUpdateOne) SetGradeResult(v *GradeResult) *SubmissionUpdateOne {
	return _u.SetGradeResultID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the GradingJob entity.
func (_u *SubmissionUpdateOne) ClearJob() *SubmissionUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearGradeResult clears the "grade_result" edge to the GradeResult entity.
func (_u *SubmissionUpdateOne) ClearGradeResult() *SubmissionUpdateOne {
	_u.mutation.ClearGradeResult()
	return _u
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := submission.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "Submission.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameSource(); ok {
		if err := submission.NameSourceValidator(v); err != nil {
			return &ValidationError{Name: "name_source", err: fmt.Errorf(`ent: validator failed for field "Submission.name_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := submission.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Submission.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileURI(); ok {
		if err := submission.FileURIValidator(v); err != nil {
			return &ValidationError{Name: "file_uri", err: fmt.Errorf(`ent: validator failed for field "Submission.file_uri": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.job"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(submission.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameSource(); ok {
		_spec.SetField(submission.FieldNameSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(submission.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileURI(); ok {
		_spec.SetField(submission.FieldFileURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(submission.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(submission.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submission.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(submission.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.JobTable,
			Columns: []string{submission.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gradingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.JobTable,
			Columns: []string{submission.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gradingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GradeResultCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   submission.GradeResultTable,
			Columns: []string{submission.GradeResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GradeResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   submission.GradeResultTable,
			Columns: []string{submission.GradeResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
