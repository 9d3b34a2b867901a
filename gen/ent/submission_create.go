// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/graderesult"
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// SubmissionCreate is the builder for creating a Submission entity.
type SubmissionCreate struct {
	config
	mutation *SubmissionMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *SubmissionCreate) SetJobID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *SubmissionCreate) SetStudentName(v string) *SubmissionCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetNameSource sets the "name_source" field.
func (_c *SubmissionCreate) SetNameSource(v string) *SubmissionCreate {
	_c.mutation.SetNameSource(v)
	return _c
}

// SetNillableNameSource sets the "name_source" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableNameSource(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetNameSource(*v)
	}
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *SubmissionCreate) SetOriginalFilename(v string) *SubmissionCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetFileURI sets the "file_uri" field.
func (_c *SubmissionCreate) SetFileURI(v string) *SubmissionCreate {
	_c.mutation.SetFileURI(v)
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *SubmissionCreate) SetExtractedText(v string) *SubmissionCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableExtractedText(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionCreate) SetStatus(v string) *SubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableStatus(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SubmissionCreate) SetErrorMessage(v string) *SubmissionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableErrorMessage(v *string) *SubmissionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionCreate) SetCreatedAt(v time.Time) *SubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableCreatedAt(v *time.Time) *SubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionCreate) SetID(v uuid.UUID) *SubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubmissionCreate) SetNillableID(v *uuid.UUID) *SubmissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the GradingJob entity.
func (_c *SubmissionCreate) SetJob(v *GradingJob) *SubmissionCreate {
	return _c.SetJobID(v.ID)
}

// SetGradeResultID sets the "grade_result" edge to the GradeResult entity by ID.
func (_c *SubmissionCreate) SetGradeResultID(id uuid.UUID) *SubmissionCreate {
	_c.mutation.SetGradeResultID(id)
	return _c
}

// SetNillableGradeResultID sets the "grade_result" edge to the GradeResult entity by ID if the given value is not nil.
func (_c *SubmissionCreate) SetNillableGradeResultID(id *uuid.UUID) *SubmissionCreate {
	if id != nil {
		_c = _c.SetGradeResultID(*id)
	}
	return _c
}

// SetGradeResult sets the "grade_result" edge to the GradeResult entity.
func (_c *SubmissionCreate) SetGradeResult(v *GradeResult) *SubmissionCreate {
	return _c.SetGradeResultID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_c *SubmissionCreate) Mutation() *SubmissionMutation {
	return _c.mutation
}

// Save creates the Submission in the database.
func (_c *SubmissionCreate) Save(ctx context.Context) (*Submission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionCreate) SaveX(ctx context.Context) *Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionCreate) defaults() {
	if _, ok := _c.mutation.NameSource(); !ok {
		v := submission.DefaultNameSource
		_c.mutation.SetNameSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := submission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := submission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Submission.job_id"`)}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`ent: missing required field "Submission.student_name"`)}
	}
	if v, ok := _c.mutation.StudentName(); ok {
		if err := submission.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`ent: validator failed for field "Submission.student_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NameSource(); !ok {
		return &ValidationError{Name: "name_source", err: errors.New(`ent: missing required field "Submission.name_source"`)}
	}
	if v, ok := _c.mutation.NameSource(); ok {
		if err := submission.NameSourceValidator(v); err != nil {
			return &ValidationError{Name: "name_source", err: fmt.Errorf(`ent: validator failed for field "Submission.name_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "Submission.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := submission.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Submission.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileURI(); !ok {
		return &ValidationError{Name: "file_uri", err: errors.New(`ent: missing required field "Submission.file_uri"`)}
	}
	if v, ok := _c.mutation.FileURI(); ok {
		if err := submission.FileURIValidator(v); err != nil {
			return &ValidationError{Name: "file_uri", err: fmt.Errorf(`ent: validator failed for field "Submission.file_uri": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Submission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Submission.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Submission.job"`)}
	}
	return nil
}

func (_c *SubmissionCreate) sqlSave(ctx context.Context) (*Submission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmissionCreate) createSpec() (*Submission, *sqlgraph.CreateSpec) {
	var (
		_node = &Submission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submission.Table, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(submission.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.NameSource(); ok {
		_spec.SetField(submission.FieldNameSource, field.TypeString, value)
		_node.NameSource = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(submission.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.FileURI(); ok {
		_spec.SetField(submission.FieldFileURI, field.TypeString, value)
		_node.FileURI = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(submission.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(submission.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GradeResultIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmissionCreateBulk is the builder for creating many Submission entities in bulk.
type SubmissionCreateBulk struct {
	config
	err      error
	builders []*SubmissionCreate
}

// Save creates the Submission entities in the database.
func (_c *SubmissionCreateBulk) Save(ctx context.Context) ([]*Submission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Submission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubmissionCreateBulk) SaveX(ctx context.Context) []*Submission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
