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
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// GradingJobCreate is the builder for creating a GradingJob entity.
type GradingJobCreate struct {
	config
	mutation *GradingJobMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *GradingJobCreate) SetTitle(v string) *GradingJobCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *GradingJobCreate) SetTotalPoints(v int) *GradingJobCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetStrictness sets the "strictness" field.
func (_c *GradingJobCreate) SetStrictness(v string) *GradingJobCreate {
	_c.mutation.SetStrictness(v)
	return _c
}

// SetNillableStrictness sets the "strictness" field if the given value is not nil.
func (_c *GradingJobCreate) SetNillableStrictness(v *string) *GradingJobCreate {
	if v != nil {
		_c.SetStrictness(*v)
	}
	return _c
}

// SetGradeLevel sets the "grade_level" field.
func (_c *GradingJobCreate) SetGradeLevel(v string) *GradingJobCreate {
	_c.mutation.SetGradeLevel(v)
	return _c
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_c *GradingJobCreate) SetNillableGradeLevel(v *string) *GradingJobCreate {
	if v != nil {
		_c.SetGradeLevel(*v)
	}
	return _c
}

// SetAssignmentInstructionsText sets the "assignment_instructions_text" field.
func (_c *GradingJobCreate) SetAssignmentInstructionsText(v string) *GradingJobCreate {
	_c.mutation.SetAssignmentInstructionsText(v)
	return _c
}

// SetRubricText sets the "rubric_text" field.
func (_c *GradingJobCreate) SetRubricText(v string) *GradingJobCreate {
	_c.mutation.SetRubricText(v)
	return _c
}

// SetNillableRubricText sets the "rubric_text" field if the given value is not nil.
func (_c *GradingJobCreate) SetNillableRubricText(v *string) *GradingJobCreate {
	if v != nil {
		_c.SetRubricText(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GradingJobCreate) SetStatus(v string) *GradingJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GradingJobCreate) SetNillableStatus(v *string) *GradingJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GradingJobCreate) SetCreatedAt(v time.Time) *GradingJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GradingJobCreate) SetNillableCreatedAt(v *time.Time) *GradingJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GradingJobCreate) SetID(v uuid.UUID) *GradingJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GradingJobCreate) SetNillableID(v *uuid.UUID) *GradingJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *GradingJobCreate) AddSubmissionIDs(ids ...uuid.UUID) *GradingJobCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *GradingJobCreate) AddSubmissions(v ...*Submission) *GradingJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the GradingJobMutation object of the builder.
func (_c *GradingJobCreate) Mutation() *GradingJobMutation {
	return _c.mutation
}

// Save creates the GradingJob in the database.
func (_c *GradingJobCreate) Save(ctx context.Context) (*GradingJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradingJobCreate) SaveX(ctx context.Context) *GradingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradingJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradingJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradingJobCreate) defaults() {
	if _, ok := _c.mutation.Strictness(); !ok {
		v := gradingjob.DefaultStrictness
		_c.mutation.SetStrictness(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := gradingjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gradingjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gradingjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradingJobCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "GradingJob.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := gradingjob.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "GradingJob.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "GradingJob.total_points"`)}
	}
	if v, ok := _c.mutation.TotalPoints(); ok {
		if err := gradingjob.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "GradingJob.total_points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strictness(); !ok {
		return &ValidationError{Name: "strictness", err: errors.New(`ent: missing required field "GradingJob.strictness"`)}
	}
	if v, ok := _c.mutation.Strictness(); ok {
		if err := gradingjob.StrictnessValidator(v); err != nil {
			return &ValidationError{Name: "strictness", err: fmt.Errorf(`ent: validator failed for field "GradingJob.strictness": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignmentInstructionsText(); !ok {
		return &ValidationError{Name: "assignment_instructions_text", err: errors.New(`ent: missing required field "GradingJob.assignment_instructions_text"`)}
	}
	if v, ok := _c.mutation.AssignmentInstructionsText(); ok {
		if err := gradingjob.AssignmentInstructionsTextValidator(v); err != nil {
			return &ValidationError{Name: "assignment_instructions_text", err: fmt.Errorf(`ent: validator failed for field "GradingJob.assignment_instructions_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GradingJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := gradingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GradingJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GradingJob.created_at"`)}
	}
	return nil
}

func (_c *GradingJobCreate) sqlSave(ctx context.Context) (*GradingJob, error) {
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

func (_c *GradingJobCreate) createSpec() (*GradingJob, *sqlgraph.CreateSpec) {
	var (
		_node = &GradingJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradingjob.Table, sqlgraph.NewFieldSpec(gradingjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(gradingjob.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(gradingjob.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.Strictness(); ok {
		_spec.SetField(gradingjob.FieldStrictness, field.TypeString, value)
		_node.Strictness = value
	}
	if value, ok := _c.mutation.GradeLevel(); ok {
		_spec.SetField(gradingjob.FieldGradeLevel, field.TypeString, value)
		_node.GradeLevel = &value
	}
	if value, ok := _c.mutation.AssignmentInstructionsText(); ok {
		_spec.SetField(gradingjob.FieldAssignmentInstructionsText, field.TypeString, value)
		_node.AssignmentInstructionsText = value
	}
	if value, ok := _c.mutation.RubricText(); ok {
		_spec.SetField(gradingjob.FieldRubricText, field.TypeString, value)
		_node.RubricText = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(gradingjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gradingjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GradingJobCreateBulk is the builder for creating many GradingJob entities in bulk.
type GradingJobCreateBulk struct {
	config
	err      error
	builders []*GradingJobCreate
}

// Save creates the GradingJob entities in the database.
func (_c *GradingJobCreateBulk) Save(ctx context.Context) ([]*GradingJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradingJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradingJobMutation)
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
func (_c *GradingJobCreateBulk) SaveX(ctx context.Context) []*GradingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradingJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradingJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
