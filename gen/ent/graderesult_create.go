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
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// GradeResultCreate is the builder for creating a GradeResult entity.
type GradeResultCreate struct {
	config
	mutation *GradeResultMutation
	hooks    []Hook
}

// SetSubmissionID sets the "submission_id" field.
func (_c *GradeResultCreate) SetSubmissionID(v uuid.UUID) *GradeResultCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GradeResultCreate) SetScore(v float64) *GradeResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *GradeResultCreate) SetFeedback(v string) *GradeResultCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetRubricBreakdown sets the "rubric_breakdown" field.
func (_c *GradeResultCreate) SetRubricBreakdown(v string) *GradeResultCreate {
	_c.mutation.SetRubricBreakdown(v)
	return _c
}

// SetNillableRubricBreakdown sets the "rubric_breakdown" field if the given value is not nil.
func (_c *GradeResultCreate) SetNillableRubricBreakdown(v *string) *GradeResultCreate {
	if v != nil {
		_c.SetRubricBreakdown(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GradeResultCreate) SetCreatedAt(v time.Time) *GradeResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GradeResultCreate) SetNillableCreatedAt(v *time.Time) *GradeResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GradeResultCreate) SetID(v uuid.UUID) *GradeResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GradeResultCreate) SetNillableID(v *uuid.UUID) *GradeResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *GradeResultCreate) SetSubmission(v *Submission) *GradeResultCreate {
	return _c.SetSubmissionID(v.ID)
}

// Mutation returns the GradeResultMutation object of the builder.
func (_c *GradeResultCreate) Mutation() *GradeResultMutation {
	return _c.mutation
}

// Save creates the GradeResult in the database.
func (_c *GradeResultCreate) Save(ctx context.Context) (*GradeResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeResultCreate) SaveX(ctx context.Context) *GradeResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeResultCreate) defaults() {
	if _, ok := _c.mutation.RubricBreakdown(); !ok {
		v := graderesult.DefaultRubricBreakdown
		_c.mutation.SetRubricBreakdown(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graderesult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := graderesult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeResultCreate) check() error {
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "GradeResult.submission_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GradeResult.score"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "GradeResult.feedback"`)}
	}
	if _, ok := _c.mutation.RubricBreakdown(); !ok {
		return &ValidationError{Name: "rubric_breakdown", err: errors.New(`ent: missing required field "GradeResult.rubric_breakdown"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GradeResult.created_at"`)}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "GradeResult.submission"`)}
	}
	return nil
}

func (_c *GradeResultCreate) sqlSave(ctx context.Context) (*GradeResult, error) {
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

func (_c *GradeResultCreate) createSpec() (*GradeResult, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graderesult.Table, sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(graderesult.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(graderesult.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.RubricBreakdown(); ok {
		_spec.SetField(graderesult.FieldRubricBreakdown, field.TypeString, value)
		_node.RubricBreakdown = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graderesult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_node.SubmissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GradeResultCreateBulk is the builder for creating many GradeResult entities in bulk.
type GradeResultCreateBulk struct {
	config
	err      error
	builders []*GradeResultCreate
}

// Save creates the GradeResult entities in the database.
func (_c *GradeResultCreateBulk) Save(ctx context.Context) ([]*GradeResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeResultMutation)
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
func (_c *GradeResultCreateBulk) SaveX(ctx context.Context) []*GradeResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
