// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/graderesult"
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
	"github.com/gradepilot/gradepilot/gen/ent/predicate"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGradeResult = "GradeResult"
	TypeGradingJob  = "GradingJob"
	TypeSubmission  = "Submission"
)

// GradeResultMutation represents an operation that mutates the GradeResult nodes in the graph.
type GradeResultMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	score             *float64
	addscore          *float64
	feedback          *string
	rubric_breakdown  *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	submission        *uuid.UUID
	clearedsubmission bool
	done              bool
	oldValue          func(context.Context) (*GradeResult, error)
	predicates        []predicate.GradeResult
}

var _ ent.Mutation = (*GradeResultMutation)(nil)

// graderesultOption allows management of the mutation configuration using functional options.
type graderesultOption func(*GradeResultMutation)

// newGradeResultMutation creates new mutation for the GradeResult entity.
func newGradeResultMutation(c config, op Op, opts ...graderesultOption) *GradeResultMutation {
	m := &GradeResultMutation{
		config:        c,
		op:            op,
		typ:           TypeGradeResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGradeResultID sets the ID field of the mutation.
func withGradeResultID(id uuid.UUID) graderesultOption {
	return func(m *GradeResultMutation) {
		var (
			err   error
			once  sync.Once
			value *GradeResult
		)
		m.oldValue = func(ctx context.Context) (*GradeResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GradeResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGradeResult sets the old GradeResult of the mutation.
func withGradeResult(node *GradeResult) graderesultOption {
	return func(m *GradeResultMutation) {
		m.oldValue = func(context.Context) (*GradeResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GradeResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GradeResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GradeResult entities.
func (m *GradeResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GradeResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GradeResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GradeResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubmissionID sets the "submission_id" field.
func (m *GradeResultMutation) SetSubmissionID(u uuid.UUID) {
	m.submission = &u
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *GradeResultMutation) SubmissionID() (r uuid.UUID, exists bool) {
	v := m.submission
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldSubmissionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *GradeResultMutation) ResetSubmissionID() {
	m.submission = nil
}

// SetScore sets the "score" field.
func (m *GradeResultMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *GradeResultMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *GradeResultMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *GradeResultMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *GradeResultMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetFeedback sets the "feedback" field.
func (m *GradeResultMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *GradeResultMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *GradeResultMutation) ResetFeedback() {
	m.feedback = nil
}

// SetRubricBreakdown sets the "rubric_breakdown" field.
func (m *GradeResultMutation) SetRubricBreakdown(s string) {
	m.rubric_breakdown = &s
}

// RubricBreakdown returns the value of the "rubric_breakdown" field in the mutation.
func (m *GradeResultMutation) RubricBreakdown() (r string, exists bool) {
	v := m.rubric_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldRubricBreakdown returns the old "rubric_breakdown" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldRubricBreakdown(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRubricBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRubricBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRubricBreakdown: %w", err)
	}
	return oldValue.RubricBreakdown, nil
}

// ResetRubricBreakdown resets all changes to the "rubric_breakdown" field.
func (m *GradeResultMutation) ResetRubricBreakdown() {
	m.rubric_breakdown = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GradeResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GradeResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GradeResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (m *GradeResultMutation) ClearSubmission() {
	m.clearedsubmission = true
	m.clearedFields[graderesult.FieldSubmissionID] = struct{}{}
}

// SubmissionCleared reports if the "submission" edge to the Submission entity was cleared.
func (m *GradeResultMutation) SubmissionCleared() bool {
	return m.clearedsubmission
}

// SubmissionIDs returns the "submission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmissionID instead. It exists only for internal usage by the builders.
func (m *GradeResultMutation) SubmissionIDs() (ids []uuid.UUID) {
	if id := m.submission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmission resets all changes to the "submission" edge.
func (m *GradeResultMutation) ResetSubmission() {
	m.submission = nil
	m.clearedsubmission = false
}

// Where appends a list predicates to the GradeResultMutation builder.
func (m *GradeResultMutation) Where(ps ...predicate.GradeResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GradeResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GradeResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GradeResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GradeResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GradeResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GradeResult).
func (m *GradeResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GradeResultMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.submission != nil {
		fields = append(fields, graderesult.FieldSubmissionID)
	}
	if m.score != nil {
		fields = append(fields, graderesult.FieldScore)
	}
	if m.feedback != nil {
		fields = append(fields, graderesult.FieldFeedback)
	}
	if m.rubric_breakdown != nil {
		fields = append(fields, graderesult.FieldRubricBreakdown)
	}
	if m.created_at != nil {
		fields = append(fields, graderesult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GradeResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graderesult.FieldSubmissionID:
		return m.SubmissionID()
	case graderesult.FieldScore:
		return m.Score()
	case graderesult.FieldFeedback:
		return m.Feedback()
	case graderesult.FieldRubricBreakdown:
		return m.RubricBreakdown()
	case graderesult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GradeResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graderesult.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case graderesult.FieldScore:
		return m.OldScore(ctx)
	case graderesult.FieldFeedback:
		return m.OldFeedback(ctx)
	case graderesult.FieldRubricBreakdown:
		return m.OldRubricBreakdown(ctx)
	case graderesult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GradeResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graderesult.FieldSubmissionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case graderesult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case graderesult.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case graderesult.FieldRubricBreakdown:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRubricBreakdown(v)
		return nil
	case graderesult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GradeResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GradeResultMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, graderesult.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GradeResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case graderesult.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case graderesult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown GradeResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GradeResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GradeResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GradeResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GradeResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GradeResultMutation) ResetField(name string) error {
	switch name {
	case graderesult.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case graderesult.FieldScore:
		m.ResetScore()
		return nil
	case graderesult.FieldFeedback:
		m.ResetFeedback()
		return nil
	case graderesult.FieldRubricBreakdown:
		m.ResetRubricBreakdown()
		return nil
	case graderesult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GradeResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GradeResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submission != nil {
		edges = append(edges, graderesult.EdgeSubmission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GradeResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case graderesult.EdgeSubmission:
		if id := m.submission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GradeResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GradeResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GradeResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmission {
		edges = append(edges, graderesult.EdgeSubmission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GradeResultMutation) EdgeCleared(name string) bool {
	switch name {
	case graderesult.EdgeSubmission:
		return m.clearedsubmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GradeResultMutation) ClearEdge(name string) error {
	switch name {
	case graderesult.EdgeSubmission:
		m.ClearSubmission()
		return nil
	}
	return fmt.Errorf("unknown GradeResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GradeResultMutation) ResetEdge(name string) error {
	switch name {
	case graderesult.EdgeSubmission:
		m.ResetSubmission()
		return nil
	}
	return fmt.Errorf("unknown GradeResult edge %s", name)
}

// GradingJobMutation represents an operation that mutates the GradingJob nodes in the graph.
type GradingJobMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	title                        *string
	total_points                 *int
	addtotal_points              *int
	strictness                   *string
	grade_level                  *string
	assignment_instructions_text *string
	rubric_text                  *string
	status                       *string
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	submissions                  map[uuid.UUID]struct{}
	removedsubmissions           map[uuid.UUID]struct{}
	clearedsubmissions           bool
	done                         bool
	oldValue                     func(context.Context) (*GradingJob, error)
	predicates                   []predicate.GradingJob
}

var _ ent.Mutation = (*GradingJobMutation)(nil)

// gradingjobOption allows management of the mutation configuration using functional options.
type gradingjobOption func(*GradingJobMutation)

// newGradingJobMutation creates new mutation for the GradingJob entity.
func newGradingJobMutation(c config, op Op, opts ...gradingjobOption) *GradingJobMutation {
	m := &GradingJobMutation{
		config:        c,
		op:            op,
		typ:           TypeGradingJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGradingJobID sets the ID field of the mutation.
func withGradingJobID(id uuid.UUID) gradingjobOption {
	return func(m *GradingJobMutation) {
		var (
			err   error
			once  sync.Once
			value *GradingJob
		)
		m.oldValue = func(ctx context.Context) (*GradingJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GradingJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGradingJob sets the old GradingJob of the mutation.
func withGradingJob(node *GradingJob) gradingjobOption {
	return func(m *GradingJobMutation) {
		m.oldValue = func(context.Context) (*GradingJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GradingJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GradingJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GradingJob entities.
func (m *GradingJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GradingJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GradingJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GradingJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *GradingJobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *GradingJobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the GradingJob entity.
// If the GradingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradingJobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *GradingJobMutation) ResetTitle() {
	m.title = nil
}

// SetTotalPoints sets the "total_points" field.
func (m *GradingJobMutation) SetTotalPoints(i int) {
	m.total_points = &i
	m.addtotal_points = nil
}

// TotalPoints returns the value of the "total_points" field in the mutation.
func (m *GradingJobMutation) TotalPoints() (r int, exists bool) {
	v := m.total_points
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPoints returns the old "total_points" field's value of the GradingJob entity.
// If the GradingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradingJobMutation) OldTotalPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPoints: %w", err)
	}
	return oldValue.TotalPoints, nil
}

// AddTotalPoints adds i to the "total_points" field.
func (m *GradingJobMutation) AddTotalPoints(i int) {
	if m.addtotal_points != nil {
		*m.addtotal_points += i
	} else {
		m.addtotal_points = &i
	}
}

// AddedTotalPoints returns the value that was added to the "total_points" field in this mutation.
func (m *GradingJobMutation) AddedTotalPoints() (r int, exists bool) {
	v := m.addtotal_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPoints resets all changes to the "total_points" field.
func (m *GradingJobMutation) ResetTotalPoints() {
	m.total_points = nil
	m.addtotal_points = nil
}

// SetStrictness sets the "strictness" field.
func (m *GradingJobMutation) SetStrictness(s string) {
	m.strictness = &s
}

// Strictness returns the value of the "strictness" field in the mutation.
func (m *GradingJobMutation) Strictness() (r string, exists bool) {
	v := m.strictness
	if v == nil {
		return
	}
	return *v, true
}

// OldStrictness returns the old "strictness" field's value of the GradingJob entity.
// If the GradingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradingJobMutation) OldStrictness(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrictness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrictness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrictness: %w", err)
	}
	return oldValue.Strictness, nil
}

// ResetStrictness resets all changes to the "strictness" field.
func (m *GradingJobMutation) ResetStrictness() {
	m.strictness = nil
}

// SetGradeLevel sets the "grade_level" field.
func (m *GradingJobMutation) SetGradeLevel(s string) {
	m.grade_level = &s
}

// GradeLevel returns the value of the "grade_level" field in the mutation.
func (m *GradingJobMutation) GradeLevel() (r string, exists bool) {
	v := m.grade_level
	if v == nil {
		return
	}
	return *v, true
}

// OldGradeLevel returns the old "grade_level" field's value of the GradingJob entity.
// If the GradingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradingJobMutation) OldGradeLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradeLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradeLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradeLevel: %w", err)
	}
	return oldValue.GradeLevel, nil
}

// ClearGradeLevel clears the value of the "grade_level" field.
func (m *GradingJobMutation) ClearGradeLevel() {
	m.grade_level = nil
	m.clearedFields[gradingjob.FieldGradeLevel] = struct{}{}
}

// GradeLevelCleared returns if the "grade_level" field was cleared in this mutation.
func (m *GradingJobMutation) GradeLevelCleared() bool {
	_, ok := m.clearedFields[gradingjob.FieldGradeLevel]
	return ok
}

// ResetGradeLevel resets all changes to the "grade_level" field.
func (m *GradingJobMutation) ResetGradeLevel() {
	m.grade_level = nil
	delete(m.clearedFields, gradingjob.FieldGradeLevel)
}

// SetAssignmentInstructionsText sets the "assignment_instructions_text" field.
func (m *GradingJobMutation) SetAssignmentInstructionsText(s string) {
	m.assignment_instructions_text = &s
}

// AssignmentInstructionsText returns the value of the "assignment_instructions_text" field in the mutation.
func (m *GradingJobMutation) AssignmentInstructionsText() (r string, exists bool) {
	v := m.assignment_instructions_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentInstructionsText returns the old "assignment_instructions_text" field's value of the GradingJob entity.
// If the GradingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradingJobMutation) OldAssignmentInstructionsText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentInstructionsText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentInstructionsText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentInstructionsText: %w", err)
	}
	return oldValue.AssignmentInstructionsText, nil
}

// ResetAssignmentInstructionsText resets all changes to the "assignment_instructions_text" field.
func (m *GradingJobMutation) ResetAssignmentInstructionsText() {
	m.assignment_instructions_text = nil
}

// SetRubricText sets the "rubric_text" field.
func (m *GradingJobMutation) SetRubricText(s string) {
	m.rubric_text = &s
}

// RubricText returns the value of the "rubric_text" field in the mutation.
func (m *GradingJobMutation) RubricText() (r string, exists bool) {
	v := m.rubric_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRubricText returns the old "rubric_text" field's value of the GradingJob entity.
// If the GradingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradingJobMutation) OldRubricText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRubricText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRubricText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRubricText: %w", err)
	}
	return oldValue.RubricText, nil
}

// ClearRubricText clears the value of the "rubric_text" field.
func (m *GradingJobMutation) ClearRubricText() {
	m.rubric_text = nil
	m.clearedFields[gradingjob.FieldRubricText] = struct{}{}
}

// RubricTextCleared returns if the "rubric_text" field was cleared in this mutation.
func (m *GradingJobMutation) RubricTextCleared() bool {
	_, ok := m.clearedFields[gradingjob.FieldRubricText]
	return ok
}

// ResetRubricText resets all changes to the "rubric_text" field.
func (m *GradingJobMutation) ResetRubricText() {
	m.rubric_text = nil
	delete(m.clearedFields, gradingjob.FieldRubricText)
}

// SetStatus sets the "status" field.
func (m *GradingJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *GradingJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GradingJob entity.
// If the GradingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradingJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GradingJobMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GradingJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GradingJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GradingJob entity.
// If the GradingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradingJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GradingJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *GradingJobMutation) AddSubmissionIDs(ids ...uuid.UUID) {
	if m.submissions == nil {
		m.submissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *GradingJobMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *GradingJobMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *GradingJobMutation) RemoveSubmissionIDs(ids ...uuid.UUID) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *GradingJobMutation) RemovedSubmissionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *GradingJobMutation) SubmissionsIDs() (ids []uuid.UUID) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *GradingJobMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the GradingJobMutation builder.
func (m *GradingJobMutation) Where(ps ...predicate.GradingJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GradingJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GradingJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GradingJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GradingJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GradingJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GradingJob).
func (m *GradingJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GradingJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, gradingjob.FieldTitle)
	}
	if m.total_points != nil {
		fields = append(fields, gradingjob.FieldTotalPoints)
	}
	if m.strictness != nil {
		fields = append(fields, gradingjob.FieldStrictness)
	}
	if m.grade_level != nil {
		fields = append(fields, gradingjob.FieldGradeLevel)
	}
	if m.assignment_instructions_text != nil {
		fields = append(fields, gradingjob.FieldAssignmentInstructionsText)
	}
	if m.rubric_text != nil {
		fields = append(fields, gradingjob.FieldRubricText)
	}
	if m.status != nil {
		fields = append(fields, gradingjob.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, gradingjob.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GradingJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gradingjob.FieldTitle:
		return m.Title()
	case gradingjob.FieldTotalPoints:
		return m.TotalPoints()
	case gradingjob.FieldStrictness:
		return m.Strictness()
	case gradingjob.FieldGradeLevel:
		return m.GradeLevel()
	case gradingjob.FieldAssignmentInstructionsText:
		return m.AssignmentInstructionsText()
	case gradingjob.FieldRubricText:
		return m.RubricText()
	case gradingjob.FieldStatus:
		return m.Status()
	case gradingjob.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GradingJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gradingjob.FieldTitle:
		return m.OldTitle(ctx)
	case gradingjob.FieldTotalPoints:
		return m.OldTotalPoints(ctx)
	case gradingjob.FieldStrictness:
		return m.OldStrictness(ctx)
	case gradingjob.FieldGradeLevel:
		return m.OldGradeLevel(ctx)
	case gradingjob.FieldAssignmentInstructionsText:
		return m.OldAssignmentInstructionsText(ctx)
	case gradingjob.FieldRubricText:
		return m.OldRubricText(ctx)
	case gradingjob.FieldStatus:
		return m.OldStatus(ctx)
	case gradingjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GradingJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradingJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gradingjob.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case gradingjob.FieldTotalPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPoints(v)
		return nil
	case gradingjob.FieldStrictness:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrictness(v)
		return nil
	case gradingjob.FieldGradeLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradeLevel(v)
		return nil
	case gradingjob.FieldAssignmentInstructionsText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentInstructionsText(v)
		return nil
	case gradingjob.FieldRubricText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRubricText(v)
		return nil
	case gradingjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case gradingjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GradingJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GradingJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_points != nil {
		fields = append(fields, gradingjob.FieldTotalPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GradingJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gradingjob.FieldTotalPoints:
		return m.AddedTotalPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradingJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gradingjob.FieldTotalPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPoints(v)
		return nil
	}
	return fmt.Errorf("unknown GradingJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GradingJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gradingjob.FieldGradeLevel) {
		fields = append(fields, gradingjob.FieldGradeLevel)
	}
	if m.FieldCleared(gradingjob.FieldRubricText) {
		fields = append(fields, gradingjob.FieldRubricText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GradingJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GradingJobMutation) ClearField(name string) error {
	switch name {
	case gradingjob.FieldGradeLevel:
		m.ClearGradeLevel()
		return nil
	case gradingjob.FieldRubricText:
		m.ClearRubricText()
		return nil
	}
	return fmt.Errorf("unknown GradingJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GradingJobMutation) ResetField(name string) error {
	switch name {
	case gradingjob.FieldTitle:
		m.ResetTitle()
		return nil
	case gradingjob.FieldTotalPoints:
		m.ResetTotalPoints()
		return nil
	case gradingjob.FieldStrictness:
		m.ResetStrictness()
		return nil
	case gradingjob.FieldGradeLevel:
		m.ResetGradeLevel()
		return nil
	case gradingjob.FieldAssignmentInstructionsText:
		m.ResetAssignmentInstructionsText()
		return nil
	case gradingjob.FieldRubricText:
		m.ResetRubricText()
		return nil
	case gradingjob.FieldStatus:
		m.ResetStatus()
		return nil
	case gradingjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GradingJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GradingJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submissions != nil {
		edges = append(edges, gradingjob.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GradingJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gradingjob.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GradingJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsubmissions != nil {
		edges = append(edges, gradingjob.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GradingJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case gradingjob.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GradingJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmissions {
		edges = append(edges, gradingjob.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GradingJobMutation) EdgeCleared(name string) bool {
	switch name {
	case gradingjob.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GradingJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown GradingJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GradingJobMutation) ResetEdge(name string) error {
	switch name {
	case gradingjob.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown GradingJob edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	student_name        *string
	name_source         *string
	original_filename   *string
	file_uri            *string
	extracted_text      *string
	status              *string
	error_message       *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	job                 *uuid.UUID
	clearedjob          bool
	grade_result        *uuid.UUID
	clearedgrade_result bool
	done                bool
	oldValue            func(context.Context) (*Submission, error)
	predicates          []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id uuid.UUID) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submission entities.
func (m *SubmissionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *SubmissionMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *SubmissionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *SubmissionMutation) ResetJobID() {
	m.job = nil
}

// SetStudentName sets the "student_name" field.
func (m *SubmissionMutation) SetStudentName(s string) {
	m.student_name = &s
}

// StudentName returns the value of the "student_name" field in the mutation.
func (m *SubmissionMutation) StudentName() (r string, exists bool) {
	v := m.student_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentName returns the old "student_name" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldStudentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentName: %w", err)
	}
	return oldValue.StudentName, nil
}

// ResetStudentName resets all changes to the "student_name" field.
func (m *SubmissionMutation) ResetStudentName() {
	m.student_name = nil
}

// SetNameSource sets the "name_source" field.
func (m *SubmissionMutation) SetNameSource(s string) {
	m.name_source = &s
}

// NameSource returns the value of the "name_source" field in the mutation.
func (m *SubmissionMutation) NameSource() (r string, exists bool) {
	v := m.name_source
	if v == nil {
		return
	}
	return *v, true
}

// OldNameSource returns the old "name_source" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldNameSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameSource: %w", err)
	}
	return oldValue.NameSource, nil
}

// ResetNameSource resets all changes to the "name_source" field.
func (m *SubmissionMutation) ResetNameSource() {
	m.name_source = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *SubmissionMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *SubmissionMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *SubmissionMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetFileURI sets the "file_uri" field.
func (m *SubmissionMutation) SetFileURI(s string) {
	m.file_uri = &s
}

// FileURI returns the value of the "file_uri" field in the mutation.
func (m *SubmissionMutation) FileURI() (r string, exists bool) {
	v := m.file_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldFileURI returns the old "file_uri" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldFileURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileURI: %w", err)
	}
	return oldValue.FileURI, nil
}

// ResetFileURI resets all changes to the "file_uri" field.
func (m *SubmissionMutation) ResetFileURI() {
	m.file_uri = nil
}

// SetExtractedText sets the "extracted_text" field.
func (m *SubmissionMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *SubmissionMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *SubmissionMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[submission.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *SubmissionMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[submission.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *SubmissionMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, submission.FieldExtractedText)
}

// SetStatus sets the "status" field.
func (m *SubmissionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubmissionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SubmissionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SubmissionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SubmissionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[submission.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SubmissionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[submission.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SubmissionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, submission.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the GradingJob entity.
func (m *SubmissionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[submission.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the GradingJob entity was cleared.
func (m *SubmissionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *SubmissionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// SetGradeResultID sets the "grade_result" edge to the GradeResult entity by id.
func (m *SubmissionMutation) SetGradeResultID(id uuid.UUID) {
	m.grade_result = &id
}

// ClearGradeResult clears the "grade_result" edge to the GradeResult entity.
func (m *SubmissionMutation) ClearGradeResult() {
	m.clearedgrade_result = true
}

// GradeResultCleared reports if the "grade_result" edge to the GradeResult entity was cleared.
func (m *SubmissionMutation) GradeResultCleared() bool {
	return m.clearedgrade_result
}

// GradeResultID returns the "grade_result" edge ID in the mutation.
func (m *SubmissionMutation) GradeResultID() (id uuid.UUID, exists bool) {
	if m.grade_result != nil {
		return *m.grade_result, true
	}
	return
}

// GradeResultIDs returns the "grade_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GradeResultID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) GradeResultIDs() (ids []uuid.UUID) {
	if id := m.grade_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGradeResult resets all changes to the "grade_result" edge.
func (m *SubmissionMutation) ResetGradeResult() {
	m.grade_result = nil
	m.clearedgrade_result = false
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.job != nil {
		fields = append(fields, submission.FieldJobID)
	}
	if m.student_name != nil {
		fields = append(fields, submission.FieldStudentName)
	}
	if m.name_source != nil {
		fields = append(fields, submission.FieldNameSource)
	}
	if m.original_filename != nil {
		fields = append(fields, submission.FieldOriginalFilename)
	}
	if m.file_uri != nil {
		fields = append(fields, submission.FieldFileURI)
	}
	if m.extracted_text != nil {
		fields = append(fields, submission.FieldExtractedText)
	}
	if m.status != nil {
		fields = append(fields, submission.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, submission.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldJobID:
		return m.JobID()
	case submission.FieldStudentName:
		return m.StudentName()
	case submission.FieldNameSource:
		return m.NameSource()
	case submission.FieldOriginalFilename:
		return m.OriginalFilename()
	case submission.FieldFileURI:
		return m.FileURI()
	case submission.FieldExtractedText:
		return m.ExtractedText()
	case submission.FieldStatus:
		return m.Status()
	case submission.FieldErrorMessage:
		return m.ErrorMessage()
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldJobID:
		return m.OldJobID(ctx)
	case submission.FieldStudentName:
		return m.OldStudentName(ctx)
	case submission.FieldNameSource:
		return m.OldNameSource(ctx)
	case submission.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case submission.FieldFileURI:
		return m.OldFileURI(ctx)
	case submission.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case submission.FieldStatus:
		return m.OldStatus(ctx)
	case submission.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case submission.FieldStudentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentName(v)
		return nil
	case submission.FieldNameSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameSource(v)
		return nil
	case submission.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case submission.FieldFileURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileURI(v)
		return nil
	case submission.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case submission.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case submission.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldExtractedText) {
		fields = append(fields, submission.FieldExtractedText)
	}
	if m.FieldCleared(submission.FieldErrorMessage) {
		fields = append(fields, submission.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case submission.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldJobID:
		m.ResetJobID()
		return nil
	case submission.FieldStudentName:
		m.ResetStudentName()
		return nil
	case submission.FieldNameSource:
		m.ResetNameSource()
		return nil
	case submission.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case submission.FieldFileURI:
		m.ResetFileURI()
		return nil
	case submission.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case submission.FieldStatus:
		m.ResetStatus()
		return nil
	case submission.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, submission.EdgeJob)
	}
	if m.grade_result != nil {
		edges = append(edges, submission.EdgeGradeResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case submission.EdgeGradeResult:
		if id := m.grade_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, submission.EdgeJob)
	}
	if m.clearedgrade_result {
		edges = append(edges, submission.EdgeGradeResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case submission.EdgeJob:
		return m.clearedjob
	case submission.EdgeGradeResult:
		return m.clearedgrade_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	switch name {
	case submission.EdgeJob:
		m.ClearJob()
		return nil
	case submission.EdgeGradeResult:
		m.ClearGradeResult()
		return nil
	}
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	switch name {
	case submission.EdgeJob:
		m.ResetJob()
		return nil
	case submission.EdgeGradeResult:
		m.ResetGradeResult()
		return nil
	}
	return fmt.Errorf("unknown Submission edge %s", name)
}
