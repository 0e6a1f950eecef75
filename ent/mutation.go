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
	"github.com/labtrail/labtrail/ent/adminaction"
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/ent/patient"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
	"github.com/labtrail/labtrail/ent/predicate"
	"github.com/labtrail/labtrail/ent/report"
	"github.com/labtrail/labtrail/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdminAction    = "AdminAction"
	TypeAnalyte        = "Analyte"
	TypeAnalyteAlias   = "AnalyteAlias"
	TypeLabResult      = "LabResult"
	TypeMatchReview    = "MatchReview"
	TypePatient        = "Patient"
	TypePendingAnalyte = "PendingAnalyte"
	TypeReport         = "Report"
	TypeUser           = "User"
)

// AdminActionMutation represents an operation that mutates the AdminAction nodes in the graph.
type AdminActionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	actor_id      *uuid.UUID
	actor_email   *string
	action        *string
	target        *string
	detail        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AdminAction, error)
	predicates    []predicate.AdminAction
}

var _ ent.Mutation = (*AdminActionMutation)(nil)

// adminactionOption allows management of the mutation configuration using functional options.
type adminactionOption func(*AdminActionMutation)

// newAdminActionMutation creates new mutation for the AdminAction entity.
func newAdminActionMutation(c config, op Op, opts ...adminactionOption) *AdminActionMutation {
	m := &AdminActionMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminActionID sets the ID field of the mutation.
func withAdminActionID(id uuid.UUID) adminactionOption {
	return func(m *AdminActionMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminAction
		)
		m.oldValue = func(ctx context.Context) (*AdminAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminAction sets the old AdminAction of the mutation.
func withAdminAction(node *AdminAction) adminactionOption {
	return func(m *AdminActionMutation) {
		m.oldValue = func(context.Context) (*AdminAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdminAction entities.
func (m *AdminActionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminActionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminActionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActorID sets the "actor_id" field.
func (m *AdminActionMutation) SetActorID(u uuid.UUID) {
	m.actor_id = &u
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *AdminActionMutation) ActorID() (r uuid.UUID, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the AdminAction entity.
// If the AdminAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminActionMutation) OldActorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *AdminActionMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[adminaction.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *AdminActionMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[adminaction.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *AdminActionMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, adminaction.FieldActorID)
}

// SetActorEmail sets the "actor_email" field.
func (m *AdminActionMutation) SetActorEmail(s string) {
	m.actor_email = &s
}

// ActorEmail returns the value of the "actor_email" field in the mutation.
func (m *AdminActionMutation) ActorEmail() (r string, exists bool) {
	v := m.actor_email
	if v == nil {
		return
	}
	return *v, true
}

// OldActorEmail returns the old "actor_email" field's value of the AdminAction entity.
// If the AdminAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminActionMutation) OldActorEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorEmail: %w", err)
	}
	return oldValue.ActorEmail, nil
}

// ClearActorEmail clears the value of the "actor_email" field.
func (m *AdminActionMutation) ClearActorEmail() {
	m.actor_email = nil
	m.clearedFields[adminaction.FieldActorEmail] = struct{}{}
}

// ActorEmailCleared returns if the "actor_email" field was cleared in this mutation.
func (m *AdminActionMutation) ActorEmailCleared() bool {
	_, ok := m.clearedFields[adminaction.FieldActorEmail]
	return ok
}

// ResetActorEmail resets all changes to the "actor_email" field.
func (m *AdminActionMutation) ResetActorEmail() {
	m.actor_email = nil
	delete(m.clearedFields, adminaction.FieldActorEmail)
}

// SetAction sets the "action" field.
func (m *AdminActionMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AdminActionMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AdminAction entity.
// If the AdminAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminActionMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AdminActionMutation) ResetAction() {
	m.action = nil
}

// SetTarget sets the "target" field.
func (m *AdminActionMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *AdminActionMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the AdminAction entity.
// If the AdminAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminActionMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ClearTarget clears the value of the "target" field.
func (m *AdminActionMutation) ClearTarget() {
	m.target = nil
	m.clearedFields[adminaction.FieldTarget] = struct{}{}
}

// TargetCleared returns if the "target" field was cleared in this mutation.
func (m *AdminActionMutation) TargetCleared() bool {
	_, ok := m.clearedFields[adminaction.FieldTarget]
	return ok
}

// ResetTarget resets all changes to the "target" field.
func (m *AdminActionMutation) ResetTarget() {
	m.target = nil
	delete(m.clearedFields, adminaction.FieldTarget)
}

// SetDetail sets the "detail" field.
func (m *AdminActionMutation) SetDetail(value map[string]interface{}) {
	m.detail = &value
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AdminActionMutation) Detail() (r map[string]interface{}, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AdminAction entity.
// If the AdminAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminActionMutation) OldDetail(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AdminActionMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[adminaction.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AdminActionMutation) DetailCleared() bool {
	_, ok := m.clearedFields[adminaction.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AdminActionMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, adminaction.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminAction entity.
// If the AdminAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AdminActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AdminActionMutation builder.
func (m *AdminActionMutation) Where(ps ...predicate.AdminAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminAction).
func (m *AdminActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminActionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.actor_id != nil {
		fields = append(fields, adminaction.FieldActorID)
	}
	if m.actor_email != nil {
		fields = append(fields, adminaction.FieldActorEmail)
	}
	if m.action != nil {
		fields = append(fields, adminaction.FieldAction)
	}
	if m.target != nil {
		fields = append(fields, adminaction.FieldTarget)
	}
	if m.detail != nil {
		fields = append(fields, adminaction.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, adminaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adminaction.FieldActorID:
		return m.ActorID()
	case adminaction.FieldActorEmail:
		return m.ActorEmail()
	case adminaction.FieldAction:
		return m.Action()
	case adminaction.FieldTarget:
		return m.Target()
	case adminaction.FieldDetail:
		return m.Detail()
	case adminaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adminaction.FieldActorID:
		return m.OldActorID(ctx)
	case adminaction.FieldActorEmail:
		return m.OldActorEmail(ctx)
	case adminaction.FieldAction:
		return m.OldAction(ctx)
	case adminaction.FieldTarget:
		return m.OldTarget(ctx)
	case adminaction.FieldDetail:
		return m.OldDetail(ctx)
	case adminaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adminaction.FieldActorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case adminaction.FieldActorEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorEmail(v)
		return nil
	case adminaction.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case adminaction.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case adminaction.FieldDetail:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case adminaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(adminaction.FieldActorID) {
		fields = append(fields, adminaction.FieldActorID)
	}
	if m.FieldCleared(adminaction.FieldActorEmail) {
		fields = append(fields, adminaction.FieldActorEmail)
	}
	if m.FieldCleared(adminaction.FieldTarget) {
		fields = append(fields, adminaction.FieldTarget)
	}
	if m.FieldCleared(adminaction.FieldDetail) {
		fields = append(fields, adminaction.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminActionMutation) ClearField(name string) error {
	switch name {
	case adminaction.FieldActorID:
		m.ClearActorID()
		return nil
	case adminaction.FieldActorEmail:
		m.ClearActorEmail()
		return nil
	case adminaction.FieldTarget:
		m.ClearTarget()
		return nil
	case adminaction.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AdminAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminActionMutation) ResetField(name string) error {
	switch name {
	case adminaction.FieldActorID:
		m.ResetActorID()
		return nil
	case adminaction.FieldActorEmail:
		m.ResetActorEmail()
		return nil
	case adminaction.FieldAction:
		m.ResetAction()
		return nil
	case adminaction.FieldTarget:
		m.ResetTarget()
		return nil
	case adminaction.FieldDetail:
		m.ResetDetail()
		return nil
	case adminaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminActionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminActionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminActionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdminAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminActionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdminAction edge %s", name)
}

// AnalyteMutation represents an operation that mutates the Analyte nodes in the graph.
type AnalyteMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	code           *string
	name           *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	aliases        map[uuid.UUID]struct{}
	removedaliases map[uuid.UUID]struct{}
	clearedaliases bool
	results        map[uuid.UUID]struct{}
	removedresults map[uuid.UUID]struct{}
	clearedresults bool
	done           bool
	oldValue       func(context.Context) (*Analyte, error)
	predicates     []predicate.Analyte
}

var _ ent.Mutation = (*AnalyteMutation)(nil)

// analyteOption allows management of the mutation configuration using functional options.
type analyteOption func(*AnalyteMutation)

// newAnalyteMutation creates new mutation for the Analyte entity.
func newAnalyteMutation(c config, op Op, opts ...analyteOption) *AnalyteMutation {
	m := &AnalyteMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalyte,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalyteID sets the ID field of the mutation.
func withAnalyteID(id uuid.UUID) analyteOption {
	return func(m *AnalyteMutation) {
		var (
			err   error
			once  sync.Once
			value *Analyte
		)
		m.oldValue = func(ctx context.Context) (*Analyte, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analyte.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalyte sets the old Analyte of the mutation.
func withAnalyte(node *Analyte) analyteOption {
	return func(m *AnalyteMutation) {
		m.oldValue = func(context.Context) (*Analyte, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalyteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalyteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analyte entities.
func (m *AnalyteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalyteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalyteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analyte.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *AnalyteMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *AnalyteMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Analyte entity.
// If the Analyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *AnalyteMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *AnalyteMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AnalyteMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Analyte entity.
// If the Analyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AnalyteMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalyteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalyteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Analyte entity.
// If the Analyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AnalyteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAliasIDs adds the "aliases" edge to the AnalyteAlias entity by ids.
func (m *AnalyteMutation) AddAliasIDs(ids ...uuid.UUID) {
	if m.aliases == nil {
		m.aliases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.aliases[ids[i]] = struct{}{}
	}
}

// ClearAliases clears the "aliases" edge to the AnalyteAlias entity.
func (m *AnalyteMutation) ClearAliases() {
	m.clearedaliases = true
}

// AliasesCleared reports if the "aliases" edge to the AnalyteAlias entity was cleared.
func (m *AnalyteMutation) AliasesCleared() bool {
	return m.clearedaliases
}

// RemoveAliasIDs removes the "aliases" edge to the AnalyteAlias entity by IDs.
func (m *AnalyteMutation) RemoveAliasIDs(ids ...uuid.UUID) {
	if m.removedaliases == nil {
		m.removedaliases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.aliases, ids[i])
		m.removedaliases[ids[i]] = struct{}{}
	}
}

// RemovedAliases returns the removed IDs of the "aliases" edge to the AnalyteAlias entity.
func (m *AnalyteMutation) RemovedAliasesIDs() (ids []uuid.UUID) {
	for id := range m.removedaliases {
		ids = append(ids, id)
	}
	return
}

// AliasesIDs returns the "aliases" edge IDs in the mutation.
func (m *AnalyteMutation) AliasesIDs() (ids []uuid.UUID) {
	for id := range m.aliases {
		ids = append(ids, id)
	}
	return
}

// ResetAliases resets all changes to the "aliases" edge.
func (m *AnalyteMutation) ResetAliases() {
	m.aliases = nil
	m.clearedaliases = false
	m.removedaliases = nil
}

// AddResultIDs adds the "results" edge to the LabResult entity by ids.
func (m *AnalyteMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the LabResult entity.
func (m *AnalyteMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the LabResult entity was cleared.
func (m *AnalyteMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the LabResult entity by IDs.
func (m *AnalyteMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the LabResult entity.
func (m *AnalyteMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *AnalyteMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *AnalyteMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the AnalyteMutation builder.
func (m *AnalyteMutation) Where(ps ...predicate.Analyte) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalyteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalyteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analyte, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalyteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalyteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analyte).
func (m *AnalyteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalyteMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.code != nil {
		fields = append(fields, analyte.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, analyte.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, analyte.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalyteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analyte.FieldCode:
		return m.Code()
	case analyte.FieldName:
		return m.Name()
	case analyte.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalyteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analyte.FieldCode:
		return m.OldCode(ctx)
	case analyte.FieldName:
		return m.OldName(ctx)
	case analyte.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Analyte field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analyte.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case analyte.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case analyte.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Analyte field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalyteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalyteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Analyte numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalyteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalyteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalyteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Analyte nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalyteMutation) ResetField(name string) error {
	switch name {
	case analyte.FieldCode:
		m.ResetCode()
		return nil
	case analyte.FieldName:
		m.ResetName()
		return nil
	case analyte.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Analyte field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalyteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.aliases != nil {
		edges = append(edges, analyte.EdgeAliases)
	}
	if m.results != nil {
		edges = append(edges, analyte.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalyteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analyte.EdgeAliases:
		ids := make([]ent.Value, 0, len(m.aliases))
		for id := range m.aliases {
			ids = append(ids, id)
		}
		return ids
	case analyte.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalyteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedaliases != nil {
		edges = append(edges, analyte.EdgeAliases)
	}
	if m.removedresults != nil {
		edges = append(edges, analyte.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalyteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case analyte.EdgeAliases:
		ids := make([]ent.Value, 0, len(m.removedaliases))
		for id := range m.removedaliases {
			ids = append(ids, id)
		}
		return ids
	case analyte.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalyteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaliases {
		edges = append(edges, analyte.EdgeAliases)
	}
	if m.clearedresults {
		edges = append(edges, analyte.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalyteMutation) EdgeCleared(name string) bool {
	switch name {
	case analyte.EdgeAliases:
		return m.clearedaliases
	case analyte.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalyteMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Analyte unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalyteMutation) ResetEdge(name string) error {
	switch name {
	case analyte.EdgeAliases:
		m.ResetAliases()
		return nil
	case analyte.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Analyte edge %s", name)
}

// AnalyteAliasMutation represents an operation that mutates the AnalyteAlias nodes in the graph.
type AnalyteAliasMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	normalized     *string
	display        *string
	language       *string
	confidence     *float64
	addconfidence  *float64
	source         *analytealias.Source
	created_at     *time.Time
	clearedFields  map[string]struct{}
	analyte        *uuid.UUID
	clearedanalyte bool
	done           bool
	oldValue       func(context.Context) (*AnalyteAlias, error)
	predicates     []predicate.AnalyteAlias
}

var _ ent.Mutation = (*AnalyteAliasMutation)(nil)

// analytealiasOption allows management of the mutation configuration using functional options.
type analytealiasOption func(*AnalyteAliasMutation)

// newAnalyteAliasMutation creates new mutation for the AnalyteAlias entity.
func newAnalyteAliasMutation(c config, op Op, opts ...analytealiasOption) *AnalyteAliasMutation {
	m := &AnalyteAliasMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalyteAlias,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalyteAliasID sets the ID field of the mutation.
func withAnalyteAliasID(id uuid.UUID) analytealiasOption {
	return func(m *AnalyteAliasMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalyteAlias
		)
		m.oldValue = func(ctx context.Context) (*AnalyteAlias, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalyteAlias.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalyteAlias sets the old AnalyteAlias of the mutation.
func withAnalyteAlias(node *AnalyteAlias) analytealiasOption {
	return func(m *AnalyteAliasMutation) {
		m.oldValue = func(context.Context) (*AnalyteAlias, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalyteAliasMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalyteAliasMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalyteAlias entities.
func (m *AnalyteAliasMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalyteAliasMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalyteAliasMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalyteAlias.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnalyteID sets the "analyte_id" field.
func (m *AnalyteAliasMutation) SetAnalyteID(u uuid.UUID) {
	m.analyte = &u
}

// AnalyteID returns the value of the "analyte_id" field in the mutation.
func (m *AnalyteAliasMutation) AnalyteID() (r uuid.UUID, exists bool) {
	v := m.analyte
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyteID returns the old "analyte_id" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldAnalyteID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyteID: %w", err)
	}
	return oldValue.AnalyteID, nil
}

// ResetAnalyteID resets all changes to the "analyte_id" field.
func (m *AnalyteAliasMutation) ResetAnalyteID() {
	m.analyte = nil
}

// SetNormalized sets the "normalized" field.
func (m *AnalyteAliasMutation) SetNormalized(s string) {
	m.normalized = &s
}

// Normalized returns the value of the "normalized" field in the mutation.
func (m *AnalyteAliasMutation) Normalized() (r string, exists bool) {
	v := m.normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalized returns the old "normalized" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalized: %w", err)
	}
	return oldValue.Normalized, nil
}

// ResetNormalized resets all changes to the "normalized" field.
func (m *AnalyteAliasMutation) ResetNormalized() {
	m.normalized = nil
}

// SetDisplay sets the "display" field.
func (m *AnalyteAliasMutation) SetDisplay(s string) {
	m.display = &s
}

// Display returns the value of the "display" field in the mutation.
func (m *AnalyteAliasMutation) Display() (r string, exists bool) {
	v := m.display
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplay returns the old "display" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldDisplay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplay: %w", err)
	}
	return oldValue.Display, nil
}

// ResetDisplay resets all changes to the "display" field.
func (m *AnalyteAliasMutation) ResetDisplay() {
	m.display = nil
}

// SetLanguage sets the "language" field.
func (m *AnalyteAliasMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *AnalyteAliasMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *AnalyteAliasMutation) ResetLanguage() {
	m.language = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnalyteAliasMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnalyteAliasMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnalyteAliasMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnalyteAliasMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnalyteAliasMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSource sets the "source" field.
func (m *AnalyteAliasMutation) SetSource(a analytealias.Source) {
	m.source = &a
}

// Source returns the value of the "source" field in the mutation.
func (m *AnalyteAliasMutation) Source() (r analytealias.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldSource(ctx context.Context) (v analytealias.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *AnalyteAliasMutation) ResetSource() {
	m.source = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalyteAliasMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalyteAliasMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalyteAlias entity.
// If the AnalyteAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyteAliasMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AnalyteAliasMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAnalyte clears the "analyte" edge to the Analyte entity.
func (m *AnalyteAliasMutation) ClearAnalyte() {
	m.clearedanalyte = true
	m.clearedFields[analytealias.FieldAnalyteID] = struct{}{}
}

// AnalyteCleared reports if the "analyte" edge to the Analyte entity was cleared.
func (m *AnalyteAliasMutation) AnalyteCleared() bool {
	return m.clearedanalyte
}

// AnalyteIDs returns the "analyte" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalyteID instead. It exists only for internal usage by the builders.
func (m *AnalyteAliasMutation) AnalyteIDs() (ids []uuid.UUID) {
	if id := m.analyte; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalyte resets all changes to the "analyte" edge.
func (m *AnalyteAliasMutation) ResetAnalyte() {
	m.analyte = nil
	m.clearedanalyte = false
}

// Where appends a list predicates to the AnalyteAliasMutation builder.
func (m *AnalyteAliasMutation) Where(ps ...predicate.AnalyteAlias) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalyteAliasMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalyteAliasMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalyteAlias, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalyteAliasMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalyteAliasMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalyteAlias).
func (m *AnalyteAliasMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalyteAliasMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.analyte != nil {
		fields = append(fields, analytealias.FieldAnalyteID)
	}
	if m.normalized != nil {
		fields = append(fields, analytealias.FieldNormalized)
	}
	if m.display != nil {
		fields = append(fields, analytealias.FieldDisplay)
	}
	if m.language != nil {
		fields = append(fields, analytealias.FieldLanguage)
	}
	if m.confidence != nil {
		fields = append(fields, analytealias.FieldConfidence)
	}
	if m.source != nil {
		fields = append(fields, analytealias.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, analytealias.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalyteAliasMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analytealias.FieldAnalyteID:
		return m.AnalyteID()
	case analytealias.FieldNormalized:
		return m.Normalized()
	case analytealias.FieldDisplay:
		return m.Display()
	case analytealias.FieldLanguage:
		return m.Language()
	case analytealias.FieldConfidence:
		return m.Confidence()
	case analytealias.FieldSource:
		return m.Source()
	case analytealias.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalyteAliasMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analytealias.FieldAnalyteID:
		return m.OldAnalyteID(ctx)
	case analytealias.FieldNormalized:
		return m.OldNormalized(ctx)
	case analytealias.FieldDisplay:
		return m.OldDisplay(ctx)
	case analytealias.FieldLanguage:
		return m.OldLanguage(ctx)
	case analytealias.FieldConfidence:
		return m.OldConfidence(ctx)
	case analytealias.FieldSource:
		return m.OldSource(ctx)
	case analytealias.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalyteAlias field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyteAliasMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analytealias.FieldAnalyteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyteID(v)
		return nil
	case analytealias.FieldNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalized(v)
		return nil
	case analytealias.FieldDisplay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplay(v)
		return nil
	case analytealias.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case analytealias.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case analytealias.FieldSource:
		v, ok := value.(analytealias.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case analytealias.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalyteAliasMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, analytealias.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalyteAliasMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analytealias.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyteAliasMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analytealias.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalyteAliasMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalyteAliasMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalyteAliasMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalyteAlias nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalyteAliasMutation) ResetField(name string) error {
	switch name {
	case analytealias.FieldAnalyteID:
		m.ResetAnalyteID()
		return nil
	case analytealias.FieldNormalized:
		m.ResetNormalized()
		return nil
	case analytealias.FieldDisplay:
		m.ResetDisplay()
		return nil
	case analytealias.FieldLanguage:
		m.ResetLanguage()
		return nil
	case analytealias.FieldConfidence:
		m.ResetConfidence()
		return nil
	case analytealias.FieldSource:
		m.ResetSource()
		return nil
	case analytealias.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalyteAliasMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.analyte != nil {
		edges = append(edges, analytealias.EdgeAnalyte)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalyteAliasMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analytealias.EdgeAnalyte:
		if id := m.analyte; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalyteAliasMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalyteAliasMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalyteAliasMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanalyte {
		edges = append(edges, analytealias.EdgeAnalyte)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalyteAliasMutation) EdgeCleared(name string) bool {
	switch name {
	case analytealias.EdgeAnalyte:
		return m.clearedanalyte
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalyteAliasMutation) ClearEdge(name string) error {
	switch name {
	case analytealias.EdgeAnalyte:
		m.ClearAnalyte()
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalyteAliasMutation) ResetEdge(name string) error {
	switch name {
	case analytealias.EdgeAnalyte:
		m.ResetAnalyte()
		return nil
	}
	return fmt.Errorf("unknown AnalyteAlias edge %s", name)
}

// LabResultMutation represents an operation that mutates the LabResult nodes in the graph.
type LabResultMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	user_id               *uuid.UUID
	patient_id            *uuid.UUID
	parameter_name        *string
	value_numeric         *float64
	addvalue_numeric      *float64
	value_text            *string
	unit                  *string
	reference_low         *float64
	addreference_low      *float64
	reference_high        *float64
	addreference_high     *float64
	reference_text        *string
	out_of_range          *labresult.OutOfRange
	mapping_confidence    *float64
	addmapping_confidence *float64
	mapping_source        *labresult.MappingSource
	mapped_at             *time.Time
	created_at            *time.Time
	clearedFields         map[string]struct{}
	report                *uuid.UUID
	clearedreport         bool
	analyte               *uuid.UUID
	clearedanalyte        bool
	done                  bool
	oldValue              func(context.Context) (*LabResult, error)
	predicates            []predicate.LabResult
}

var _ ent.Mutation = (*LabResultMutation)(nil)

// labresultOption allows management of the mutation configuration using functional options.
type labresultOption func(*LabResultMutation)

// newLabResultMutation creates new mutation for the LabResult entity.
func newLabResultMutation(c config, op Op, opts ...labresultOption) *LabResultMutation {
	m := &LabResultMutation{
		config:        c,
		op:            op,
		typ:           TypeLabResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabResultID sets the ID field of the mutation.
func withLabResultID(id uuid.UUID) labresultOption {
	return func(m *LabResultMutation) {
		var (
			err   error
			once  sync.Once
			value *LabResult
		)
		m.oldValue = func(ctx context.Context) (*LabResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabResult sets the old LabResult of the mutation.
func withLabResult(node *LabResult) labresultOption {
	return func(m *LabResultMutation) {
		m.oldValue = func(context.Context) (*LabResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabResult entities.
func (m *LabResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *LabResultMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *LabResultMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *LabResultMutation) ResetReportID() {
	m.report = nil
}

// SetUserID sets the "user_id" field.
func (m *LabResultMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LabResultMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LabResultMutation) ResetUserID() {
	m.user_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *LabResultMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *LabResultMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *LabResultMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetParameterName sets the "parameter_name" field.
func (m *LabResultMutation) SetParameterName(s string) {
	m.parameter_name = &s
}

// ParameterName returns the value of the "parameter_name" field in the mutation.
func (m *LabResultMutation) ParameterName() (r string, exists bool) {
	v := m.parameter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldParameterName returns the old "parameter_name" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldParameterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameterName: %w", err)
	}
	return oldValue.ParameterName, nil
}

// ResetParameterName resets all changes to the "parameter_name" field.
func (m *LabResultMutation) ResetParameterName() {
	m.parameter_name = nil
}

// SetValueNumeric sets the "value_numeric" field.
func (m *LabResultMutation) SetValueNumeric(f float64) {
	m.value_numeric = &f
	m.addvalue_numeric = nil
}

// ValueNumeric returns the value of the "value_numeric" field in the mutation.
func (m *LabResultMutation) ValueNumeric() (r float64, exists bool) {
	v := m.value_numeric
	if v == nil {
		return
	}
	return *v, true
}

// OldValueNumeric returns the old "value_numeric" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldValueNumeric(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueNumeric is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueNumeric requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueNumeric: %w", err)
	}
	return oldValue.ValueNumeric, nil
}

// AddValueNumeric adds f to the "value_numeric" field.
func (m *LabResultMutation) AddValueNumeric(f float64) {
	if m.addvalue_numeric != nil {
		*m.addvalue_numeric += f
	} else {
		m.addvalue_numeric = &f
	}
}

// AddedValueNumeric returns the value that was added to the "value_numeric" field in this mutation.
func (m *LabResultMutation) AddedValueNumeric() (r float64, exists bool) {
	v := m.addvalue_numeric
	if v == nil {
		return
	}
	return *v, true
}

// ClearValueNumeric clears the value of the "value_numeric" field.
func (m *LabResultMutation) ClearValueNumeric() {
	m.value_numeric = nil
	m.addvalue_numeric = nil
	m.clearedFields[labresult.FieldValueNumeric] = struct{}{}
}

// ValueNumericCleared returns if the "value_numeric" field was cleared in this mutation.
func (m *LabResultMutation) ValueNumericCleared() bool {
	_, ok := m.clearedFields[labresult.FieldValueNumeric]
	return ok
}

// ResetValueNumeric resets all changes to the "value_numeric" field.
func (m *LabResultMutation) ResetValueNumeric() {
	m.value_numeric = nil
	m.addvalue_numeric = nil
	delete(m.clearedFields, labresult.FieldValueNumeric)
}

// SetValueText sets the "value_text" field.
func (m *LabResultMutation) SetValueText(s string) {
	m.value_text = &s
}

// ValueText returns the value of the "value_text" field in the mutation.
func (m *LabResultMutation) ValueText() (r string, exists bool) {
	v := m.value_text
	if v == nil {
		return
	}
	return *v, true
}

// OldValueText returns the old "value_text" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldValueText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueText: %w", err)
	}
	return oldValue.ValueText, nil
}

// ClearValueText clears the value of the "value_text" field.
func (m *LabResultMutation) ClearValueText() {
	m.value_text = nil
	m.clearedFields[labresult.FieldValueText] = struct{}{}
}

// ValueTextCleared returns if the "value_text" field was cleared in this mutation.
func (m *LabResultMutation) ValueTextCleared() bool {
	_, ok := m.clearedFields[labresult.FieldValueText]
	return ok
}

// ResetValueText resets all changes to the "value_text" field.
func (m *LabResultMutation) ResetValueText() {
	m.value_text = nil
	delete(m.clearedFields, labresult.FieldValueText)
}

// SetUnit sets the "unit" field.
func (m *LabResultMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *LabResultMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *LabResultMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[labresult.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *LabResultMutation) UnitCleared() bool {
	_, ok := m.clearedFields[labresult.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *LabResultMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, labresult.FieldUnit)
}

// SetReferenceLow sets the "reference_low" field.
func (m *LabResultMutation) SetReferenceLow(f float64) {
	m.reference_low = &f
	m.addreference_low = nil
}

// ReferenceLow returns the value of the "reference_low" field in the mutation.
func (m *LabResultMutation) ReferenceLow() (r float64, exists bool) {
	v := m.reference_low
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceLow returns the old "reference_low" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldReferenceLow(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceLow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceLow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceLow: %w", err)
	}
	return oldValue.ReferenceLow, nil
}

// AddReferenceLow adds f to the "reference_low" field.
func (m *LabResultMutation) AddReferenceLow(f float64) {
	if m.addreference_low != nil {
		*m.addreference_low += f
	} else {
		m.addreference_low = &f
	}
}

// AddedReferenceLow returns the value that was added to the "reference_low" field in this mutation.
func (m *LabResultMutation) AddedReferenceLow() (r float64, exists bool) {
	v := m.addreference_low
	if v == nil {
		return
	}
	return *v, true
}

// ClearReferenceLow clears the value of the "reference_low" field.
func (m *LabResultMutation) ClearReferenceLow() {
	m.reference_low = nil
	m.addreference_low = nil
	m.clearedFields[labresult.FieldReferenceLow] = struct{}{}
}

// ReferenceLowCleared returns if the "reference_low" field was cleared in this mutation.
func (m *LabResultMutation) ReferenceLowCleared() bool {
	_, ok := m.clearedFields[labresult.FieldReferenceLow]
	return ok
}

// ResetReferenceLow resets all changes to the "reference_low" field.
func (m *LabResultMutation) ResetReferenceLow() {
	m.reference_low = nil
	m.addreference_low = nil
	delete(m.clearedFields, labresult.FieldReferenceLow)
}

// SetReferenceHigh sets the "reference_high" field.
func (m *LabResultMutation) SetReferenceHigh(f float64) {
	m.reference_high = &f
	m.addreference_high = nil
}

// ReferenceHigh returns the value of the "reference_high" field in the mutation.
func (m *LabResultMutation) ReferenceHigh() (r float64, exists bool) {
	v := m.reference_high
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceHigh returns the old "reference_high" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldReferenceHigh(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceHigh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceHigh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceHigh: %w", err)
	}
	return oldValue.ReferenceHigh, nil
}

// AddReferenceHigh adds f to the "reference_high" field.
func (m *LabResultMutation) AddReferenceHigh(f float64) {
	if m.addreference_high != nil {
		*m.addreference_high += f
	} else {
		m.addreference_high = &f
	}
}

// AddedReferenceHigh returns the value that was added to the "reference_high" field in this mutation.
func (m *LabResultMutation) AddedReferenceHigh() (r float64, exists bool) {
	v := m.addreference_high
	if v == nil {
		return
	}
	return *v, true
}

// ClearReferenceHigh clears the value of the "reference_high" field.
func (m *LabResultMutation) ClearReferenceHigh() {
	m.reference_high = nil
	m.addreference_high = nil
	m.clearedFields[labresult.FieldReferenceHigh] = struct{}{}
}

// ReferenceHighCleared returns if the "reference_high" field was cleared in this mutation.
func (m *LabResultMutation) ReferenceHighCleared() bool {
	_, ok := m.clearedFields[labresult.FieldReferenceHigh]
	return ok
}

// ResetReferenceHigh resets all changes to the "reference_high" field.
func (m *LabResultMutation) ResetReferenceHigh() {
	m.reference_high = nil
	m.addreference_high = nil
	delete(m.clearedFields, labresult.FieldReferenceHigh)
}

// SetReferenceText sets the "reference_text" field.
func (m *LabResultMutation) SetReferenceText(s string) {
	m.reference_text = &s
}

// ReferenceText returns the value of the "reference_text" field in the mutation.
func (m *LabResultMutation) ReferenceText() (r string, exists bool) {
	v := m.reference_text
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceText returns the old "reference_text" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldReferenceText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceText: %w", err)
	}
	return oldValue.ReferenceText, nil
}

// ClearReferenceText clears the value of the "reference_text" field.
func (m *LabResultMutation) ClearReferenceText() {
	m.reference_text = nil
	m.clearedFields[labresult.FieldReferenceText] = struct{}{}
}

// ReferenceTextCleared returns if the "reference_text" field was cleared in this mutation.
func (m *LabResultMutation) ReferenceTextCleared() bool {
	_, ok := m.clearedFields[labresult.FieldReferenceText]
	return ok
}

// ResetReferenceText resets all changes to the "reference_text" field.
func (m *LabResultMutation) ResetReferenceText() {
	m.reference_text = nil
	delete(m.clearedFields, labresult.FieldReferenceText)
}

// SetOutOfRange sets the "out_of_range" field.
func (m *LabResultMutation) SetOutOfRange(lor labresult.OutOfRange) {
	m.out_of_range = &lor
}

// OutOfRange returns the value of the "out_of_range" field in the mutation.
func (m *LabResultMutation) OutOfRange() (r labresult.OutOfRange, exists bool) {
	v := m.out_of_range
	if v == nil {
		return
	}
	return *v, true
}

// OldOutOfRange returns the old "out_of_range" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldOutOfRange(ctx context.Context) (v labresult.OutOfRange, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutOfRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutOfRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutOfRange: %w", err)
	}
	return oldValue.OutOfRange, nil
}

// ResetOutOfRange resets all changes to the "out_of_range" field.
func (m *LabResultMutation) ResetOutOfRange() {
	m.out_of_range = nil
}

// SetAnalyteID sets the "analyte_id" field.
func (m *LabResultMutation) SetAnalyteID(u uuid.UUID) {
	m.analyte = &u
}

// AnalyteID returns the value of the "analyte_id" field in the mutation.
func (m *LabResultMutation) AnalyteID() (r uuid.UUID, exists bool) {
	v := m.analyte
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyteID returns the old "analyte_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldAnalyteID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyteID: %w", err)
	}
	return oldValue.AnalyteID, nil
}

// ClearAnalyteID clears the value of the "analyte_id" field.
func (m *LabResultMutation) ClearAnalyteID() {
	m.analyte = nil
	m.clearedFields[labresult.FieldAnalyteID] = struct{}{}
}

// AnalyteIDCleared returns if the "analyte_id" field was cleared in this mutation.
func (m *LabResultMutation) AnalyteIDCleared() bool {
	_, ok := m.clearedFields[labresult.FieldAnalyteID]
	return ok
}

// ResetAnalyteID resets all changes to the "analyte_id" field.
func (m *LabResultMutation) ResetAnalyteID() {
	m.analyte = nil
	delete(m.clearedFields, labresult.FieldAnalyteID)
}

// SetMappingConfidence sets the "mapping_confidence" field.
func (m *LabResultMutation) SetMappingConfidence(f float64) {
	m.mapping_confidence = &f
	m.addmapping_confidence = nil
}

// MappingConfidence returns the value of the "mapping_confidence" field in the mutation.
func (m *LabResultMutation) MappingConfidence() (r float64, exists bool) {
	v := m.mapping_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMappingConfidence returns the old "mapping_confidence" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldMappingConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappingConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappingConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappingConfidence: %w", err)
	}
	return oldValue.MappingConfidence, nil
}

// AddMappingConfidence adds f to the "mapping_confidence" field.
func (m *LabResultMutation) AddMappingConfidence(f float64) {
	if m.addmapping_confidence != nil {
		*m.addmapping_confidence += f
	} else {
		m.addmapping_confidence = &f
	}
}

// AddedMappingConfidence returns the value that was added to the "mapping_confidence" field in this mutation.
func (m *LabResultMutation) AddedMappingConfidence() (r float64, exists bool) {
	v := m.addmapping_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearMappingConfidence clears the value of the "mapping_confidence" field.
func (m *LabResultMutation) ClearMappingConfidence() {
	m.mapping_confidence = nil
	m.addmapping_confidence = nil
	m.clearedFields[labresult.FieldMappingConfidence] = struct{}{}
}

// MappingConfidenceCleared returns if the "mapping_confidence" field was cleared in this mutation.
func (m *LabResultMutation) MappingConfidenceCleared() bool {
	_, ok := m.clearedFields[labresult.FieldMappingConfidence]
	return ok
}

// ResetMappingConfidence resets all changes to the "mapping_confidence" field.
func (m *LabResultMutation) ResetMappingConfidence() {
	m.mapping_confidence = nil
	m.addmapping_confidence = nil
	delete(m.clearedFields, labresult.FieldMappingConfidence)
}

// SetMappingSource sets the "mapping_source" field.
func (m *LabResultMutation) SetMappingSource(ls labresult.MappingSource) {
	m.mapping_source = &ls
}

// MappingSource returns the value of the "mapping_source" field in the mutation.
func (m *LabResultMutation) MappingSource() (r labresult.MappingSource, exists bool) {
	v := m.mapping_source
	if v == nil {
		return
	}
	return *v, true
}

// OldMappingSource returns the old "mapping_source" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldMappingSource(ctx context.Context) (v *labresult.MappingSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappingSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappingSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappingSource: %w", err)
	}
	return oldValue.MappingSource, nil
}

// ClearMappingSource clears the value of the "mapping_source" field.
func (m *LabResultMutation) ClearMappingSource() {
	m.mapping_source = nil
	m.clearedFields[labresult.FieldMappingSource] = struct{}{}
}

// MappingSourceCleared returns if the "mapping_source" field was cleared in this mutation.
func (m *LabResultMutation) MappingSourceCleared() bool {
	_, ok := m.clearedFields[labresult.FieldMappingSource]
	return ok
}

// ResetMappingSource resets all changes to the "mapping_source" field.
func (m *LabResultMutation) ResetMappingSource() {
	m.mapping_source = nil
	delete(m.clearedFields, labresult.FieldMappingSource)
}

// SetMappedAt sets the "mapped_at" field.
func (m *LabResultMutation) SetMappedAt(t time.Time) {
	m.mapped_at = &t
}

// MappedAt returns the value of the "mapped_at" field in the mutation.
func (m *LabResultMutation) MappedAt() (r time.Time, exists bool) {
	v := m.mapped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMappedAt returns the old "mapped_at" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldMappedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappedAt: %w", err)
	}
	return oldValue.MappedAt, nil
}

// ClearMappedAt clears the value of the "mapped_at" field.
func (m *LabResultMutation) ClearMappedAt() {
	m.mapped_at = nil
	m.clearedFields[labresult.FieldMappedAt] = struct{}{}
}

// MappedAtCleared returns if the "mapped_at" field was cleared in this mutation.
func (m *LabResultMutation) MappedAtCleared() bool {
	_, ok := m.clearedFields[labresult.FieldMappedAt]
	return ok
}

// ResetMappedAt resets all changes to the "mapped_at" field.
func (m *LabResultMutation) ResetMappedAt() {
	m.mapped_at = nil
	delete(m.clearedFields, labresult.FieldMappedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *LabResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LabResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *LabResultMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[labresult.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *LabResultMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *LabResultMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *LabResultMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// ClearAnalyte clears the "analyte" edge to the Analyte entity.
func (m *LabResultMutation) ClearAnalyte() {
	m.clearedanalyte = true
	m.clearedFields[labresult.FieldAnalyteID] = struct{}{}
}

// AnalyteCleared reports if the "analyte" edge to the Analyte entity was cleared.
func (m *LabResultMutation) AnalyteCleared() bool {
	return m.AnalyteIDCleared() || m.clearedanalyte
}

// AnalyteIDs returns the "analyte" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalyteID instead. It exists only for internal usage by the builders.
func (m *LabResultMutation) AnalyteIDs() (ids []uuid.UUID) {
	if id := m.analyte; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalyte resets all changes to the "analyte" edge.
func (m *LabResultMutation) ResetAnalyte() {
	m.analyte = nil
	m.clearedanalyte = false
}

// Where appends a list predicates to the LabResultMutation builder.
func (m *LabResultMutation) Where(ps ...predicate.LabResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabResult).
func (m *LabResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabResultMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.report != nil {
		fields = append(fields, labresult.FieldReportID)
	}
	if m.user_id != nil {
		fields = append(fields, labresult.FieldUserID)
	}
	if m.patient_id != nil {
		fields = append(fields, labresult.FieldPatientID)
	}
	if m.parameter_name != nil {
		fields = append(fields, labresult.FieldParameterName)
	}
	if m.value_numeric != nil {
		fields = append(fields, labresult.FieldValueNumeric)
	}
	if m.value_text != nil {
		fields = append(fields, labresult.FieldValueText)
	}
	if m.unit != nil {
		fields = append(fields, labresult.FieldUnit)
	}
	if m.reference_low != nil {
		fields = append(fields, labresult.FieldReferenceLow)
	}
	if m.reference_high != nil {
		fields = append(fields, labresult.FieldReferenceHigh)
	}
	if m.reference_text != nil {
		fields = append(fields, labresult.FieldReferenceText)
	}
	if m.out_of_range != nil {
		fields = append(fields, labresult.FieldOutOfRange)
	}
	if m.analyte != nil {
		fields = append(fields, labresult.FieldAnalyteID)
	}
	if m.mapping_confidence != nil {
		fields = append(fields, labresult.FieldMappingConfidence)
	}
	if m.mapping_source != nil {
		fields = append(fields, labresult.FieldMappingSource)
	}
	if m.mapped_at != nil {
		fields = append(fields, labresult.FieldMappedAt)
	}
	if m.created_at != nil {
		fields = append(fields, labresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labresult.FieldReportID:
		return m.ReportID()
	case labresult.FieldUserID:
		return m.UserID()
	case labresult.FieldPatientID:
		return m.PatientID()
	case labresult.FieldParameterName:
		return m.ParameterName()
	case labresult.FieldValueNumeric:
		return m.ValueNumeric()
	case labresult.FieldValueText:
		return m.ValueText()
	case labresult.FieldUnit:
		return m.Unit()
	case labresult.FieldReferenceLow:
		return m.ReferenceLow()
	case labresult.FieldReferenceHigh:
		return m.ReferenceHigh()
	case labresult.FieldReferenceText:
		return m.ReferenceText()
	case labresult.FieldOutOfRange:
		return m.OutOfRange()
	case labresult.FieldAnalyteID:
		return m.AnalyteID()
	case labresult.FieldMappingConfidence:
		return m.MappingConfidence()
	case labresult.FieldMappingSource:
		return m.MappingSource()
	case labresult.FieldMappedAt:
		return m.MappedAt()
	case labresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labresult.FieldReportID:
		return m.OldReportID(ctx)
	case labresult.FieldUserID:
		return m.OldUserID(ctx)
	case labresult.FieldPatientID:
		return m.OldPatientID(ctx)
	case labresult.FieldParameterName:
		return m.OldParameterName(ctx)
	case labresult.FieldValueNumeric:
		return m.OldValueNumeric(ctx)
	case labresult.FieldValueText:
		return m.OldValueText(ctx)
	case labresult.FieldUnit:
		return m.OldUnit(ctx)
	case labresult.FieldReferenceLow:
		return m.OldReferenceLow(ctx)
	case labresult.FieldReferenceHigh:
		return m.OldReferenceHigh(ctx)
	case labresult.FieldReferenceText:
		return m.OldReferenceText(ctx)
	case labresult.FieldOutOfRange:
		return m.OldOutOfRange(ctx)
	case labresult.FieldAnalyteID:
		return m.OldAnalyteID(ctx)
	case labresult.FieldMappingConfidence:
		return m.OldMappingConfidence(ctx)
	case labresult.FieldMappingSource:
		return m.OldMappingSource(ctx)
	case labresult.FieldMappedAt:
		return m.OldMappedAt(ctx)
	case labresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labresult.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case labresult.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case labresult.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case labresult.FieldParameterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameterName(v)
		return nil
	case labresult.FieldValueNumeric:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueNumeric(v)
		return nil
	case labresult.FieldValueText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueText(v)
		return nil
	case labresult.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case labresult.FieldReferenceLow:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceLow(v)
		return nil
	case labresult.FieldReferenceHigh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceHigh(v)
		return nil
	case labresult.FieldReferenceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceText(v)
		return nil
	case labresult.FieldOutOfRange:
		v, ok := value.(labresult.OutOfRange)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutOfRange(v)
		return nil
	case labresult.FieldAnalyteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyteID(v)
		return nil
	case labresult.FieldMappingConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappingConfidence(v)
		return nil
	case labresult.FieldMappingSource:
		v, ok := value.(labresult.MappingSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappingSource(v)
		return nil
	case labresult.FieldMappedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappedAt(v)
		return nil
	case labresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabResultMutation) AddedFields() []string {
	var fields []string
	if m.addvalue_numeric != nil {
		fields = append(fields, labresult.FieldValueNumeric)
	}
	if m.addreference_low != nil {
		fields = append(fields, labresult.FieldReferenceLow)
	}
	if m.addreference_high != nil {
		fields = append(fields, labresult.FieldReferenceHigh)
	}
	if m.addmapping_confidence != nil {
		fields = append(fields, labresult.FieldMappingConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labresult.FieldValueNumeric:
		return m.AddedValueNumeric()
	case labresult.FieldReferenceLow:
		return m.AddedReferenceLow()
	case labresult.FieldReferenceHigh:
		return m.AddedReferenceHigh()
	case labresult.FieldMappingConfidence:
		return m.AddedMappingConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labresult.FieldValueNumeric:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValueNumeric(v)
		return nil
	case labresult.FieldReferenceLow:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReferenceLow(v)
		return nil
	case labresult.FieldReferenceHigh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReferenceHigh(v)
		return nil
	case labresult.FieldMappingConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMappingConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown LabResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(labresult.FieldValueNumeric) {
		fields = append(fields, labresult.FieldValueNumeric)
	}
	if m.FieldCleared(labresult.FieldValueText) {
		fields = append(fields, labresult.FieldValueText)
	}
	if m.FieldCleared(labresult.FieldUnit) {
		fields = append(fields, labresult.FieldUnit)
	}
	if m.FieldCleared(labresult.FieldReferenceLow) {
		fields = append(fields, labresult.FieldReferenceLow)
	}
	if m.FieldCleared(labresult.FieldReferenceHigh) {
		fields = append(fields, labresult.FieldReferenceHigh)
	}
	if m.FieldCleared(labresult.FieldReferenceText) {
		fields = append(fields, labresult.FieldReferenceText)
	}
	if m.FieldCleared(labresult.FieldAnalyteID) {
		fields = append(fields, labresult.FieldAnalyteID)
	}
	if m.FieldCleared(labresult.FieldMappingConfidence) {
		fields = append(fields, labresult.FieldMappingConfidence)
	}
	if m.FieldCleared(labresult.FieldMappingSource) {
		fields = append(fields, labresult.FieldMappingSource)
	}
	if m.FieldCleared(labresult.FieldMappedAt) {
		fields = append(fields, labresult.FieldMappedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabResultMutation) ClearField(name string) error {
	switch name {
	case labresult.FieldValueNumeric:
		m.ClearValueNumeric()
		return nil
	case labresult.FieldValueText:
		m.ClearValueText()
		return nil
	case labresult.FieldUnit:
		m.ClearUnit()
		return nil
	case labresult.FieldReferenceLow:
		m.ClearReferenceLow()
		return nil
	case labresult.FieldReferenceHigh:
		m.ClearReferenceHigh()
		return nil
	case labresult.FieldReferenceText:
		m.ClearReferenceText()
		return nil
	case labresult.FieldAnalyteID:
		m.ClearAnalyteID()
		return nil
	case labresult.FieldMappingConfidence:
		m.ClearMappingConfidence()
		return nil
	case labresult.FieldMappingSource:
		m.ClearMappingSource()
		return nil
	case labresult.FieldMappedAt:
		m.ClearMappedAt()
		return nil
	}
	return fmt.Errorf("unknown LabResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabResultMutation) ResetField(name string) error {
	switch name {
	case labresult.FieldReportID:
		m.ResetReportID()
		return nil
	case labresult.FieldUserID:
		m.ResetUserID()
		return nil
	case labresult.FieldPatientID:
		m.ResetPatientID()
		return nil
	case labresult.FieldParameterName:
		m.ResetParameterName()
		return nil
	case labresult.FieldValueNumeric:
		m.ResetValueNumeric()
		return nil
	case labresult.FieldValueText:
		m.ResetValueText()
		return nil
	case labresult.FieldUnit:
		m.ResetUnit()
		return nil
	case labresult.FieldReferenceLow:
		m.ResetReferenceLow()
		return nil
	case labresult.FieldReferenceHigh:
		m.ResetReferenceHigh()
		return nil
	case labresult.FieldReferenceText:
		m.ResetReferenceText()
		return nil
	case labresult.FieldOutOfRange:
		m.ResetOutOfRange()
		return nil
	case labresult.FieldAnalyteID:
		m.ResetAnalyteID()
		return nil
	case labresult.FieldMappingConfidence:
		m.ResetMappingConfidence()
		return nil
	case labresult.FieldMappingSource:
		m.ResetMappingSource()
		return nil
	case labresult.FieldMappedAt:
		m.ResetMappedAt()
		return nil
	case labresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LabResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.report != nil {
		edges = append(edges, labresult.EdgeReport)
	}
	if m.analyte != nil {
		edges = append(edges, labresult.EdgeAnalyte)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case labresult.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case labresult.EdgeAnalyte:
		if id := m.analyte; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreport {
		edges = append(edges, labresult.EdgeReport)
	}
	if m.clearedanalyte {
		edges = append(edges, labresult.EdgeAnalyte)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabResultMutation) EdgeCleared(name string) bool {
	switch name {
	case labresult.EdgeReport:
		return m.clearedreport
	case labresult.EdgeAnalyte:
		return m.clearedanalyte
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabResultMutation) ClearEdge(name string) error {
	switch name {
	case labresult.EdgeReport:
		m.ClearReport()
		return nil
	case labresult.EdgeAnalyte:
		m.ClearAnalyte()
		return nil
	}
	return fmt.Errorf("unknown LabResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabResultMutation) ResetEdge(name string) error {
	switch name {
	case labresult.EdgeReport:
		m.ResetReport()
		return nil
	case labresult.EdgeAnalyte:
		m.ResetAnalyte()
		return nil
	}
	return fmt.Errorf("unknown LabResult edge %s", name)
}

// MatchReviewMutation represents an operation that mutates the MatchReview nodes in the graph.
type MatchReviewMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	result_id        *uuid.UUID
	parameter_name   *string
	candidates       *[]map[string]interface{}
	appendcandidates []map[string]interface{}
	status           *matchreview.Status
	created_at       *time.Time
	resolved_at      *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MatchReview, error)
	predicates       []predicate.MatchReview
}

var _ ent.Mutation = (*MatchReviewMutation)(nil)

// matchreviewOption allows management of the mutation configuration using functional options.
type matchreviewOption func(*MatchReviewMutation)

// newMatchReviewMutation creates new mutation for the MatchReview entity.
func newMatchReviewMutation(c config, op Op, opts ...matchreviewOption) *MatchReviewMutation {
	m := &MatchReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeMatchReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMatchReviewID sets the ID field of the mutation.
func withMatchReviewID(id uuid.UUID) matchreviewOption {
	return func(m *MatchReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *MatchReview
		)
		m.oldValue = func(ctx context.Context) (*MatchReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MatchReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMatchReview sets the old MatchReview of the mutation.
func withMatchReview(node *MatchReview) matchreviewOption {
	return func(m *MatchReviewMutation) {
		m.oldValue = func(context.Context) (*MatchReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MatchReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MatchReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MatchReview entities.
func (m *MatchReviewMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MatchReviewMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MatchReviewMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MatchReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResultID sets the "result_id" field.
func (m *MatchReviewMutation) SetResultID(u uuid.UUID) {
	m.result_id = &u
}

// ResultID returns the value of the "result_id" field in the mutation.
func (m *MatchReviewMutation) ResultID() (r uuid.UUID, exists bool) {
	v := m.result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResultID returns the old "result_id" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldResultID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultID: %w", err)
	}
	return oldValue.ResultID, nil
}

// ResetResultID resets all changes to the "result_id" field.
func (m *MatchReviewMutation) ResetResultID() {
	m.result_id = nil
}

// SetParameterName sets the "parameter_name" field.
func (m *MatchReviewMutation) SetParameterName(s string) {
	m.parameter_name = &s
}

// ParameterName returns the value of the "parameter_name" field in the mutation.
func (m *MatchReviewMutation) ParameterName() (r string, exists bool) {
	v := m.parameter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldParameterName returns the old "parameter_name" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldParameterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameterName: %w", err)
	}
	return oldValue.ParameterName, nil
}

// ResetParameterName resets all changes to the "parameter_name" field.
func (m *MatchReviewMutation) ResetParameterName() {
	m.parameter_name = nil
}

// SetCandidates sets the "candidates" field.
func (m *MatchReviewMutation) SetCandidates(value []map[string]interface{}) {
	m.candidates = &value
	m.appendcandidates = nil
}

// Candidates returns the value of the "candidates" field in the mutation.
func (m *MatchReviewMutation) Candidates() (r []map[string]interface{}, exists bool) {
	v := m.candidates
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidates returns the old "candidates" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldCandidates(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidates: %w", err)
	}
	return oldValue.Candidates, nil
}

// AppendCandidates adds value to the "candidates" field.
func (m *MatchReviewMutation) AppendCandidates(value []map[string]interface{}) {
	m.appendcandidates = append(m.appendcandidates, value...)
}

// AppendedCandidates returns the list of values that were appended to the "candidates" field in this mutation.
func (m *MatchReviewMutation) AppendedCandidates() ([]map[string]interface{}, bool) {
	if len(m.appendcandidates) == 0 {
		return nil, false
	}
	return m.appendcandidates, true
}

// ResetCandidates resets all changes to the "candidates" field.
func (m *MatchReviewMutation) ResetCandidates() {
	m.candidates = nil
	m.appendcandidates = nil
}

// SetStatus sets the "status" field.
func (m *MatchReviewMutation) SetStatus(value matchreview.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MatchReviewMutation) Status() (r matchreview.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldStatus(ctx context.Context) (v matchreview.Status, err error) {
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
func (m *MatchReviewMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MatchReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MatchReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MatchReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *MatchReviewMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *MatchReviewMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the MatchReview entity.
// If the MatchReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MatchReviewMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *MatchReviewMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[matchreview.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *MatchReviewMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[matchreview.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *MatchReviewMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, matchreview.FieldResolvedAt)
}

// Where appends a list predicates to the MatchReviewMutation builder.
func (m *MatchReviewMutation) Where(ps ...predicate.MatchReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MatchReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MatchReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MatchReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MatchReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MatchReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MatchReview).
func (m *MatchReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MatchReviewMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.result_id != nil {
		fields = append(fields, matchreview.FieldResultID)
	}
	if m.parameter_name != nil {
		fields = append(fields, matchreview.FieldParameterName)
	}
	if m.candidates != nil {
		fields = append(fields, matchreview.FieldCandidates)
	}
	if m.status != nil {
		fields = append(fields, matchreview.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, matchreview.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, matchreview.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MatchReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case matchreview.FieldResultID:
		return m.ResultID()
	case matchreview.FieldParameterName:
		return m.ParameterName()
	case matchreview.FieldCandidates:
		return m.Candidates()
	case matchreview.FieldStatus:
		return m.Status()
	case matchreview.FieldCreatedAt:
		return m.CreatedAt()
	case matchreview.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MatchReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case matchreview.FieldResultID:
		return m.OldResultID(ctx)
	case matchreview.FieldParameterName:
		return m.OldParameterName(ctx)
	case matchreview.FieldCandidates:
		return m.OldCandidates(ctx)
	case matchreview.FieldStatus:
		return m.OldStatus(ctx)
	case matchreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case matchreview.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MatchReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case matchreview.FieldResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultID(v)
		return nil
	case matchreview.FieldParameterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameterName(v)
		return nil
	case matchreview.FieldCandidates:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidates(v)
		return nil
	case matchreview.FieldStatus:
		v, ok := value.(matchreview.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case matchreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case matchreview.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MatchReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MatchReviewMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MatchReviewMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MatchReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MatchReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MatchReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(matchreview.FieldResolvedAt) {
		fields = append(fields, matchreview.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MatchReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MatchReviewMutation) ClearField(name string) error {
	switch name {
	case matchreview.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown MatchReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MatchReviewMutation) ResetField(name string) error {
	switch name {
	case matchreview.FieldResultID:
		m.ResetResultID()
		return nil
	case matchreview.FieldParameterName:
		m.ResetParameterName()
		return nil
	case matchreview.FieldCandidates:
		m.ResetCandidates()
		return nil
	case matchreview.FieldStatus:
		m.ResetStatus()
		return nil
	case matchreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case matchreview.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown MatchReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MatchReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MatchReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MatchReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MatchReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MatchReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MatchReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MatchReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MatchReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MatchReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MatchReview edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	full_name       *string
	normalized_name *string
	last_report_at  *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	owner           *uuid.UUID
	clearedowner    bool
	reports         map[uuid.UUID]struct{}
	removedreports  map[uuid.UUID]struct{}
	clearedreports  bool
	done            bool
	oldValue        func(context.Context) (*Patient, error)
	predicates      []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PatientMutation) SetUserID(u uuid.UUID) {
	m.owner = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientMutation) ResetUserID() {
	m.owner = nil
}

// SetFullName sets the "full_name" field.
func (m *PatientMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *PatientMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *PatientMutation) ResetFullName() {
	m.full_name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *PatientMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *PatientMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *PatientMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetLastReportAt sets the "last_report_at" field.
func (m *PatientMutation) SetLastReportAt(t time.Time) {
	m.last_report_at = &t
}

// LastReportAt returns the value of the "last_report_at" field in the mutation.
func (m *PatientMutation) LastReportAt() (r time.Time, exists bool) {
	v := m.last_report_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReportAt returns the old "last_report_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldLastReportAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReportAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReportAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReportAt: %w", err)
	}
	return oldValue.LastReportAt, nil
}

// ClearLastReportAt clears the value of the "last_report_at" field.
func (m *PatientMutation) ClearLastReportAt() {
	m.last_report_at = nil
	m.clearedFields[patient.FieldLastReportAt] = struct{}{}
}

// LastReportAtCleared returns if the "last_report_at" field was cleared in this mutation.
func (m *PatientMutation) LastReportAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldLastReportAt]
	return ok
}

// ResetLastReportAt resets all changes to the "last_report_at" field.
func (m *PatientMutation) ResetLastReportAt() {
	m.last_report_at = nil
	delete(m.clearedFields, patient.FieldLastReportAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *PatientMutation) SetOwnerID(id uuid.UUID) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *PatientMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *PatientMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *PatientMutation) OwnerID() (id uuid.UUID, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *PatientMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *PatientMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *PatientMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *PatientMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *PatientMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *PatientMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *PatientMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *PatientMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.owner != nil {
		fields = append(fields, patient.FieldUserID)
	}
	if m.full_name != nil {
		fields = append(fields, patient.FieldFullName)
	}
	if m.normalized_name != nil {
		fields = append(fields, patient.FieldNormalizedName)
	}
	if m.last_report_at != nil {
		fields = append(fields, patient.FieldLastReportAt)
	}
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldUserID:
		return m.UserID()
	case patient.FieldFullName:
		return m.FullName()
	case patient.FieldNormalizedName:
		return m.NormalizedName()
	case patient.FieldLastReportAt:
		return m.LastReportAt()
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldUserID:
		return m.OldUserID(ctx)
	case patient.FieldFullName:
		return m.OldFullName(ctx)
	case patient.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case patient.FieldLastReportAt:
		return m.OldLastReportAt(ctx)
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patient.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case patient.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case patient.FieldLastReportAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReportAt(v)
		return nil
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldLastReportAt) {
		fields = append(fields, patient.FieldLastReportAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldLastReportAt:
		m.ClearLastReportAt()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldUserID:
		m.ResetUserID()
		return nil
	case patient.FieldFullName:
		m.ResetFullName()
		return nil
	case patient.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case patient.FieldLastReportAt:
		m.ResetLastReportAt()
		return nil
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.owner != nil {
		edges = append(edges, patient.EdgeOwner)
	}
	if m.reports != nil {
		edges = append(edges, patient.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedreports != nil {
		edges = append(edges, patient.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedowner {
		edges = append(edges, patient.EdgeOwner)
	}
	if m.clearedreports {
		edges = append(edges, patient.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeOwner:
		return m.clearedowner
	case patient.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeOwner:
		m.ResetOwner()
		return nil
	case patient.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PendingAnalyteMutation represents an operation that mutates the PendingAnalyte nodes in the graph.
type PendingAnalyteMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	proposed_code    *string
	proposed_name    *string
	evidence         *[]map[string]interface{}
	appendevidence   []map[string]interface{}
	variations       *[]map[string]string
	appendvariations []map[string]string
	status           *pendinganalyte.Status
	created_at       *time.Time
	resolved_at      *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PendingAnalyte, error)
	predicates       []predicate.PendingAnalyte
}

var _ ent.Mutation = (*PendingAnalyteMutation)(nil)

// pendinganalyteOption allows management of the mutation configuration using functional options.
type pendinganalyteOption func(*PendingAnalyteMutation)

// newPendingAnalyteMutation creates new mutation for the PendingAnalyte entity.
func newPendingAnalyteMutation(c config, op Op, opts ...pendinganalyteOption) *PendingAnalyteMutation {
	m := &PendingAnalyteMutation{
		config:        c,
		op:            op,
		typ:           TypePendingAnalyte,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingAnalyteID sets the ID field of the mutation.
func withPendingAnalyteID(id uuid.UUID) pendinganalyteOption {
	return func(m *PendingAnalyteMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingAnalyte
		)
		m.oldValue = func(ctx context.Context) (*PendingAnalyte, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingAnalyte.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingAnalyte sets the old PendingAnalyte of the mutation.
func withPendingAnalyte(node *PendingAnalyte) pendinganalyteOption {
	return func(m *PendingAnalyteMutation) {
		m.oldValue = func(context.Context) (*PendingAnalyte, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingAnalyteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingAnalyteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingAnalyte entities.
func (m *PendingAnalyteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingAnalyteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingAnalyteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingAnalyte.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposedCode sets the "proposed_code" field.
func (m *PendingAnalyteMutation) SetProposedCode(s string) {
	m.proposed_code = &s
}

// ProposedCode returns the value of the "proposed_code" field in the mutation.
func (m *PendingAnalyteMutation) ProposedCode() (r string, exists bool) {
	v := m.proposed_code
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedCode returns the old "proposed_code" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldProposedCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedCode: %w", err)
	}
	return oldValue.ProposedCode, nil
}

// ResetProposedCode resets all changes to the "proposed_code" field.
func (m *PendingAnalyteMutation) ResetProposedCode() {
	m.proposed_code = nil
}

// SetProposedName sets the "proposed_name" field.
func (m *PendingAnalyteMutation) SetProposedName(s string) {
	m.proposed_name = &s
}

// ProposedName returns the value of the "proposed_name" field in the mutation.
func (m *PendingAnalyteMutation) ProposedName() (r string, exists bool) {
	v := m.proposed_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProposedName returns the old "proposed_name" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldProposedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposedName: %w", err)
	}
	return oldValue.ProposedName, nil
}

// ResetProposedName resets all changes to the "proposed_name" field.
func (m *PendingAnalyteMutation) ResetProposedName() {
	m.proposed_name = nil
}

// SetEvidence sets the "evidence" field.
func (m *PendingAnalyteMutation) SetEvidence(value []map[string]interface{}) {
	m.evidence = &value
	m.appendevidence = nil
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *PendingAnalyteMutation) Evidence() (r []map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldEvidence(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// AppendEvidence adds value to the "evidence" field.
func (m *PendingAnalyteMutation) AppendEvidence(value []map[string]interface{}) {
	m.appendevidence = append(m.appendevidence, value...)
}

// AppendedEvidence returns the list of values that were appended to the "evidence" field in this mutation.
func (m *PendingAnalyteMutation) AppendedEvidence() ([]map[string]interface{}, bool) {
	if len(m.appendevidence) == 0 {
		return nil, false
	}
	return m.appendevidence, true
}

// ClearEvidence clears the value of the "evidence" field.
func (m *PendingAnalyteMutation) ClearEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	m.clearedFields[pendinganalyte.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *PendingAnalyteMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[pendinganalyte.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *PendingAnalyteMutation) ResetEvidence() {
	m.evidence = nil
	m.appendevidence = nil
	delete(m.clearedFields, pendinganalyte.FieldEvidence)
}

// SetVariations sets the "variations" field.
func (m *PendingAnalyteMutation) SetVariations(value []map[string]string) {
	m.variations = &value
	m.appendvariations = nil
}

// Variations returns the value of the "variations" field in the mutation.
func (m *PendingAnalyteMutation) Variations() (r []map[string]string, exists bool) {
	v := m.variations
	if v == nil {
		return
	}
	return *v, true
}

// OldVariations returns the old "variations" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldVariations(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariations: %w", err)
	}
	return oldValue.Variations, nil
}

// AppendVariations adds value to the "variations" field.
func (m *PendingAnalyteMutation) AppendVariations(value []map[string]string) {
	m.appendvariations = append(m.appendvariations, value...)
}

// AppendedVariations returns the list of values that were appended to the "variations" field in this mutation.
func (m *PendingAnalyteMutation) AppendedVariations() ([]map[string]string, bool) {
	if len(m.appendvariations) == 0 {
		return nil, false
	}
	return m.appendvariations, true
}

// ClearVariations clears the value of the "variations" field.
func (m *PendingAnalyteMutation) ClearVariations() {
	m.variations = nil
	m.appendvariations = nil
	m.clearedFields[pendinganalyte.FieldVariations] = struct{}{}
}

// VariationsCleared returns if the "variations" field was cleared in this mutation.
func (m *PendingAnalyteMutation) VariationsCleared() bool {
	_, ok := m.clearedFields[pendinganalyte.FieldVariations]
	return ok
}

// ResetVariations resets all changes to the "variations" field.
func (m *PendingAnalyteMutation) ResetVariations() {
	m.variations = nil
	m.appendvariations = nil
	delete(m.clearedFields, pendinganalyte.FieldVariations)
}

// SetStatus sets the "status" field.
func (m *PendingAnalyteMutation) SetStatus(pe pendinganalyte.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PendingAnalyteMutation) Status() (r pendinganalyte.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldStatus(ctx context.Context) (v pendinganalyte.Status, err error) {
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
func (m *PendingAnalyteMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PendingAnalyteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PendingAnalyteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PendingAnalyteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *PendingAnalyteMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *PendingAnalyteMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the PendingAnalyte entity.
// If the PendingAnalyte object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingAnalyteMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *PendingAnalyteMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[pendinganalyte.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *PendingAnalyteMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[pendinganalyte.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *PendingAnalyteMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, pendinganalyte.FieldResolvedAt)
}

// Where appends a list predicates to the PendingAnalyteMutation builder.
func (m *PendingAnalyteMutation) Where(ps ...predicate.PendingAnalyte) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingAnalyteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingAnalyteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingAnalyte, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingAnalyteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingAnalyteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingAnalyte).
func (m *PendingAnalyteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingAnalyteMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.proposed_code != nil {
		fields = append(fields, pendinganalyte.FieldProposedCode)
	}
	if m.proposed_name != nil {
		fields = append(fields, pendinganalyte.FieldProposedName)
	}
	if m.evidence != nil {
		fields = append(fields, pendinganalyte.FieldEvidence)
	}
	if m.variations != nil {
		fields = append(fields, pendinganalyte.FieldVariations)
	}
	if m.status != nil {
		fields = append(fields, pendinganalyte.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, pendinganalyte.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, pendinganalyte.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingAnalyteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendinganalyte.FieldProposedCode:
		return m.ProposedCode()
	case pendinganalyte.FieldProposedName:
		return m.ProposedName()
	case pendinganalyte.FieldEvidence:
		return m.Evidence()
	case pendinganalyte.FieldVariations:
		return m.Variations()
	case pendinganalyte.FieldStatus:
		return m.Status()
	case pendinganalyte.FieldCreatedAt:
		return m.CreatedAt()
	case pendinganalyte.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingAnalyteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendinganalyte.FieldProposedCode:
		return m.OldProposedCode(ctx)
	case pendinganalyte.FieldProposedName:
		return m.OldProposedName(ctx)
	case pendinganalyte.FieldEvidence:
		return m.OldEvidence(ctx)
	case pendinganalyte.FieldVariations:
		return m.OldVariations(ctx)
	case pendinganalyte.FieldStatus:
		return m.OldStatus(ctx)
	case pendinganalyte.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pendinganalyte.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PendingAnalyte field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingAnalyteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendinganalyte.FieldProposedCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedCode(v)
		return nil
	case pendinganalyte.FieldProposedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposedName(v)
		return nil
	case pendinganalyte.FieldEvidence:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case pendinganalyte.FieldVariations:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariations(v)
		return nil
	case pendinganalyte.FieldStatus:
		v, ok := value.(pendinganalyte.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pendinganalyte.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pendinganalyte.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PendingAnalyte field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingAnalyteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingAnalyteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingAnalyteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PendingAnalyte numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingAnalyteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendinganalyte.FieldEvidence) {
		fields = append(fields, pendinganalyte.FieldEvidence)
	}
	if m.FieldCleared(pendinganalyte.FieldVariations) {
		fields = append(fields, pendinganalyte.FieldVariations)
	}
	if m.FieldCleared(pendinganalyte.FieldResolvedAt) {
		fields = append(fields, pendinganalyte.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingAnalyteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingAnalyteMutation) ClearField(name string) error {
	switch name {
	case pendinganalyte.FieldEvidence:
		m.ClearEvidence()
		return nil
	case pendinganalyte.FieldVariations:
		m.ClearVariations()
		return nil
	case pendinganalyte.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown PendingAnalyte nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingAnalyteMutation) ResetField(name string) error {
	switch name {
	case pendinganalyte.FieldProposedCode:
		m.ResetProposedCode()
		return nil
	case pendinganalyte.FieldProposedName:
		m.ResetProposedName()
		return nil
	case pendinganalyte.FieldEvidence:
		m.ResetEvidence()
		return nil
	case pendinganalyte.FieldVariations:
		m.ResetVariations()
		return nil
	case pendinganalyte.FieldStatus:
		m.ResetStatus()
		return nil
	case pendinganalyte.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pendinganalyte.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown PendingAnalyte field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingAnalyteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingAnalyteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingAnalyteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingAnalyteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingAnalyteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingAnalyteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingAnalyteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PendingAnalyte unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingAnalyteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PendingAnalyte edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	filename              *string
	mime_type             *string
	storage_path          *string
	checksum              *string
	status                *report.Status
	error_message         *string
	raw_output            *map[string]interface{}
	test_date_text        *string
	effective_date        *time.Time
	patient_name_snapshot *string
	lab_name              *string
	model_name            *string
	recognized_at         *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	owner                 *uuid.UUID
	clearedowner          bool
	patient               *uuid.UUID
	clearedpatient        bool
	results               map[uuid.UUID]struct{}
	removedresults        map[uuid.UUID]struct{}
	clearedresults        bool
	done                  bool
	oldValue              func(context.Context) (*Report, error)
	predicates            []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id uuid.UUID) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReportMutation) SetUserID(u uuid.UUID) {
	m.owner = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReportMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReportMutation) ResetUserID() {
	m.owner = nil
}

// SetPatientID sets the "patient_id" field.
func (m *ReportMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *ReportMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *ReportMutation) ResetPatientID() {
	m.patient = nil
}

// SetFilename sets the "filename" field.
func (m *ReportMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ReportMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ReportMutation) ResetFilename() {
	m.filename = nil
}

// SetMimeType sets the "mime_type" field.
func (m *ReportMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ReportMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ReportMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *ReportMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *ReportMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *ReportMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetChecksum sets the "checksum" field.
func (m *ReportMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *ReportMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *ReportMutation) ResetChecksum() {
	m.checksum = nil
}

// SetStatus sets the "status" field.
func (m *ReportMutation) SetStatus(r report.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReportMutation) Status() (r report.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldStatus(ctx context.Context) (v report.Status, err error) {
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
func (m *ReportMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ReportMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ReportMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *ReportMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[report.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ReportMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[report.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ReportMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, report.FieldErrorMessage)
}

// SetRawOutput sets the "raw_output" field.
func (m *ReportMutation) SetRawOutput(value map[string]interface{}) {
	m.raw_output = &value
}

// RawOutput returns the value of the "raw_output" field in the mutation.
func (m *ReportMutation) RawOutput() (r map[string]interface{}, exists bool) {
	v := m.raw_output
	if v == nil {
		return
	}
	return *v, true
}

// OldRawOutput returns the old "raw_output" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldRawOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawOutput: %w", err)
	}
	return oldValue.RawOutput, nil
}

// ClearRawOutput clears the value of the "raw_output" field.
func (m *ReportMutation) ClearRawOutput() {
	m.raw_output = nil
	m.clearedFields[report.FieldRawOutput] = struct{}{}
}

// RawOutputCleared returns if the "raw_output" field was cleared in this mutation.
func (m *ReportMutation) RawOutputCleared() bool {
	_, ok := m.clearedFields[report.FieldRawOutput]
	return ok
}

// ResetRawOutput resets all changes to the "raw_output" field.
func (m *ReportMutation) ResetRawOutput() {
	m.raw_output = nil
	delete(m.clearedFields, report.FieldRawOutput)
}

// SetTestDateText sets the "test_date_text" field.
func (m *ReportMutation) SetTestDateText(s string) {
	m.test_date_text = &s
}

// TestDateText returns the value of the "test_date_text" field in the mutation.
func (m *ReportMutation) TestDateText() (r string, exists bool) {
	v := m.test_date_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTestDateText returns the old "test_date_text" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTestDateText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestDateText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestDateText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestDateText: %w", err)
	}
	return oldValue.TestDateText, nil
}

// ClearTestDateText clears the value of the "test_date_text" field.
func (m *ReportMutation) ClearTestDateText() {
	m.test_date_text = nil
	m.clearedFields[report.FieldTestDateText] = struct{}{}
}

// TestDateTextCleared returns if the "test_date_text" field was cleared in this mutation.
func (m *ReportMutation) TestDateTextCleared() bool {
	_, ok := m.clearedFields[report.FieldTestDateText]
	return ok
}

// ResetTestDateText resets all changes to the "test_date_text" field.
func (m *ReportMutation) ResetTestDateText() {
	m.test_date_text = nil
	delete(m.clearedFields, report.FieldTestDateText)
}

// SetEffectiveDate sets the "effective_date" field.
func (m *ReportMutation) SetEffectiveDate(t time.Time) {
	m.effective_date = &t
}

// EffectiveDate returns the value of the "effective_date" field in the mutation.
func (m *ReportMutation) EffectiveDate() (r time.Time, exists bool) {
	v := m.effective_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveDate returns the old "effective_date" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldEffectiveDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveDate: %w", err)
	}
	return oldValue.EffectiveDate, nil
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (m *ReportMutation) ClearEffectiveDate() {
	m.effective_date = nil
	m.clearedFields[report.FieldEffectiveDate] = struct{}{}
}

// EffectiveDateCleared returns if the "effective_date" field was cleared in this mutation.
func (m *ReportMutation) EffectiveDateCleared() bool {
	_, ok := m.clearedFields[report.FieldEffectiveDate]
	return ok
}

// ResetEffectiveDate resets all changes to the "effective_date" field.
func (m *ReportMutation) ResetEffectiveDate() {
	m.effective_date = nil
	delete(m.clearedFields, report.FieldEffectiveDate)
}

// SetPatientNameSnapshot sets the "patient_name_snapshot" field.
func (m *ReportMutation) SetPatientNameSnapshot(s string) {
	m.patient_name_snapshot = &s
}

// PatientNameSnapshot returns the value of the "patient_name_snapshot" field in the mutation.
func (m *ReportMutation) PatientNameSnapshot() (r string, exists bool) {
	v := m.patient_name_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientNameSnapshot returns the old "patient_name_snapshot" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldPatientNameSnapshot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientNameSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientNameSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientNameSnapshot: %w", err)
	}
	return oldValue.PatientNameSnapshot, nil
}

// ClearPatientNameSnapshot clears the value of the "patient_name_snapshot" field.
func (m *ReportMutation) ClearPatientNameSnapshot() {
	m.patient_name_snapshot = nil
	m.clearedFields[report.FieldPatientNameSnapshot] = struct{}{}
}

// PatientNameSnapshotCleared returns if the "patient_name_snapshot" field was cleared in this mutation.
func (m *ReportMutation) PatientNameSnapshotCleared() bool {
	_, ok := m.clearedFields[report.FieldPatientNameSnapshot]
	return ok
}

// ResetPatientNameSnapshot resets all changes to the "patient_name_snapshot" field.
func (m *ReportMutation) ResetPatientNameSnapshot() {
	m.patient_name_snapshot = nil
	delete(m.clearedFields, report.FieldPatientNameSnapshot)
}

// SetLabName sets the "lab_name" field.
func (m *ReportMutation) SetLabName(s string) {
	m.lab_name = &s
}

// LabName returns the value of the "lab_name" field in the mutation.
func (m *ReportMutation) LabName() (r string, exists bool) {
	v := m.lab_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLabName returns the old "lab_name" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLabName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabName: %w", err)
	}
	return oldValue.LabName, nil
}

// ClearLabName clears the value of the "lab_name" field.
func (m *ReportMutation) ClearLabName() {
	m.lab_name = nil
	m.clearedFields[report.FieldLabName] = struct{}{}
}

// LabNameCleared returns if the "lab_name" field was cleared in this mutation.
func (m *ReportMutation) LabNameCleared() bool {
	_, ok := m.clearedFields[report.FieldLabName]
	return ok
}

// ResetLabName resets all changes to the "lab_name" field.
func (m *ReportMutation) ResetLabName() {
	m.lab_name = nil
	delete(m.clearedFields, report.FieldLabName)
}

// SetModelName sets the "model_name" field.
func (m *ReportMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ReportMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ReportMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[report.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ReportMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[report.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ReportMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, report.FieldModelName)
}

// SetRecognizedAt sets the "recognized_at" field.
func (m *ReportMutation) SetRecognizedAt(t time.Time) {
	m.recognized_at = &t
}

// RecognizedAt returns the value of the "recognized_at" field in the mutation.
func (m *ReportMutation) RecognizedAt() (r time.Time, exists bool) {
	v := m.recognized_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecognizedAt returns the old "recognized_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldRecognizedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecognizedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecognizedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecognizedAt: %w", err)
	}
	return oldValue.RecognizedAt, nil
}

// ClearRecognizedAt clears the value of the "recognized_at" field.
func (m *ReportMutation) ClearRecognizedAt() {
	m.recognized_at = nil
	m.clearedFields[report.FieldRecognizedAt] = struct{}{}
}

// RecognizedAtCleared returns if the "recognized_at" field was cleared in this mutation.
func (m *ReportMutation) RecognizedAtCleared() bool {
	_, ok := m.clearedFields[report.FieldRecognizedAt]
	return ok
}

// ResetRecognizedAt resets all changes to the "recognized_at" field.
func (m *ReportMutation) ResetRecognizedAt() {
	m.recognized_at = nil
	delete(m.clearedFields, report.FieldRecognizedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *ReportMutation) SetOwnerID(id uuid.UUID) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *ReportMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[report.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *ReportMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *ReportMutation) OwnerID() (id uuid.UUID, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *ReportMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *ReportMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[report.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *ReportMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *ReportMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// AddResultIDs adds the "results" edge to the LabResult entity by ids.
func (m *ReportMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the LabResult entity.
func (m *ReportMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the LabResult entity was cleared.
func (m *ReportMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the LabResult entity by IDs.
func (m *ReportMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the LabResult entity.
func (m *ReportMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *ReportMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *ReportMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.owner != nil {
		fields = append(fields, report.FieldUserID)
	}
	if m.patient != nil {
		fields = append(fields, report.FieldPatientID)
	}
	if m.filename != nil {
		fields = append(fields, report.FieldFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, report.FieldMimeType)
	}
	if m.storage_path != nil {
		fields = append(fields, report.FieldStoragePath)
	}
	if m.checksum != nil {
		fields = append(fields, report.FieldChecksum)
	}
	if m.status != nil {
		fields = append(fields, report.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, report.FieldErrorMessage)
	}
	if m.raw_output != nil {
		fields = append(fields, report.FieldRawOutput)
	}
	if m.test_date_text != nil {
		fields = append(fields, report.FieldTestDateText)
	}
	if m.effective_date != nil {
		fields = append(fields, report.FieldEffectiveDate)
	}
	if m.patient_name_snapshot != nil {
		fields = append(fields, report.FieldPatientNameSnapshot)
	}
	if m.lab_name != nil {
		fields = append(fields, report.FieldLabName)
	}
	if m.model_name != nil {
		fields = append(fields, report.FieldModelName)
	}
	if m.recognized_at != nil {
		fields = append(fields, report.FieldRecognizedAt)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldUserID:
		return m.UserID()
	case report.FieldPatientID:
		return m.PatientID()
	case report.FieldFilename:
		return m.Filename()
	case report.FieldMimeType:
		return m.MimeType()
	case report.FieldStoragePath:
		return m.StoragePath()
	case report.FieldChecksum:
		return m.Checksum()
	case report.FieldStatus:
		return m.Status()
	case report.FieldErrorMessage:
		return m.ErrorMessage()
	case report.FieldRawOutput:
		return m.RawOutput()
	case report.FieldTestDateText:
		return m.TestDateText()
	case report.FieldEffectiveDate:
		return m.EffectiveDate()
	case report.FieldPatientNameSnapshot:
		return m.PatientNameSnapshot()
	case report.FieldLabName:
		return m.LabName()
	case report.FieldModelName:
		return m.ModelName()
	case report.FieldRecognizedAt:
		return m.RecognizedAt()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldUserID:
		return m.OldUserID(ctx)
	case report.FieldPatientID:
		return m.OldPatientID(ctx)
	case report.FieldFilename:
		return m.OldFilename(ctx)
	case report.FieldMimeType:
		return m.OldMimeType(ctx)
	case report.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case report.FieldChecksum:
		return m.OldChecksum(ctx)
	case report.FieldStatus:
		return m.OldStatus(ctx)
	case report.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case report.FieldRawOutput:
		return m.OldRawOutput(ctx)
	case report.FieldTestDateText:
		return m.OldTestDateText(ctx)
	case report.FieldEffectiveDate:
		return m.OldEffectiveDate(ctx)
	case report.FieldPatientNameSnapshot:
		return m.OldPatientNameSnapshot(ctx)
	case report.FieldLabName:
		return m.OldLabName(ctx)
	case report.FieldModelName:
		return m.OldModelName(ctx)
	case report.FieldRecognizedAt:
		return m.OldRecognizedAt(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case report.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case report.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case report.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case report.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case report.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case report.FieldStatus:
		v, ok := value.(report.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case report.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case report.FieldRawOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawOutput(v)
		return nil
	case report.FieldTestDateText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestDateText(v)
		return nil
	case report.FieldEffectiveDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveDate(v)
		return nil
	case report.FieldPatientNameSnapshot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientNameSnapshot(v)
		return nil
	case report.FieldLabName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabName(v)
		return nil
	case report.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case report.FieldRecognizedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecognizedAt(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldErrorMessage) {
		fields = append(fields, report.FieldErrorMessage)
	}
	if m.FieldCleared(report.FieldRawOutput) {
		fields = append(fields, report.FieldRawOutput)
	}
	if m.FieldCleared(report.FieldTestDateText) {
		fields = append(fields, report.FieldTestDateText)
	}
	if m.FieldCleared(report.FieldEffectiveDate) {
		fields = append(fields, report.FieldEffectiveDate)
	}
	if m.FieldCleared(report.FieldPatientNameSnapshot) {
		fields = append(fields, report.FieldPatientNameSnapshot)
	}
	if m.FieldCleared(report.FieldLabName) {
		fields = append(fields, report.FieldLabName)
	}
	if m.FieldCleared(report.FieldModelName) {
		fields = append(fields, report.FieldModelName)
	}
	if m.FieldCleared(report.FieldRecognizedAt) {
		fields = append(fields, report.FieldRecognizedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case report.FieldRawOutput:
		m.ClearRawOutput()
		return nil
	case report.FieldTestDateText:
		m.ClearTestDateText()
		return nil
	case report.FieldEffectiveDate:
		m.ClearEffectiveDate()
		return nil
	case report.FieldPatientNameSnapshot:
		m.ClearPatientNameSnapshot()
		return nil
	case report.FieldLabName:
		m.ClearLabName()
		return nil
	case report.FieldModelName:
		m.ClearModelName()
		return nil
	case report.FieldRecognizedAt:
		m.ClearRecognizedAt()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldUserID:
		m.ResetUserID()
		return nil
	case report.FieldPatientID:
		m.ResetPatientID()
		return nil
	case report.FieldFilename:
		m.ResetFilename()
		return nil
	case report.FieldMimeType:
		m.ResetMimeType()
		return nil
	case report.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case report.FieldChecksum:
		m.ResetChecksum()
		return nil
	case report.FieldStatus:
		m.ResetStatus()
		return nil
	case report.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case report.FieldRawOutput:
		m.ResetRawOutput()
		return nil
	case report.FieldTestDateText:
		m.ResetTestDateText()
		return nil
	case report.FieldEffectiveDate:
		m.ResetEffectiveDate()
		return nil
	case report.FieldPatientNameSnapshot:
		m.ResetPatientNameSnapshot()
		return nil
	case report.FieldLabName:
		m.ResetLabName()
		return nil
	case report.FieldModelName:
		m.ResetModelName()
		return nil
	case report.FieldRecognizedAt:
		m.ResetRecognizedAt()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.owner != nil {
		edges = append(edges, report.EdgeOwner)
	}
	if m.patient != nil {
		edges = append(edges, report.EdgePatient)
	}
	if m.results != nil {
		edges = append(edges, report.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedresults != nil {
		edges = append(edges, report.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedowner {
		edges = append(edges, report.EdgeOwner)
	}
	if m.clearedpatient {
		edges = append(edges, report.EdgePatient)
	}
	if m.clearedresults {
		edges = append(edges, report.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeOwner:
		return m.clearedowner
	case report.EdgePatient:
		return m.clearedpatient
	case report.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeOwner:
		m.ClearOwner()
		return nil
	case report.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeOwner:
		m.ResetOwner()
		return nil
	case report.EdgePatient:
		m.ResetPatient()
		return nil
	case report.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	display_name    *string
	email           *string
	is_admin        *bool
	api_token       *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	patients        map[uuid.UUID]struct{}
	removedpatients map[uuid.UUID]struct{}
	clearedpatients bool
	reports         map[uuid.UUID]struct{}
	removedreports  map[uuid.UUID]struct{}
	clearedreports  bool
	done            bool
	oldValue        func(context.Context) (*User, error)
	predicates      []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetIsAdmin sets the "is_admin" field.
func (m *UserMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *UserMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *UserMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetAPIToken sets the "api_token" field.
func (m *UserMutation) SetAPIToken(s string) {
	m.api_token = &s
}

// APIToken returns the value of the "api_token" field in the mutation.
func (m *UserMutation) APIToken() (r string, exists bool) {
	v := m.api_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIToken returns the old "api_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAPIToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIToken: %w", err)
	}
	return oldValue.APIToken, nil
}

// ResetAPIToken resets all changes to the "api_token" field.
func (m *UserMutation) ResetAPIToken() {
	m.api_token = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddPatientIDs adds the "patients" edge to the Patient entity by ids.
func (m *UserMutation) AddPatientIDs(ids ...uuid.UUID) {
	if m.patients == nil {
		m.patients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.patients[ids[i]] = struct{}{}
	}
}

// ClearPatients clears the "patients" edge to the Patient entity.
func (m *UserMutation) ClearPatients() {
	m.clearedpatients = true
}

// PatientsCleared reports if the "patients" edge to the Patient entity was cleared.
func (m *UserMutation) PatientsCleared() bool {
	return m.clearedpatients
}

// RemovePatientIDs removes the "patients" edge to the Patient entity by IDs.
func (m *UserMutation) RemovePatientIDs(ids ...uuid.UUID) {
	if m.removedpatients == nil {
		m.removedpatients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.patients, ids[i])
		m.removedpatients[ids[i]] = struct{}{}
	}
}

// RemovedPatients returns the removed IDs of the "patients" edge to the Patient entity.
func (m *UserMutation) RemovedPatientsIDs() (ids []uuid.UUID) {
	for id := range m.removedpatients {
		ids = append(ids, id)
	}
	return
}

// PatientsIDs returns the "patients" edge IDs in the mutation.
func (m *UserMutation) PatientsIDs() (ids []uuid.UUID) {
	for id := range m.patients {
		ids = append(ids, id)
	}
	return
}

// ResetPatients resets all changes to the "patients" edge.
func (m *UserMutation) ResetPatients() {
	m.patients = nil
	m.clearedpatients = false
	m.removedpatients = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *UserMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *UserMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *UserMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *UserMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *UserMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *UserMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *UserMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.is_admin != nil {
		fields = append(fields, user.FieldIsAdmin)
	}
	if m.api_token != nil {
		fields = append(fields, user.FieldAPIToken)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldIsAdmin:
		return m.IsAdmin()
	case user.FieldAPIToken:
		return m.APIToken()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case user.FieldAPIToken:
		return m.OldAPIToken(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case user.FieldAPIToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIToken(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case user.FieldAPIToken:
		m.ResetAPIToken()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.patients != nil {
		edges = append(edges, user.EdgePatients)
	}
	if m.reports != nil {
		edges = append(edges, user.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePatients:
		ids := make([]ent.Value, 0, len(m.patients))
		for id := range m.patients {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpatients != nil {
		edges = append(edges, user.EdgePatients)
	}
	if m.removedreports != nil {
		edges = append(edges, user.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePatients:
		ids := make([]ent.Value, 0, len(m.removedpatients))
		for id := range m.removedpatients {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpatients {
		edges = append(edges, user.EdgePatients)
	}
	if m.clearedreports {
		edges = append(edges, user.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePatients:
		return m.clearedpatients
	case user.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePatients:
		m.ResetPatients()
		return nil
	case user.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
