// Code generated by ent, DO NOT EDIT.

package matchreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldID, id))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResultID, v))
}

// ParameterName applies equality check predicate on the "parameter_name" field. It's identical to ParameterNameEQ.
func ParameterName(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldParameterName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResolvedAt, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldResultID, vs...))
}

// ResultIDGT applies the GT predicate on the "result_id" field.
func ResultIDGT(v uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldResultID, v))
}

// ResultIDGTE applies the GTE predicate on the "result_id" field.
func ResultIDGTE(v uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldResultID, v))
}

// ResultIDLT applies the LT predicate on the "result_id" field.
func ResultIDLT(v uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldResultID, v))
}

// ResultIDLTE applies the LTE predicate on the "result_id" field.
func ResultIDLTE(v uuid.UUID) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldResultID, v))
}

// ParameterNameEQ applies the EQ predicate on the "parameter_name" field.
func ParameterNameEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldParameterName, v))
}

// ParameterNameNEQ applies the NEQ predicate on the "parameter_name" field.
func ParameterNameNEQ(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldParameterName, v))
}

// ParameterNameIn applies the In predicate on the "parameter_name" field.
func ParameterNameIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldParameterName, vs...))
}

// ParameterNameNotIn applies the NotIn predicate on the "parameter_name" field.
func ParameterNameNotIn(vs ...string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldParameterName, vs...))
}

// ParameterNameGT applies the GT predicate on the "parameter_name" field.
func ParameterNameGT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldParameterName, v))
}

// ParameterNameGTE applies the GTE predicate on the "parameter_name" field.
func ParameterNameGTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldParameterName, v))
}

// ParameterNameLT applies the LT predicate on the "parameter_name" field.
func ParameterNameLT(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldParameterName, v))
}

// ParameterNameLTE applies the LTE predicate on the "parameter_name" field.
func ParameterNameLTE(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldParameterName, v))
}

// ParameterNameContains applies the Contains predicate on the "parameter_name" field.
func ParameterNameContains(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContains(FieldParameterName, v))
}

// ParameterNameHasPrefix applies the HasPrefix predicate on the "parameter_name" field.
func ParameterNameHasPrefix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasPrefix(FieldParameterName, v))
}

// ParameterNameHasSuffix applies the HasSuffix predicate on the "parameter_name" field.
func ParameterNameHasSuffix(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldHasSuffix(FieldParameterName, v))
}

// ParameterNameEqualFold applies the EqualFold predicate on the "parameter_name" field.
func ParameterNameEqualFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEqualFold(FieldParameterName, v))
}

// ParameterNameContainsFold applies the ContainsFold predicate on the "parameter_name" field.
func ParameterNameContainsFold(v string) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldContainsFold(FieldParameterName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.MatchReview {
	return predicate.MatchReview(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.MatchReview {
	return predicate.MatchReview(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatchReview) predicate.MatchReview {
	return predicate.MatchReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatchReview) predicate.MatchReview {
	return predicate.MatchReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatchReview) predicate.MatchReview {
	return predicate.MatchReview(sql.NotPredicates(p))
}
