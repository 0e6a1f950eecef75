// Code generated by ent, DO NOT EDIT.

package pendinganalyte

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldID, id))
}

// ProposedCode applies equality check predicate on the "proposed_code" field. It's identical to ProposedCodeEQ.
func ProposedCode(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldProposedCode, v))
}

// ProposedName applies equality check predicate on the "proposed_name" field. It's identical to ProposedNameEQ.
func ProposedName(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldProposedName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldResolvedAt, v))
}

// ProposedCodeEQ applies the EQ predicate on the "proposed_code" field.
func ProposedCodeEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldProposedCode, v))
}

// ProposedCodeNEQ applies the NEQ predicate on the "proposed_code" field.
func ProposedCodeNEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldProposedCode, v))
}

// ProposedCodeIn applies the In predicate on the "proposed_code" field.
func ProposedCodeIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldProposedCode, vs...))
}

// ProposedCodeNotIn applies the NotIn predicate on the "proposed_code" field.
func ProposedCodeNotIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldProposedCode, vs...))
}

// ProposedCodeGT applies the GT predicate on the "proposed_code" field.
func ProposedCodeGT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldProposedCode, v))
}

// ProposedCodeGTE applies the GTE predicate on the "proposed_code" field.
func ProposedCodeGTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldProposedCode, v))
}

// ProposedCodeLT applies the LT predicate on the "proposed_code" field.
func ProposedCodeLT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldProposedCode, v))
}

// ProposedCodeLTE applies the LTE predicate on the "proposed_code" field.
func ProposedCodeLTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldProposedCode, v))
}

// ProposedCodeContains applies the Contains predicate on the "proposed_code" field.
func ProposedCodeContains(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContains(FieldProposedCode, v))
}

// ProposedCodeHasPrefix applies the HasPrefix predicate on the "proposed_code" field.
func ProposedCodeHasPrefix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasPrefix(FieldProposedCode, v))
}

// ProposedCodeHasSuffix applies the HasSuffix predicate on the "proposed_code" field.
func ProposedCodeHasSuffix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasSuffix(FieldProposedCode, v))
}

// ProposedCodeEqualFold applies the EqualFold predicate on the "proposed_code" field.
func ProposedCodeEqualFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEqualFold(FieldProposedCode, v))
}

// ProposedCodeContainsFold applies the ContainsFold predicate on the "proposed_code" field.
func ProposedCodeContainsFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContainsFold(FieldProposedCode, v))
}

// ProposedNameEQ applies the EQ predicate on the "proposed_name" field.
func ProposedNameEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldProposedName, v))
}

// ProposedNameNEQ applies the NEQ predicate on the "proposed_name" field.
func ProposedNameNEQ(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldProposedName, v))
}

// ProposedNameIn applies the In predicate on the "proposed_name" field.
func ProposedNameIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldProposedName, vs...))
}

// ProposedNameNotIn applies the NotIn predicate on the "proposed_name" field.
func ProposedNameNotIn(vs ...string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldProposedName, vs...))
}

// ProposedNameGT applies the GT predicate on the "proposed_name" field.
func ProposedNameGT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldProposedName, v))
}

// ProposedNameGTE applies the GTE predicate on the "proposed_name" field.
func ProposedNameGTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldProposedName, v))
}

// ProposedNameLT applies the LT predicate on the "proposed_name" field.
func ProposedNameLT(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldProposedName, v))
}

// ProposedNameLTE applies the LTE predicate on the "proposed_name" field.
func ProposedNameLTE(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldProposedName, v))
}

// ProposedNameContains applies the Contains predicate on the "proposed_name" field.
func ProposedNameContains(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContains(FieldProposedName, v))
}

// ProposedNameHasPrefix applies the HasPrefix predicate on the "proposed_name" field.
func ProposedNameHasPrefix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasPrefix(FieldProposedName, v))
}

// ProposedNameHasSuffix applies the HasSuffix predicate on the "proposed_name" field.
func ProposedNameHasSuffix(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldHasSuffix(FieldProposedName, v))
}

// ProposedNameEqualFold applies the EqualFold predicate on the "proposed_name" field.
func ProposedNameEqualFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEqualFold(FieldProposedName, v))
}

// ProposedNameContainsFold applies the ContainsFold predicate on the "proposed_name" field.
func ProposedNameContainsFold(v string) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldContainsFold(FieldProposedName, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotNull(FieldEvidence))
}

// VariationsIsNil applies the IsNil predicate on the "variations" field.
func VariationsIsNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIsNull(FieldVariations))
}

// VariationsNotNil applies the NotNil predicate on the "variations" field.
func VariationsNotNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotNull(FieldVariations))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingAnalyte) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingAnalyte) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingAnalyte) predicate.PendingAnalyte {
	return predicate.PendingAnalyte(sql.NotPredicates(p))
}
