// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"time"

	"a11ysentinel.io/sentinel/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// TotalTokenBudget applies equality check predicate on the "total_token_budget" field. It's identical to TotalTokenBudgetEQ.
func TotalTokenBudget(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTotalTokenBudget, v))
}

// UsedTokens applies equality check predicate on the "used_tokens" field. It's identical to UsedTokensEQ.
func UsedTokens(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUsedTokens, v))
}

// ReservedTokens applies equality check predicate on the "reserved_tokens" field. It's identical to ReservedTokensEQ.
func ReservedTokens(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldReservedTokens, v))
}

// StartsAt applies equality check predicate on the "starts_at" field. It's identical to StartsAtEQ.
func StartsAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStartsAt, v))
}

// EndsAt applies equality check predicate on the "ends_at" field. It's identical to EndsAtEQ.
func EndsAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldEndsAt, v))
}

// CompletedAiScans applies equality check predicate on the "completed_ai_scans" field. It's identical to CompletedAiScansEQ.
func CompletedAiScans(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCompletedAiScans, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldName, v))
}

// TotalTokenBudgetEQ applies the EQ predicate on the "total_token_budget" field.
func TotalTokenBudgetEQ(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTotalTokenBudget, v))
}

// TotalTokenBudgetNEQ applies the NEQ predicate on the "total_token_budget" field.
func TotalTokenBudgetNEQ(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldTotalTokenBudget, v))
}

// TotalTokenBudgetIn applies the In predicate on the "total_token_budget" field.
func TotalTokenBudgetIn(vs ...int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldTotalTokenBudget, vs...))
}

// TotalTokenBudgetNotIn applies the NotIn predicate on the "total_token_budget" field.
func TotalTokenBudgetNotIn(vs ...int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldTotalTokenBudget, vs...))
}

// TotalTokenBudgetGT applies the GT predicate on the "total_token_budget" field.
func TotalTokenBudgetGT(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldTotalTokenBudget, v))
}

// TotalTokenBudgetGTE applies the GTE predicate on the "total_token_budget" field.
func TotalTokenBudgetGTE(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldTotalTokenBudget, v))
}

// TotalTokenBudgetLT applies the LT predicate on the "total_token_budget" field.
func TotalTokenBudgetLT(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldTotalTokenBudget, v))
}

// TotalTokenBudgetLTE applies the LTE predicate on the "total_token_budget" field.
func TotalTokenBudgetLTE(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldTotalTokenBudget, v))
}

// UsedTokensEQ applies the EQ predicate on the "used_tokens" field.
func UsedTokensEQ(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUsedTokens, v))
}

// UsedTokensNEQ applies the NEQ predicate on the "used_tokens" field.
func UsedTokensNEQ(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldUsedTokens, v))
}

// UsedTokensIn applies the In predicate on the "used_tokens" field.
func UsedTokensIn(vs ...int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldUsedTokens, vs...))
}

// UsedTokensNotIn applies the NotIn predicate on the "used_tokens" field.
func UsedTokensNotIn(vs ...int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldUsedTokens, vs...))
}

// UsedTokensGT applies the GT predicate on the "used_tokens" field.
func UsedTokensGT(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldUsedTokens, v))
}

// UsedTokensGTE applies the GTE predicate on the "used_tokens" field.
func UsedTokensGTE(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldUsedTokens, v))
}

// UsedTokensLT applies the LT predicate on the "used_tokens" field.
func UsedTokensLT(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldUsedTokens, v))
}

// UsedTokensLTE applies the LTE predicate on the "used_tokens" field.
func UsedTokensLTE(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldUsedTokens, v))
}

// ReservedTokensEQ applies the EQ predicate on the "reserved_tokens" field.
func ReservedTokensEQ(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldReservedTokens, v))
}

// ReservedTokensNEQ applies the NEQ predicate on the "reserved_tokens" field.
func ReservedTokensNEQ(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldReservedTokens, v))
}

// ReservedTokensIn applies the In predicate on the "reserved_tokens" field.
func ReservedTokensIn(vs ...int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldReservedTokens, vs...))
}

// ReservedTokensNotIn applies the NotIn predicate on the "reserved_tokens" field.
func ReservedTokensNotIn(vs ...int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldReservedTokens, vs...))
}

// ReservedTokensGT applies the GT predicate on the "reserved_tokens" field.
func ReservedTokensGT(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldReservedTokens, v))
}

// ReservedTokensGTE applies the GTE predicate on the "reserved_tokens" field.
func ReservedTokensGTE(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldReservedTokens, v))
}

// ReservedTokensLT applies the LT predicate on the "reserved_tokens" field.
func ReservedTokensLT(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldReservedTokens, v))
}

// ReservedTokensLTE applies the LTE predicate on the "reserved_tokens" field.
func ReservedTokensLTE(v int64) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldReservedTokens, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStatus, vs...))
}

// StartsAtEQ applies the EQ predicate on the "starts_at" field.
func StartsAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStartsAt, v))
}

// StartsAtNEQ applies the NEQ predicate on the "starts_at" field.
func StartsAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStartsAt, v))
}

// StartsAtIn applies the In predicate on the "starts_at" field.
func StartsAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStartsAt, vs...))
}

// StartsAtNotIn applies the NotIn predicate on the "starts_at" field.
func StartsAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStartsAt, vs...))
}

// StartsAtGT applies the GT predicate on the "starts_at" field.
func StartsAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldStartsAt, v))
}

// StartsAtGTE applies the GTE predicate on the "starts_at" field.
func StartsAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldStartsAt, v))
}

// StartsAtLT applies the LT predicate on the "starts_at" field.
func StartsAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldStartsAt, v))
}

// StartsAtLTE applies the LTE predicate on the "starts_at" field.
func StartsAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldStartsAt, v))
}

// EndsAtEQ applies the EQ predicate on the "ends_at" field.
func EndsAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldEndsAt, v))
}

// EndsAtNEQ applies the NEQ predicate on the "ends_at" field.
func EndsAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldEndsAt, v))
}

// EndsAtIn applies the In predicate on the "ends_at" field.
func EndsAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldEndsAt, vs...))
}

// EndsAtNotIn applies the NotIn predicate on the "ends_at" field.
func EndsAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldEndsAt, vs...))
}

// EndsAtGT applies the GT predicate on the "ends_at" field.
func EndsAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldEndsAt, v))
}

// EndsAtGTE applies the GTE predicate on the "ends_at" field.
func EndsAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldEndsAt, v))
}

// EndsAtLT applies the LT predicate on the "ends_at" field.
func EndsAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldEndsAt, v))
}

// EndsAtLTE applies the LTE predicate on the "ends_at" field.
func EndsAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldEndsAt, v))
}

// CompletedAiScansEQ applies the EQ predicate on the "completed_ai_scans" field.
func CompletedAiScansEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCompletedAiScans, v))
}

// CompletedAiScansNEQ applies the NEQ predicate on the "completed_ai_scans" field.
func CompletedAiScansNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCompletedAiScans, v))
}

// CompletedAiScansIn applies the In predicate on the "completed_ai_scans" field.
func CompletedAiScansIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCompletedAiScans, vs...))
}

// CompletedAiScansNotIn applies the NotIn predicate on the "completed_ai_scans" field.
func CompletedAiScansNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCompletedAiScans, vs...))
}

// CompletedAiScansGT applies the GT predicate on the "completed_ai_scans" field.
func CompletedAiScansGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCompletedAiScans, v))
}

// CompletedAiScansGTE applies the GTE predicate on the "completed_ai_scans" field.
func CompletedAiScansGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCompletedAiScans, v))
}

// CompletedAiScansLT applies the LT predicate on the "completed_ai_scans" field.
func CompletedAiScansLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCompletedAiScans, v))
}

// CompletedAiScansLTE applies the LTE predicate on the "completed_ai_scans" field.
func CompletedAiScansLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCompletedAiScans, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.NotPredicates(p))
}
