// Code generated by ent, DO NOT EDIT.

package scan

import (
	"time"

	"a11ysentinel.io/sentinel/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Scan {
	return predicate.Scan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Scan {
	return predicate.Scan(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldUpdatedAt, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldBatchID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldURL, v))
}

// PageTitle applies equality check predicate on the "page_title" field. It's identical to PageTitleEQ.
func PageTitle(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldPageTitle, v))
}

// TotalIssues applies equality check predicate on the "total_issues" field. It's identical to TotalIssuesEQ.
func TotalIssues(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldTotalIssues, v))
}

// CriticalIssues applies equality check predicate on the "critical_issues" field. It's identical to CriticalIssuesEQ.
func CriticalIssues(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldCriticalIssues, v))
}

// SeriousIssues applies equality check predicate on the "serious_issues" field. It's identical to SeriousIssuesEQ.
func SeriousIssues(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldSeriousIssues, v))
}

// ModerateIssues applies equality check predicate on the "moderate_issues" field. It's identical to ModerateIssuesEQ.
func ModerateIssues(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldModerateIssues, v))
}

// MinorIssues applies equality check predicate on the "minor_issues" field. It's identical to MinorIssuesEQ.
func MinorIssues(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldMinorIssues, v))
}

// PassedChecks applies equality check predicate on the "passed_checks" field. It's identical to PassedChecksEQ.
func PassedChecks(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldPassedChecks, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldErrorMessage, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldJobID, v))
}

// ContentSnapshot applies equality check predicate on the "content_snapshot" field. It's identical to ContentSnapshotEQ.
func ContentSnapshot(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldContentSnapshot, v))
}

// AiEnabled applies equality check predicate on the "ai_enabled" field. It's identical to AiEnabledEQ.
func AiEnabled(v bool) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldAiEnabled, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldUpdatedAt, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDIsNil applies the IsNil predicate on the "batch_id" field.
func BatchIDIsNil() predicate.Scan {
	return predicate.Scan(sql.FieldIsNull(FieldBatchID))
}

// BatchIDNotNil applies the NotNil predicate on the "batch_id" field.
func BatchIDNotNil() predicate.Scan {
	return predicate.Scan(sql.FieldNotNull(FieldBatchID))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContainsFold(FieldBatchID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContainsFold(FieldURL, v))
}

// PageTitleEQ applies the EQ predicate on the "page_title" field.
func PageTitleEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldPageTitle, v))
}

// PageTitleNEQ applies the NEQ predicate on the "page_title" field.
func PageTitleNEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldPageTitle, v))
}

// PageTitleIn applies the In predicate on the "page_title" field.
func PageTitleIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldPageTitle, vs...))
}

// PageTitleNotIn applies the NotIn predicate on the "page_title" field.
func PageTitleNotIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldPageTitle, vs...))
}

// PageTitleGT applies the GT predicate on the "page_title" field.
func PageTitleGT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldPageTitle, v))
}

// PageTitleGTE applies the GTE predicate on the "page_title" field.
func PageTitleGTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldPageTitle, v))
}

// PageTitleLT applies the LT predicate on the "page_title" field.
func PageTitleLT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldPageTitle, v))
}

// PageTitleLTE applies the LTE predicate on the "page_title" field.
func PageTitleLTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldPageTitle, v))
}

// PageTitleContains applies the Contains predicate on the "page_title" field.
func PageTitleContains(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContains(FieldPageTitle, v))
}

// PageTitleHasPrefix applies the HasPrefix predicate on the "page_title" field.
func PageTitleHasPrefix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasPrefix(FieldPageTitle, v))
}

// PageTitleHasSuffix applies the HasSuffix predicate on the "page_title" field.
func PageTitleHasSuffix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasSuffix(FieldPageTitle, v))
}

// PageTitleIsNil applies the IsNil predicate on the "page_title" field.
func PageTitleIsNil() predicate.Scan {
	return predicate.Scan(sql.FieldIsNull(FieldPageTitle))
}

// PageTitleNotNil applies the NotNil predicate on the "page_title" field.
func PageTitleNotNil() predicate.Scan {
	return predicate.Scan(sql.FieldNotNull(FieldPageTitle))
}

// PageTitleEqualFold applies the EqualFold predicate on the "page_title" field.
func PageTitleEqualFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEqualFold(FieldPageTitle, v))
}

// PageTitleContainsFold applies the ContainsFold predicate on the "page_title" field.
func PageTitleContainsFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContainsFold(FieldPageTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalIssuesEQ applies the EQ predicate on the "total_issues" field.
func TotalIssuesEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldTotalIssues, v))
}

// TotalIssuesNEQ applies the NEQ predicate on the "total_issues" field.
func TotalIssuesNEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldTotalIssues, v))
}

// TotalIssuesIn applies the In predicate on the "total_issues" field.
func TotalIssuesIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldTotalIssues, vs...))
}

// TotalIssuesNotIn applies the NotIn predicate on the "total_issues" field.
func TotalIssuesNotIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldTotalIssues, vs...))
}

// TotalIssuesGT applies the GT predicate on the "total_issues" field.
func TotalIssuesGT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldTotalIssues, v))
}

// TotalIssuesGTE applies the GTE predicate on the "total_issues" field.
func TotalIssuesGTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldTotalIssues, v))
}

// TotalIssuesLT applies the LT predicate on the "total_issues" field.
func TotalIssuesLT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldTotalIssues, v))
}

// TotalIssuesLTE applies the LTE predicate on the "total_issues" field.
func TotalIssuesLTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldTotalIssues, v))
}

// CriticalIssuesEQ applies the EQ predicate on the "critical_issues" field.
func CriticalIssuesEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldCriticalIssues, v))
}

// CriticalIssuesNEQ applies the NEQ predicate on the "critical_issues" field.
func CriticalIssuesNEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldCriticalIssues, v))
}

// CriticalIssuesIn applies the In predicate on the "critical_issues" field.
func CriticalIssuesIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldCriticalIssues, vs...))
}

// CriticalIssuesNotIn applies the NotIn predicate on the "critical_issues" field.
func CriticalIssuesNotIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldCriticalIssues, vs...))
}

// CriticalIssuesGT applies the GT predicate on the "critical_issues" field.
func CriticalIssuesGT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldCriticalIssues, v))
}

// CriticalIssuesGTE applies the GTE predicate on the "critical_issues" field.
func CriticalIssuesGTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldCriticalIssues, v))
}

// CriticalIssuesLT applies the LT predicate on the "critical_issues" field.
func CriticalIssuesLT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldCriticalIssues, v))
}

// CriticalIssuesLTE applies the LTE predicate on the "critical_issues" field.
func CriticalIssuesLTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldCriticalIssues, v))
}

// SeriousIssuesEQ applies the EQ predicate on the "serious_issues" field.
func SeriousIssuesEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldSeriousIssues, v))
}

// SeriousIssuesNEQ applies the NEQ predicate on the "serious_issues" field.
func SeriousIssuesNEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldSeriousIssues, v))
}

// SeriousIssuesIn applies the In predicate on the "serious_issues" field.
func SeriousIssuesIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldSeriousIssues, vs...))
}

// SeriousIssuesNotIn applies the NotIn predicate on the "serious_issues" field.
func SeriousIssuesNotIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldSeriousIssues, vs...))
}

// SeriousIssuesGT applies the GT predicate on the "serious_issues" field.
func SeriousIssuesGT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldSeriousIssues, v))
}

// SeriousIssuesGTE applies the GTE predicate on the "serious_issues" field.
func SeriousIssuesGTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldSeriousIssues, v))
}

// SeriousIssuesLT applies the LT predicate on the "serious_issues" field.
func SeriousIssuesLT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldSeriousIssues, v))
}

// SeriousIssuesLTE applies the LTE predicate on the "serious_issues" field.
func SeriousIssuesLTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldSeriousIssues, v))
}

// ModerateIssuesEQ applies the EQ predicate on the "moderate_issues" field.
func ModerateIssuesEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldModerateIssues, v))
}

// ModerateIssuesNEQ applies the NEQ predicate on the "moderate_issues" field.
func ModerateIssuesNEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldModerateIssues, v))
}

// ModerateIssuesIn applies the In predicate on the "moderate_issues" field.
func ModerateIssuesIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldModerateIssues, vs...))
}

// ModerateIssuesNotIn applies the NotIn predicate on the "moderate_issues" field.
func ModerateIssuesNotIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldModerateIssues, vs...))
}

// ModerateIssuesGT applies the GT predicate on the "moderate_issues" field.
func ModerateIssuesGT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldModerateIssues, v))
}

// ModerateIssuesGTE applies the GTE predicate on the "moderate_issues" field.
func ModerateIssuesGTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldModerateIssues, v))
}

// ModerateIssuesLT applies the LT predicate on the "moderate_issues" field.
func ModerateIssuesLT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldModerateIssues, v))
}

// ModerateIssuesLTE applies the LTE predicate on the "moderate_issues" field.
func ModerateIssuesLTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldModerateIssues, v))
}

// MinorIssuesEQ applies the EQ predicate on the "minor_issues" field.
func MinorIssuesEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldMinorIssues, v))
}

// MinorIssuesNEQ applies the NEQ predicate on the "minor_issues" field.
func MinorIssuesNEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldMinorIssues, v))
}

// MinorIssuesIn applies the In predicate on the "minor_issues" field.
func MinorIssuesIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldMinorIssues, vs...))
}

// MinorIssuesNotIn applies the NotIn predicate on the "minor_issues" field.
func MinorIssuesNotIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldMinorIssues, vs...))
}

// MinorIssuesGT applies the GT predicate on the "minor_issues" field.
func MinorIssuesGT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldMinorIssues, v))
}

// MinorIssuesGTE applies the GTE predicate on the "minor_issues" field.
func MinorIssuesGTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldMinorIssues, v))
}

// MinorIssuesLT applies the LT predicate on the "minor_issues" field.
func MinorIssuesLT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldMinorIssues, v))
}

// MinorIssuesLTE applies the LTE predicate on the "minor_issues" field.
func MinorIssuesLTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldMinorIssues, v))
}

// PassedChecksEQ applies the EQ predicate on the "passed_checks" field.
func PassedChecksEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldPassedChecks, v))
}

// PassedChecksNEQ applies the NEQ predicate on the "passed_checks" field.
func PassedChecksNEQ(v int) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldPassedChecks, v))
}

// PassedChecksIn applies the In predicate on the "passed_checks" field.
func PassedChecksIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldPassedChecks, vs...))
}

// PassedChecksNotIn applies the NotIn predicate on the "passed_checks" field.
func PassedChecksNotIn(vs ...int) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldPassedChecks, vs...))
}

// PassedChecksGT applies the GT predicate on the "passed_checks" field.
func PassedChecksGT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldPassedChecks, v))
}

// PassedChecksGTE applies the GTE predicate on the "passed_checks" field.
func PassedChecksGTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldPassedChecks, v))
}

// PassedChecksLT applies the LT predicate on the "passed_checks" field.
func PassedChecksLT(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldPassedChecks, v))
}

// PassedChecksLTE applies the LTE predicate on the "passed_checks" field.
func PassedChecksLTE(v int) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldPassedChecks, v))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.Scan {
	return predicate.Scan(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.Scan {
	return predicate.Scan(sql.FieldNotNull(FieldIssues))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Scan {
	return predicate.Scan(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Scan {
	return predicate.Scan(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContainsFold(FieldErrorMessage, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.Scan {
	return predicate.Scan(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.Scan {
	return predicate.Scan(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContainsFold(FieldJobID, v))
}

// ContentSnapshotEQ applies the EQ predicate on the "content_snapshot" field.
func ContentSnapshotEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldContentSnapshot, v))
}

// ContentSnapshotNEQ applies the NEQ predicate on the "content_snapshot" field.
func ContentSnapshotNEQ(v string) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldContentSnapshot, v))
}

// ContentSnapshotIn applies the In predicate on the "content_snapshot" field.
func ContentSnapshotIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldContentSnapshot, vs...))
}

// ContentSnapshotNotIn applies the NotIn predicate on the "content_snapshot" field.
func ContentSnapshotNotIn(vs ...string) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldContentSnapshot, vs...))
}

// ContentSnapshotGT applies the GT predicate on the "content_snapshot" field.
func ContentSnapshotGT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldContentSnapshot, v))
}

// ContentSnapshotGTE applies the GTE predicate on the "content_snapshot" field.
func ContentSnapshotGTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldContentSnapshot, v))
}

// ContentSnapshotLT applies the LT predicate on the "content_snapshot" field.
func ContentSnapshotLT(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldContentSnapshot, v))
}

// ContentSnapshotLTE applies the LTE predicate on the "content_snapshot" field.
func ContentSnapshotLTE(v string) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldContentSnapshot, v))
}

// ContentSnapshotContains applies the Contains predicate on the "content_snapshot" field.
func ContentSnapshotContains(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContains(FieldContentSnapshot, v))
}

// ContentSnapshotHasPrefix applies the HasPrefix predicate on the "content_snapshot" field.
func ContentSnapshotHasPrefix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasPrefix(FieldContentSnapshot, v))
}

// ContentSnapshotHasSuffix applies the HasSuffix predicate on the "content_snapshot" field.
func ContentSnapshotHasSuffix(v string) predicate.Scan {
	return predicate.Scan(sql.FieldHasSuffix(FieldContentSnapshot, v))
}

// ContentSnapshotIsNil applies the IsNil predicate on the "content_snapshot" field.
func ContentSnapshotIsNil() predicate.Scan {
	return predicate.Scan(sql.FieldIsNull(FieldContentSnapshot))
}

// ContentSnapshotNotNil applies the NotNil predicate on the "content_snapshot" field.
func ContentSnapshotNotNil() predicate.Scan {
	return predicate.Scan(sql.FieldNotNull(FieldContentSnapshot))
}

// ContentSnapshotEqualFold applies the EqualFold predicate on the "content_snapshot" field.
func ContentSnapshotEqualFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldEqualFold(FieldContentSnapshot, v))
}

// ContentSnapshotContainsFold applies the ContainsFold predicate on the "content_snapshot" field.
func ContentSnapshotContainsFold(v string) predicate.Scan {
	return predicate.Scan(sql.FieldContainsFold(FieldContentSnapshot, v))
}

// AiEnabledEQ applies the EQ predicate on the "ai_enabled" field.
func AiEnabledEQ(v bool) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldAiEnabled, v))
}

// AiEnabledNEQ applies the NEQ predicate on the "ai_enabled" field.
func AiEnabledNEQ(v bool) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldAiEnabled, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Scan {
	return predicate.Scan(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Scan {
	return predicate.Scan(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Scan {
	return predicate.Scan(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Scan) predicate.Scan {
	return predicate.Scan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Scan) predicate.Scan {
	return predicate.Scan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Scan) predicate.Scan {
	return predicate.Scan(sql.NotPredicates(p))
}
