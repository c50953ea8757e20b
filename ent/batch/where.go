// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"a11ysentinel.io/sentinel/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUpdatedAt, v))
}

// HomepageURL applies equality check predicate on the "homepage_url" field. It's identical to HomepageURLEQ.
func HomepageURL(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldHomepageURL, v))
}

// TotalUrls applies equality check predicate on the "total_urls" field. It's identical to TotalUrlsEQ.
func TotalUrls(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalUrls, v))
}

// CompletedCount applies equality check predicate on the "completed_count" field. It's identical to CompletedCountEQ.
func CompletedCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldFailedCount, v))
}

// TotalIssues applies equality check predicate on the "total_issues" field. It's identical to TotalIssuesEQ.
func TotalIssues(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalIssues, v))
}

// CriticalIssues applies equality check predicate on the "critical_issues" field. It's identical to CriticalIssuesEQ.
func CriticalIssues(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCriticalIssues, v))
}

// SeriousIssues applies equality check predicate on the "serious_issues" field. It's identical to SeriousIssuesEQ.
func SeriousIssues(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldSeriousIssues, v))
}

// ModerateIssues applies equality check predicate on the "moderate_issues" field. It's identical to ModerateIssuesEQ.
func ModerateIssues(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldModerateIssues, v))
}

// MinorIssues applies equality check predicate on the "minor_issues" field. It's identical to MinorIssuesEQ.
func MinorIssues(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldMinorIssues, v))
}

// PassedChecks applies equality check predicate on the "passed_checks" field. It's identical to PassedChecksEQ.
func PassedChecks(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldPassedChecks, v))
}

// AiEnabled applies equality check predicate on the "ai_enabled" field. It's identical to AiEnabledEQ.
func AiEnabled(v bool) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldAiEnabled, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedBy, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCancelledAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldUpdatedAt, v))
}

// HomepageURLEQ applies the EQ predicate on the "homepage_url" field.
func HomepageURLEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldHomepageURL, v))
}

// HomepageURLNEQ applies the NEQ predicate on the "homepage_url" field.
func HomepageURLNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldHomepageURL, v))
}

// HomepageURLIn applies the In predicate on the "homepage_url" field.
func HomepageURLIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldHomepageURL, vs...))
}

// HomepageURLNotIn applies the NotIn predicate on the "homepage_url" field.
func HomepageURLNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldHomepageURL, vs...))
}

// HomepageURLGT applies the GT predicate on the "homepage_url" field.
func HomepageURLGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldHomepageURL, v))
}

// HomepageURLGTE applies the GTE predicate on the "homepage_url" field.
func HomepageURLGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldHomepageURL, v))
}

// HomepageURLLT applies the LT predicate on the "homepage_url" field.
func HomepageURLLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldHomepageURL, v))
}

// HomepageURLLTE applies the LTE predicate on the "homepage_url" field.
func HomepageURLLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldHomepageURL, v))
}

// HomepageURLContains applies the Contains predicate on the "homepage_url" field.
func HomepageURLContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldHomepageURL, v))
}

// HomepageURLHasPrefix applies the HasPrefix predicate on the "homepage_url" field.
func HomepageURLHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldHomepageURL, v))
}

// HomepageURLHasSuffix applies the HasSuffix predicate on the "homepage_url" field.
func HomepageURLHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldHomepageURL, v))
}

// HomepageURLEqualFold applies the EqualFold predicate on the "homepage_url" field.
func HomepageURLEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldHomepageURL, v))
}

// HomepageURLContainsFold applies the ContainsFold predicate on the "homepage_url" field.
func HomepageURLContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldHomepageURL, v))
}

// WcagLevelEQ applies the EQ predicate on the "wcag_level" field.
func WcagLevelEQ(v WcagLevel) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldWcagLevel, v))
}

// WcagLevelNEQ applies the NEQ predicate on the "wcag_level" field.
func WcagLevelNEQ(v WcagLevel) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldWcagLevel, v))
}

// WcagLevelIn applies the In predicate on the "wcag_level" field.
func WcagLevelIn(vs ...WcagLevel) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldWcagLevel, vs...))
}

// WcagLevelNotIn applies the NotIn predicate on the "wcag_level" field.
func WcagLevelNotIn(vs ...WcagLevel) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldWcagLevel, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalUrlsEQ applies the EQ predicate on the "total_urls" field.
func TotalUrlsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalUrls, v))
}

// TotalUrlsNEQ applies the NEQ predicate on the "total_urls" field.
func TotalUrlsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalUrls, v))
}

// TotalUrlsIn applies the In predicate on the "total_urls" field.
func TotalUrlsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalUrls, vs...))
}

// TotalUrlsNotIn applies the NotIn predicate on the "total_urls" field.
func TotalUrlsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalUrls, vs...))
}

// TotalUrlsGT applies the GT predicate on the "total_urls" field.
func TotalUrlsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalUrls, v))
}

// TotalUrlsGTE applies the GTE predicate on the "total_urls" field.
func TotalUrlsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalUrls, v))
}

// TotalUrlsLT applies the LT predicate on the "total_urls" field.
func TotalUrlsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalUrls, v))
}

// TotalUrlsLTE applies the LTE predicate on the "total_urls" field.
func TotalUrlsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalUrls, v))
}

// CompletedCountEQ applies the EQ predicate on the "completed_count" field.
func CompletedCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedCount, v))
}

// CompletedCountNEQ applies the NEQ predicate on the "completed_count" field.
func CompletedCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCompletedCount, v))
}

// CompletedCountIn applies the In predicate on the "completed_count" field.
func CompletedCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCompletedCount, vs...))
}

// CompletedCountNotIn applies the NotIn predicate on the "completed_count" field.
func CompletedCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCompletedCount, vs...))
}

// CompletedCountGT applies the GT predicate on the "completed_count" field.
func CompletedCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCompletedCount, v))
}

// CompletedCountGTE applies the GTE predicate on the "completed_count" field.
func CompletedCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCompletedCount, v))
}

// CompletedCountLT applies the LT predicate on the "completed_count" field.
func CompletedCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCompletedCount, v))
}

// CompletedCountLTE applies the LTE predicate on the "completed_count" field.
func CompletedCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCompletedCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldFailedCount, v))
}

// TotalIssuesEQ applies the EQ predicate on the "total_issues" field.
func TotalIssuesEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalIssues, v))
}

// TotalIssuesNEQ applies the NEQ predicate on the "total_issues" field.
func TotalIssuesNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalIssues, v))
}

// TotalIssuesIn applies the In predicate on the "total_issues" field.
func TotalIssuesIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalIssues, vs...))
}

// TotalIssuesNotIn applies the NotIn predicate on the "total_issues" field.
func TotalIssuesNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalIssues, vs...))
}

// TotalIssuesGT applies the GT predicate on the "total_issues" field.
func TotalIssuesGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalIssues, v))
}

// TotalIssuesGTE applies the GTE predicate on the "total_issues" field.
func TotalIssuesGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalIssues, v))
}

// TotalIssuesLT applies the LT predicate on the "total_issues" field.
func TotalIssuesLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalIssues, v))
}

// TotalIssuesLTE applies the LTE predicate on the "total_issues" field.
func TotalIssuesLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalIssues, v))
}

// CriticalIssuesEQ applies the EQ predicate on the "critical_issues" field.
func CriticalIssuesEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCriticalIssues, v))
}

// CriticalIssuesNEQ applies the NEQ predicate on the "critical_issues" field.
func CriticalIssuesNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCriticalIssues, v))
}

// CriticalIssuesIn applies the In predicate on the "critical_issues" field.
func CriticalIssuesIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCriticalIssues, vs...))
}

// CriticalIssuesNotIn applies the NotIn predicate on the "critical_issues" field.
func CriticalIssuesNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCriticalIssues, vs...))
}

// CriticalIssuesGT applies the GT predicate on the "critical_issues" field.
func CriticalIssuesGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCriticalIssues, v))
}

// CriticalIssuesGTE applies the GTE predicate on the "critical_issues" field.
func CriticalIssuesGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCriticalIssues, v))
}

// CriticalIssuesLT applies the LT predicate on the "critical_issues" field.
func CriticalIssuesLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCriticalIssues, v))
}

// CriticalIssuesLTE applies the LTE predicate on the "critical_issues" field.
func CriticalIssuesLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCriticalIssues, v))
}

// SeriousIssuesEQ applies the EQ predicate on the "serious_issues" field.
func SeriousIssuesEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldSeriousIssues, v))
}

// SeriousIssuesNEQ applies the NEQ predicate on the "serious_issues" field.
func SeriousIssuesNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldSeriousIssues, v))
}

// SeriousIssuesIn applies the In predicate on the "serious_issues" field.
func SeriousIssuesIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldSeriousIssues, vs...))
}

// SeriousIssuesNotIn applies the NotIn predicate on the "serious_issues" field.
func SeriousIssuesNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldSeriousIssues, vs...))
}

// SeriousIssuesGT applies the GT predicate on the "serious_issues" field.
func SeriousIssuesGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldSeriousIssues, v))
}

// SeriousIssuesGTE applies the GTE predicate on the "serious_issues" field.
func SeriousIssuesGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldSeriousIssues, v))
}

// SeriousIssuesLT applies the LT predicate on the "serious_issues" field.
func SeriousIssuesLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldSeriousIssues, v))
}

// SeriousIssuesLTE applies the LTE predicate on the "serious_issues" field.
func SeriousIssuesLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldSeriousIssues, v))
}

// ModerateIssuesEQ applies the EQ predicate on the "moderate_issues" field.
func ModerateIssuesEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldModerateIssues, v))
}

// ModerateIssuesNEQ applies the NEQ predicate on the "moderate_issues" field.
func ModerateIssuesNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldModerateIssues, v))
}

// ModerateIssuesIn applies the In predicate on the "moderate_issues" field.
func ModerateIssuesIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldModerateIssues, vs...))
}

// ModerateIssuesNotIn applies the NotIn predicate on the "moderate_issues" field.
func ModerateIssuesNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldModerateIssues, vs...))
}

// ModerateIssuesGT applies the GT predicate on the "moderate_issues" field.
func ModerateIssuesGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldModerateIssues, v))
}

// ModerateIssuesGTE applies the GTE predicate on the "moderate_issues" field.
func ModerateIssuesGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldModerateIssues, v))
}

// ModerateIssuesLT applies the LT predicate on the "moderate_issues" field.
func ModerateIssuesLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldModerateIssues, v))
}

// ModerateIssuesLTE applies the LTE predicate on the "moderate_issues" field.
func ModerateIssuesLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldModerateIssues, v))
}

// MinorIssuesEQ applies the EQ predicate on the "minor_issues" field.
func MinorIssuesEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldMinorIssues, v))
}

// MinorIssuesNEQ applies the NEQ predicate on the "minor_issues" field.
func MinorIssuesNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldMinorIssues, v))
}

// MinorIssuesIn applies the In predicate on the "minor_issues" field.
func MinorIssuesIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldMinorIssues, vs...))
}

// MinorIssuesNotIn applies the NotIn predicate on the "minor_issues" field.
func MinorIssuesNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldMinorIssues, vs...))
}

// MinorIssuesGT applies the GT predicate on the "minor_issues" field.
func MinorIssuesGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldMinorIssues, v))
}

// MinorIssuesGTE applies the GTE predicate on the "minor_issues" field.
func MinorIssuesGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldMinorIssues, v))
}

// MinorIssuesLT applies the LT predicate on the "minor_issues" field.
func MinorIssuesLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldMinorIssues, v))
}

// MinorIssuesLTE applies the LTE predicate on the "minor_issues" field.
func MinorIssuesLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldMinorIssues, v))
}

// PassedChecksEQ applies the EQ predicate on the "passed_checks" field.
func PassedChecksEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldPassedChecks, v))
}

// PassedChecksNEQ applies the NEQ predicate on the "passed_checks" field.
func PassedChecksNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldPassedChecks, v))
}

// PassedChecksIn applies the In predicate on the "passed_checks" field.
func PassedChecksIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldPassedChecks, vs...))
}

// PassedChecksNotIn applies the NotIn predicate on the "passed_checks" field.
func PassedChecksNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldPassedChecks, vs...))
}

// PassedChecksGT applies the GT predicate on the "passed_checks" field.
func PassedChecksGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldPassedChecks, v))
}

// PassedChecksGTE applies the GTE predicate on the "passed_checks" field.
func PassedChecksGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldPassedChecks, v))
}

// PassedChecksLT applies the LT predicate on the "passed_checks" field.
func PassedChecksLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldPassedChecks, v))
}

// PassedChecksLTE applies the LTE predicate on the "passed_checks" field.
func PassedChecksLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldPassedChecks, v))
}

// AiEnabledEQ applies the EQ predicate on the "ai_enabled" field.
func AiEnabledEQ(v bool) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldAiEnabled, v))
}

// AiEnabledNEQ applies the NEQ predicate on the "ai_enabled" field.
func AiEnabledNEQ(v bool) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldAiEnabled, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldCompletedAt))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldCancelledAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.NotPredicates(p))
}
