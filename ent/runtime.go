// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"a11ysentinel.io/sentinel/ent/auditlog"
	"a11ysentinel.io/sentinel/ent/batch"
	"a11ysentinel.io/sentinel/ent/campaign"
	"a11ysentinel.io/sentinel/ent/reservation"
	"a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/ent/schema"
	"a11ysentinel.io/sentinel/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aiqueueentryMixin := schema.AiQueueEntry{}.Mixin()
	aiqueueentryMixinFields0 := aiqueueentryMixin[0].Fields()
	_ = aiqueueentryMixinFields0
	aiqueueentryFields := schema.AiQueueEntry{}.Fields()
	_ = aiqueueentryFields
	// aiqueueentryDescCreatedAt is the schema descriptor for created_at field.
	aiqueueentryDescCreatedAt := aiqueueentryMixinFields0[0].Descriptor()
	// aiqueueentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	aiqueueentry.DefaultCreatedAt = aiqueueentryDescCreatedAt.Default.(func() time.Time)
	// aiqueueentryDescUpdatedAt is the schema descriptor for updated_at field.
	aiqueueentryDescUpdatedAt := aiqueueentryMixinFields0[1].Descriptor()
	// aiqueueentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	aiqueueentry.DefaultUpdatedAt = aiqueueentryDescUpdatedAt.Default.(func() time.Time)
	// aiqueueentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	aiqueueentry.UpdateDefaultUpdatedAt = aiqueueentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// aiqueueentryDescReservationID is the schema descriptor for reservation_id field.
	aiqueueentryDescReservationID := aiqueueentryFields[2].Descriptor()
	// aiqueueentry.ReservationIDValidator is a validator for the "reservation_id" field. It is called by the builders before save.
	aiqueueentry.ReservationIDValidator = aiqueueentryDescReservationID.Validators[0].(func(string) error)
	// aiqueueentryDescAiInputTokens is the schema descriptor for ai_input_tokens field.
	aiqueueentryDescAiInputTokens := aiqueueentryFields[4].Descriptor()
	// aiqueueentry.DefaultAiInputTokens holds the default value on creation for the ai_input_tokens field.
	aiqueueentry.DefaultAiInputTokens = aiqueueentryDescAiInputTokens.Default.(int64)
	// aiqueueentry.AiInputTokensValidator is a validator for the "ai_input_tokens" field. It is called by the builders before save.
	aiqueueentry.AiInputTokensValidator = aiqueueentryDescAiInputTokens.Validators[0].(func(int64) error)
	// aiqueueentryDescAiOutputTokens is the schema descriptor for ai_output_tokens field.
	aiqueueentryDescAiOutputTokens := aiqueueentryFields[5].Descriptor()
	// aiqueueentry.DefaultAiOutputTokens holds the default value on creation for the ai_output_tokens field.
	aiqueueentry.DefaultAiOutputTokens = aiqueueentryDescAiOutputTokens.Default.(int64)
	// aiqueueentry.AiOutputTokensValidator is a validator for the "ai_output_tokens" field. It is called by the builders before save.
	aiqueueentry.AiOutputTokensValidator = aiqueueentryDescAiOutputTokens.Validators[0].(func(int64) error)
	// aiqueueentryDescAiTotalTokens is the schema descriptor for ai_total_tokens field.
	aiqueueentryDescAiTotalTokens := aiqueueentryFields[6].Descriptor()
	// aiqueueentry.DefaultAiTotalTokens holds the default value on creation for the ai_total_tokens field.
	aiqueueentry.DefaultAiTotalTokens = aiqueueentryDescAiTotalTokens.Default.(int64)
	// aiqueueentry.AiTotalTokensValidator is a validator for the "ai_total_tokens" field. It is called by the builders before save.
	aiqueueentry.AiTotalTokensValidator = aiqueueentryDescAiTotalTokens.Validators[0].(func(int64) error)
	// aiqueueentryDescAiProcessingMs is the schema descriptor for ai_processing_ms field.
	aiqueueentryDescAiProcessingMs := aiqueueentryFields[8].Descriptor()
	// aiqueueentry.DefaultAiProcessingMs holds the default value on creation for the ai_processing_ms field.
	aiqueueentry.DefaultAiProcessingMs = aiqueueentryDescAiProcessingMs.Default.(int64)
	// aiqueueentry.AiProcessingMsValidator is a validator for the "ai_processing_ms" field. It is called by the builders before save.
	aiqueueentry.AiProcessingMsValidator = aiqueueentryDescAiProcessingMs.Validators[0].(func(int64) error)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	batchMixin := schema.Batch{}.Mixin()
	batchMixinFields0 := batchMixin[0].Fields()
	_ = batchMixinFields0
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchMixinFields0[0].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescUpdatedAt is the schema descriptor for updated_at field.
	batchDescUpdatedAt := batchMixinFields0[1].Descriptor()
	// batch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	batch.DefaultUpdatedAt = batchDescUpdatedAt.Default.(func() time.Time)
	// batch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	batch.UpdateDefaultUpdatedAt = batchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// batchDescHomepageURL is the schema descriptor for homepage_url field.
	batchDescHomepageURL := batchFields[1].Descriptor()
	// batch.HomepageURLValidator is a validator for the "homepage_url" field. It is called by the builders before save.
	batch.HomepageURLValidator = batchDescHomepageURL.Validators[0].(func(string) error)
	// batchDescTotalUrls is the schema descriptor for total_urls field.
	batchDescTotalUrls := batchFields[4].Descriptor()
	// batch.TotalUrlsValidator is a validator for the "total_urls" field. It is called by the builders before save.
	batch.TotalUrlsValidator = batchDescTotalUrls.Validators[0].(func(int) error)
	// batchDescCompletedCount is the schema descriptor for completed_count field.
	batchDescCompletedCount := batchFields[5].Descriptor()
	// batch.DefaultCompletedCount holds the default value on creation for the completed_count field.
	batch.DefaultCompletedCount = batchDescCompletedCount.Default.(int)
	// batch.CompletedCountValidator is a validator for the "completed_count" field. It is called by the builders before save.
	batch.CompletedCountValidator = batchDescCompletedCount.Validators[0].(func(int) error)
	// batchDescFailedCount is the schema descriptor for failed_count field.
	batchDescFailedCount := batchFields[6].Descriptor()
	// batch.DefaultFailedCount holds the default value on creation for the failed_count field.
	batch.DefaultFailedCount = batchDescFailedCount.Default.(int)
	// batch.FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	batch.FailedCountValidator = batchDescFailedCount.Validators[0].(func(int) error)
	// batchDescTotalIssues is the schema descriptor for total_issues field.
	batchDescTotalIssues := batchFields[7].Descriptor()
	// batch.DefaultTotalIssues holds the default value on creation for the total_issues field.
	batch.DefaultTotalIssues = batchDescTotalIssues.Default.(int)
	// batch.TotalIssuesValidator is a validator for the "total_issues" field. It is called by the builders before save.
	batch.TotalIssuesValidator = batchDescTotalIssues.Validators[0].(func(int) error)
	// batchDescCriticalIssues is the schema descriptor for critical_issues field.
	batchDescCriticalIssues := batchFields[8].Descriptor()
	// batch.DefaultCriticalIssues holds the default value on creation for the critical_issues field.
	batch.DefaultCriticalIssues = batchDescCriticalIssues.Default.(int)
	// batch.CriticalIssuesValidator is a validator for the "critical_issues" field. It is called by the builders before save.
	batch.CriticalIssuesValidator = batchDescCriticalIssues.Validators[0].(func(int) error)
	// batchDescSeriousIssues is the schema descriptor for serious_issues field.
	batchDescSeriousIssues := batchFields[9].Descriptor()
	// batch.DefaultSeriousIssues holds the default value on creation for the serious_issues field.
	batch.DefaultSeriousIssues = batchDescSeriousIssues.Default.(int)
	// batch.SeriousIssuesValidator is a validator for the "serious_issues" field. It is called by the builders before save.
	batch.SeriousIssuesValidator = batchDescSeriousIssues.Validators[0].(func(int) error)
	// batchDescModerateIssues is the schema descriptor for moderate_issues field.
	batchDescModerateIssues := batchFields[10].Descriptor()
	// batch.DefaultModerateIssues holds the default value on creation for the moderate_issues field.
	batch.DefaultModerateIssues = batchDescModerateIssues.Default.(int)
	// batch.ModerateIssuesValidator is a validator for the "moderate_issues" field. It is called by the builders before save.
	batch.ModerateIssuesValidator = batchDescModerateIssues.Validators[0].(func(int) error)
	// batchDescMinorIssues is the schema descriptor for minor_issues field.
	batchDescMinorIssues := batchFields[11].Descriptor()
	// batch.DefaultMinorIssues holds the default value on creation for the minor_issues field.
	batch.DefaultMinorIssues = batchDescMinorIssues.Default.(int)
	// batch.MinorIssuesValidator is a validator for the "minor_issues" field. It is called by the builders before save.
	batch.MinorIssuesValidator = batchDescMinorIssues.Validators[0].(func(int) error)
	// batchDescPassedChecks is the schema descriptor for passed_checks field.
	batchDescPassedChecks := batchFields[12].Descriptor()
	// batch.DefaultPassedChecks holds the default value on creation for the passed_checks field.
	batch.DefaultPassedChecks = batchDescPassedChecks.Default.(int)
	// batch.PassedChecksValidator is a validator for the "passed_checks" field. It is called by the builders before save.
	batch.PassedChecksValidator = batchDescPassedChecks.Validators[0].(func(int) error)
	// batchDescAiEnabled is the schema descriptor for ai_enabled field.
	batchDescAiEnabled := batchFields[13].Descriptor()
	// batch.DefaultAiEnabled holds the default value on creation for the ai_enabled field.
	batch.DefaultAiEnabled = batchDescAiEnabled.Default.(bool)
	// batchDescCreatedBy is the schema descriptor for created_by field.
	batchDescCreatedBy := batchFields[14].Descriptor()
	// batch.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	batch.CreatedByValidator = batchDescCreatedBy.Validators[0].(func(string) error)
	campaignMixin := schema.Campaign{}.Mixin()
	campaignMixinFields0 := campaignMixin[0].Fields()
	_ = campaignMixinFields0
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignMixinFields0[0].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignMixinFields0[1].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[1].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = campaignDescName.Validators[0].(func(string) error)
	// campaignDescTotalTokenBudget is the schema descriptor for total_token_budget field.
	campaignDescTotalTokenBudget := campaignFields[2].Descriptor()
	// campaign.TotalTokenBudgetValidator is a validator for the "total_token_budget" field. It is called by the builders before save.
	campaign.TotalTokenBudgetValidator = campaignDescTotalTokenBudget.Validators[0].(func(int64) error)
	// campaignDescUsedTokens is the schema descriptor for used_tokens field.
	campaignDescUsedTokens := campaignFields[3].Descriptor()
	// campaign.DefaultUsedTokens holds the default value on creation for the used_tokens field.
	campaign.DefaultUsedTokens = campaignDescUsedTokens.Default.(int64)
	// campaign.UsedTokensValidator is a validator for the "used_tokens" field. It is called by the builders before save.
	campaign.UsedTokensValidator = campaignDescUsedTokens.Validators[0].(func(int64) error)
	// campaignDescReservedTokens is the schema descriptor for reserved_tokens field.
	campaignDescReservedTokens := campaignFields[4].Descriptor()
	// campaign.DefaultReservedTokens holds the default value on creation for the reserved_tokens field.
	campaign.DefaultReservedTokens = campaignDescReservedTokens.Default.(int64)
	// campaign.ReservedTokensValidator is a validator for the "reserved_tokens" field. It is called by the builders before save.
	campaign.ReservedTokensValidator = campaignDescReservedTokens.Validators[0].(func(int64) error)
	// campaignDescCompletedAiScans is the schema descriptor for completed_ai_scans field.
	campaignDescCompletedAiScans := campaignFields[8].Descriptor()
	// campaign.DefaultCompletedAiScans holds the default value on creation for the completed_ai_scans field.
	campaign.DefaultCompletedAiScans = campaignDescCompletedAiScans.Default.(int)
	// campaign.CompletedAiScansValidator is a validator for the "completed_ai_scans" field. It is called by the builders before save.
	campaign.CompletedAiScansValidator = campaignDescCompletedAiScans.Validators[0].(func(int) error)
	reservationMixin := schema.Reservation{}.Mixin()
	reservationMixinFields0 := reservationMixin[0].Fields()
	_ = reservationMixinFields0
	reservationFields := schema.Reservation{}.Fields()
	_ = reservationFields
	// reservationDescCreatedAt is the schema descriptor for created_at field.
	reservationDescCreatedAt := reservationMixinFields0[0].Descriptor()
	// reservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	reservation.DefaultCreatedAt = reservationDescCreatedAt.Default.(func() time.Time)
	// reservationDescUpdatedAt is the schema descriptor for updated_at field.
	reservationDescUpdatedAt := reservationMixinFields0[1].Descriptor()
	// reservation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reservation.DefaultUpdatedAt = reservationDescUpdatedAt.Default.(func() time.Time)
	// reservation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reservation.UpdateDefaultUpdatedAt = reservationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reservationDescCampaignID is the schema descriptor for campaign_id field.
	reservationDescCampaignID := reservationFields[1].Descriptor()
	// reservation.CampaignIDValidator is a validator for the "campaign_id" field. It is called by the builders before save.
	reservation.CampaignIDValidator = reservationDescCampaignID.Validators[0].(func(string) error)
	// reservationDescEstimatedTokens is the schema descriptor for estimated_tokens field.
	reservationDescEstimatedTokens := reservationFields[3].Descriptor()
	// reservation.EstimatedTokensValidator is a validator for the "estimated_tokens" field. It is called by the builders before save.
	reservation.EstimatedTokensValidator = reservationDescEstimatedTokens.Validators[0].(func(int64) error)
	// reservationDescSettled is the schema descriptor for settled field.
	reservationDescSettled := reservationFields[4].Descriptor()
	// reservation.DefaultSettled holds the default value on creation for the settled field.
	reservation.DefaultSettled = reservationDescSettled.Default.(bool)
	scanMixin := schema.Scan{}.Mixin()
	scanMixinFields0 := scanMixin[0].Fields()
	_ = scanMixinFields0
	scanFields := schema.Scan{}.Fields()
	_ = scanFields
	// scanDescCreatedAt is the schema descriptor for created_at field.
	scanDescCreatedAt := scanMixinFields0[0].Descriptor()
	// scan.DefaultCreatedAt holds the default value on creation for the created_at field.
	scan.DefaultCreatedAt = scanDescCreatedAt.Default.(func() time.Time)
	// scanDescUpdatedAt is the schema descriptor for updated_at field.
	scanDescUpdatedAt := scanMixinFields0[1].Descriptor()
	// scan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scan.DefaultUpdatedAt = scanDescUpdatedAt.Default.(func() time.Time)
	// scan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scan.UpdateDefaultUpdatedAt = scanDescUpdatedAt.UpdateDefault.(func() time.Time)
	// scanDescURL is the schema descriptor for url field.
	scanDescURL := scanFields[2].Descriptor()
	// scan.URLValidator is a validator for the "url" field. It is called by the builders before save.
	scan.URLValidator = scanDescURL.Validators[0].(func(string) error)
	// scanDescTotalIssues is the schema descriptor for total_issues field.
	scanDescTotalIssues := scanFields[5].Descriptor()
	// scan.DefaultTotalIssues holds the default value on creation for the total_issues field.
	scan.DefaultTotalIssues = scanDescTotalIssues.Default.(int)
	// scan.TotalIssuesValidator is a validator for the "total_issues" field. It is called by the builders before save.
	scan.TotalIssuesValidator = scanDescTotalIssues.Validators[0].(func(int) error)
	// scanDescCriticalIssues is the schema descriptor for critical_issues field.
	scanDescCriticalIssues := scanFields[6].Descriptor()
	// scan.DefaultCriticalIssues holds the default value on creation for the critical_issues field.
	scan.DefaultCriticalIssues = scanDescCriticalIssues.Default.(int)
	// scan.CriticalIssuesValidator is a validator for the "critical_issues" field. It is called by the builders before save.
	scan.CriticalIssuesValidator = scanDescCriticalIssues.Validators[0].(func(int) error)
	// scanDescSeriousIssues is the schema descriptor for serious_issues field.
	scanDescSeriousIssues := scanFields[7].Descriptor()
	// scan.DefaultSeriousIssues holds the default value on creation for the serious_issues field.
	scan.DefaultSeriousIssues = scanDescSeriousIssues.Default.(int)
	// scan.SeriousIssuesValidator is a validator for the "serious_issues" field. It is called by the builders before save.
	scan.SeriousIssuesValidator = scanDescSeriousIssues.Validators[0].(func(int) error)
	// scanDescModerateIssues is the schema descriptor for moderate_issues field.
	scanDescModerateIssues := scanFields[8].Descriptor()
	// scan.DefaultModerateIssues holds the default value on creation for the moderate_issues field.
	scan.DefaultModerateIssues = scanDescModerateIssues.Default.(int)
	// scan.ModerateIssuesValidator is a validator for the "moderate_issues" field. It is called by the builders before save.
	scan.ModerateIssuesValidator = scanDescModerateIssues.Validators[0].(func(int) error)
	// scanDescMinorIssues is the schema descriptor for minor_issues field.
	scanDescMinorIssues := scanFields[9].Descriptor()
	// scan.DefaultMinorIssues holds the default value on creation for the minor_issues field.
	scan.DefaultMinorIssues = scanDescMinorIssues.Default.(int)
	// scan.MinorIssuesValidator is a validator for the "minor_issues" field. It is called by the builders before save.
	scan.MinorIssuesValidator = scanDescMinorIssues.Validators[0].(func(int) error)
	// scanDescPassedChecks is the schema descriptor for passed_checks field.
	scanDescPassedChecks := scanFields[10].Descriptor()
	// scan.DefaultPassedChecks holds the default value on creation for the passed_checks field.
	scan.DefaultPassedChecks = scanDescPassedChecks.Default.(int)
	// scan.PassedChecksValidator is a validator for the "passed_checks" field. It is called by the builders before save.
	scan.PassedChecksValidator = scanDescPassedChecks.Validators[0].(func(int) error)
	// scanDescAiEnabled is the schema descriptor for ai_enabled field.
	scanDescAiEnabled := scanFields[15].Descriptor()
	// scan.DefaultAiEnabled holds the default value on creation for the ai_enabled field.
	scan.DefaultAiEnabled = scanDescAiEnabled.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescPermissions is the schema descriptor for permissions field.
	userDescPermissions := userFields[3].Descriptor()
	// user.DefaultPermissions holds the default value on creation for the permissions field.
	user.DefaultPermissions = userDescPermissions.Default.([]string)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[4].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
