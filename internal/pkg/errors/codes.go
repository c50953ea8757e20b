package errors

import "net/http"

// Error code constants.
// Errors contain code + params only, no hardcoded messages.
// Frontend handles i18n translation. Backend logs always in English.

// Batch/scan error codes.
const (
	CodeBatchNotFound = "BATCH_NOT_FOUND"
	CodeScanNotFound  = "SCAN_NOT_FOUND"
	CodeInvalidState  = "INVALID_STATE"
	CodeEmptyURLSet   = "EMPTY_URL_SET"
	CodeTooManyURLs   = "TOO_MANY_URLS"
)

// Campaign/budget error codes.
const (
	CodeBudgetExhausted  = "BUDGET_EXHAUSTED"
	CodeCampaignNotFound = "CAMPAIGN_NOT_FOUND"
	CodeCampaignInactive = "CAMPAIGN_INACTIVE"
)

// AI queue error codes.
const (
	CodeQueueEntryNotFound = "QUEUE_ENTRY_NOT_FOUND"
	CodePartialFailure     = "PARTIAL_FAILURE"
	CodeNoPendingEntries   = "NO_PENDING_ENTRIES"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrBatchNotFoundf creates a batch not found error.
func ErrBatchNotFoundf(batchID string) *AppError {
	return (&AppError{
		Code:       CodeBatchNotFound,
		Message:    "batch not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"batch_id": batchID})
}

// ErrScanNotFoundf creates a scan not found error.
func ErrScanNotFoundf(scanID string) *AppError {
	return (&AppError{
		Code:       CodeScanNotFound,
		Message:    "scan not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"scan_id": scanID})
}

// ErrInvalidStatef creates a 409 for an operation attempted in the wrong state.
func ErrInvalidStatef(current, operation string) *AppError {
	return (&AppError{
		Code:       CodeInvalidState,
		Message:    "operation not allowed in current state",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{"current": current, "operation": operation})
}

// ErrBudgetExhaustedf creates a 402 when the campaign cannot cover a reservation.
func ErrBudgetExhaustedf(requested, remaining int64) *AppError {
	return (&AppError{
		Code:       CodeBudgetExhausted,
		Message:    "campaign token budget exhausted",
		HTTPStatus: http.StatusPaymentRequired,
	}).WithParams(map[string]interface{}{"requested": requested, "remaining": remaining})
}

// ErrInvalidRequestFieldf creates a bad request error for forbidden fields.
func ErrInvalidRequestFieldf(fieldName string) *AppError {
	return &AppError{
		Code:       CodeInvalidRequestField,
		Message:    "request contains forbidden field: " + fieldName,
		HTTPStatus: http.StatusBadRequest,
	}
}
