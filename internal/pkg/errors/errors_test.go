package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := New("BATCH_NOT_FOUND", "batch not found", http.StatusNotFound)
	if got := plain.Error(); got != "BATCH_NOT_FOUND: batch not found" {
		t.Fatalf("Error() = %q", got)
	}

	wrapped := Wrap(fmt.Errorf("connection reset"), "DB_ERROR", "database failure", http.StatusInternalServerError)
	if got := wrapped.Error(); got != "DB_ERROR: database failure: connection reset" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestAppError_UnwrapChain(t *testing.T) {
	inner := fmt.Errorf("inner")
	appErr := Wrap(inner, "CODE", "msg", http.StatusInternalServerError)

	if !errors.Is(appErr, inner) {
		t.Fatal("errors.Is did not reach the wrapped cause")
	}

	rewrapped := fmt.Errorf("context: %w", appErr)
	got, ok := IsAppError(rewrapped)
	if !ok || got.Code != "CODE" {
		t.Fatalf("IsAppError = (%v, %v)", got, ok)
	}
}

func TestIsAppError_PlainError(t *testing.T) {
	if _, ok := IsAppError(errors.New("plain")); ok {
		t.Fatal("plain error misidentified as AppError")
	}
}

func TestStatusConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{name: "NotFound", err: NotFound("NF", "x"), want: http.StatusNotFound},
		{name: "BadRequest", err: BadRequest("BR", "x"), want: http.StatusBadRequest},
		{name: "Unauthorized", err: Unauthorized("UA", "x"), want: http.StatusUnauthorized},
		{name: "Forbidden", err: Forbidden("FB", "x"), want: http.StatusForbidden},
		{name: "Conflict", err: Conflict("CF", "x"), want: http.StatusConflict},
		{name: "Internal", err: Internal("IE", "x"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.want {
				t.Fatalf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.want)
			}
		})
	}
}

func TestDomainConstructors(t *testing.T) {
	if err := ErrBatchNotFoundf("b-1"); err.HTTPStatus != http.StatusNotFound || err.Code != CodeBatchNotFound {
		t.Fatalf("ErrBatchNotFoundf = %v", err)
	}

	stateErr := ErrInvalidStatef("COMPLETED", "cancel")
	if stateErr.HTTPStatus != http.StatusConflict {
		t.Fatalf("ErrInvalidStatef status = %d", stateErr.HTTPStatus)
	}
	if stateErr.Params["current"] != "COMPLETED" || stateErr.Params["operation"] != "cancel" {
		t.Fatalf("ErrInvalidStatef params = %v", stateErr.Params)
	}

	budgetErr := ErrBudgetExhaustedf(2000, 500)
	if budgetErr.HTTPStatus != http.StatusPaymentRequired {
		t.Fatalf("ErrBudgetExhaustedf status = %d", budgetErr.HTTPStatus)
	}
	if budgetErr.Params["remaining"] != int64(500) {
		t.Fatalf("ErrBudgetExhaustedf remaining = %v", budgetErr.Params["remaining"])
	}
}

func TestWithFieldErrors(t *testing.T) {
	err := BadRequest("VALIDATION_FAILED", "invalid request").WithFieldErrors([]FieldError{
		{Field: "homepage_url", Code: "required"},
	})
	if len(err.FieldErrors) != 1 || err.FieldErrors[0].Field != "homepage_url" {
		t.Fatalf("FieldErrors = %v", err.FieldErrors)
	}

	unchanged := BadRequest("VALIDATION_FAILED", "invalid request").WithFieldErrors(nil)
	if unchanged.FieldErrors != nil {
		t.Fatal("empty WithFieldErrors attached a slice")
	}
}
