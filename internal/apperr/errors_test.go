package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/faroese-analyzer/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("no sentence entered")

	if err.Error() != "no sentence entered" {
		t.Errorf("expected 'no sentence entered', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("unexpected end of JSON input")
	err := apperr.NewValidationWrap("invalid request body", inner)

	if err.Error() != "invalid request body: unexpected end of JSON input" {
		t.Errorf("expected 'invalid request body: unexpected end of JSON input', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("no sentence entered")

	wrapped := fmt.Errorf("analyze: %w", original)
	doubleWrapped := fmt.Errorf("handler: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "no sentence entered" {
		t.Errorf("expected 'no sentence entered', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("symbol table: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("lookup: %w", apperr.NewNotFound("symbol", "Eg"))

	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("errors.As should find NotFoundError")
	}
	if nf.Error() != "symbol Eg not found" {
		t.Errorf("expected 'symbol Eg not found', got %q", nf.Error())
	}
}

func TestIsValidation(t *testing.T) {
	if !apperr.IsValidation(fmt.Errorf("wrapped: %w", apperr.NewValidation("no sentence entered"))) {
		t.Error("expected wrapped validation error to be detected")
	}
	if apperr.IsValidation(apperr.NewNotFound("symbol", "Eg")) {
		t.Error("not found error is not a validation error")
	}
}
