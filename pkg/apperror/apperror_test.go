package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"catalog-service/pkg/apperror"
)

func TestHTTPError(t *testing.T) {
	err := apperror.New(422, "price cannot change")
	if err.StatusCode != 422 {
		t.Errorf("expected 422, got %d", err.StatusCode)
	}
	if err.Message != "price cannot change" {
		t.Errorf("unexpected message: %q", err.Message)
	}
	if err.Error() != "http 422: price cannot change" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestNewf(t *testing.T) {
	err := apperror.Newf(404, "item %s not found", "abc")
	if err.Message != "item abc not found" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestHTTPErrorSurvivesWrapping(t *testing.T) {
	inner := apperror.New(401, "unauthorized")
	wrapped := fmt.Errorf("middleware: %w", inner)

	var httpErr *apperror.HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As failed on wrapped HTTPError")
	}
	if httpErr.StatusCode != 401 {
		t.Errorf("expected 401, got %d", httpErr.StatusCode)
	}
}

func TestValidationError(t *testing.T) {
	details := []apperror.FieldDetail{
		{Field: "sku", Message: "is required"},
		{Field: "name", Message: "is required"},
	}
	err := apperror.NewValidation(details)
	if len(err.Details) != 2 {
		t.Errorf("expected 2 details, got %d", len(err.Details))
	}
	if err.Error() != "validation error (2 fields)" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestValidStatus(t *testing.T) {
	valid := []int{100, 200, 404, 409, 500, 599}
	invalid := []int{-5, 0, 99, 600, 1000}

	for _, code := range valid {
		if !apperror.ValidStatus(code) {
			t.Errorf("expected %d to be valid", code)
		}
	}
	for _, code := range invalid {
		if apperror.ValidStatus(code) {
			t.Errorf("expected %d to be invalid", code)
		}
	}
}
