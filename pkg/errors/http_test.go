package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "breeze/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(140001, "Task not found")
	if err.Status() != http.StatusBadRequest {
		t.Errorf("Status() = %d, want 400", err.Status())
	}
	if err.Error() != "140001: Task not found" {
		t.Errorf("Error() = %q", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 140001, "Task not found"))
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("expected errors.As to find HTTPError")
	}
	if httpErr.Status() != http.StatusNotFound {
		t.Errorf("Status() = %d, want 404", httpErr.Status())
	}

	zero := &pkgErrors.HTTPError{Code: 1, Message: "x"}
	if zero.Status() != http.StatusBadRequest {
		t.Errorf("zero StatusCode should default to 400")
	}
}
