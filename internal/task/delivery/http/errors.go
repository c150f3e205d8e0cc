package http

import (
	"errors"
	"net/http"

	"breeze/internal/task"
	pkgErrors "breeze/pkg/errors"
)

var (
	errIDRequired     = pkgErrors.NewHTTPError(110001, "id is required")
	errInvalidRequest = pkgErrors.NewHTTPError(110002, "invalid request body")
)

// mapError translates task use-case errors into HTTP errors.
// Unknown errors become a 500 with a generic message.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 110404, err.Error())
	case errors.Is(err, task.ErrSessionRequired):
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusUnauthorized, 110401, err.Error())
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrDescriptionNeeded),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidDueDate),
		errors.Is(err, task.ErrNothingToUpdate),
		errors.Is(err, task.ErrProjectRequired):
		return pkgErrors.NewHTTPError(110003, err.Error())
	default:
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusInternalServerError, 110500, "Internal Server Error")
	}
}
