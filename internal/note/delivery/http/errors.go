package http

import (
	"errors"
	"net/http"

	"breeze/internal/note"
	pkgErrors "breeze/pkg/errors"
)

var errInvalidRequest = pkgErrors.NewHTTPError(130002, "invalid request body")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrNoteNotFound):
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 130404, err.Error())
	case errors.Is(err, note.ErrSessionRequired):
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusUnauthorized, 130401, err.Error())
	case errors.Is(err, note.ErrTitleRequired),
		errors.Is(err, note.ErrContentRequired),
		errors.Is(err, note.ErrNothingToUpdate):
		return pkgErrors.NewHTTPError(130003, err.Error())
	default:
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusInternalServerError, 130500, "Internal Server Error")
	}
}
