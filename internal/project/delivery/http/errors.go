package http

import (
	"errors"
	"net/http"

	"breeze/internal/project"
	pkgErrors "breeze/pkg/errors"
)

var errInvalidRequest = pkgErrors.NewHTTPError(120002, "invalid request body")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 120404, err.Error())
	case errors.Is(err, project.ErrSessionRequired):
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusUnauthorized, 120401, err.Error())
	case errors.Is(err, project.ErrNameRequired),
		errors.Is(err, project.ErrDescriptionNeeded),
		errors.Is(err, project.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(120003, err.Error())
	default:
		return pkgErrors.NewHTTPErrorWithStatus(http.StatusInternalServerError, 120500, "Internal Server Error")
	}
}
