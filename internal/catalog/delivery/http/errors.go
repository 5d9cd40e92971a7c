package http

import (
	"errors"
	"net/http"

	"catalog-service/internal/catalog"
	"catalog-service/pkg/apperror"
)

// mapError translates business-rule errors into application errors with an
// explicit status and client-safe message. Storage errors pass through
// unchanged: the response classifier recognizes their driver shapes
// (unique violation, no rows) directly.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrPriceLocked):
		return apperror.New(http.StatusUnprocessableEntity, "price cannot be changed on a discontinued item")
	case errors.Is(err, catalog.ErrInvalidStatus):
		return apperror.New(http.StatusBadRequest, "status must be active or discontinued")
	default:
		return err
	}
}
