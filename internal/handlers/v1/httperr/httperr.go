// Package httperr maps service-layer errors onto the HTTP error taxonomy
// shared by every v1 handler.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pennyledger/expense-server/internal/service"
)

// FromService translates a service error: store-unavailable becomes a 500
// with its fixed message, validation errors become 422s carrying the field
// detail, and anything else is a 500 with the given action message.
func FromService(action string, err error) error {
	switch {
	case errors.Is(err, service.ErrStorageUnavailable):
		return huma.NewError(http.StatusInternalServerError, "Database not configured")
	case service.IsValidationError(err):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, action, err)
	}
}

// InvalidID is the 400 returned for an identifier that cannot be parsed
// into the store's reference type.
func InvalidID() error {
	return huma.NewError(http.StatusBadRequest, "invalid id")
}
