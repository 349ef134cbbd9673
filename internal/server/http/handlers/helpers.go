package handlers

import (
	"errors"
	"net/http"

	domainErrors "github.com/grocermart/partnersync/internal/domain/errors"
	"github.com/grocermart/partnersync/internal/remote"
)

// statusFromError maps domain and remote failures onto HTTP statuses.
// Remote channel failures are the partner side's fault, not ours, so
// they surface as 502.
func statusFromError(err error) int {
	var remoteErr *remote.Error
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrUnknownEntity):
		return http.StatusUnprocessableEntity
	case errors.As(err, &remoteErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
