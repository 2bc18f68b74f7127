package handlers

import (
	"errors"
	"net/http"

	"servicios_ili/pkg"
)

// mapStoreError is the shared fallback: transient store failures surface as
// "temporarily unavailable, try again" (retryable, distinct from input
// errors), everything else is an internal error.
func mapStoreError(err error) *pkg.AppError {
	if errors.Is(err, pkg.ErrStoreUnavailable) {
		return pkg.NewDomainError("STORE_UNAVAILABLE", "The service is temporarily unavailable, please try again", err, http.StatusServiceUnavailable)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
