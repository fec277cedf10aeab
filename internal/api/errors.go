package api

import (
	"errors"
	"net/http"

	"github.com/yourorg/products-api/internal/apperrors"
)

const productNotFoundMessage = "Product Not Found"

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		NotFound(w, r, err, productNotFoundMessage)
		return
	}

	var timeoutErr *apperrors.TimeoutError
	if errors.As(err, &timeoutErr) {
		GatewayTimeout(w, r, err, err.Error())
		return
	}

	var unavailableErr *apperrors.ServiceUnavailableError
	if errors.As(err, &unavailableErr) {
		ServiceUnavailable(w, r, err, err.Error())
		return
	}

	InternalError(w, r, err, "internal server error")
}
