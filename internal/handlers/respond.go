package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/taskops/taskstore/internal/errors"
)

// respondServiceError maps domain errors to HTTP responses: missing records
// to 404, uniqueness and referential failures to 400, anything else to 500.
func respondServiceError(c *gin.Context, err error) {
	var notFound *apierrors.NotFoundError
	if errors.As(err, &notFound) {
		apierrors.NotFound(c, notFound.Message)
		return
	}

	var conflict *apierrors.ConflictError
	if errors.As(err, &conflict) {
		apierrors.Conflict(c, conflict.Message)
		return
	}

	apierrors.InternalError(c, "")
}
