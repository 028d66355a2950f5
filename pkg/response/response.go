package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookbnb/service-booking/pkg/domain"
)

// Message is the uniform error payload for every non-2xx response.
type Message struct {
	Message string `json:"message"`
}

// Success writes a 200 with the given body.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the given body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest writes a 400 with a message payload.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Message{Message: message})
}

// Error translates a domain error into its HTTP status and a uniform
// message payload. Unrecognized errors become a generic 500 so internals
// never leak to clients.
func Error(c *gin.Context, err error) {
	var (
		validationErr   *domain.ValidationError
		notFoundErr     *domain.NotFoundError
		preconditionErr *domain.PreconditionFailedError
		conflictErr     *domain.ConflictError
		unavailableErr  *domain.UnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, Message{Message: validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, Message{Message: notFoundErr.Message})
	case errors.As(err, &preconditionErr):
		c.JSON(http.StatusPreconditionFailed, Message{Message: preconditionErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, Message{Message: conflictErr.Message})
	case errors.As(err, &unavailableErr):
		// The wrapped cause stays in the logs, not the response.
		c.JSON(http.StatusInternalServerError, Message{Message: unavailableErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, Message{Message: "internal server error"})
	}
}
