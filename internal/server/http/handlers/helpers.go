package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/domain/model"
	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/server/http/middleware"
)

const invalidBody = "Invalid request body"

// CurrentIdentity extracts authenticated caller from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	return middleware.Identity(c)
}

// messages overrides default response text for a sentinel per endpoint.
type messages map[error]string

var defaultMessages = messages{
	domainErrors.ErrUnauthorized:       "Unauthorized",
	domainErrors.ErrInvalidCredentials: "Invalid credentials",
	domainErrors.ErrForbidden:          "Unauthorized - Staff only",
	domainErrors.ErrNotFound:           "Not found",
	domainErrors.ErrAlreadyExists:      "Already exists",
	domainErrors.ErrInvalidTransition:  "Invalid status transition",
}

var statusBySentinel = []struct {
	target error
	status int
}{
	{domainErrors.ErrValidation, http.StatusBadRequest},
	{domainErrors.ErrUnauthorized, http.StatusUnauthorized},
	{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{domainErrors.ErrForbidden, http.StatusForbidden},
	{domainErrors.ErrNotFound, http.StatusNotFound},
	{domainErrors.ErrAlreadyExists, http.StatusConflict},
	{domainErrors.ErrInvalidTransition, http.StatusConflict},
}

// respondError maps domain error to HTTP status and JSON body.
func respondError(c *gin.Context, err error, overrides messages) {
	var validation *domainErrors.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validation.Message})
		return
	}

	for _, s := range statusBySentinel {
		if !errors.Is(err, s.target) {
			continue
		}
		msg, ok := overrides[s.target]
		if !ok {
			msg = defaultMessages[s.target]
		}
		c.JSON(s.status, dto.ErrorResponse{Error: msg})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}
