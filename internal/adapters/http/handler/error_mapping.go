package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-employee-api/internal/core/employee"
)

type errorResponse struct {
	Error string `json:"error"`
}

func toHTTPStatus(err error) int {
	switch {
	case errors.Is(err, employee.ErrMissingBody),
		errors.Is(err, employee.ErrValidation),
		errors.Is(err, errInvalidID),
		errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := toHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}
