package utilities

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/workflow"
)

// StatusOf maps a workflow error code to the HTTP status returned to clients.
func StatusOf(code workflow.Code) int {
	switch code {
	case workflow.CodeUnauthorized:
		return http.StatusForbidden
	case workflow.CodeNotFound:
		return http.StatusNotFound
	case workflow.CodeInvalidInput:
		return http.StatusBadRequest
	case workflow.CodeInvalidTransition,
		workflow.CodeDuplicateApplication,
		workflow.CodeAlreadyScheduled,
		workflow.CodeSchedulingConflict,
		workflow.CodeNotReadyForInterview,
		workflow.CodeNotInterviewed,
		workflow.CodeOfferExists,
		workflow.CodeJobClosed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an ErrorResponse. Workflow errors carry their code,
// anything else is reported as an internal error.
func RespondError(c *gin.Context, err error) {
	code := workflow.CodeOf(err)
	if code == "" {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(StatusOf(code), ErrorResponse{Error: err.Error(), Code: string(code)})
}
