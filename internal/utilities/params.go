package utilities

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/workflow"
)

// ParseID reads a positive numeric path parameter.
func ParseID(c *gin.Context, param string) (uint, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, workflow.NewError(workflow.CodeInvalidInput, fmt.Sprintf("invalid %s: %q", param, raw), nil)
	}
	return uint(id), nil
}

// BindJSON decodes the request body into obj and reports binding failures as invalid input.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return workflow.NewError(workflow.CodeInvalidInput, "invalid request body", err)
	}
	return nil
}

// RespondNotFound writes a NOT_FOUND error for what
func RespondNotFound(c *gin.Context, what string) {
	RespondError(c, workflow.NewError(workflow.CodeNotFound, what+" not found", nil))
}
