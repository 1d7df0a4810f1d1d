package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/model"
	"ats-backend/internal/utilities"
	"ats-backend/internal/workflow"
)

// CheckRole will protect endpoint from user that is not a specific roles.
// A caller with another role gets 403 with the UNAUTHORIZED code.
func CheckRole(roles ...model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		if !slices.Contains(roles, user.Role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "User doesn't have permission to access",
				Code:  string(workflow.CodeUnauthorized),
			})
			return
		}
		ctx.Next()
	}
}
