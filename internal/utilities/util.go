// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/model"
	"ats-backend/internal/workflow"
)

// ErrorResponse type for swagger docs. Code is set for workflow failures.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the user model from Gin context.
// It no longer aborts the request; instead returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

// ExtractCaller builds the workflow caller from the authenticated user in Gin context.
func ExtractCaller(c *gin.Context) (workflow.Caller, error) {
	user, err := ExtractUser(c)
	if err != nil {
		return workflow.Caller{}, err
	}
	if !user.Role.Valid() {
		return workflow.Caller{}, errors.New("User has unknown role")
	}
	return workflow.Caller{ID: user.ID, Role: user.Role}, nil
}
