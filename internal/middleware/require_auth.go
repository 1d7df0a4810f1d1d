// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"ats-backend/internal/auth"
	"ats-backend/internal/database"
	"ats-backend/internal/model"
	"ats-backend/internal/utilities"
)

type authError struct {
	status  int
	message string
}

func (e *authError) Error() string {
	return e.message
}

// authenticate resolves the bearer token of the request to a user and its claims
func authenticate(ctx *gin.Context, db *database.DBinstanceStruct, tokens *auth.TokenService, blacklist auth.JwtBlacklistStore) (model.User, *jwt.RegisteredClaims, *authError) {
	tokenString, err := utilities.ExtractBearerToken(ctx)
	if err != nil {
		return model.User{}, nil, &authError{http.StatusUnauthorized, err.Error()}
	}

	token, err := tokens.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.User{}, nil, &authError{http.StatusUnauthorized, "Access token expired"}
		}
		return model.User{}, nil, &authError{http.StatusUnauthorized, fmt.Sprintf("Failed to validate token: %s", err.Error())}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !token.Valid || !ok {
		return model.User{}, nil, &authError{http.StatusUnauthorized, "Invalid access token"}
	}

	if claims.Issuer != auth.JwtIssuer {
		return model.User{}, nil, &authError{http.StatusUnauthorized, "Invalid token issuer"}
	}

	if blacklist != nil && claims.ID != "" {
		revoked, err := blacklist.IsBlacklisted(ctx.Request.Context(), claims.ID)
		if err != nil {
			return model.User{}, nil, &authError{http.StatusInternalServerError, fmt.Sprintf("Failed to validate token: %s", err.Error())}
		}
		if revoked {
			return model.User{}, nil, &authError{http.StatusUnauthorized, "Token has been revoked"}
		}
	}

	var foundUser model.User
	if err := db.WithContext(ctx.Request.Context()).Where("id = ?", claims.Subject).First(&foundUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, nil, &authError{http.StatusUnauthorized, "User not exist"}
		}
		return model.User{}, nil, &authError{http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve user data: %s", err.Error())}
	}

	return foundUser, claims, nil
}

// RequireAuth validates the Bearer token in the Authorization header, rejects revoked tokens
// and sets "user" and "claims" in the context before allowing access to the endpoint.
func RequireAuth(db *database.DBinstanceStruct, tokens *auth.TokenService, blacklist auth.JwtBlacklistStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, claims, authErr := authenticate(ctx, db, tokens, blacklist)
		if authErr != nil {
			ctx.AbortWithStatusJSON(authErr.status, utilities.ErrorResponse{
				Error: authErr.message,
			})
			return
		}

		ctx.Set("claims", claims)
		ctx.Set("user", user)
		ctx.Next()
	}
}

// OptionalAuth sets "user" when the request carries a usable token and lets every request through.
func OptionalAuth(db *database.DBinstanceStruct, tokens *auth.TokenService, blacklist auth.JwtBlacklistStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") == "" {
			ctx.Next()
			return
		}

		user, claims, authErr := authenticate(ctx, db, tokens, blacklist)
		if authErr == nil {
			ctx.Set("claims", claims)
			ctx.Set("user", user)
		}
		ctx.Next()
	}
}
