package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ats-backend/internal/database"
	"ats-backend/internal/model"
	"ats-backend/internal/utilities"
)

// LocalAuthHandler holds dependencies of the register and login handlers.
type LocalAuthHandler struct {
	DB     *database.DBinstanceStruct
	Tokens *TokenService
	Log    *zap.Logger
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler.
func NewLocalAuthHandler(db *database.DBinstanceStruct, tokens *TokenService, log *zap.Logger) *LocalAuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LocalAuthHandler{
		DB:     db,
		Tokens: tokens,
		Log:    log,
	}
}

type registerInfo struct {
	Name         string     `json:"name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Password     string     `json:"password" binding:"required,min=6"`
	Role         model.Role `json:"role" binding:"required,oneof=recruiter applicant"`
	Organization string     `json:"organization"`
	// Comma separated, e.g. "Go, PostgreSQL"
	Skills     string `json:"skills"`
	Experience int    `json:"experience" binding:"min=0"`
}

type loginInfo struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SplitSkills turns "Go, PostgreSQL,,Docker" into [Go PostgreSQL Docker]
func SplitSkills(skills string) []string {
	out := []string{}
	for _, s := range strings.Split(skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// RegisterHandler creates a user together with its recruiter or applicant profile
// @Summary Register a recruiter or an applicant
// @Description Email must not be registered yet, password must be at least 6 characters. Organization is required for recruiters.
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "role can be only 'recruiter' or 'applicant'"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition or user already exists"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) RegisterHandler(c *gin.Context) {
	var info registerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Name, valid email, password (at least 6 characters) and role ('recruiter' or 'applicant') must be provided",
		})
		return
	}
	info.Email = normalizeEmail(info.Email)
	info.Organization = strings.TrimSpace(info.Organization)

	if info.Role == model.RoleRecruiter && info.Organization == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Organization is required for recruiters",
		})
		return
	}

	var count int64
	if err := lh.DB.WithContext(c.Request.Context()).Model(&model.User{}).Where("email = ?", info.Email).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}
	if count > 0 {
		logAuthAttempt(lh.Log, "Register", authFail, info.Email, "email taken")
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "User already exists"})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user := model.User{
		Name:     strings.TrimSpace(info.Name),
		Email:    info.Email,
		Password: hashedPassword,
		Role:     info.Role,
	}

	err = lh.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch info.Role {
		case model.RoleRecruiter:
			return tx.Omit("User").Create(&model.Recruiter{UserID: user.ID, Organization: info.Organization}).Error
		case model.RoleApplicant:
			return tx.Omit("User").Create(&model.Applicant{
				UserID:     user.ID,
				Skills:     SplitSkills(info.Skills),
				Experience: info.Experience,
			}).Error
		default:
			return fmt.Errorf("role '%s' not allowed", info.Role)
		}
	})
	if err != nil {
		if isUniqueViolation(err) {
			logAuthAttempt(lh.Log, "Register", authFail, info.Email, "email taken")
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
		})
		return
	}

	accessToken, err := lh.Tokens.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	logAuthAttempt(lh.Log, "Register", authSuccess, user.ID.String(), string(user.Role))
	c.JSON(http.StatusCreated, model.AuthResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// LoginHandler function handles local login by receiving email and password
// @Summary Handles local login by receiving email and password
// @Description Email must exist and password match
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Email not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LoginHandler(c *gin.Context) {
	var info loginInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Valid email and password must be provided",
		})
		return
	}
	info.Email = normalizeEmail(info.Email)

	var user model.User
	err := lh.DB.WithContext(c.Request.Context()).Where("email = ?", info.Email).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		logAuthAttempt(lh.Log, "Login", authFail, info.Email, "unknown email")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Invalid email or password",
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		logAuthAttempt(lh.Log, "Login", authFail, info.Email, "wrong password")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Invalid email or password",
		})
		return
	}

	accessToken, err := lh.Tokens.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	logAuthAttempt(lh.Log, "Login", authSuccess, user.ID.String(), "")
	c.JSON(http.StatusOK, model.AuthResponse{
		User:        user,
		AccessToken: accessToken,
	})
}
