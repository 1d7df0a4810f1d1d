// Package profile provides HTTP handlers for reading and editing the caller's own profile.
package profile

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ats-backend/internal/database"
	"ats-backend/internal/model"
	"ats-backend/internal/utilities"
)

// ProfileController handles profile related endpoints
type ProfileController struct {
	DB *database.DBinstanceStruct
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(db *database.DBinstanceStruct) *ProfileController {
	return &ProfileController{
		DB: db,
	}
}

// UpdateProfileRequest holds the editable profile fields. Absent fields are left unchanged.
// Organization applies to recruiters, Skills and Experience to applicants.
type UpdateProfileRequest struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Organization *string  `json:"organization"`
	Skills       []string `json:"skills"`
	Experience   *int     `json:"experience" binding:"omitempty,min=0"`
}

var errEmailTaken = errors.New("Email already in use")

func (pc *ProfileController) load(db *gorm.DB, user model.User) (model.ProfileResponse, error) {
	resp := model.ProfileResponse{User: user}
	switch user.Role {
	case model.RoleRecruiter:
		var recruiter model.Recruiter
		if err := db.Where("user_id = ?", user.ID).First(&recruiter).Error; err != nil {
			return resp, fmt.Errorf("failed to retrieve recruiter profile: %w", err)
		}
		recruiter.User = user
		resp.Recruiter = &recruiter
	case model.RoleApplicant:
		var applicant model.Applicant
		if err := db.Where("user_id = ?", user.ID).First(&applicant).Error; err != nil {
			return resp, fmt.Errorf("failed to retrieve applicant profile: %w", err)
		}
		applicant.User = user
		resp.Applicant = &applicant
	}
	return resp, nil
}

// GetProfile returns the caller's user record with its role profile.
// @Summary Get my profile
// @Tags Profile
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.ProfileResponse "Profile"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := pc.load(pc.DB.WithContext(c.Request.Context()), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfile edits the caller's profile.
// @Summary Update my profile
// @Description Name and email for everyone, organization for recruiters, skills and experience for applicants
// @Tags Profile
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param profile body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} model.ProfileResponse "Updated profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid field or email already in use"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var req UpdateProfileRequest
	if err := utilities.BindJSON(c, &req); err != nil {
		utilities.RespondError(c, err)
		return
	}

	userUpdates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Name cannot be empty"})
			return
		}
		userUpdates["name"] = name
	}
	if req.Email != nil {
		userUpdates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Organization != nil && user.Role == model.RoleRecruiter && strings.TrimSpace(*req.Organization) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Organization is required for recruiters"})
		return
	}

	var resp model.ProfileResponse
	err = pc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if email, ok := userUpdates["email"]; ok {
			var taken int64
			if err := tx.Model(&model.User{}).Where("email = ? AND id <> ?", email, user.ID).Count(&taken).Error; err != nil {
				return err
			}
			if taken > 0 {
				return errEmailTaken
			}
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&model.User{}).Where("id = ?", user.ID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}

		switch user.Role {
		case model.RoleRecruiter:
			if req.Organization != nil {
				if err := tx.Model(&model.Recruiter{}).Where("user_id = ?", user.ID).
					Update("organization", strings.TrimSpace(*req.Organization)).Error; err != nil {
					return err
				}
			}
		case model.RoleApplicant:
			applicantUpdates := map[string]interface{}{}
			if req.Skills != nil {
				applicantUpdates["skills"] = pq.StringArray(cleanSkills(req.Skills))
			}
			if req.Experience != nil {
				applicantUpdates["experience"] = *req.Experience
			}
			if len(applicantUpdates) > 0 {
				if err := tx.Model(&model.Applicant{}).Where("user_id = ?", user.ID).Updates(applicantUpdates).Error; err != nil {
					return err
				}
			}
		}

		var updated model.User
		if err := tx.First(&updated, "id = ?", user.ID).Error; err != nil {
			return err
		}
		var err error
		resp, err = pc.load(tx, updated)
		return err
	})

	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, errEmailTaken), errors.As(err, &pgErr) && pgErr.Code == "23505":
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: errEmailTaken.Error()})
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update profile: %s", err.Error()),
		})
	}
}

func cleanSkills(skills []string) []string {
	out := []string{}
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
