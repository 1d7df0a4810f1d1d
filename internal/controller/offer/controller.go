// Package offer provides HTTP handlers for job offers.
package offer

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/model"
	"ats-backend/internal/store/gormstore"
	"ats-backend/internal/utilities"
	"ats-backend/internal/workflow"
)

// OfferController handles offer related endpoints
type OfferController struct {
	Queries  *gormstore.Store
	Workflow *workflow.Coordinator
}

// NewOfferController creates a new instance of OfferController
func NewOfferController(queries *gormstore.Store, coordinator *workflow.Coordinator) *OfferController {
	return &OfferController{
		Queries:  queries,
		Workflow: coordinator,
	}
}

// GenerateRequest is the body of a new offer
type GenerateRequest struct {
	ApplicationID uint      `json:"application_id" binding:"required"`
	Salary        float64   `json:"salary" binding:"required" example:"85000"`
	JoiningDate   time.Time `json:"joining_date" binding:"required" example:"2026-04-01T00:00:00Z"`
}

// RespondRequest is the applicant's answer to an offer
type RespondRequest struct {
	Status model.OfferStatus `json:"status" binding:"required" example:"Accepted"`
}

// Generate creates an offer for an interviewed application.
// @Summary Generate offer
// @Description Application must be in Interview Scheduled. One offer per application.
// @Tags Offer
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param offer body GenerateRequest true "Offer content"
// @Success 201 {object} model.Offer "Offer created"
// @Failure 400 {object} utilities.ErrorResponse "Invalid salary or joining date"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Job belongs to another recruiter"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Not interviewed or offer exists"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /offers/generate [post]
func (oc *OfferController) Generate(c *gin.Context) {
	caller, err := utilities.ExtractCaller(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var req GenerateRequest
	if err := utilities.BindJSON(c, &req); err != nil {
		utilities.RespondError(c, err)
		return
	}

	offer, err := oc.Workflow.GenerateOffer(c.Request.Context(), caller, workflow.OfferRequest{
		ApplicationID: req.ApplicationID,
		Salary:        req.Salary,
		JoiningDate:   req.JoiningDate,
	})
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// GetByApplication returns the offer of an application to one of its participants.
// @Summary Get offer of an application
// @Tags Offer
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param applicationId path int true "Application ID"
// @Success 200 {object} model.OfferView "Offer"
// @Failure 400 {object} utilities.ErrorResponse "Invalid application id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not a participant of the application"
// @Failure 404 {object} utilities.ErrorResponse "Application or offer not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /offers/application/{applicationId} [get]
func (oc *OfferController) GetByApplication(c *gin.Context) {
	caller, err := utilities.ExtractCaller(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	applicationID, err := utilities.ParseID(c, "applicationId")
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	participants, ok, err := oc.Queries.Participants(ctx, applicationID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	if !ok {
		utilities.RespondNotFound(c, "application")
		return
	}
	if !caller.CanView(participants.ApplicantID, participants.RecruiterID) {
		utilities.RespondError(c, workflow.NewError(workflow.CodeUnauthorized, "not a participant of this application", nil))
		return
	}

	offer, ok, err := oc.Queries.OfferByApplication(ctx, applicationID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	if !ok {
		utilities.RespondNotFound(c, "offer")
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Respond records the applicant's answer to an offer.
// @Summary Respond to offer
// @Description Status must be Accepted or Rejected. The application status is left unchanged.
// @Tags Offer
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Offer ID"
// @Param answer body RespondRequest true "Accepted or Rejected"
// @Success 200 {object} model.Offer "Updated offer"
// @Failure 400 {object} utilities.ErrorResponse "Invalid status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Offer belongs to another applicant"
// @Failure 404 {object} utilities.ErrorResponse "Offer not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /offers/{id}/respond [patch]
func (oc *OfferController) Respond(c *gin.Context) {
	caller, err := utilities.ExtractCaller(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := utilities.ParseID(c, "id")
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	var req RespondRequest
	if err := utilities.BindJSON(c, &req); err != nil {
		utilities.RespondError(c, err)
		return
	}

	offer, err := oc.Workflow.RespondToOffer(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}
