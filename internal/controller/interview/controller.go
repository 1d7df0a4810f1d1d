// Package interview provides HTTP handlers for interview scheduling.
package interview

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/model"
	"ats-backend/internal/store/gormstore"
	"ats-backend/internal/utilities"
	"ats-backend/internal/workflow"
)

// InterviewController handles interview related endpoints
type InterviewController struct {
	Queries  *gormstore.Store
	Workflow *workflow.Coordinator
}

// NewInterviewController creates a new instance of InterviewController
func NewInterviewController(queries *gormstore.Store, coordinator *workflow.Coordinator) *InterviewController {
	return &InterviewController{
		Queries:  queries,
		Workflow: coordinator,
	}
}

// ScheduleRequest is the body of interview booking
type ScheduleRequest struct {
	ApplicationID uint                `json:"application_id" binding:"required"`
	InterviewDate time.Time           `json:"interview_date" binding:"required" example:"2026-03-02T09:30:00Z"`
	Mode          model.InterviewMode `json:"mode" example:"Online"`
}

// UpdateStatusRequest is the body of interview status change
type UpdateStatusRequest struct {
	Status model.InterviewStatus `json:"status" binding:"required" example:"Completed"`
}

// Schedule books an interview for an application.
// @Summary Schedule interview
// @Description Application must be Screened or Shortlisted. Interviews of one recruiter must be more than 1 hour apart.
// @Tags Interview
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param interview body ScheduleRequest true "Interview slot"
// @Success 201 {object} model.InterviewSchedule "Interview scheduled"
// @Failure 400 {object} utilities.ErrorResponse "Invalid date or mode"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Job belongs to another recruiter"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Not ready, already scheduled or conflicting interview"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews/schedule [post]
func (ic *InterviewController) Schedule(c *gin.Context) {
	caller, err := utilities.ExtractCaller(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var req ScheduleRequest
	if err := utilities.BindJSON(c, &req); err != nil {
		utilities.RespondError(c, err)
		return
	}

	interview, err := ic.Workflow.ScheduleInterview(c.Request.Context(), caller, workflow.ScheduleRequest{
		ApplicationID: req.ApplicationID,
		When:          req.InterviewDate,
		Mode:          req.Mode,
	})
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

// ListMyInterviews returns interviews of the calling recruiter.
// @Summary List my interviews
// @Tags Interview
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.InterviewView "Interviews by date"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as recruiter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews/my [get]
func (ic *InterviewController) ListMyInterviews(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := ic.Queries.InterviewsByRecruiter(c.Request.Context(), user.ID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListByApplication returns interviews of an application to one of its participants.
// @Summary List interviews of an application
// @Tags Interview
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param applicationId path int true "Application ID"
// @Success 200 {array} model.InterviewView "Interviews, latest first"
// @Failure 400 {object} utilities.ErrorResponse "Invalid application id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not a participant of the application"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews/application/{applicationId} [get]
func (ic *InterviewController) ListByApplication(c *gin.Context) {
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
	participants, ok, err := ic.Queries.Participants(ctx, applicationID)
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

	views, err := ic.Queries.InterviewsByApplication(ctx, applicationID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// UpdateStatus completes or cancels an interview.
// @Summary Update interview status
// @Description Status must be Completed or Cancelled. The application status is left unchanged.
// @Tags Interview
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Interview ID"
// @Param status body UpdateStatusRequest true "Completed or Cancelled"
// @Success 200 {object} model.InterviewSchedule "Updated interview"
// @Failure 400 {object} utilities.ErrorResponse "Invalid status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Interview belongs to another recruiter"
// @Failure 404 {object} utilities.ErrorResponse "Interview not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /interviews/{id}/status [patch]
func (ic *InterviewController) UpdateStatus(c *gin.Context) {
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
	var req UpdateStatusRequest
	if err := utilities.BindJSON(c, &req); err != nil {
		utilities.RespondError(c, err)
		return
	}

	interview, err := ic.Workflow.UpdateInterviewStatus(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}
