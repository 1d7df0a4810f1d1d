// Package job provides HTTP handlers for job posting and listing.
package job

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ats-backend/internal/model"
	"ats-backend/internal/store/gormstore"
	"ats-backend/internal/utilities"
	"ats-backend/internal/workflow"
)

// JobController handles job related endpoints
type JobController struct {
	Queries  *gormstore.Store
	Workflow *workflow.Coordinator
}

// NewJobController creates a new instance of JobController
func NewJobController(queries *gormstore.Store, coordinator *workflow.Coordinator) *JobController {
	return &JobController{
		Queries:  queries,
		Workflow: coordinator,
	}
}

// CreateJobRequest is the body of a new job post
type CreateJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements" binding:"required"`
	Location     string `json:"location" binding:"required"`
}

// UpdateStatusRequest is the body of job status change
type UpdateStatusRequest struct {
	Status model.JobStatus `json:"status" binding:"required"`
}

// ListActiveJobs returns every active job.
// @Summary List active jobs
// @Description Authentication is optional. Applicants do not see jobs they already applied to.
// @Tags Job
// @Produce json
// @Param Authorization header string false "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.JobResponse "Active jobs, newest first"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) ListActiveJobs(c *gin.Context) {
	var applicantID *uuid.UUID
	if user, err := utilities.ExtractUser(c); err == nil && user.Role == model.RoleApplicant {
		id := user.ID
		applicantID = &id
	}

	jobs, err := jc.Queries.ActiveJobs(c.Request.Context(), applicantID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListMyJobs returns jobs posted by the calling recruiter.
// @Summary List jobs posted by me
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Job "Jobs, newest first"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as recruiter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/my [get]
func (jc *JobController) ListMyJobs(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobs, err := jc.Queries.RecruiterJobs(c.Request.Context(), user.ID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob returns a single job with its recruiter details.
// @Summary Get job by ID
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Success 200 {object} model.JobResponse "Job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJob(c *gin.Context) {
	id, err := utilities.ParseID(c, "id")
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	job, ok, err := jc.Queries.JobByID(c.Request.Context(), id)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	if !ok {
		utilities.RespondNotFound(c, "job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob posts a new active job.
// @Summary Create job post
// @Description Only recruiters can post jobs. Every field is required.
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param job body CreateJobRequest true "Job content"
// @Success 201 {object} model.Job "Successfully create job post"
// @Failure 400 {object} utilities.ErrorResponse "Missing fields"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as recruiter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *JobController) CreateJob(c *gin.Context) {
	caller, err := utilities.ExtractCaller(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var req CreateJobRequest
	if err := utilities.BindJSON(c, &req); err != nil {
		utilities.RespondError(c, err)
		return
	}

	job, err := jc.Workflow.PostJob(c.Request.Context(), caller, workflow.JobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
	})
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateStatus opens or closes a job.
// @Summary Update job status
// @Description Only the recruiter who posted the job can change its status
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Param status body UpdateStatusRequest true "active or closed"
// @Success 200 {object} model.Job "Updated job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Job belongs to another recruiter"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/status [patch]
func (jc *JobController) UpdateStatus(c *gin.Context) {
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

	job, err := jc.Workflow.SetJobStatus(c.Request.Context(), caller, id, req.Status)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
