// Package application provides HTTP handlers for submitting and reviewing job applications.
package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ats-backend/internal/filestore"
	"ats-backend/internal/model"
	"ats-backend/internal/resume"
	"ats-backend/internal/store/gormstore"
	"ats-backend/internal/utilities"
	"ats-backend/internal/workflow"
)

// DefaultMaxResumeBytes is the largest accepted resume
const DefaultMaxResumeBytes int64 = 10 << 20

// ApplicationController handles application related endpoints
type ApplicationController struct {
	Queries   *gormstore.Store
	Workflow  *workflow.Coordinator
	Files     *filestore.Store
	Extractor resume.Extractor
	// MaxResumeBytes falls back to DefaultMaxResumeBytes when not positive.
	MaxResumeBytes int64
	Log            *zap.Logger
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(
	queries *gormstore.Store,
	coordinator *workflow.Coordinator,
	files *filestore.Store,
	extractor resume.Extractor,
	maxResumeBytes int64,
	log *zap.Logger,
) *ApplicationController {
	if maxResumeBytes <= 0 {
		maxResumeBytes = DefaultMaxResumeBytes
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ApplicationController{
		Queries:        queries,
		Workflow:       coordinator,
		Files:          files,
		Extractor:      extractor,
		MaxResumeBytes: maxResumeBytes,
		Log:            log,
	}
}

// Apply submits the calling applicant's application with a PDF resume.
// @Summary Apply to a job
// @Description Only PDF files smaller than 10 MB are accepted. The resume is scored against the job requirements.
// @Tags Application
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path int true "Job ID"
// @Param resume formData file true "Upload your resume file"
// @Success 201 {object} model.Application "Successfully applied"
// @Failure 400 {object} utilities.ErrorResponse "Missing resume or invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as applicant"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Job closed or already applied"
// @Failure 413 {object} utilities.ErrorResponse "File size is larger than 10 MB"
// @Failure 415 {object} utilities.ErrorResponse "File is not a PDF"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/apply/{jobId} [post]
func (ac *ApplicationController) Apply(c *gin.Context) {
	caller, err := utilities.ExtractCaller(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobID, err := utilities.ParseID(c, "jobId")
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	content, ok := ac.readResume(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	file, err := ac.Files.Save(ctx, content, ".pdf", filestore.ResumePrefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store resume: %s", err.Error()),
		})
		return
	}

	application, err := ac.Workflow.Submit(ctx, caller, jobID, workflow.ResumeInput{
		FileID:         file.ID,
		StoredFilePath: filestore.Path(file),
		ExtractedText:  ac.extractText(ctx, content),
	})
	if err != nil {
		if delErr := ac.Files.Delete(context.WithoutCancel(ctx), file.ID); delErr != nil {
			ac.Log.Warn("failed to remove resume of rejected submission", zap.Uint("file_id", file.ID), zap.Error(delErr))
		}
		utilities.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// readResume returns the uploaded resume, writing the error response when it is unusable.
func (ac *ApplicationController) readResume(c *gin.Context) ([]byte, bool) {
	rawFile, err := c.FormFile("resume")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{Error: err.Error()})
		return nil, false
	}
	if err != nil {
		utilities.RespondError(c, workflow.NewError(workflow.CodeInvalidInput, "resume file is required", err))
		return nil, false
	}

	if rawFile.Size > ac.MaxResumeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: fmt.Sprintf("File size is larger than %d MB", ac.MaxResumeBytes>>20),
		})
		return nil, false
	}

	extension := strings.ToLower(filepath.Ext(rawFile.Filename))
	if extension != ".pdf" {
		c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unsupported file extension: %s", extension),
		})
		return nil, false
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return nil, false
	}
	defer func() {
		if err := f.Close(); err != nil {
			ac.Log.Warn("failed to close uploaded file", zap.Error(err))
		}
	}()

	content, err := io.ReadAll(io.LimitReader(f, ac.MaxResumeBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
		return nil, false
	}
	if int64(len(content)) > ac.MaxResumeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: fmt.Sprintf("File size is larger than %d MB", ac.MaxResumeBytes>>20),
		})
		return nil, false
	}
	if !resume.IsPDF(content) {
		c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{Error: "Only PDF files are allowed"})
		return nil, false
	}
	return content, true
}

// extractText never fails: an unreadable resume is scored as empty text.
func (ac *ApplicationController) extractText(ctx context.Context, content []byte) string {
	if ac.Extractor == nil {
		return ""
	}
	text, err := ac.Extractor.ExtractText(ctx, content)
	if err != nil {
		ac.Log.Warn("failed to extract resume text", zap.Error(err))
		return ""
	}
	return text
}

// ListMyApplications returns applications of the calling applicant.
// @Summary List my applications
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ApplicationView "Applications, newest first"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as applicant"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/my [get]
func (ac *ApplicationController) ListMyApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := ac.Queries.ApplicationsByApplicant(c.Request.Context(), user.ID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListJobApplications returns applications to a job owned by the calling recruiter.
// @Summary List applications of a job
// @Description Sorted by screening score, best first
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path int true "Job ID"
// @Success 200 {array} model.ApplicationView "Applications"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Job belongs to another recruiter"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/job/{jobId} [get]
func (ac *ApplicationController) ListJobApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobID, err := utilities.ParseID(c, "jobId")
	if err != nil {
		utilities.RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	job, ok, err := ac.Queries.JobByID(ctx, jobID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	if !ok {
		utilities.RespondNotFound(c, "job")
		return
	}
	if job.RecruiterID != user.ID {
		utilities.RespondError(c, workflow.NewError(workflow.CodeUnauthorized, "job belongs to another recruiter", nil))
		return
	}

	views, err := ac.Queries.ApplicationsByJob(ctx, jobID)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetResume streams the resume of an application to one of its participants.
// @Summary Download application resume
// @Description Only the applicant and the recruiter owning the job can download it
// @Tags Application
// @Produce application/pdf
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Success 200 {string} binary "Resume file"
// @Failure 400 {object} utilities.ErrorResponse "Invalid application id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not a participant of the application"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Fail to send file content"
// @Router /applications/{id}/resume [get]
func (ac *ApplicationController) GetResume(c *gin.Context) {
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

	ctx := c.Request.Context()
	participants, ok, err := ac.Queries.Participants(ctx, id)
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

	file, reader, size, err := ac.Files.Open(ctx, participants.ResumeFileID)
	if errors.Is(err, filestore.ErrNotFound) {
		utilities.RespondNotFound(c, "resume")
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			ac.Log.Warn("failed to close resume reader", zap.Error(err))
		}
	}()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=resume-%d%s", id, file.Extension))
	c.Header("Content-Type", "application/pdf")
	if size > 0 {
		c.Header("Content-Length", fmt.Sprint(size))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		ac.Log.Warn("failed to send resume", zap.Uint("application_id", id), zap.Error(err))
		c.Abort()
	}
}

type transitionFunc func(ctx context.Context, caller workflow.Caller, applicationID uint) (model.Application, error)

func (ac *ApplicationController) runTransition(c *gin.Context, transition transitionFunc) {
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

	application, err := transition(c.Request.Context(), caller, id)
	if err != nil {
		utilities.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// Screen marks an application as reviewed.
// @Summary Screen application
// @Description Applied to Screened. Only the recruiter owning the job.
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Success 200 {object} model.Application "Updated application"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Job belongs to another recruiter"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Invalid status transition"
// @Router /applications/{id}/screen [patch]
func (ac *ApplicationController) Screen(c *gin.Context) {
	ac.runTransition(c, ac.Workflow.Screen)
}

// Shortlist marks an application as a strong candidate and emails the applicant.
// @Summary Shortlist application
// @Description Applied or Screened to Shortlisted. Only the recruiter owning the job.
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Success 200 {object} model.Application "Updated application"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Job belongs to another recruiter"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Invalid status transition"
// @Router /applications/{id}/shortlist [patch]
func (ac *ApplicationController) Shortlist(c *gin.Context) {
	ac.runTransition(c, ac.Workflow.Shortlist)
}

// Reject ends an application.
// @Summary Reject application
// @Description Any non terminal status to Rejected. Only the recruiter owning the job.
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Success 200 {object} model.Application "Updated application"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Job belongs to another recruiter"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 409 {object} utilities.ErrorResponse "Invalid status transition"
// @Router /applications/{id}/reject [patch]
func (ac *ApplicationController) Reject(c *gin.Context) {
	ac.runTransition(c, ac.Workflow.Reject)
}
