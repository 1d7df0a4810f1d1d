package interview

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"ats-backend/internal/auth"
	"ats-backend/internal/database"
	"ats-backend/internal/filestore"
	"ats-backend/internal/middleware"
	"ats-backend/internal/model"
	"ats-backend/internal/store/gormstore"
	"ats-backend/internal/testutil"
	"ats-backend/internal/workflow"
)

var (
	testDB     *database.DBinstanceStruct
	testTokens = auth.NewTokenService("interview-secret", time.Hour)
	blacklist  auth.JwtBlacklistStore
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	ctx, stop := context.WithCancel(context.Background())
	blacklist = auth.NewInMemoryBlacklistStore(ctx)

	code := m.Run()

	stop()
	tctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(tctx)
	}
	os.Exit(code)
}

func newController() *InterviewController {
	queries := gormstore.New(testDB.DB)
	return NewInterviewController(queries, workflow.NewCoordinator(queries, nil, nil))
}

func newRouter(ic *InterviewController) *gin.Engine {
	r := gin.New()
	requireAuth := middleware.RequireAuth(testDB, testTokens, blacklist)
	recruiterOnly := middleware.CheckRole(model.RoleRecruiter)

	r.POST("/interviews/schedule", requireAuth, recruiterOnly, ic.Schedule)
	r.GET("/interviews/my", requireAuth, recruiterOnly, ic.ListMyInterviews)
	r.GET("/interviews/application/:applicationId", requireAuth, ic.ListByApplication)
	r.PATCH("/interviews/:id/status", requireAuth, recruiterOnly, ic.UpdateStatus)
	return r
}

func tokenOf(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, testTokens, user.Email, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

// screenedApplication creates a job of recruiter, an application of applicant to it and screens it.
func screenedApplication(t *testing.T, ic *InterviewController, recruiter, applicant model.User, screen bool) model.Application {
	t.Helper()
	ctx := context.Background()
	owner := workflow.Caller{ID: recruiter.ID, Role: model.RoleRecruiter}

	job, err := ic.Workflow.PostJob(ctx, owner, workflow.JobInput{
		Title: "Interviewed role", Description: "desc", Requirements: "Golang", Location: "Remote",
	})
	require.NoError(t, err)

	file, err := filestore.New(testDB.DB, nil).Save(ctx, []byte("%PDF-1.4"), ".pdf", filestore.ResumePrefix)
	require.NoError(t, err)
	application, err := ic.Workflow.Submit(ctx, workflow.Caller{ID: applicant.ID, Role: model.RoleApplicant}, job.ID,
		workflow.ResumeInput{FileID: file.ID, StoredFilePath: filestore.Path(file), ExtractedText: "Golang"})
	require.NoError(t, err)

	if screen {
		application, err = ic.Workflow.Screen(ctx, owner, application.ID)
		require.NoError(t, err)
	}
	return application
}

// slot returns a date far from the slots used by other tests.
func slot(day int, offset time.Duration) time.Time {
	return time.Date(2030, 1, day, 10, 0, 0, 0, time.UTC).Add(offset)
}

func schedule(t *testing.T, r *gin.Engine, token string, applicationID uint, when time.Time, mode string) (int, map[string]interface{}) {
	t.Helper()
	body := gin.H{"application_id": applicationID, "interview_date": when}
	if mode != "" {
		body["mode"] = mode
	}
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/interviews/schedule", http.MethodPost)
	return rec.Code, resp
}

func TestSchedule_Success(t *testing.T) {
	ic := newController()
	r := newRouter(ic)
	application := screenedApplication(t, ic, database.TestUserRecruiter1, database.TestUserApplicant1, true)

	code, resp := schedule(t, r, tokenOf(t, database.TestUserRecruiter1), application.ID, slot(1, 0), "Phone")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Phone", resp["mode"])
	assert.Equal(t, "Scheduled", resp["status"])
	assert.Equal(t, database.TestUserRecruiter1.ID.String(), resp["recruiter_id"])

	var stored model.Application
	require.NoError(t, testDB.First(&stored, application.ID).Error)
	assert.Equal(t, model.ApplicationStatusInterviewScheduled, stored.Status)

	// the application moved on, booking it again is refused
	code, resp = schedule(t, r, tokenOf(t, database.TestUserRecruiter1), application.ID, slot(1, 5*time.Hour), "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "NOT_READY_FOR_INTERVIEW", resp["code"])
}

func TestSchedule_DefaultsToOnline(t *testing.T) {
	ic := newController()
	r := newRouter(ic)
	application := screenedApplication(t, ic, database.TestUserRecruiter2, database.TestUserApplicant1, true)

	code, resp := schedule(t, r, tokenOf(t, database.TestUserRecruiter2), application.ID, slot(2, 0), "")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Online", resp["mode"])
}

func TestSchedule_ConflictWindow(t *testing.T) {
	ic := newController()
	r := newRouter(ic)
	token := tokenOf(t, database.TestUserRecruiter1)

	first := screenedApplication(t, ic, database.TestUserRecruiter1, database.TestUserApplicant1, true)
	second := screenedApplication(t, ic, database.TestUserRecruiter1, database.TestUserApplicant2, true)

	code, _ := schedule(t, r, token, first.ID, slot(3, 0), "")
	require.Equal(t, http.StatusCreated, code)

	code, resp := schedule(t, r, token, second.ID, slot(3, 30*time.Minute), "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "SCHEDULING_CONFLICT", resp["code"])

	// the window is closed at exactly one hour
	code, resp = schedule(t, r, token, second.ID, slot(3, time.Hour), "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "SCHEDULING_CONFLICT", resp["code"])

	code, _ = schedule(t, r, token, second.ID, slot(3, time.Hour+time.Minute), "")
	assert.Equal(t, http.StatusCreated, code)
}

func TestSchedule_Rejections(t *testing.T) {
	ic := newController()
	r := newRouter(ic)
	token := tokenOf(t, database.TestUserRecruiter2)

	applied := screenedApplication(t, ic, database.TestUserRecruiter2, database.TestUserApplicant2, false)
	code, resp := schedule(t, r, token, applied.ID, slot(4, 0), "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "NOT_READY_FOR_INTERVIEW", resp["code"])

	screened := screenedApplication(t, ic, database.TestUserRecruiter2, database.TestUserApplicant2, true)
	code, resp = schedule(t, r, token, screened.ID, slot(4, 0), "Carrier pigeon")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", resp["code"])

	rec, resp := testutil.MakeJSONRequest(gin.H{"application_id": screened.ID}, token, r, "/interviews/schedule", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", resp["code"])

	code, resp = schedule(t, r, tokenOf(t, database.TestUserRecruiter1), screened.ID, slot(4, 0), "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "UNAUTHORIZED", resp["code"])

	code, resp = schedule(t, r, token, 999999, slot(4, 0), "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", resp["code"])

	code, _ = schedule(t, r, tokenOf(t, database.TestUserApplicant2), screened.ID, slot(4, 0), "")
	assert.Equal(t, http.StatusForbidden, code)
}

func TestListInterviews(t *testing.T) {
	ic := newController()
	r := newRouter(ic)
	application := screenedApplication(t, ic, database.TestUserRecruiter2, database.TestUserApplicant1, true)

	code, resp := schedule(t, r, tokenOf(t, database.TestUserRecruiter2), application.ID, slot(5, 0), "")
	require.Equal(t, http.StatusCreated, code)
	interviewID := resp["id"]

	rec, _ := testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserRecruiter2), r, "/interviews/my", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	found := false
	for _, item := range testutil.DecodeList(rec) {
		assert.Equal(t, database.TestUserRecruiter2.ID.String(), item["recruiter_id"])
		if item["id"] == interviewID {
			found = true
			assert.Equal(t, database.TestUserApplicant1.Email, item["applicant_email"])
			assert.Equal(t, "Interviewed role", item["job_title"])
		}
	}
	assert.True(t, found)

	endpoint := fmt.Sprintf("/interviews/application/%d", application.ID)
	for _, viewer := range []model.User{database.TestUserApplicant1, database.TestUserRecruiter2} {
		rec, _ := testutil.MakeJSONRequest(nil, tokenOf(t, viewer), r, endpoint, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code, viewer.Email)
		list := testutil.DecodeList(rec)
		require.Len(t, list, 1)
		assert.Equal(t, interviewID, list[0]["id"])
	}

	rec, _ = testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserApplicant2), r, endpoint, http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserApplicant1), r, "/interviews/application/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatus(t *testing.T) {
	ic := newController()
	r := newRouter(ic)
	owner := tokenOf(t, database.TestUserRecruiter1)
	application := screenedApplication(t, ic, database.TestUserRecruiter1, database.TestUserApplicant2, true)

	code, resp := schedule(t, r, owner, application.ID, slot(6, 0), "")
	require.Equal(t, http.StatusCreated, code)
	endpoint := fmt.Sprintf("/interviews/%d/status", uint(resp["id"].(float64)))

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "Scheduled"}, owner, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", resp["code"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "Completed"}, tokenOf(t, database.TestUserRecruiter2), r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", resp["code"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "Cancelled"}, owner, r, endpoint, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cancelled", resp["status"])

	// cancelling leaves the application where it was
	var stored model.Application
	require.NoError(t, testDB.First(&stored, application.ID).Error)
	assert.Equal(t, model.ApplicationStatusInterviewScheduled, stored.Status)

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "Completed"}, owner, r, "/interviews/999999/status", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", resp["code"])
}
