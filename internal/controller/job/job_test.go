package job

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
	testTokens = auth.NewTokenService("job-secret", time.Hour)
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

func newController() *JobController {
	queries := gormstore.New(testDB.DB)
	return NewJobController(queries, workflow.NewCoordinator(queries, nil, nil))
}

func newRouter(jc *JobController) *gin.Engine {
	r := gin.New()
	requireAuth := middleware.RequireAuth(testDB, testTokens, blacklist)
	recruiterOnly := middleware.CheckRole(model.RoleRecruiter)

	r.GET("/jobs", middleware.OptionalAuth(testDB, testTokens, blacklist), jc.ListActiveJobs)
	r.GET("/jobs/my", requireAuth, recruiterOnly, jc.ListMyJobs)
	r.GET("/jobs/:id", requireAuth, jc.GetJob)
	r.POST("/jobs", requireAuth, recruiterOnly, jc.CreateJob)
	r.PATCH("/jobs/:id/status", requireAuth, recruiterOnly, jc.UpdateStatus)
	return r
}

func tokenOf(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, testTokens, user.Email, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func ids(list []map[string]interface{}) []float64 {
	out := []float64{}
	for _, item := range list {
		out = append(out, item["id"].(float64))
	}
	return out
}

func TestListActiveJobs_Anonymous(t *testing.T) {
	r := newRouter(newController())

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	list := testutil.DecodeList(rec)
	assert.Contains(t, ids(list), float64(database.TestJob1.ID))
	assert.Contains(t, ids(list), float64(database.TestJob3.ID))
	assert.NotContains(t, ids(list), float64(database.TestJob2.ID))

	for _, item := range list {
		if item["id"] == float64(database.TestJob1.ID) {
			assert.Equal(t, database.TestRecruiter1.Organization, item["organization"])
			assert.Equal(t, database.TestUserRecruiter1.Name, item["recruiter_name"])
		}
	}
}

func TestListActiveJobs_HidesAppliedJobs(t *testing.T) {
	ctx := context.Background()
	jc := newController()
	r := newRouter(jc)

	recruiter := workflow.Caller{ID: database.TestUserRecruiter2.ID, Role: model.RoleRecruiter}
	applicant := workflow.Caller{ID: database.TestUserApplicant2.ID, Role: model.RoleApplicant}

	job, err := jc.Workflow.PostJob(ctx, recruiter, workflow.JobInput{
		Title: "QA Engineer", Description: "Test things", Requirements: "Selenium Cypress", Location: "Remote",
	})
	require.NoError(t, err)

	token := tokenOf(t, database.TestUserApplicant2)
	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, ids(testutil.DecodeList(rec)), float64(job.ID))

	file, err := filestore.New(testDB.DB, nil).Save(ctx, []byte("%PDF-1.4"), ".pdf", filestore.ResumePrefix)
	require.NoError(t, err)
	_, err = jc.Workflow.Submit(ctx, applicant, job.ID, workflow.ResumeInput{
		FileID: file.ID, StoredFilePath: filestore.Path(file), ExtractedText: "Cypress",
	})
	require.NoError(t, err)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/jobs", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, ids(testutil.DecodeList(rec)), float64(job.ID))

	// other callers still see it
	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/jobs", http.MethodGet)
	assert.Contains(t, ids(testutil.DecodeList(rec)), float64(job.ID))
}

func TestListMyJobs(t *testing.T) {
	r := newRouter(newController())

	rec, _ := testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserRecruiter1), r, "/jobs/my", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	got := ids(testutil.DecodeList(rec))
	assert.Contains(t, got, float64(database.TestJob1.ID))
	assert.Contains(t, got, float64(database.TestJob2.ID))
	assert.NotContains(t, got, float64(database.TestJob3.ID))

	rec, _ = testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserApplicant1), r, "/jobs/my", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetJob(t *testing.T) {
	r := newRouter(newController())
	token := tokenOf(t, database.TestUserApplicant1)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, fmt.Sprintf("/jobs/%d", database.TestJob1.ID), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestJob1.Title, resp["title"])
	assert.Equal(t, database.TestJob1.Requirements, resp["requirements"])

	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/jobs/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", resp["code"])

	rec, resp = testutil.MakeJSONRequest(nil, token, r, "/jobs/abc", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", resp["code"])

	rec, _ = testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/jobs/%d", database.TestJob1.ID), http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateJob(t *testing.T) {
	r := newRouter(newController())
	body := gin.H{
		"title":        "Platform Engineer",
		"description":  "Run the platform",
		"requirements": "Terraform Kubernetes",
		"location":     "Bangkok",
	}

	rec, resp := testutil.MakeJSONRequest(body, tokenOf(t, database.TestUserRecruiter1), r, "/jobs", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Platform Engineer", resp["title"])
	assert.Equal(t, string(model.JobStatusActive), resp["status"])
	assert.Equal(t, database.TestUserRecruiter1.ID.String(), resp["recruiter_id"])

	rec, _ = testutil.MakeJSONRequest(body, tokenOf(t, database.TestUserApplicant1), r, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateJob_MissingFields(t *testing.T) {
	r := newRouter(newController())
	token := tokenOf(t, database.TestUserRecruiter1)

	rec, resp := testutil.MakeJSONRequest(gin.H{"title": "Only title"}, token, r, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", resp["code"])

	// whitespace is not content
	rec, resp = testutil.MakeJSONRequest(gin.H{
		"title": "   ", "description": "d", "requirements": "r", "location": "l",
	}, token, r, "/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", resp["code"])
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	jc := newController()
	r := newRouter(jc)

	job, err := jc.Workflow.PostJob(ctx, workflow.Caller{ID: database.TestUserRecruiter1.ID, Role: model.RoleRecruiter}, workflow.JobInput{
		Title: "SRE", Description: "Keep it up", Requirements: "Linux Prometheus", Location: "Remote",
	})
	require.NoError(t, err)
	endpoint := fmt.Sprintf("/jobs/%d/status", job.ID)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "closed"}, tokenOf(t, database.TestUserRecruiter1), r, endpoint, http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "closed", resp["status"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "archived"}, tokenOf(t, database.TestUserRecruiter1), r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", resp["code"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "active"}, tokenOf(t, database.TestUserRecruiter2), r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", resp["code"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "active"}, tokenOf(t, database.TestUserRecruiter1), r, "/jobs/999999/status", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", resp["code"])
}
