package application

import (
	"bytes"
	"context"
	"errors"
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
	"ats-backend/internal/resume"
	"ats-backend/internal/store/gormstore"
	"ats-backend/internal/testutil"
	"ats-backend/internal/workflow"
)

var (
	testDB     *database.DBinstanceStruct
	testTokens = auth.NewTokenService("application-secret", time.Hour)
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

// pdfWithText builds a one page PDF showing text.
func pdfWithText(text string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

type failingExtractor struct{}

func (failingExtractor) ExtractText(context.Context, []byte) (string, error) {
	return "", errors.New("unreadable")
}

func newController(extractor resume.Extractor, maxBytes int64) *ApplicationController {
	queries := gormstore.New(testDB.DB)
	return NewApplicationController(
		queries,
		workflow.NewCoordinator(queries, nil, nil),
		filestore.New(testDB.DB, nil),
		extractor,
		maxBytes,
		nil,
	)
}

func newRouter(ac *ApplicationController) *gin.Engine {
	r := gin.New()
	requireAuth := middleware.RequireAuth(testDB, testTokens, blacklist)
	recruiterOnly := middleware.CheckRole(model.RoleRecruiter)
	applicantOnly := middleware.CheckRole(model.RoleApplicant)

	r.POST("/applications/apply/:jobId", requireAuth, applicantOnly, ac.Apply)
	r.GET("/applications/my", requireAuth, applicantOnly, ac.ListMyApplications)
	r.GET("/applications/job/:jobId", requireAuth, recruiterOnly, ac.ListJobApplications)
	r.GET("/applications/:id/resume", requireAuth, ac.GetResume)
	r.PATCH("/applications/:id/screen", requireAuth, recruiterOnly, ac.Screen)
	r.PATCH("/applications/:id/shortlist", requireAuth, recruiterOnly, ac.Shortlist)
	r.PATCH("/applications/:id/reject", requireAuth, recruiterOnly, ac.Reject)
	return r
}

func tokenOf(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, testTokens, user.Email, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func postJob(t *testing.T, ac *ApplicationController, recruiter model.User, requirements string) model.Job {
	t.Helper()
	job, err := ac.Workflow.PostJob(context.Background(),
		workflow.Caller{ID: recruiter.ID, Role: model.RoleRecruiter},
		workflow.JobInput{Title: "Job " + requirements, Description: "desc", Requirements: requirements, Location: "Remote"},
	)
	require.NoError(t, err)
	return job
}

func apply(t *testing.T, r *gin.Engine, applicant model.User, jobID uint, content []byte) (int, map[string]interface{}) {
	t.Helper()
	rec, resp := testutil.MakeMultipartRequest(tokenOf(t, applicant), r, fmt.Sprintf("/applications/apply/%d", jobID), "resume", "cv.pdf", content)
	return rec.Code, resp
}

func countFiles(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, testDB.Model(&model.File{}).Count(&n).Error)
	return n
}

func TestApply_ScoresResume(t *testing.T) {
	ac := newController(resume.PDFExtractor{}, 0)
	r := newRouter(ac)
	job := postJob(t, ac, database.TestUserRecruiter1, "Golang PostgreSQL Docker Kubernetes")

	code, resp := apply(t, r, database.TestUserApplicant1, job.ID, pdfWithText("Golang PostgreSQL Docker"))
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, string(model.ApplicationStatusApplied), resp["status"])
	assert.Equal(t, float64(75), resp["screening_score"])
	assert.Equal(t, float64(job.ID), resp["job_id"])
	assert.Equal(t, database.TestUserApplicant1.ID.String(), resp["applicant_id"])

	var stored model.Resume
	require.NoError(t, testDB.First(&stored, uint(resp["resume_id"].(float64))).Error)
	assert.Contains(t, stored.ExtractedText, "Golang PostgreSQL Docker")
	assert.NotEmpty(t, stored.StoredFilePath)
}

func TestApply_UnreadableResumeScoresZero(t *testing.T) {
	ac := newController(failingExtractor{}, 0)
	r := newRouter(ac)
	job := postJob(t, ac, database.TestUserRecruiter1, "Golang")

	code, resp := apply(t, r, database.TestUserApplicant1, job.ID, pdfWithText("Golang"))
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(0), resp["screening_score"])
}

func TestApply_Duplicate(t *testing.T) {
	ac := newController(resume.PDFExtractor{}, 0)
	r := newRouter(ac)
	job := postJob(t, ac, database.TestUserRecruiter1, "Rust")

	code, _ := apply(t, r, database.TestUserApplicant2, job.ID, pdfWithText("Rust"))
	require.Equal(t, http.StatusCreated, code)

	before := countFiles(t)
	code, resp := apply(t, r, database.TestUserApplicant2, job.ID, pdfWithText("Rust"))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "DUPLICATE_APPLICATION", resp["code"])
	assert.Equal(t, before, countFiles(t))
}

func TestApply_ClosedAndMissingJob(t *testing.T) {
	r := newRouter(newController(resume.PDFExtractor{}, 0))

	before := countFiles(t)
	code, resp := apply(t, r, database.TestUserApplicant1, database.TestJob2.ID, pdfWithText("SQL"))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "JOB_CLOSED", resp["code"])

	code, resp = apply(t, r, database.TestUserApplicant1, 999999, pdfWithText("SQL"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", resp["code"])
	assert.Equal(t, before, countFiles(t))
}

func TestApply_RejectsBadFiles(t *testing.T) {
	ac := newController(resume.PDFExtractor{}, 1024)
	r := newRouter(ac)
	job := postJob(t, ac, database.TestUserRecruiter2, "Python")
	endpoint := fmt.Sprintf("/applications/apply/%d", job.ID)
	token := tokenOf(t, database.TestUserApplicant1)

	rec, _ := testutil.MakeMultipartRequest(token, r, endpoint, "resume", "cv.docx", []byte("PK\x03\x04"))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec, _ = testutil.MakeMultipartRequest(token, r, endpoint, "resume", "cv.pdf", []byte("not a pdf at all"))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec, _ = testutil.MakeMultipartRequest(token, r, endpoint, "resume", "cv.pdf", append([]byte("%PDF-1.4\n"), make([]byte, 2048)...))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec, resp := testutil.MakeMultipartRequest(token, r, endpoint, "cv", "cv.pdf", pdfWithText("Python"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", resp["code"])

	rec, _ = testutil.MakeMultipartRequest(tokenOf(t, database.TestUserRecruiter1), r, endpoint, "resume", "cv.pdf", pdfWithText("Python"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListApplications(t *testing.T) {
	ac := newController(resume.PDFExtractor{}, 0)
	r := newRouter(ac)
	job := postJob(t, ac, database.TestUserRecruiter2, "Kotlin Android Gradle Compose")

	code, _ := apply(t, r, database.TestUserApplicant1, job.ID, pdfWithText("Kotlin"))
	require.Equal(t, http.StatusCreated, code)
	code, _ = apply(t, r, database.TestUserApplicant2, job.ID, pdfWithText("Kotlin Android Gradle"))
	require.Equal(t, http.StatusCreated, code)

	rec, _ := testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserRecruiter2), r, fmt.Sprintf("/applications/job/%d", job.ID), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	list := testutil.DecodeList(rec)
	require.Len(t, list, 2)
	assert.Equal(t, database.TestUserApplicant2.Email, list[0]["applicant_email"])
	assert.Equal(t, float64(75), list[0]["screening_score"])
	assert.Equal(t, float64(25), list[1]["screening_score"])

	rec, resp := testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserRecruiter1), r, fmt.Sprintf("/applications/job/%d", job.ID), http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", resp["code"])

	rec, _ = testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserRecruiter2), r, "/applications/job/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserApplicant1), r, "/applications/my", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	found := false
	for _, item := range testutil.DecodeList(rec) {
		assert.Equal(t, database.TestUserApplicant1.ID.String(), item["applicant_id"])
		if item["job_id"] == float64(job.ID) {
			found = true
			assert.Equal(t, job.Title, item["job_title"])
		}
	}
	assert.True(t, found)
}

func TestGetResume(t *testing.T) {
	ac := newController(resume.PDFExtractor{}, 0)
	r := newRouter(ac)
	job := postJob(t, ac, database.TestUserRecruiter1, "Scala")
	content := pdfWithText("Scala")

	code, resp := apply(t, r, database.TestUserApplicant1, job.ID, content)
	require.Equal(t, http.StatusCreated, code)
	endpoint := fmt.Sprintf("/applications/%d/resume", uint(resp["id"].(float64)))

	for _, viewer := range []model.User{database.TestUserApplicant1, database.TestUserRecruiter1} {
		rec, _ := testutil.MakeJSONRequest(nil, tokenOf(t, viewer), r, endpoint, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code, viewer.Email)
		assert.Equal(t, content, rec.Body.Bytes())
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	}

	for _, outsider := range []model.User{database.TestUserApplicant2, database.TestUserRecruiter2} {
		rec, resp := testutil.MakeJSONRequest(nil, tokenOf(t, outsider), r, endpoint, http.MethodGet)
		assert.Equal(t, http.StatusForbidden, rec.Code, outsider.Email)
		assert.Equal(t, "UNAUTHORIZED", resp["code"])
	}

	rec, _ := testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserRecruiter1), r, "/applications/999999/resume", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransitions(t *testing.T) {
	ac := newController(resume.PDFExtractor{}, 0)
	r := newRouter(ac)
	job := postJob(t, ac, database.TestUserRecruiter1, "Elixir")

	code, resp := apply(t, r, database.TestUserApplicant2, job.ID, pdfWithText("Elixir"))
	require.Equal(t, http.StatusCreated, code)
	id := uint(resp["id"].(float64))
	owner := tokenOf(t, database.TestUserRecruiter1)

	rec, resp := testutil.MakeJSONRequest(nil, owner, r, fmt.Sprintf("/applications/%d/screen", id), http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Screened", resp["status"])

	rec, resp = testutil.MakeJSONRequest(nil, owner, r, fmt.Sprintf("/applications/%d/screen", id), http.MethodPatch)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", resp["code"])

	rec, resp = testutil.MakeJSONRequest(nil, tokenOf(t, database.TestUserRecruiter2), r, fmt.Sprintf("/applications/%d/shortlist", id), http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", resp["code"])

	rec, resp = testutil.MakeJSONRequest(nil, owner, r, fmt.Sprintf("/applications/%d/shortlist", id), http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Shortlisted", resp["status"])

	rec, resp = testutil.MakeJSONRequest(nil, owner, r, fmt.Sprintf("/applications/%d/reject", id), http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rejected", resp["status"])

	rec, resp = testutil.MakeJSONRequest(nil, owner, r, fmt.Sprintf("/applications/%d/reject", id), http.MethodPatch)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", resp["code"])

	rec, resp = testutil.MakeJSONRequest(nil, owner, r, "/applications/999999/screen", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", resp["code"])
}
