package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Init swagger doc
	_ "ats-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ats-backend/internal/auth"
	"ats-backend/internal/controller/application"
	"ats-backend/internal/controller/interview"
	"ats-backend/internal/controller/job"
	"ats-backend/internal/controller/offer"
	"ats-backend/internal/controller/profile"
	"ats-backend/internal/middleware"
	"ats-backend/internal/model"
	"ats-backend/internal/resume"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	lAuth := auth.NewLocalAuthHandler(s.DB, s.Tokens, s.Log)
	logout := auth.NewLogoutController(s.Blacklist, s.Log)
	jobs := job.NewJobController(s.Queries, s.Workflow)
	applications := application.NewApplicationController(
		s.Queries, s.Workflow, s.Files, resume.PDFExtractor{}, s.Config.MaxResumeUploadBytes, s.Log,
	)
	interviews := interview.NewInterviewController(s.Queries, s.Workflow)
	offers := offer.NewOfferController(s.Queries, s.Workflow)
	profiles := profile.NewProfileController(s.DB)

	requireAuth := middleware.RequireAuth(s.DB, s.Tokens, s.Blacklist)
	optionalAuth := middleware.OptionalAuth(s.DB, s.Tokens, s.Blacklist)
	limit := middleware.RateLimiter(s.RateLimit)
	recruiterOnly := middleware.CheckRole(model.RoleRecruiter)
	applicantOnly := middleware.CheckRole(model.RoleApplicant)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.Config.AllowOrigin,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Disposition", "Retry-After"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth", limit)
		{
			authRoute.POST("register", lAuth.RegisterHandler)
			authRoute.POST("login", lAuth.LoginHandler)
			authRoute.POST("logout", requireAuth, logout.LogoutHandler)
		}

		// anonymous visitors see every active job, applicants only those they have not applied to
		v1.GET("/jobs", optionalAuth, limit, jobs.ListActiveJobs)

		needAuth := v1.Group("", requireAuth, limit)
		{
			needAuth.GET("/profile", profiles.GetProfile)
			needAuth.PUT("/profile", profiles.UpdateProfile)

			jobRoute := needAuth.Group("/jobs")
			{
				jobRoute.GET("/:id", jobs.GetJob)
				jobRoute.GET("/my", recruiterOnly, jobs.ListMyJobs)
				jobRoute.POST("", recruiterOnly, jobs.CreateJob)
				jobRoute.PATCH("/:id/status", recruiterOnly, jobs.UpdateStatus)
			}

			applicationRoute := needAuth.Group("/applications")
			{
				applicationRoute.POST("/apply/:jobId", applicantOnly,
					middleware.SizeLimit(s.Config.MaxResumeUploadBytes), applications.Apply)
				applicationRoute.GET("/my", applicantOnly, applications.ListMyApplications)
				applicationRoute.GET("/job/:jobId", recruiterOnly, applications.ListJobApplications)
				applicationRoute.GET("/:id/resume", applications.GetResume)
				applicationRoute.PATCH("/:id/screen", recruiterOnly, applications.Screen)
				applicationRoute.PATCH("/:id/shortlist", recruiterOnly, applications.Shortlist)
				applicationRoute.PATCH("/:id/reject", recruiterOnly, applications.Reject)
			}

			interviewRoute := needAuth.Group("/interviews")
			{
				interviewRoute.GET("/application/:applicationId", interviews.ListByApplication)
				interviewRoute.Use(recruiterOnly)
				interviewRoute.POST("/schedule", interviews.Schedule)
				interviewRoute.GET("/my", interviews.ListMyInterviews)
				interviewRoute.PATCH("/:id/status", interviews.UpdateStatus)
			}

			offerRoute := needAuth.Group("/offers")
			{
				offerRoute.GET("/application/:applicationId", offers.GetByApplication)
				offerRoute.POST("/generate", recruiterOnly, offers.Generate)
				offerRoute.PATCH("/:id/respond", applicantOnly, offers.Respond)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "ATS backend is running"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	stats := s.DB.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
