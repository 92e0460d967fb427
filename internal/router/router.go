package router

import (
	"time"

	"github.com/Aditya122221/ElevateAI-sub001/internal/handlers"
	"github.com/Aditya122221/ElevateAI-sub001/internal/services"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(429, gin.H{"message": "Too many requests. Try again later."})
}

// Setup wires middleware, handlers and routes into a gin engine.
func Setup(log *zap.Logger, aiService *services.AIService, models services.ModelLister, emailService *services.EmailService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	// Handlers
	authHandler := handlers.NewAuthHandler(log, emailService)
	testHandler := handlers.NewTestHandler(log)
	certificateHandler := handlers.NewCertificateHandler(log)
	profileHandler := handlers.NewProfileHandler(log)
	aiHandler := handlers.NewAIHandler(log, aiService, models)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")

	// Public routes
	api.POST("/auth/register", limiter, authHandler.Register)
	api.POST("/auth/login", limiter, authHandler.Login)
	api.POST("/auth/forgot-password", limiter, authHandler.ForgotPassword)
	api.POST("/auth/reset-password/:token", limiter, authHandler.ResetPassword)
	api.GET("/tests", testHandler.List)
	api.GET("/tests/:id", testHandler.Get)
	api.GET("/certificates", certificateHandler.List)
	api.GET("/certificates/categories/list", certificateHandler.Categories)
	api.GET("/certificates/:id", certificateHandler.Get)
	api.GET("/ai/health", aiHandler.Health)

	authorized := api.Group("/")
	authorized.Use(AuthRequired())
	{
		authorized.GET("/auth/me", authHandler.Me)

		testRoutes := authorized.Group("/tests")
		{
			testRoutes.GET("/user/results", testHandler.UserResults)
			testRoutes.POST("/:id/start", testHandler.Start)
			testRoutes.POST("/:id/submit", testHandler.Submit)
			testRoutes.GET("/:id/results", testHandler.TestResults)
		}

		profileRoutes := authorized.Group("/profile")
		{
			profileRoutes.GET("/basic-details", profileHandler.GetBasicDetails)
			profileRoutes.POST("/basic-details", profileHandler.SaveBasicDetails)
			profileRoutes.GET("/skills", profileHandler.GetSkills)
			profileRoutes.POST("/skills", profileHandler.SaveSkills)
			profileRoutes.GET("/projects", profileHandler.GetProjects)
			profileRoutes.POST("/projects", profileHandler.SaveProjects)
			profileRoutes.GET("/certifications", profileHandler.GetCertifications)
			profileRoutes.POST("/certifications", profileHandler.SaveCertifications)
			profileRoutes.GET("/experience", profileHandler.GetExperience)
			profileRoutes.POST("/experience", profileHandler.SaveExperience)
			profileRoutes.GET("/job-roles", profileHandler.GetJobRoles)
			profileRoutes.POST("/job-roles", profileHandler.SaveJobRoles)
			profileRoutes.POST("/complete", profileHandler.Complete)
		}

		authorized.POST("/certificates/:id/reviews", certificateHandler.AddReview)

		aiRoutes := authorized.Group("/ai")
		{
			aiRoutes.POST("/analyze-profile", aiHandler.AnalyzeProfile)
			aiRoutes.POST("/generate-test-questions", aiHandler.GenerateTestQuestions)
			aiRoutes.POST("/career-advice", aiHandler.CareerAdvice)
			aiRoutes.GET("/recommendations/certificates", aiHandler.RecommendCertificates)
			aiRoutes.GET("/recommendations/tests", aiHandler.RecommendTests)
		}

		admin := authorized.Group("/tests")
		admin.Use(AdminRequired())
		{
			admin.POST("", testHandler.Create)
			admin.PUT("/:id", testHandler.Update)
			admin.DELETE("/:id", testHandler.Delete)
		}

		adminCertificates := authorized.Group("/certificates")
		adminCertificates.Use(AdminRequired())
		{
			adminCertificates.POST("", certificateHandler.Create)
			adminCertificates.PUT("/:id", certificateHandler.Update)
			adminCertificates.DELETE("/:id", certificateHandler.Delete)
		}
	}

	return router
}
