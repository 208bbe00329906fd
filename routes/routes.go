package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"literacy_app_backend/auth"
	"literacy_app_backend/handlers"
	"literacy_app_backend/middleware"
	"literacy_app_backend/quiz"
	"literacy_app_backend/store"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB, st store.Store, authService *auth.Service, quizService *quiz.Service, log *zap.Logger, secureCookies bool) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, log, secureCookies)
	moduleHandler := handlers.NewModuleHandler(st, log)
	quizHandler := handlers.NewQuizHandler(quizService, log)
	progressHandler := handlers.NewProgressHandler(st, log)
	healthHandler := handlers.NewHealthHandler(db)

	r.GET("/health", healthHandler.HealthCheck)

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/verify-email", authHandler.VerifyEmail)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/reset-password", authHandler.ResetPassword)
	api.GET("/modules", moduleHandler.GetModules)
	api.GET("/modules/:id", moduleHandler.GetModuleByID)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(authService, log))
	{
		protected.GET("/auth/user", authHandler.GetCurrentUser)

		protected.GET("/modules/:id/questions", moduleHandler.GetModuleQuestions)

		protected.GET("/progress", progressHandler.GetProgress)
		protected.POST("/progress/:moduleId/content-completed", progressHandler.MarkContentCompleted)
		protected.GET("/results", progressHandler.GetResults)

		protected.POST("/quiz/submit", quizHandler.SubmitQuiz)
	}
}
