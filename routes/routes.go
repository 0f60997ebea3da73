package routes

import (
	"database/sql"

	"autoskola_dashboard/datasource"
	"autoskola_dashboard/handlers"
	"autoskola_dashboard/middleware"
	"autoskola_dashboard/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB, src datasource.Source, store storage.ReportStore, jwtSecret []byte) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, jwtSecret)
	healthHandler := handlers.NewHealthHandler(db, src)
	candidateHandler := handlers.NewCandidateHandler(src)
	instructorHandler := handlers.NewInstructorHandler(src)
	examHandler := handlers.NewExamHandler(src)
	paymentHandler := handlers.NewPaymentHandler(src)
	resultHandler := handlers.NewResultHandler(src)
	statsHandler := handlers.NewStatsHandler(src)
	documentHandler := handlers.NewDocumentHandler(src, store)
	reportHandler := handlers.NewReportHandler(store)

	// Public routes
	r.GET("/health", healthHandler.HealthCheck)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(db, jwtSecret))
	{
		// Candidate routes
		protected.GET("/candidates", candidateHandler.GetCandidates)
		protected.GET("/candidates/:id", candidateHandler.GetCandidateByID)
		protected.GET("/candidates/:id/payments/progress", statsHandler.GetCandidatePaymentProgress)

		// Instructor and vehicle routes
		protected.GET("/instructors", instructorHandler.GetInstructors)
		protected.GET("/instructors/:id", instructorHandler.GetInstructorByID)
		protected.GET("/vehicles", instructorHandler.GetVehicles)

		// Exam session routes
		protected.GET("/exams", examHandler.GetExamSessions)
		protected.GET("/exams/:id", examHandler.GetExamSessionByID)

		// Payment routes
		protected.GET("/payments", paymentHandler.GetPayments)

		// Test result routes
		protected.GET("/results", resultHandler.GetTestResults)

		// Statistics routes
		protected.GET("/dashboard", statsHandler.GetDashboard)
		protected.GET("/stats/results", statsHandler.GetResultStats)
		protected.GET("/stats/payments", statsHandler.GetPaymentStats)

		// Document generation routes
		protected.POST("/documents/driving-log", documentHandler.GenerateDrivingLog)
		protected.POST("/documents/registration", documentHandler.GenerateRegistration)

		// Daily report routes
		protected.GET("/reports", reportHandler.GetReports)
		protected.GET("/reports/:id", reportHandler.GetReportByID)

		// Logout route
		protected.POST("/logout", authHandler.Logout)
	}
}
