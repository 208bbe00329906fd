package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"literacy_app_backend/auth"
	"literacy_app_backend/config"
	"literacy_app_backend/db"
	"literacy_app_backend/email"
	"literacy_app_backend/quiz"
	"literacy_app_backend/routes"
	"literacy_app_backend/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found") // Non-fatal in production
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	database, err := db.Initialize(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer database.Close()

	// Initialize database schema and seed the course catalog
	if err := db.InitSchema(database); err != nil {
		logger.Fatal("error initializing database schema", zap.Error(err))
	}
	if err := db.SeedData(database); err != nil {
		logger.Fatal("error seeding catalog", zap.Error(err))
	}

	st := store.NewPostgresStore(database)

	mailer := newMailer(cfg, logger)

	authService := auth.NewService(st, mailer, logger, auth.Config{
		RequireVerifiedEmail: cfg.RequireVerifiedEmail,
		SessionTTL:           cfg.SessionTTL,
		BaseURL:              cfg.BaseURL,
	})
	quizService := quiz.NewService(st, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Cookie-carrying requests need explicit origins, not a wildcard
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.BaseURL}
	if !cfg.IsProduction() {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins,
			"http://localhost:3000", "http://localhost:5173")
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}
	r.Use(cors.New(corsConfig))

	routes.SetupRoutes(r, database, st, authService, quizService, logger, cfg.IsProduction())

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newMailer picks SMTP when a host is configured, otherwise logs messages.
func newMailer(cfg *config.Config, logger *zap.Logger) email.Sender {
	if cfg.SMTPHost == "" {
		return email.NewLogSender(logger)
	}
	sender, err := email.NewSMTPSender(email.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	})
	if err != nil {
		logger.Warn("invalid SMTP configuration, falling back to log sender", zap.Error(err))
		return email.NewLogSender(logger)
	}
	return sender
}
