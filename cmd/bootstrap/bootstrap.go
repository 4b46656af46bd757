package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medimind-portal/config"
	deliveryHttp "medimind-portal/internal/delivery/http"
	"medimind-portal/internal/delivery/http/handler"
	"medimind-portal/internal/delivery/http/middleware"
	"medimind-portal/internal/infrastructure/cache"
	"medimind-portal/internal/infrastructure/database"
	"medimind-portal/internal/infrastructure/llm"
	"medimind-portal/internal/repository"
	"medimind-portal/internal/service"
	"medimind-portal/internal/usecase"
	"medimind-portal/pkg/jwt"
	"medimind-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Run schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	recordRepo := repository.NewPatientRecordRepository()
	instructionRepo := repository.NewAiInstructionRepository()
	chatRepo := repository.NewChatMessageRepository()
	diagnosisRepo := repository.NewDiagnosisRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reminderRepo := repository.NewPillReminderRepository()
	documentRepo := repository.NewPatientDocumentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	chatLimiter := service.NewChatLimitService(redisClient, log, cfg.Assistant.DailyMessageCap)
	llmClient := llm.NewOpenAIClient(cfg.OpenAI)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, doctorProfileRepo, recordRepo, jwtService, redisClient)
	recordUsecase := usecase.NewPatientRecordUsecase(db, log, recordRepo, auditService)
	instructionUsecase := usecase.NewAiInstructionUsecase(db, log, instructionRepo, auditService)
	chatUsecase := usecase.NewPatientChatUsecase(db, log, recordRepo, instructionRepo, chatRepo, llmClient, cfg.Assistant)
	diagnosisUsecase := usecase.NewDiagnosisUsecase(db, log, diagnosisRepo, recordRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorProfileRepo, recordRepo)
	reminderUsecase := usecase.NewPillReminderUsecase(db, log, reminderRepo)
	documentUsecase := usecase.NewPatientDocumentUsecase(db, log, documentRepo, recordRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorProfileRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	recordHandler := handler.NewPatientRecordHandler(recordUsecase, customValidator)
	instructionHandler := handler.NewAiInstructionHandler(instructionUsecase, customValidator)
	chatHandler := handler.NewChatHandler(chatUsecase, authUsecase, chatLimiter, customValidator)
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	reminderHandler := handler.NewPillReminderHandler(reminderUsecase, customValidator)
	documentHandler := handler.NewPatientDocumentHandler(documentUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		recordHandler,
		diagnosisHandler,
		documentHandler,
		instructionHandler,
		chatHandler,
		appointmentHandler,
		reminderHandler,
		doctorHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
