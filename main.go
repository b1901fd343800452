// File: serenemind/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serenemind/config"
	"serenemind/cron"
	"serenemind/database"
	appointmentRepoPkg "serenemind/database/repository/appointment"
	assessmentRepoPkg "serenemind/database/repository/assessment"
	journalRepoPkg "serenemind/database/repository/journal"
	moodRepoPkg "serenemind/database/repository/mood"
	therapistRepoPkg "serenemind/database/repository/therapist"
	userRepoPkg "serenemind/database/repository/user"
	"serenemind/handlers"
	"serenemind/middleware"
	"serenemind/routes"
	"serenemind/services/assessment"
	"serenemind/services/journal"
	"serenemind/services/mood"
	"serenemind/services/notification"
	"serenemind/services/scheduling"
	"serenemind/services/selfcare"
	"serenemind/services/storage"
	"serenemind/services/tasks"
	"serenemind/services/therapist"
	"serenemind/services/user"
	"serenemind/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	therapistRepo := therapistRepoPkg.NewMongoTherapistRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	journalRepo := journalRepoPkg.NewMongoJournalRepo()
	moodRepo := moodRepoPkg.NewMongoMoodRepo()
	assessmentRepo := assessmentRepoPkg.NewMongoAssessmentRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	therapistService := &therapist.DefaultTherapistService{Repo: therapistRepo}

	notificationService := &notification.DefaultNotificationService{UserRepo: userRepo}

	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:          appointmentRepo,
		TherapistRepo: therapistRepo,
		Reminders:     &tasks.AsynqReminderScheduler{Client: reminderQueue},
	}

	var storageService storage.StorageService
	if config.AppConfig.CloudinaryURL != "" {
		var err error
		storageService, err = storage.NewCloudinaryStorageService(config.AppConfig.CloudinaryURL)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
		}
	}
	journalService := &journal.DefaultJournalService{Repo: journalRepo, Storage: storageService}

	moodService := &mood.DefaultMoodService{Repo: moodRepo}
	if config.AppConfig.GeminiAPIKey != "" {
		insights, err := mood.NewGeminiInsightGenerator(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Errorf("main: failed to initialize insight generator: %v", err)
		} else {
			moodService.Insights = insights
		}
	}

	assessmentService := &assessment.DefaultAssessmentService{Repo: assessmentRepo}

	catalogCache := selfcare.NewCatalogCache(
		config.AppConfig.CatalogPath,
		config.AppConfig.CatalogAdviceColumn,
		time.Duration(config.AppConfig.CatalogTTLMinutes)*time.Minute,
		nil,
	)
	selfCareService := &selfcare.DefaultSelfCareService{
		Catalog:      catalogCache,
		CacheClient:  utils.GetCacheClient(),
		AdviceColumn: config.AppConfig.CatalogAdviceColumn,
	}

	// Background workers: reminders, appointment completion, health checks.
	cron.InitReminderWorker(notificationService)
	cron.StartCompletionSweep(schedulingService)
	utils.StartHealthMonitor(utils.HealthDeps{
		Mongo: database.MongoClient,
		Cache: utils.GetCacheClient(),
		Auth:  utils.GetAuthCacheClient(),
		Catalog: func() utils.CatalogStatus {
			rows, loadedAt := catalogCache.Status()
			return utils.CatalogStatus{Rows: rows, LoadedAt: loadedAt}
		},
	})

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, &routes.Handlers{
		Auth:       handlers.NewAuthHandler(userService),
		User:       handlers.NewUserHandler(userService),
		Therapist:  handlers.NewTherapistHandler(therapistService),
		Scheduling: handlers.NewSchedulingHandler(schedulingService),
		Journal:    handlers.NewJournalHandler(journalService),
		Mood:       handlers.NewMoodHandler(moodService),
		Assessment: handlers.NewAssessmentHandler(assessmentService),
		SelfCare:   handlers.NewSelfCareHandler(selfCareService),
	}, userService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
