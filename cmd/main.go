package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Wallabies/config"
	"github.com/lshigami/Wallabies/database"
	_ "github.com/lshigami/Wallabies/docs"
	"github.com/lshigami/Wallabies/internal/controller"
	"github.com/lshigami/Wallabies/internal/logger"
	"github.com/lshigami/Wallabies/internal/model"
	"github.com/lshigami/Wallabies/internal/repository"
	"github.com/lshigami/Wallabies/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Student Assessment & Learning Analytics API
// @version 1.0
// @description API for student assessments, class analytics, risk triage, and AI learning recommendations.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewStudentRepository,
			repository.NewAnalyticsRepository,
			repository.NewTeachingMethodRepository,
		),

		fx.Provide(
			service.NewStudentService,
			service.NewAnalyticsService,
			service.NewGeminiLLMService,
			service.NewRecommendationService,
			service.NewLearningStyleService,
			service.NewTeachingMethodService,
		),

		fx.Provide(
			controller.NewStudentController,
			controller.NewAnalyticsController,
			controller.NewRecommendationController,
			controller.NewLearningStyleController,
			controller.NewTeachingMethodController,
			controller.NewGeminiProxyController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "x-goog-api-key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	studentCtrl *controller.StudentController,
	analyticsCtrl *controller.AnalyticsController,
	recommendationCtrl *controller.RecommendationController,
	learningStyleCtrl *controller.LearningStyleController,
	teachingMethodCtrl *controller.TeachingMethodController,
	geminiProxyCtrl *controller.GeminiProxyController,
) {
	api := router.Group("/api/v1")
	{
		students := api.Group("/students")
		students.POST("", studentCtrl.SubmitAssessment)
		students.GET("", studentCtrl.GetAllStudents)
		students.GET("/:id", studentCtrl.GetStudent)
		students.PUT("/:id", studentCtrl.UpdateStudent)
		students.DELETE("/:id", studentCtrl.DeleteStudent)
		students.POST("/:id/test-results", studentCtrl.AppendTestResults)
		students.GET("/:id/progress", studentCtrl.GetProgressReport)
		students.POST("/:id/milestones", studentCtrl.AddMilestone)
		students.POST("/:id/milestones/:milestone_id/achieve", studentCtrl.AchieveMilestone)
		students.PUT("/:id/learning-style", studentCtrl.SetLearningStyle)
		students.POST("/:id/recommendations", recommendationCtrl.GetRecommendations)

		analytics := api.Group("/analytics")
		analytics.GET("", analyticsCtrl.GetClassAnalytics)
		analytics.POST("/refresh", analyticsCtrl.RefreshClassAnalytics)
		analytics.GET("/dashboard", analyticsCtrl.GetDashboard)
		analytics.POST("/interventions", analyticsCtrl.RecordIntervention)

		api.GET("/learning-style-quiz", learningStyleCtrl.GetQuiz)
		api.POST("/learning-style-quiz/evaluate", learningStyleCtrl.EvaluateQuiz)

		api.GET("/teaching-methods", teachingMethodCtrl.GetMethods)

		api.Any("/gemini/proxy/*path", geminiProxyCtrl.Proxy)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Student{},
		&model.TestResult{},
		&model.BehavioralMetrics{},
		&model.ProgressMetrics{},
		&model.Milestone{},
		&model.LearningHistoryEntry{},
		&model.TeachingMethod{},
		&model.ClassAnalytics{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
