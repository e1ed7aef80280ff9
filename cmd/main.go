package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/config"
	"github.com/proctorview/proctorview/database"
	_ "github.com/proctorview/proctorview/docs" // Swagger docs - auto-generated
	"github.com/proctorview/proctorview/internal/auth"
	"github.com/proctorview/proctorview/internal/controller"
	"github.com/proctorview/proctorview/internal/logger"
	"github.com/proctorview/proctorview/internal/middleware"
	"github.com/proctorview/proctorview/internal/model"
	"github.com/proctorview/proctorview/internal/repository"
	"github.com/proctorview/proctorview/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Proctoring Dashboard API
// @version 1.0
// @description Admin dashboard backend for online-exam proctoring: admins own tests, participants attempt them, and capture agents stream flagged activity.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			auth.NewJWTManager,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewAdminRepository,
			repository.NewUserRepository,
			repository.NewTestRepository,
			repository.NewUserTestRepository,
			repository.NewActivityRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewAdminService,
			service.NewTestService,
			service.NewUserService,
			service.NewSessionService,
			service.NewActivityService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewAdminController,
			controller.NewTestController,
			controller.NewUserController,
			controller.NewSessionController,
			controller.NewActivityController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("http_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the HTTP surface and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *auth.JWTManager,
	adminRepo repository.AdminRepository,
	authCtrl *controller.AuthController,
	adminCtrl *controller.AdminController,
	testCtrl *controller.TestController,
	userCtrl *controller.UserController,
	sessionCtrl *controller.SessionController,
	activityCtrl *controller.ActivityController,
) {
	router.Use(middleware.RequestTimeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)
	}

	api := router.Group("/api")
	{
		admins := api.Group("/admins")
		admins.GET("/:id", adminCtrl.GetAdmin)
		admins.POST("", adminCtrl.CreateAdmin)

		tests := api.Group("/tests")
		tests.POST("", middleware.RequireAuth(tokens, adminRepo), testCtrl.CreateTest)
		tests.GET("/activeTests", testCtrl.ListActiveTests)
		tests.GET("/activeTestsCnt", testCtrl.CountActiveTests)
		tests.GET("/active/:adminId", testCtrl.ListActiveTestsByAdmin)
		tests.GET("/:id", testCtrl.GetTest)
		tests.GET("/:id/users", testCtrl.ListTestUsers)
		tests.GET("/:id/alerts", testCtrl.ListTestAlerts)

		users := api.Group("/users")
		users.POST("", userCtrl.CreateUser)
		users.GET("/count", userCtrl.CountUsers)
		users.GET("/:id", userCtrl.GetUser)

		api.POST("/userTests", sessionCtrl.CreateSession)

		activities := api.Group("/activities")
		activities.GET("", activityCtrl.ListActivities)
		activities.POST("", activityCtrl.CreateActivity)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Proctoring dashboard API starting on port %s", cfg.Server.Port)
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
		&model.Admin{},
		&model.User{},
		&model.Test{},
		&model.UserTest{},
		&model.Activity{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
