package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripweave/cmd/fx/account_fx"
	"tripweave/cmd/fx/controllers_fx"
	"tripweave/cmd/fx/db_fx"
	"tripweave/cmd/fx/file_fx"
	"tripweave/cmd/fx/itinerary_fx"
	"tripweave/cmd/fx/profile_fx"
	"tripweave/internal/api/controllers"
	"tripweave/internal/config"
	"tripweave/internal/infra"
	"tripweave/pkg/logger"
	"tripweave/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(logger.New),
		db_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		file_fx.Module,
		profile_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
				if err := engine.Run(":" + cfg.ServerPort); err != nil {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	authController *controllers.AuthController,
	itineraryController *controllers.ItineraryController,
	fileController *controllers.FileController,
	profileController *controllers.ProfileController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, itineraryController, fileController, profileController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	itineraryController *controllers.ItineraryController,
	fileController *controllers.FileController,
	profileController *controllers.ProfileController) {

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/authenticate", authController.Authenticate)
	authGroup.POST("/verification", authController.VerifyToken)

	itineraryGroup := r.Group("/api/itinerary")
	itineraryGroup.GET("/:sessionId", middleware.OptionalJWTMiddleware(), itineraryController.GetBySessionID)
	itineraryGroup.POST("", middleware.JWTAuthMiddleware(), itineraryController.Create)
	itineraryGroup.POST("/edit/:sessionId", middleware.JWTAuthMiddleware(), itineraryController.Update)
	itineraryGroup.POST("/challenge", middleware.JWTAuthMiddleware(), itineraryController.Challenge)
	itineraryGroup.POST("/add-collaborator", middleware.JWTAuthMiddleware(), itineraryController.AddCollaborator)

	fileGroup := r.Group("/api/file")
	fileGroup.Use(middleware.JWTAuthMiddleware())
	fileGroup.POST("", fileController.Create)
	fileGroup.POST("/delete", fileController.Delete)

	profileGroup := r.Group("/api/profile")
	profileGroup.Use(middleware.JWTAuthMiddleware())
	profileGroup.GET("/info", profileController.Info)
	profileGroup.GET("/recent-search", profileController.RecentSearches)
}
