package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/fantamatto/fantamatto/internal/server/http/handlers"
	"github.com/fantamatto/fantamatto/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.FantamattoFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)
	mattoHandler := handlers.NewMattoHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Fantamatto API - Caccia ai personaggi più pazzi di Ponza!"})
	})

	api.POST("/users", userHandler.Register)
	api.POST("/login", userHandler.Login)
	api.GET("/leaderboard", userHandler.Leaderboard)
	api.GET("/users/:id", userHandler.Get)
	api.GET("/me", middleware.AuthRequired(facade), userHandler.Me)

	api.POST("/matti", mattoHandler.Create)
	api.GET("/matti", mattoHandler.List)
	api.GET("/matti/user/:id", mattoHandler.ListByUser)

	api.POST("/admin/login", adminHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/stats", adminHandler.Stats)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/matti", adminHandler.ListMatti)
	admin.PUT("/matti/:id", adminHandler.UpdateMatto)
	admin.DELETE("/matti/:id", adminHandler.DeleteMatto)
	admin.POST("/reset-points", adminHandler.ResetPoints)

	return engine
}
