package main

import (
	"context"
	"log"
	"net/http"

	"messageboard/internal/app"
	"messageboard/internal/config"
	"messageboard/internal/handler"
	"messageboard/internal/logger"
	"messageboard/internal/metrics"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "messageboard/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Message Board API
// @version         1.0
// @description     JSON API of the message board.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig

	logg, err := logger.New(logger.Config{Development: cfg.LogDevelopment})
	if err != nil {
		log.Fatalf("Unable to build logger, %v", err)
	}
	defer func() { _ = logg.Sync() }()

	board, err := app.New(cfg, logg)
	if err != nil {
		logg.Fatalw("Unable to assemble the board", "error", err)
	}
	board.Start(context.Background())

	if !cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger(logg.Named("http")))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if err := handler.RegisterRoutes(router, board); err != nil {
		logg.Fatalw("Unable to register routes", "error", err)
	}

	logg.Infow("Server is running", "addr", cfg.ServerAddr, "api_url", cfg.APIURL)
	logg.Infof("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.ServerAddr)
	if err := router.Run(cfg.ServerAddr); err != nil {
		logg.Fatalw("Server stopped", "error", err)
	}
}
