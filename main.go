package main

import (
	"strings"
	"time"

	"souk/catalog"
	"souk/config"
	"souk/controller"
	"souk/database"
	"souk/logger"
	"souk/prometheus"
	"souk/route"
	"souk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	utils.InitJWT(&appConfig.JWT)
	prometheus.InitMetrics(appConfig)

	if err := database.InitDatabase(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	engine := catalog.NewEngine(database.NewCatalogStore(database.DB))
	handler := controller.NewHandler(engine)

	if appConfig.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Info("Running in debug mode")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.MetricsMiddleware())

	// Configure CORS
	origins := []string{"http://localhost:3000"}
	if appConfig.Server.AllowedOrigins != "" {
		for _, origin := range strings.Split(appConfig.Server.AllowedOrigins, ",") {
			origins = append(origins, strings.TrimSpace(origin))
		}
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	route.SoukRoutes(router, handler)
	log.Info("Routes configured successfully")

	log.Info("Server starting", zap.String("port", appConfig.Server.Port))
	if err := router.Run(":" + appConfig.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
