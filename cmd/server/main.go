package main

import (
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/VV-Learning/question-bank-service/internal/cache"
	"github.com/VV-Learning/question-bank-service/internal/config"
	"github.com/VV-Learning/question-bank-service/internal/handlers"
	"github.com/VV-Learning/question-bank-service/internal/repositories/postgres"
	"github.com/VV-Learning/question-bank-service/internal/services"
	"github.com/VV-Learning/question-bank-service/internal/utils"
	"github.com/VV-Learning/question-bank-service/internal/validator"
	"github.com/VV-Learning/question-bank-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.IsDevelopment() {
		logger = utils.NewDevelopmentLogger()
	} else {
		logger = utils.NewDefaultLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := pkg.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Cache is optional: without REDIS_URL every read goes to the store.
	var cacheService cache.CacheService
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		cacheService = cache.NewRedisCache(redisClient, slogger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		log.Fatalf("failed to create event publisher: %v", err)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	v := validator.New()

	questionService := services.NewQuestionService(repo, v, publisher, cacheService, slogger, cfg.StoreTimeout)
	topicService := services.NewTopicService(repo, v, publisher, cacheService, slogger, cfg.StoreTimeout)
	importExportService := services.NewImportExportService(questionService, v, slogger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(cors.New(corsConfig(cfg)))

	handlerManager := handlers.NewHandlerManager(questionService, topicService, importExportService, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting question bank service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	}
	if cfg.CORSAllowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	}
	return corsCfg
}
