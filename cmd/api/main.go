package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/yourusername/devoyage-api/internal/config"
	"github.com/yourusername/devoyage-api/internal/domain/repository"
	"github.com/yourusername/devoyage-api/internal/handler"
	"github.com/yourusername/devoyage-api/internal/middleware"
	pgRepo "github.com/yourusername/devoyage-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/devoyage-api/internal/repository/redis"
	"github.com/yourusername/devoyage-api/internal/service"
	"github.com/yourusername/devoyage-api/pkg/auth"
	"github.com/yourusername/devoyage-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), database.PoolOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		Debug:        !isProduction,
	})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db, database.DefaultMigrationsSource); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Redis нужен только для кеша справочников и rate limiting: без него сервис работает
	var redisClient redis.UniversalClient
	var cacheRepo repository.CacheRepository
	redisClient, err = database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Warning: Redis unavailable, catalog cache and rate limiting disabled: %v", err)
		redisClient = nil
	} else {
		log.Println("Successfully connected to Redis")
		cr, err := redisRepo.NewCacheRepo(redisClient, "devoyage:")
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = cr
	}

	// Инициализируем репозитории
	subjectRepo := pgRepo.NewSubjectRepo(db)
	doctorRepo := pgRepo.NewDoctorRepo(db)
	videoRepo := pgRepo.NewVideoRepo(db)
	quizRepo := pgRepo.NewQuizRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	optionRepo := pgRepo.NewOptionRepo(db)
	caseRepo := pgRepo.NewClinicalCaseRepo(db)
	flashcardRepo := pgRepo.NewFlashcardRepo(db)
	userRepo := pgRepo.NewUserRepo(db)

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	catalogService := service.NewCatalogService(subjectRepo, doctorRepo, cacheRepo, cfg.Cache.CatalogTTL())
	quizService := service.NewQuizService(quizRepo)
	questionService := service.NewQuestionService(questionRepo, quizRepo)
	optionService := service.NewOptionService(optionRepo)
	videoService := service.NewVideoService(videoRepo)
	caseService := service.NewClinicalCaseService(caseRepo)
	flashcardService := service.NewFlashcardService(flashcardRepo)
	authService := service.NewAuthService(userRepo, jwtService)

	// Инициализируем обработчики и маршруты
	routes := &handler.Router{
		Quiz:           handler.NewQuizHandler(quizService, questionService),
		Question:       handler.NewQuestionHandler(questionService),
		Option:         handler.NewOptionHandler(optionService),
		Catalog:        handler.NewCatalogHandler(catalogService),
		Content:        handler.NewContentHandler(videoService, caseService, flashcardService),
		Auth:           handler.NewAuthHandler(authService, jwtService.Expiration()),
		Health:         handler.NewHealthHandler(db, redisClient),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
		LoginLimit: middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.Login.MaxRequests,
			Window:      cfg.RateLimit.Login.Window(),
			KeyPrefix:   "ratelimit:login",
		},
		WriteLimit: middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.Write.MaxRequests,
			Window:      cfg.RateLimit.Write.Window(),
			KeyPrefix:   "ratelimit:write",
		},
	}
	if cacheRepo != nil {
		routes.RateLimiter = middleware.NewRateLimiter(cacheRepo)
	}

	// Инициализируем роутер Gin
	router := gin.Default()

	// В production не доверяем прокси-заголовкам (защита от IP spoofing в rate limiter)
	trustedProxies := []string{"127.0.0.1", "::1"}
	if isProduction {
		trustedProxies = nil
	}
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	router.Use(middleware.RequestID())

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(router)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited properly")
}
