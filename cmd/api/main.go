package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"eatsmart-api/internal/analysis"
	"eatsmart-api/internal/chat"
	"eatsmart-api/internal/config"
	"eatsmart-api/internal/db"
	apihttp "eatsmart-api/internal/http"
	"eatsmart-api/internal/logging"
	"eatsmart-api/internal/repository"
	"eatsmart-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewLogger(cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Nucleo de chat: store de sesiones, simulador y presenter de splash.
	chatStore := chat.NewStore(service.DefaultGreeting)
	chatSim := chat.NewSimulator(chatStore, logger, chat.SimulatorConfig{
		TextDelay: time.Duration(cfg.ReplyDelayMs) * time.Millisecond,
		FileDelay: time.Duration(cfg.FileReplyDelayMs) * time.Millisecond,
	})
	chatSvc := service.NewChatService(chatStore, chatSim)

	reportStore := chat.NewStore(service.ReportGreeting)
	reportSim := chat.NewSimulator(reportStore, logger, chat.SimulatorConfig{
		TextDelay:   time.Duration(cfg.ReportReplyDelayMs) * time.Millisecond,
		ScoreDelay:  time.Duration(cfg.ScoreDelayMs) * time.Millisecond,
		ReplyFormat: service.ReportReplyFormat,
	})
	reportSvc := service.NewReportService(reportStore, reportSim)

	splash := chat.NewPresenter(chat.SplashWords, time.Duration(cfg.SplashIntervalMs)*time.Millisecond)
	splashCtx, stopSplash := context.WithCancel(ctx)
	defer stopSplash()
	splash.Start(splashCtx)

	// Slot de ultimo resultado: memoria por defecto, Redis si esta configurado.
	resultStore := repository.NewMemoryResultStore()
	var limiter service.AnalyzeRateLimiter = service.NewAnalyzeRateLimiter(
		time.Duration(cfg.AnalyzeRateWindowSec)*time.Second,
		cfg.AnalyzeRateMax,
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			resultStore = repository.NewRedisResultStore(redisClient)
			limiter = service.NewRedisAnalyzeRateLimiter(
				redisClient,
				time.Duration(cfg.AnalyzeRateWindowSec)*time.Second,
				cfg.AnalyzeRateMax,
			)
		}
		cancel()
	}

	analyzer := analysis.NewHTTPClient(cfg.AnalyzerBaseURL, time.Duration(cfg.AnalyzerTimeoutSeconds)*time.Second)
	scanSvc := service.NewScanService(analyzer, resultStore, logger)
	heightSvc := service.NewHeightService(time.Duration(cfg.HeightDelayMs) * time.Millisecond)

	// Historial de comidas: fixture en memoria salvo que haya base de datos.
	var mealRepo repository.MealRepository = repository.NewFixtureMealRepository()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := db.Ping(ctxPing, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		cancel()
		mealRepo = repository.NewPgMealRepository(pool)
	}
	historySvc := service.NewHistoryService(mealRepo)

	chatHandler := apihttp.NewChatHandler(logger, chatSvc, splash)
	reportHandler := apihttp.NewReportHandler(logger, reportSvc)
	scanHandler := apihttp.NewScanHandler(logger, scanSvc, heightSvc, limiter)
	historyHandler := apihttp.NewHistoryHandler(logger, historySvc)
	router := apihttp.NewRouter(logger, chatHandler, reportHandler, scanHandler, historyHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
