package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	authadapter "github.com/Artem310/TaskManagerProject/internal/adapter/auth"
	dbadapter "github.com/Artem310/TaskManagerProject/internal/adapter/db"
	httpadapter "github.com/Artem310/TaskManagerProject/internal/adapter/http"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/handlers"
	httpmiddleware "github.com/Artem310/TaskManagerProject/internal/adapter/http/middleware"
	"github.com/Artem310/TaskManagerProject/internal/adapter/ratelimit"
	"github.com/Artem310/TaskManagerProject/internal/app/service"
	"github.com/Artem310/TaskManagerProject/internal/config"
	"github.com/Artem310/TaskManagerProject/pkg/translator"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}

	var (
		redisClient *redis.Client
		pinger      handlers.RedisPinger
		throttle    httpmiddleware.RateLimiter
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pinger = redisClient
		throttle = ratelimit.NewLimiter(redisClient, "ratelimit:auth:", cfg.AuthRateLimit, cfg.AuthRateWindow)
		logger.Info("auth throttling enabled",
			zap.String("redis_addr", cfg.RedisAddr),
			zap.Int("limit", cfg.AuthRateLimit),
			zap.Duration("window", cfg.AuthRateWindow),
		)
	} else {
		logger.Warn("REDIS_ADDR not set, auth throttling disabled")
	}

	tx := dbadapter.NewTransactor(db)
	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	commentRepository := dbadapter.NewCommentRepository(db)

	hasher := authadapter.NewBcryptHasher(cfg.BcryptCost)
	tokens := authadapter.NewJWTIssuer(authadapter.JWTConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		TokenTTL: cfg.JWTTokenTTL,
	})

	userService := service.NewUserService(userRepository, hasher, tx)
	authService := service.NewAuthService(userService, hasher, tokens)
	commentService := service.NewCommentService(commentRepository, taskRepository, userService, tx)
	taskService := service.NewTaskService(taskRepository, userService, commentService, tx)

	gin.SetMode(gin.ReleaseMode)
	router, err := httpadapter.NewRouter(logger, cfg.TrustedProxies, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db, pinger),
		Auth:     handlers.NewAuthHandler(userService, authService),
		Task:     handlers.NewTaskHandler(taskService),
		Comment:  handlers.NewCommentHandler(commentService),
		AuthSvc:  authService,
		Throttle: throttle,
	})
	if err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	// Stores close only after in-flight requests have drained.
	operations := map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			shutdownErr := server.Shutdown(ctx)
			if redisClient != nil {
				shutdownErr = errors.Join(shutdownErr, redisClient.Close())
			}
			return errors.Join(shutdownErr, db.Close())
		},
	}

	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.ShutdownTimeout, operations)
	exitCode := <-wait
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}
