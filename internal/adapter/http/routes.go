package http

import (
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/handlers"
	"github.com/Artem310/TaskManagerProject/internal/adapter/http/middleware"
	"github.com/Artem310/TaskManagerProject/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Task     *handlers.TaskHandler
	Comment  *handlers.CommentHandler
	AuthSvc  ports.AuthService
	Throttle middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware(), middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(h.Throttle))
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	tasks := api.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware(h.AuthSvc))
	{
		tasks.POST("", h.Task.CreateTask)
		tasks.GET("", h.Task.ListTasks)
		tasks.GET("/:id", h.Task.GetTask)
		tasks.PUT("/:id", h.Task.UpdateTask)
		tasks.DELETE("/:id", h.Task.DeleteTask)
		tasks.POST("/:id/comments", h.Comment.AddComment)
		tasks.GET("/:id/comments", h.Comment.ListComments)
	}
}

// NewRouter builds the gin engine with recovery, request logging and every route.
func NewRouter(logger *zap.Logger, trustedProxies []string, h Handlers) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery(), middleware.GinZapMiddleware(logger))
	RegisterRoutes(r, h)
	return r, nil
}
