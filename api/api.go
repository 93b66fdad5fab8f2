package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ankaa-erp/backend/usecases"
	"github.com/ankaa-erp/backend/utils"
)

type Configuration struct {
	Env    string
	AppUrl string
	Port   string
}

type Server struct {
	router *gin.Engine
}

func New(
	conf Configuration,
	changeLogUsecase usecases.ChangeLogUsecase,
	userUsecase usecases.UserUsecase,
	logger *slog.Logger,
) *Server {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsOption(conf)))
	router.Use(loggerMiddleware(logger))

	router.GET("/liveness", handleLivenessProbe)
	router.GET("/change-logs", handleListChangeLogs(changeLogUsecase))
	router.GET("/users", handleListUsers(userUsecase))
	router.GET("/users/:user_id", handleGetUser(userUsecase))
	router.POST("/users", handleCreateUser(userUsecase))

	return &Server{router: router}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func corsOption(conf Configuration) cors.Config {
	allowedOrigins := []string{}
	if conf.AppUrl != "" {
		allowedOrigins = append(allowedOrigins, conf.AppUrl)
	}
	if conf.Env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodDelete, http.MethodPatch,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func handleLivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func loggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := utils.StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		logger.InfoContext(ctx, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
