package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ankaa-erp/backend/api"
	"github.com/ankaa-erp/backend/infra"
	"github.com/ankaa-erp/backend/repositories"
	"github.com/ankaa-erp/backend/usecases"
	"github.com/ankaa-erp/backend/utils"
)

func pgConfigFromEnv() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "ankaa"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", "localhost"),
		Password:           utils.GetRequiredEnv[string]("PG_PASSWORD"),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetRequiredEnv[string]("PG_USER"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", 0),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

func runServer(ctx context.Context, pgConfig infra.PgConfig, logger *slog.Logger) error {
	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig)
	if err != nil {
		return err
	}
	defer pool.Close()

	executorGetter := repositories.NewExecutorGetter(pool)
	repository := repositories.NewAnkaaDbRepository()
	changeLogUsecase := usecases.NewChangeLogUsecase(executorGetter, repository)
	userUsecase := usecases.NewUserUsecase(executorGetter, repository)

	apiConfig := api.Configuration{
		Env:    utils.GetEnv("ENV", "development"),
		AppUrl: utils.GetEnv("APP_URL", ""),
		Port:   utils.GetEnv("PORT", "8080"),
	}
	server := &http.Server{
		Addr:    ":" + apiConfig.Port,
		Handler: api.New(apiConfig, changeLogUsecase, userUsecase, logger).Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
	}()

	logger.Info("server listening", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "run migrations")
	shouldRunServer := flag.Bool("server", false, "run server")
	flag.Parse()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgConfig := pgConfigFromEnv()

	if *shouldRunMigrations {
		if err := repositories.RunMigrations(pgConfig, logger); err != nil {
			logger.Error("migrations failed", slog.Any("error", err))
			os.Exit(1)
		}
	}
	if *shouldRunServer {
		if err := runServer(ctx, pgConfig, logger); err != nil {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
