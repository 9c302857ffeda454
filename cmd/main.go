package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookreviews/internal/goodreads"
	"bookreviews/internal/handlers"
	"bookreviews/internal/logger"
	"bookreviews/internal/repository"
	"bookreviews/internal/repository/db"
	"bookreviews/internal/server"
	"bookreviews/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// .env is optional; production environments set DATABASE_URL directly
	_ = godotenv.Load()

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init database", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Fatalw("failed to close database", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	aggregator := goodreads.NewClient(
		viper.GetString("goodreads.url"),
		viper.GetString("goodreads.key"),
	)
	services := service.NewService(repos, aggregator, service.SessionConfig{
		SigningKey: viper.GetString("session.signing_key"),
		TTL:        viper.GetDuration("session.ttl"),
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.BindEnv("database.url", "DATABASE_URL"); err != nil {
		return err
	}
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database from DATABASE_URL.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dsn := viper.GetString("database.url")
	if dsn == "" {
		log.Fatalw("DATABASE_URL is not set")
	}
	return db.InitDB(dsn)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
