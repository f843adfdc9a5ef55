package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Dan9191/calculator-service/internal/auth"
	"github.com/Dan9191/calculator-service/internal/config"
	"github.com/Dan9191/calculator-service/internal/handler"
	"github.com/Dan9191/calculator-service/internal/middleware"
	"github.com/Dan9191/calculator-service/internal/service"
	"github.com/Dan9191/calculator-service/internal/store"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.New()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Select credential store: built-in user set by default, database-backed
	// when DB_CONN is set
	var credentials store.Store = store.NewStaticStore(store.SeedUsers())
	if cfg.DBConn != "" {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		credentials = store.NewPostgresStore(db)
	}

	// Initialize layers
	issuer := auth.NewIssuer([]byte(cfg.JWTSecret))
	verifier := auth.NewVerifier([]byte(cfg.JWTSecret), credentials)
	svc := service.NewService(credentials, issuer, logger)
	h := handler.NewHandler(svc, logger)
	r := handler.NewRouter(h, middleware.RequestLogger(logger), middleware.Auth(verifier))

	// Periodic traffic summary
	c := cron.New()
	if _, err := c.AddFunc("@every 1m", func() {
		logger.Infof("Served %d requests so far", middleware.RequestCount())
	}); err != nil {
		logger.Fatalf("Failed to schedule stats job: %v", err)
	}
	c.Start()
	defer c.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Calculator microservice listening at http://localhost:%s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
