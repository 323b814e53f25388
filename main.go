package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rockridgeglobal/enquiry-relay/internal/app"
	"github.com/rockridgeglobal/enquiry-relay/internal/config"
	"github.com/rockridgeglobal/enquiry-relay/internal/server"
	"github.com/rockridgeglobal/enquiry-relay/pkg/logger"
)

func main() {
	// Local development keeps credentials in a .env file; deployments set
	// real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	appLogger, err := logger.SetupLogging(cfg.LogDir)
	if err != nil {
		log.Printf("Failed to set up file logging: %v", err)
		appLogger = logger.SetupFallbackLogger()
	}
	defer logger.CloseLogger()

	application := app.NewApp(cfg, appLogger)

	srv := server.NewServer(application, cfg)
	srv.SetupRoutes()

	if err := srv.Start(); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Printf("Shutdown error: %v", err)
	}
}
