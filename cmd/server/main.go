package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"

	"fireclub-api/internal/app"
	"fireclub-api/internal/config"
	"fireclub-api/internal/logging"
	"fireclub-api/internal/repository"
	"fireclub-api/internal/telemetry"
)

const (
	serviceName    = "fireclub-api"
	serviceVersion = "1.0.0"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(cfg.LogLevel)

	tp, err := telemetry.InitTracing(serviceName, serviceVersion)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := telemetry.ShutdownTracing(context.Background(), tp); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(cfg.DBName)

	application := app.Build(&app.Config{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Port:           cfg.Port,
		Logger:         logger,
		TracerProvider: otel.GetTracerProvider(),
		GinMode:        cfg.GinMode,
		StatusRepo:     repository.NewMongoStatusRepository(db),
		SignupRepo:     repository.NewMongoSignupRepository(db),
	})

	go func() {
		if err := application.Run(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := application.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
