package main

import (
	"context"
	"log"

	"cinema-seating/cmd"
	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/wire"
	"cinema-seating/pkg/broker"
	"cinema-seating/pkg/cache"
	"cinema-seating/pkg/database"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect to redis
	rdb, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))

	// Connect to broker
	publisher, err := broker.NewPublisher(config.RabbitMQ, logger)
	if err != nil {
		logger.Fatal("Failed to connect to rabbitmq", zap.Error(err))
	}
	defer publisher.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, rdb, config.Selection, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, publisher, map[string]wire.HealthCheck{
		"postgres": db.Ping,
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	}, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
