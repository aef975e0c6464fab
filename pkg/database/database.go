package database

import (
	"context"
	"fmt"
	"time"

	"easyrent-backend/pkg/config"
	"easyrent-backend/pkg/logger"
	"easyrent-backend/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var DB *mongo.Database

// InitDB initializes the MongoDB client and database connection.
func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("connect", "").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("connect", "").Inc()
		logger.Logger.Errorf("failed to connect to MongoDB: %v", err)
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(cfg.Database.DBName)

	if err := CreateIndexes(DB); err != nil {
		return fmt.Errorf("failed to create indexes: %v", err)
	}

	logger.Logger.Println("Connected to MongoDB")
	return nil
}

// CloseDB disconnects the MongoDB client.
func CloseDB() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		logger.Logger.Errorf("failed to disconnect MongoDB: %v", err)
		return
	}
	logger.Logger.Println("Disconnected from MongoDB")
}
