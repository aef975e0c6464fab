package database

import (
	"context"
	"time"

	"easyrent-backend/pkg/logger"
	"easyrent-backend/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes creates the indexes every collection relies on. Safe to call
// on every startup; Mongo treats existing identical indexes as a no-op.
func CreateIndexes(db *mongo.Database) error {
	if err := createPropertyIndexes(db); err != nil {
		return err
	}
	if err := createExchangeRateIndexes(db); err != nil {
		return err
	}
	if err := createUserIndexes(db); err != nil {
		return err
	}
	if err := createMessageIndexes(db); err != nil {
		return err
	}
	logger.Logger.Println("MongoDB indexes created successfully.")
	return nil
}

// Weighted text index backing the free-text property search. Title matches
// rank highest, then city, address, description.
func createPropertyIndexes(db *mongo.Database) error {
	collection := db.Collection("properties")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "location.address", Value: "text"},
				{Key: "location.city", Value: "text"},
			},
			Options: options.Index().
				SetWeights(bson.D{
					{Key: "title", Value: 10},
					{Key: "description", Value: 5},
					{Key: "location.address", Value: 7},
					{Key: "location.city", Value: 8},
				}).
				SetName("PropertySearchIndex"),
		},
		{
			Keys: bson.D{{Key: "location.city", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "propertyType", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "price.amount", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "properties").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "properties").Inc()
		logger.Logger.Errorf("Failed to create property indexes: %v", err)
		return err
	}
	return nil
}

// One stored rate per ordered (base, target) pair.
func createExchangeRateIndexes(db *mongo.Database) error {
	collection := db.Collection("exchange_rates")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "baseCurrency", Value: 1},
			{Key: "targetCurrency", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "exchange_rates").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "exchange_rates").Inc()
		logger.Logger.Errorf("Failed to create exchange rate indexes: %v", err)
		return err
	}
	return nil
}

func createUserIndexes(db *mongo.Database) error {
	collection := db.Collection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "users").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "users").Inc()
		logger.Logger.Errorf("Failed to create user indexes: %v", err)
		return err
	}
	return nil
}

func createMessageIndexes(db *mongo.Database) error {
	collection := db.Collection("messages")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "read", Value: 1}},
		},
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "messages").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "messages").Inc()
		logger.Logger.Errorf("Failed to create message indexes: %v", err)
		return err
	}
	return nil
}
