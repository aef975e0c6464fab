package repositories

import (
	"context"
	"time"

	"easyrent-backend/internal/models"
	"easyrent-backend/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rateRepository struct {
	collection *mongo.Collection
}

func NewRateRepository(db *mongo.Database) RateRepository {
	return &rateRepository{
		collection: db.Collection("exchange_rates"),
	}
}

func (r *rateRepository) Find(ctx context.Context, base, target string) (*models.ExchangeRate, error) {
	start := time.Now()
	var rate models.ExchangeRate
	err := r.collection.FindOne(ctx, bson.M{
		"baseCurrency":   base,
		"targetCurrency": target,
	}).Decode(&rate)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "exchange_rates").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "exchange_rates").Inc()
		return nil, err
	}
	return &rate, nil
}

// Upsert overwrites the ordered pair only; the unique compound index on
// (baseCurrency, targetCurrency) guarantees at most one record per pair.
func (r *rateRepository) Upsert(ctx context.Context, rate *models.ExchangeRate) error {
	filter := bson.M{
		"baseCurrency":   rate.BaseCurrency,
		"targetCurrency": rate.TargetCurrency,
	}
	update := bson.M{
		"$set": bson.M{
			"rate":        rate.Rate,
			"lastUpdated": rate.LastUpdated,
		},
	}

	start := time.Now()
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	metrics.MongoOperationDuration.WithLabelValues("upsert", "exchange_rates").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("upsert", "exchange_rates").Inc()
		return err
	}
	return nil
}

func (r *rateRepository) FindAll(ctx context.Context) ([]models.ExchangeRate, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "baseCurrency", Value: 1},
		{Key: "targetCurrency", Value: 1},
	})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "exchange_rates").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "exchange_rates").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var rates []models.ExchangeRate
	if err := cursor.All(ctx, &rates); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "exchange_rates").Inc()
		return nil, err
	}
	return rates, nil
}
