package repositories

import (
	"context"
	"fmt"
	"time"

	"easyrent-backend/internal/filters"
	"easyrent-backend/internal/models"
	"easyrent-backend/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type propertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) PropertyRepository {
	return &propertyRepository{
		collection: db.Collection("properties"),
	}
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // malformed IDs behave like missing records
	}
	start := time.Now()
	var property models.Property
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "properties").Inc()
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindWithPagination(ctx context.Context, offset, limit int) ([]models.Property, int64, error) {
	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "properties").Inc()
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	start = time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "properties").Inc()
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, 0, err
	}
	return properties, total, nil
}

// Search executes a compiled predicate. A text-search predicate carries its
// own relevance sort and score projection; anything else is returned in
// insertion order.
func (r *propertyRepository) Search(ctx context.Context, predicate filters.Predicate) ([]models.Property, error) {
	findOptions := options.Find()
	if predicate.Sort != nil {
		findOptions.SetSort(predicate.Sort)
	}
	if predicate.Projection != nil {
		findOptions.SetProjection(predicate.Projection)
	}

	start := time.Now()
	cursor, err := r.collection.Find(ctx, predicate.Filter, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("search", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("search", "properties").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	start := time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	metrics.MongoOperationDuration.WithLabelValues("insert", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "properties").Inc()
		return err
	}
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"title":            property.Title,
			"description":      property.Description,
			"propertyType":     property.PropertyType,
			"location":         property.Location,
			"price":            property.Price,
			"bedrooms":         property.Bedrooms,
			"bathrooms":        property.Bathrooms,
			"area":             property.Area,
			"landArea":         property.LandArea,
			"floor":            property.Floor,
			"buildingClass":    property.BuildingClass,
			"wallMaterial":     property.WallMaterial,
			"separateBathroom": property.SeparateBathroom,
			"parking":          property.Parking,
			"amenities":        property.Amenities,
			"images":           property.Images,
			"available":        property.Available,
			"updatedAt":        property.UpdatedAt,
		},
	}

	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": property.ID}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", "properties").Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property not found")
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("property not found")
	}
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", "properties").Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("property not found")
	}
	return nil
}
