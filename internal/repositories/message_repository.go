package repositories

import (
	"context"
	"time"

	"easyrent-backend/internal/models"
	"easyrent-backend/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{
		collection: db.Collection("messages"),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	message.CreatedAt = time.Now().UTC()

	start := time.Now()
	_, err := r.collection.InsertOne(ctx, message)
	metrics.MongoOperationDuration.WithLabelValues("insert", "messages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "messages").Inc()
		return err
	}
	return nil
}

func (r *messageRepository) FindByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"conversationId": conversationID}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "messages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "messages").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "messages").Inc()
		return nil, err
	}
	return messages, nil
}

// FindLatestPerConversation returns the newest message of every conversation
// the user participates in, newest conversation first.
func (r *messageRepository) FindLatestPerConversation(ctx context.Context, user primitive.ObjectID) ([]models.Message, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"sender": user},
				bson.M{"recipient": user},
			},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$conversationId",
			"latest": bson.M{"$first": "$$ROOT"},
		}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$latest"}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	start := time.Now()
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	metrics.MongoOperationDuration.WithLabelValues("aggregate", "messages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("aggregate", "messages").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "messages").Inc()
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) CountUnread(ctx context.Context, conversationID string, recipient primitive.ObjectID) (int64, error) {
	start := time.Now()
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"conversationId": conversationID,
		"recipient":      recipient,
		"read":           false,
	})
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "messages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "messages").Inc()
		return 0, err
	}
	return count, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, conversationID string, recipient primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"read": true}}

	start := time.Now()
	_, err := r.collection.UpdateMany(ctx, bson.M{
		"conversationId": conversationID,
		"recipient":      recipient,
		"read":           false,
	}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_many", "messages").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_many", "messages").Inc()
		return err
	}
	return nil
}
