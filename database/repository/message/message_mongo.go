package messageRepo

import (
	"context"
	"fmt"
	"time"

	"calmora/database"
	"calmora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo creates a new instance of MessageRepository using MongoDB.
func NewMongoMessageRepo() MessageRepository {
	coll := database.Collection("messages")
	repo := &MongoMessageRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create message indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMessageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idx := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "therapist_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, idx)
	return err
}

// Create inserts a new message document.
func (r *MongoMessageRepo) Create(message *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	message.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetConversation retrieves all messages between a patient and a therapist, oldest first.
func (r *MongoMessageRepo) GetConversation(userID, therapistID string) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "therapist_id": therapistID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

// MarkRead marks every message in a conversation addressed to the given side as read.
// recipient is "patient" or "therapist"; messages sent by the other side are updated.
func (r *MongoMessageRepo) MarkRead(userID, therapistID, recipient string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sender := "therapist"
	if recipient == "therapist" {
		sender = "patient"
	}

	filter := bson.M{
		"user_id":      userID,
		"therapist_id": therapistID,
		"sender":       sender,
		"read":         false,
	}
	_, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}
