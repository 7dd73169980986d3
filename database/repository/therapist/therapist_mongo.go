package therapistRepo

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

// MongoTherapistRepo implements TherapistRepository using MongoDB.
type MongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo creates a new instance of TherapistRepository using MongoDB.
func NewMongoTherapistRepo() TherapistRepository {
	coll := database.Collection("therapists")
	repo := &MongoTherapistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create therapist indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTherapistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idx := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "specialty", Value: 1}},
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, idx)
	return err
}

// GetByID retrieves a therapist document by its ID.
func (r *MongoTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var therapist models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&therapist)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapist with id %s: %w", id, err)
	}
	return &therapist, nil
}

// GetByEmail retrieves a therapist document by email.
func (r *MongoTherapistRepo) GetByEmail(email string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var therapist models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&therapist)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapist with email %s: %w", email, err)
	}
	return &therapist, nil
}

// GetAll retrieves all therapist documents.
func (r *MongoTherapistRepo) GetAll() ([]models.Therapist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapists: %w", err)
	}
	defer cursor.Close(ctx)

	var therapists []models.Therapist
	if err := cursor.All(ctx, &therapists); err != nil {
		return nil, fmt.Errorf("failed to decode therapists: %w", err)
	}
	return therapists, nil
}

// Search retrieves active therapists matching an optional specialty and name fragment.
func (r *MongoTherapistRepo) Search(specialty, name string) ([]models.Therapist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	if specialty != "" {
		filter["specialty"] = specialty
	}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search therapists: %w", err)
	}
	defer cursor.Close(ctx)

	var therapists []models.Therapist
	if err := cursor.All(ctx, &therapists); err != nil {
		return nil, fmt.Errorf("failed to decode therapists: %w", err)
	}
	return therapists, nil
}

// Create inserts a new therapist document.
func (r *MongoTherapistRepo) Create(therapist *models.Therapist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	therapist.CreatedAt = now
	therapist.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, therapist)
	if err != nil {
		return fmt.Errorf("failed to create therapist: %w", err)
	}
	return nil
}

// Delete removes a therapist document by its ID.
func (r *MongoTherapistRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete therapist with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("therapist with id %s not found", id)
	}
	return nil
}

// UpdateSetDocument applies a $set update to the therapist document.
func (r *MongoTherapistRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update therapist with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("therapist with id %s not found", id)
	}
	return nil
}

// PushNotification appends an in-app notification to the therapist document.
func (r *MongoTherapistRepo) PushNotification(id string, notification models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$push": bson.M{"notifications": notification}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to push notification for therapist %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("therapist with id %s not found", id)
	}
	return nil
}
