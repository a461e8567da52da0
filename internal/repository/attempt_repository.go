package repository

import (
	"context"

	"mathgame-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("answer_attempts")}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.AnswerAttempt) error {
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

func (r *AttemptRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]models.AnswerAttempt, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.AnswerAttempt
	for cur.Next(ctx) {
		var a models.AnswerAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}
