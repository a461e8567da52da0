package repository

import (
	"context"
	"time"

	"mathgame-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.Col.InsertOne(ctx, user)
	return err
}

// UpdateVersioned replaces the user document only when the stored version
// still matches the one the document was loaded with. It returns false when
// a concurrent write won; callers reload and retry.
func (r *UserRepository) UpdateVersioned(ctx context.Context, user *models.User) (bool, error) {
	loaded := user.Version
	user.Version++
	user.UpdatedAt = time.Now()

	res, err := r.Col.ReplaceOne(ctx, bson.M{"_id": user.ID, "version": loaded}, user)
	if err != nil {
		user.Version = loaded
		return false, err
	}
	if res.MatchedCount == 0 {
		user.Version = loaded
		return false, nil
	}
	return true, nil
}

func (r *UserRepository) FindByFilter(ctx context.Context, filter bson.M) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
