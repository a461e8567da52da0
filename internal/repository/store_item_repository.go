package repository

import (
	"context"

	"mathgame-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StoreItemRepository struct {
	Col *mongo.Collection
}

func NewStoreItemRepository(db *mongo.Database) *StoreItemRepository {
	return &StoreItemRepository{Col: db.Collection("store_items")}
}

func (r *StoreItemRepository) FindAll(ctx context.Context) ([]models.StoreItem, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.StoreItem
	for cur.Next(ctx) {
		var item models.StoreItem
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *StoreItemRepository) FindByID(ctx context.Context, id string) (*models.StoreItem, error) {
	var item models.StoreItem
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *StoreItemRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

func (r *StoreItemRepository) CreateMany(ctx context.Context, items []models.StoreItem) error {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}
