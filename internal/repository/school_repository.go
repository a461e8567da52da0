package repository

import (
	"context"

	"mathgame-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SchoolRepository struct {
	Col *mongo.Collection
}

func NewSchoolRepository(db *mongo.Database) *SchoolRepository {
	return &SchoolRepository{Col: db.Collection("schools")}
}

func (r *SchoolRepository) FindAll(ctx context.Context) ([]models.School, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var schools []models.School
	for cur.Next(ctx) {
		var s models.School
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, nil
}

func (r *SchoolRepository) FindByID(ctx context.Context, id string) (*models.School, error) {
	var school models.School
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&school)
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	_, err := r.Col.InsertOne(ctx, school)
	return err
}

func (r *SchoolRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}
