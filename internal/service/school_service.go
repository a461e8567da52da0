package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mathgame-service/internal/models"
	"mathgame-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrSchoolNotFound  = errors.New("school not found")
	ErrGradeNotOffered = errors.New("grade not found in this school")
)

type SchoolService struct {
	SchoolRepo *repository.SchoolRepository
	UserRepo   *repository.UserRepository
}

func NewSchoolService(schoolRepo *repository.SchoolRepository, userRepo *repository.UserRepository) *SchoolService {
	return &SchoolService{SchoolRepo: schoolRepo, UserRepo: userRepo}
}

func (s *SchoolService) List(ctx context.Context) ([]models.School, error) {
	return s.SchoolRepo.FindAll(ctx)
}

func (s *SchoolService) Get(ctx context.Context, id string) (*models.School, error) {
	school, err := s.SchoolRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error loading school: %w", err)
	}
	return school, nil
}

func (s *SchoolService) Create(ctx context.Context, name string, grades []models.Grade, licenseExpiry time.Time) (*models.School, error) {
	now := time.Now()
	school := &models.School{
		ID:            primitive.NewObjectID().Hex(),
		Name:          name,
		Grades:        grades,
		LicenseExpiry: licenseExpiry,
		Active:        licenseExpiry.After(now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.SchoolRepo.Create(ctx, school); err != nil {
		return nil, fmt.Errorf("error creating school: %w", err)
	}
	return school, nil
}

// Renew moves the license expiry forward and reactivates the school.
func (s *SchoolService) Renew(ctx context.Context, id string, licenseExpiry time.Time) (*models.School, error) {
	school, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	update := bson.M{
		"license_expiry": licenseExpiry,
		"active":         licenseExpiry.After(time.Now()),
		"updated_at":     time.Now(),
	}
	if err := s.SchoolRepo.Update(ctx, id, update); err != nil {
		return nil, fmt.Errorf("error renewing license: %w", err)
	}
	school.LicenseExpiry = licenseExpiry
	school.Active = licenseExpiry.After(time.Now())
	return school, nil
}

// AssignStudent moves the user into a school and grade that the school
// actually offers.
func (s *SchoolService) AssignStudent(ctx context.Context, userID, schoolID, grade string) (*models.User, error) {
	school, err := s.Get(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	if !school.HasGrade(grade) {
		return nil, ErrGradeNotOffered
	}

	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		user, err := s.UserRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error loading user: %w", err)
		}
		user.SchoolID = school.ID
		user.Grade = grade
		ok, err := s.UserRepo.UpdateVersioned(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("error saving user: %w", err)
		}
		if ok {
			return user, nil
		}
	}
	return nil, ErrUpdateConflict
}
