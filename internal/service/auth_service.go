package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mathgame-service/internal/configs"
	"mathgame-service/internal/models"
	"mathgame-service/internal/repository"
	"mathgame-service/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserLocked         = errors.New("account temporarily locked")
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Lockout  *repository.LockoutRepository
}

func NewAuthService(userRepo *repository.UserRepository, lockout *repository.LockoutRepository) *AuthService {
	return &AuthService{UserRepo: userRepo, Lockout: lockout}
}

func (s *AuthService) Register(ctx context.Context, username, password, grade, schoolID string) (*models.User, error) {
	_, err := s.UserRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := models.RoleStudent
	if configs.AppConfig.AdminUsername != "" && username == configs.AppConfig.AdminUsername {
		role = models.RoleAdmin
	}

	now := time.Now()
	user := &models.User{
		ID:           primitive.NewObjectID().Hex(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Grade:        grade,
		SchoolID:     schoolID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	log.Printf("New user registered: %s", user.Username)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	if s.Lockout.IsLocked(ctx, username) {
		return "", nil, ErrUserLocked
	}

	user, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("error finding user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.Lockout.RecordFailure(ctx, username)
		return "", nil, ErrInvalidCredentials
	}
	s.Lockout.Reset(ctx, username)

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("error signing token: %w", err)
	}
	return token, user, nil
}
