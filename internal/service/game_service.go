package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mathgame-service/internal/game"
	"mathgame-service/internal/models"
	"mathgame-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxWriteRetries bounds how often a versioned user update is retried after
// losing to a concurrent write.
const maxWriteRetries = 3

var (
	ErrMalformedQuestion = errors.New("malformed question")
	ErrUpdateConflict    = errors.New("user update conflict")
)

type SubmitResult struct {
	IsCorrect      bool    `json:"isCorrect"`
	CorrectAnswer  int     `json:"correctAnswer"`
	TotalCorrect   int     `json:"totalCorrect"`
	TotalQuestions int     `json:"totalQuestions"`
	AverageTime    float64 `json:"averageTime"`
	Currency       int     `json:"currency"`
}

type SkipResult struct {
	SkippedQuestions int `json:"skippedQuestions"`
	Currency         int `json:"currency"`
}

type GameService struct {
	UserRepo    *repository.UserRepository
	AttemptRepo *repository.AttemptRepository
	Generator   *game.Generator
}

func NewGameService(userRepo *repository.UserRepository, attemptRepo *repository.AttemptRepository, gen *game.Generator) *GameService {
	return &GameService{UserRepo: userRepo, AttemptRepo: attemptRepo, Generator: gen}
}

// NextQuestion generates a fresh question for the user's grade tier. Nothing
// is persisted; the answer is recomputed from the text at submission.
func (s *GameService) NextQuestion(user *models.User) game.Question {
	return s.Generator.Generate(user.Grade)
}

// SubmitAnswer evaluates the submission, updates the user's running stats
// under optimistic concurrency and records the attempt.
func (s *GameService) SubmitAnswer(ctx context.Context, userID, questionText string, userAnswer int, timeTaken float64) (*SubmitResult, error) {
	correct, answer, err := game.Check(questionText, userAnswer)
	if err != nil {
		log.Printf("Rejected unparseable question text from user %s: %v", userID, err)
		return nil, ErrMalformedQuestion
	}

	user, err := s.updateUser(ctx, userID, func(u *models.User) {
		u.RecordAnswer(correct, timeTaken)
	})
	if err != nil {
		return nil, err
	}

	attempt := &models.AnswerAttempt{
		ID:            primitive.NewObjectID().Hex(),
		UserID:        user.ID,
		Question:      questionText,
		UserAnswer:    userAnswer,
		CorrectAnswer: answer,
		IsCorrect:     correct,
		TimeTaken:     timeTaken,
		CreatedAt:     time.Now(),
	}
	if err := s.AttemptRepo.Create(ctx, attempt); err != nil {
		// The stats update already succeeded; losing one history row is not
		// worth failing the submission.
		log.Printf("Warning: failed to record answer attempt for user %s: %v", user.ID, err)
	}

	return &SubmitResult{
		IsCorrect:      correct,
		CorrectAnswer:  answer,
		TotalCorrect:   user.GameStats.TotalCorrect,
		TotalQuestions: user.GameStats.TotalQuestions,
		AverageTime:    user.GameStats.AverageTime,
		Currency:       user.Currency,
	}, nil
}

// Skip advances the user's skip counter, deducting currency at the
// threshold.
func (s *GameService) Skip(ctx context.Context, userID string) (*SkipResult, error) {
	user, err := s.updateUser(ctx, userID, func(u *models.User) {
		u.RecordSkip()
	})
	if err != nil {
		return nil, err
	}
	return &SkipResult{
		SkippedQuestions: user.GameStats.SkippedQuestions,
		Currency:         user.Currency,
	}, nil
}

// updateUser reloads the user and reapplies mutate until the conditional
// write succeeds or the retries run out.
func (s *GameService) updateUser(ctx context.Context, userID string, mutate func(*models.User)) (*models.User, error) {
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		user, err := s.UserRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error loading user: %w", err)
		}
		mutate(user)
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
