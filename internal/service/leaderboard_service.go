package service

import (
	"context"
	"math"
	"sort"

	"mathgame-service/internal/models"
	"mathgame-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// leaderboardSize caps every leaderboard view.
const leaderboardSize = 20

type LeaderboardEntry struct {
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	Grade          string  `json:"grade"`
	SchoolID       string  `json:"schoolId,omitempty"`
	TotalCorrect   int     `json:"totalCorrect"`
	TotalQuestions int     `json:"totalQuestions"`
	Accuracy       float64 `json:"accuracy"`
	AverageTime    float64 `json:"averageTime"`
}

type LeaderboardService struct {
	UserRepo *repository.UserRepository
}

func NewLeaderboardService(userRepo *repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{UserRepo: userRepo}
}

func (s *LeaderboardService) Global(ctx context.Context, grade string) ([]LeaderboardEntry, error) {
	filter := bson.M{}
	if grade != "" {
		filter["grade"] = grade
	}
	users, err := s.UserRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return rank(users), nil
}

func (s *LeaderboardService) School(ctx context.Context, schoolID, grade string) ([]LeaderboardEntry, error) {
	filter := bson.M{"school_id": schoolID}
	if grade != "" {
		filter["grade"] = grade
	}
	users, err := s.UserRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return rank(users), nil
}

// rank orders users by totalCorrect descending, breaking ties on
// averageTime ascending, and projects the top entries for display.
func rank(users []models.User) []LeaderboardEntry {
	sort.SliceStable(users, func(i, j int) bool {
		si, sj := users[i].GameStats, users[j].GameStats
		if si.TotalCorrect != sj.TotalCorrect {
			return si.TotalCorrect > sj.TotalCorrect
		}
		return si.AverageTime < sj.AverageTime
	})

	if len(users) > leaderboardSize {
		users = users[:leaderboardSize]
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i := range users {
		u := &users[i]
		entries = append(entries, LeaderboardEntry{
			UserID:         u.ID,
			Name:           u.Username,
			Grade:          u.Grade,
			SchoolID:       u.SchoolID,
			TotalCorrect:   u.GameStats.TotalCorrect,
			TotalQuestions: u.GameStats.TotalQuestions,
			Accuracy:       round2(u.Accuracy()),
			AverageTime:    round2(u.GameStats.AverageTime),
		})
	}
	return entries
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
