package service

import (
	"testing"

	"mathgame-service/internal/models"
)

func mkUser(id string, correct, total int, avg float64) models.User {
	return models.User{
		ID:       id,
		Username: id,
		GameStats: models.GameStats{
			TotalCorrect:   correct,
			TotalQuestions: total,
			AverageTime:    avg,
		},
	}
}

func TestRankOrdering(t *testing.T) {
	users := []models.User{
		mkUser("slow", 10, 12, 8.0),
		mkUser("best", 25, 30, 4.0),
		mkUser("fast", 10, 15, 2.5),
	}

	entries := rank(users)

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].UserID != "best" {
		t.Errorf("Expected 'best' first, got %q", entries[0].UserID)
	}
	// tie on totalCorrect broken by lower averageTime
	if entries[1].UserID != "fast" || entries[2].UserID != "slow" {
		t.Errorf("Expected tie broken by averageTime: got %q then %q", entries[1].UserID, entries[2].UserID)
	}
}

func TestRankTruncatesToTop20(t *testing.T) {
	var users []models.User
	for i := 0; i < 35; i++ {
		users = append(users, mkUser(string(rune('a'+i)), i, i+1, 1.0))
	}

	entries := rank(users)

	if len(entries) != 20 {
		t.Fatalf("Expected 20 entries, got %d", len(entries))
	}
	if entries[0].TotalCorrect != 34 {
		t.Errorf("Expected best score 34 first, got %d", entries[0].TotalCorrect)
	}
}

func TestRankProjection(t *testing.T) {
	users := []models.User{
		mkUser("a", 2, 3, 1.23456),
		mkUser("empty", 0, 0, 0),
	}

	entries := rank(users)

	if entries[0].Accuracy != 0.67 {
		t.Errorf("Expected accuracy rounded to 0.67, got %v", entries[0].Accuracy)
	}
	if entries[0].AverageTime != 1.23 {
		t.Errorf("Expected averageTime rounded to 1.23, got %v", entries[0].AverageTime)
	}
	if entries[1].Accuracy != 0 {
		t.Errorf("Expected accuracy 0 with no questions, got %v", entries[1].Accuracy)
	}
}
