package models

import (
	"math"
	"testing"
)

func TestRecordAnswerIncrementalMean(t *testing.T) {
	elapsed := []float64{1.5, 3.0, 0.25, 12.8, 2.2, 7.0, 0.0, 4.4}

	user := &User{}
	var sum float64
	for i, e := range elapsed {
		user.RecordAnswer(true, e)
		sum += e

		want := sum / float64(i+1)
		if math.Abs(user.GameStats.AverageTime-want) > 1e-9 {
			t.Fatalf("After %d answers: averageTime = %v, want %v", i+1, user.GameStats.AverageTime, want)
		}
	}

	if user.GameStats.TotalQuestions != len(elapsed) {
		t.Errorf("Expected %d total questions, got %d", len(elapsed), user.GameStats.TotalQuestions)
	}
}

func TestRecordAnswerCountsAndReward(t *testing.T) {
	user := &User{}

	user.RecordAnswer(true, 2.0)
	user.RecordAnswer(false, 2.0)
	user.RecordAnswer(true, 2.0)

	if user.GameStats.TotalQuestions != 3 {
		t.Errorf("Expected 3 total questions, got %d", user.GameStats.TotalQuestions)
	}
	if user.GameStats.TotalCorrect != 2 {
		t.Errorf("Expected 2 correct, got %d", user.GameStats.TotalCorrect)
	}
	if user.Currency != 2 {
		t.Errorf("Expected 2 currency (1 per correct answer), got %d", user.Currency)
	}
	if user.GameStats.TotalCorrect > user.GameStats.TotalQuestions {
		t.Error("totalCorrect must never exceed totalQuestions")
	}
}

func TestRecordAnswerNegativeElapsedClamped(t *testing.T) {
	user := &User{}
	user.RecordAnswer(true, -5.0)
	if user.GameStats.AverageTime != 0 {
		t.Errorf("Expected negative elapsed clamped to 0, got average %v", user.GameStats.AverageTime)
	}
}

func TestRecordSkipAutomaton(t *testing.T) {
	user := &User{Currency: 5}

	user.RecordSkip()
	if user.GameStats.SkippedQuestions != 1 || user.Currency != 5 {
		t.Errorf("After 1 skip: counter=%d currency=%d, want 1/5", user.GameStats.SkippedQuestions, user.Currency)
	}

	user.RecordSkip()
	if user.GameStats.SkippedQuestions != 2 || user.Currency != 5 {
		t.Errorf("After 2 skips: counter=%d currency=%d, want 2/5", user.GameStats.SkippedQuestions, user.Currency)
	}

	user.RecordSkip()
	if user.GameStats.SkippedQuestions != 0 {
		t.Errorf("After 3 skips counter should reset to 0, got %d", user.GameStats.SkippedQuestions)
	}
	if user.Currency != 4 {
		t.Errorf("After 3 skips currency should drop to 4, got %d", user.Currency)
	}
}

func TestRecordSkipNoNegativeCurrency(t *testing.T) {
	user := &User{Currency: 0}

	for i := 0; i < 9; i++ {
		user.RecordSkip()
	}
	if user.Currency != 0 {
		t.Errorf("Currency must never go negative, got %d", user.Currency)
	}
	if user.GameStats.SkippedQuestions != 0 {
		t.Errorf("Expected counter back at 0 after 9 skips, got %d", user.GameStats.SkippedQuestions)
	}
}

func TestBuy(t *testing.T) {
	hat := &StoreItem{ID: "hat-1", Name: "Wizard Hat", Category: CategoryHat, Price: 7}

	t.Run("successful purchase", func(t *testing.T) {
		user := &User{Currency: 10}
		if err := user.Buy(hat); err != nil {
			t.Fatalf("Buy failed: %v", err)
		}
		if user.Currency != 3 {
			t.Errorf("Expected currency 3 after buying for 7, got %d", user.Currency)
		}
		if !user.Owns("hat-1") {
			t.Error("Expected item in owned items")
		}
	})

	t.Run("already owned", func(t *testing.T) {
		user := &User{Currency: 10, Avatar: Avatar{OwnedItems: []string{"hat-1"}}}
		if err := user.Buy(hat); err != ErrAlreadyOwned {
			t.Fatalf("Expected ErrAlreadyOwned, got %v", err)
		}
		if user.Currency != 10 {
			t.Errorf("Failed purchase must not change currency, got %d", user.Currency)
		}
	})

	t.Run("insufficient currency", func(t *testing.T) {
		user := &User{Currency: 5}
		if err := user.Buy(hat); err != ErrInsufficientFunds {
			t.Fatalf("Expected ErrInsufficientFunds, got %v", err)
		}
		if len(user.Avatar.OwnedItems) != 0 {
			t.Error("Failed purchase must not change owned items")
		}
		if user.Currency != 5 {
			t.Errorf("Failed purchase must not change currency, got %d", user.Currency)
		}
	})
}

func TestEquip(t *testing.T) {
	hat := &StoreItem{ID: "hat-1", Category: CategoryHat}

	t.Run("equip unowned fails", func(t *testing.T) {
		user := &User{}
		if err := user.Equip(hat); err != ErrNotOwned {
			t.Fatalf("Expected ErrNotOwned, got %v", err)
		}
	})

	t.Run("equip sets only its slot", func(t *testing.T) {
		user := &User{Avatar: Avatar{
			OwnedItems: []string{"hat-1", "glasses-1"},
			Equipped:   AvatarEquipped{Glasses: "glasses-1"},
		}}
		if err := user.Equip(hat); err != nil {
			t.Fatalf("Equip failed: %v", err)
		}
		if user.Avatar.Equipped.Hat != "hat-1" {
			t.Errorf("Expected hat slot set, got %q", user.Avatar.Equipped.Hat)
		}
		if user.Avatar.Equipped.Glasses != "glasses-1" {
			t.Errorf("Equipping a hat must not touch the glasses slot, got %q", user.Avatar.Equipped.Glasses)
		}
	})

	t.Run("equip overwrites slot", func(t *testing.T) {
		other := &StoreItem{ID: "glasses-2", Category: CategoryGlasses}
		user := &User{Avatar: Avatar{
			OwnedItems: []string{"glasses-1", "glasses-2"},
			Equipped:   AvatarEquipped{Glasses: "glasses-1"},
		}}
		if err := user.Equip(other); err != nil {
			t.Fatalf("Equip failed: %v", err)
		}
		if user.Avatar.Equipped.Glasses != "glasses-2" {
			t.Errorf("Expected slot overwritten with glasses-2, got %q", user.Avatar.Equipped.Glasses)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		weird := &StoreItem{ID: "x", Category: "cape"}
		user := &User{Avatar: Avatar{OwnedItems: []string{"x"}}}
		if err := user.Equip(weird); err != ErrUnknownCategory {
			t.Fatalf("Expected ErrUnknownCategory, got %v", err)
		}
	})

	// full scenario: buy then equip
	t.Run("buy then equip", func(t *testing.T) {
		user := &User{Currency: 10}
		cape := &StoreItem{ID: "shirt-1", Category: CategoryShirt, Price: 7}
		if err := user.Buy(cape); err != nil {
			t.Fatalf("Buy failed: %v", err)
		}
		if err := user.Equip(cape); err != nil {
			t.Fatalf("Equip failed: %v", err)
		}
		if user.Avatar.Equipped.Shirt != "shirt-1" {
			t.Errorf("Expected shirt slot shirt-1, got %q", user.Avatar.Equipped.Shirt)
		}
		if user.Currency != 3 {
			t.Errorf("Expected currency 3, got %d", user.Currency)
		}
	})
}

func TestAccuracy(t *testing.T) {
	user := &User{}
	if user.Accuracy() != 0 {
		t.Errorf("Expected accuracy 0 with no questions, got %v", user.Accuracy())
	}

	user.GameStats.TotalQuestions = 4
	user.GameStats.TotalCorrect = 3
	if user.Accuracy() != 0.75 {
		t.Errorf("Expected accuracy 0.75, got %v", user.Accuracy())
	}
}
