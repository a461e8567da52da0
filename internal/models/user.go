package models

import (
	"errors"
	"time"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// skipPenaltyThreshold is the number of consecutive skips that resets the
// counter and costs one unit of currency.
const skipPenaltyThreshold = 3

var (
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrInsufficientFunds = errors.New("not enough currency")
	ErrNotOwned          = errors.New("item not owned")
	ErrUnknownCategory   = errors.New("unknown item category")
)

type GameStats struct {
	TotalCorrect     int     `bson:"total_correct" json:"totalCorrect"`
	TotalQuestions   int     `bson:"total_questions" json:"totalQuestions"`
	AverageTime      float64 `bson:"average_time" json:"averageTime"`
	SkippedQuestions int     `bson:"skipped_questions" json:"skippedQuestions"`
}

type AvatarEquipped struct {
	Hat     string `bson:"hat,omitempty" json:"hat,omitempty"`
	Glasses string `bson:"glasses,omitempty" json:"glasses,omitempty"`
	Shirt   string `bson:"shirt,omitempty" json:"shirt,omitempty"`
}

type Avatar struct {
	Equipped   AvatarEquipped `bson:"equipped" json:"equipped"`
	OwnedItems []string       `bson:"owned_items" json:"ownedItems"`
}

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Grade        string    `bson:"grade" json:"grade"`
	SchoolID     string    `bson:"school_id,omitempty" json:"schoolId,omitempty"`
	Currency     int       `bson:"currency" json:"currency"`
	GameStats    GameStats `bson:"game_stats" json:"gameStats"`
	Avatar       Avatar    `bson:"avatar" json:"avatar"`
	Version      int64     `bson:"version" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// RecordAnswer applies one answered question to the running stats and pays
// out one currency per correct answer. The average is maintained with the
// incremental mean recurrence so no per-answer history is kept.
func (u *User) RecordAnswer(correct bool, elapsedSeconds float64) {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}

	u.GameStats.TotalQuestions++
	if correct {
		u.GameStats.TotalCorrect++
		u.Currency++
	}

	n := float64(u.GameStats.TotalQuestions)
	u.GameStats.AverageTime = (u.GameStats.AverageTime*(n-1) + elapsedSeconds) / n
}

// RecordSkip advances the skip counter. The third consecutive skip resets
// the counter and deducts one currency when the balance allows it.
func (u *User) RecordSkip() {
	u.GameStats.SkippedQuestions++
	if u.GameStats.SkippedQuestions >= skipPenaltyThreshold {
		u.GameStats.SkippedQuestions = 0
		if u.Currency > 0 {
			u.Currency--
		}
	}
}

func (u *User) Owns(itemID string) bool {
	for _, id := range u.Avatar.OwnedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// Buy deducts the item price and records ownership.
func (u *User) Buy(item *StoreItem) error {
	if u.Owns(item.ID) {
		return ErrAlreadyOwned
	}
	if u.Currency < item.Price {
		return ErrInsufficientFunds
	}
	u.Currency -= item.Price
	u.Avatar.OwnedItems = append(u.Avatar.OwnedItems, item.ID)
	return nil
}

// Equip sets the item as the active one for its category slot. Equipping
// overwrites whatever was in the slot before.
func (u *User) Equip(item *StoreItem) error {
	if !u.Owns(item.ID) {
		return ErrNotOwned
	}
	switch item.Category {
	case CategoryHat:
		u.Avatar.Equipped.Hat = item.ID
	case CategoryGlasses:
		u.Avatar.Equipped.Glasses = item.ID
	case CategoryShirt:
		u.Avatar.Equipped.Shirt = item.ID
	default:
		return ErrUnknownCategory
	}
	return nil
}

// Accuracy returns totalCorrect/totalQuestions, or 0 before any answers.
func (u *User) Accuracy() float64 {
	if u.GameStats.TotalQuestions == 0 {
		return 0
	}
	return float64(u.GameStats.TotalCorrect) / float64(u.GameStats.TotalQuestions)
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
