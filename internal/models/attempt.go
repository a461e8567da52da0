package models

import "time"

// AnswerAttempt is the persisted record of one submitted answer.
type AnswerAttempt struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	Question      string    `bson:"question" json:"question"`
	UserAnswer    int       `bson:"user_answer" json:"userAnswer"`
	CorrectAnswer int       `bson:"correct_answer" json:"correctAnswer"`
	IsCorrect     bool      `bson:"is_correct" json:"isCorrect"`
	TimeTaken     float64   `bson:"time_taken" json:"timeTaken"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
