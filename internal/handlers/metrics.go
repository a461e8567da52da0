package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	questionsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mathgame_questions_served_total",
			Help: "Total number of questions generated and served",
		},
	)

	answersSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathgame_answers_submitted_total",
			Help: "Total number of submitted answers by correctness",
		},
		[]string{"correct"},
	)

	questionsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mathgame_questions_skipped_total",
			Help: "Total number of skipped questions",
		},
	)

	answerTime = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mathgame_answer_time_seconds",
			Help:    "Reported time taken per answered question",
			Buckets: prometheus.DefBuckets,
		},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathgame_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	itemsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mathgame_store_purchases_total",
			Help: "Total number of successful store purchases",
		},
	)
)
