package dto

import (
	"time"

	"github.com/lshigami/QuizMaster/internal/model"
)

// AdminStats are the aggregate counts shown on the admin dashboard.
type AdminStats struct {
	TotalUsers       int64 `json:"total_users"` // non-admin accounts only
	TotalSubjects    int64 `json:"total_subjects"`
	TotalChapters    int64 `json:"total_chapters"`
	TotalQuizzes     int64 `json:"total_quizzes"`
	QuizzesAttempted int64 `json:"quizzes_attempted"`
}

// ScoreView flattens a Score with its user and quiz for display.
type ScoreView struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	QuizTitle      string    `json:"quiz_title"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

// AdminDashboard is everything the admin dashboard renders.
type AdminDashboard struct {
	Stats        AdminStats  `json:"stats"`
	RecentScores []ScoreView `json:"recent_scores"`
}

// LearnerDashboard is everything the learner dashboard renders.
type LearnerDashboard struct {
	Quizzes       []model.Quiz    `json:"quizzes"`
	Subjects      []model.Subject `json:"subjects"`
	Scores        []ScoreView     `json:"scores"`
	TotalAttempts int             `json:"total_attempts"`
	AverageScore  float64         `json:"average_score"`
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []model.User `json:"users"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	TotalPages int          `json:"total_pages"`
}

// ErrorResponse is the JSON error shape for the lookup endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
