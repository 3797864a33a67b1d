package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
)

const recentScoreLimit = 10

// DashboardService aggregates the admin and learner dashboard views.
type DashboardService interface {
	AdminOverview() (*dto.AdminDashboard, error)
	LearnerOverview(userID uint, subjectSearch, quizSearch string) (*dto.LearnerDashboard, error)
}

type dashboardService struct {
	userRepo    repository.UserRepository
	subjectRepo repository.SubjectRepository
	chapterRepo repository.ChapterRepository
	quizRepo    repository.QuizRepository
	scoreRepo   repository.ScoreRepository
}

func NewDashboardService(
	userRepo repository.UserRepository,
	subjectRepo repository.SubjectRepository,
	chapterRepo repository.ChapterRepository,
	quizRepo repository.QuizRepository,
	scoreRepo repository.ScoreRepository,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		subjectRepo: subjectRepo,
		chapterRepo: chapterRepo,
		quizRepo:    quizRepo,
		scoreRepo:   scoreRepo,
	}
}

// AdminOverview gathers the aggregate counts and the ten most recent score
// rows.
func (s *dashboardService) AdminOverview() (*dto.AdminDashboard, error) {
	var (
		stats dto.AdminStats
		err   error
	)
	if stats.TotalUsers, err = s.userRepo.CountNonAdmin(); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.TotalSubjects, err = s.subjectRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}
	if stats.TotalChapters, err = s.chapterRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count chapters: %w", err)
	}
	if stats.TotalQuizzes, err = s.quizRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count quizzes: %w", err)
	}
	if stats.QuizzesAttempted, err = s.scoreRepo.Count(); err != nil {
		return nil, fmt.Errorf("failed to count scores: %w", err)
	}

	recent, err := s.scoreRepo.FindRecent(recentScoreLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent scores: %w", err)
	}

	return &dto.AdminDashboard{Stats: stats, RecentScores: toScoreViews(recent)}, nil
}

// LearnerOverview lists quizzes and subjects, optionally filtered, plus the
// learner's own attempt history and mean percentage (0 with no attempts).
func (s *dashboardService) LearnerOverview(userID uint, subjectSearch, quizSearch string) (*dto.LearnerDashboard, error) {
	quizzes, err := s.quizRepo.FindFiltered(subjectSearch, quizSearch)
	if err != nil {
		return nil, fmt.Errorf("failed to load quizzes: %w", err)
	}

	var subjects []model.Subject
	if subjectSearch != "" {
		subjects, err = s.subjectRepo.FindByNameLike(subjectSearch)
	} else {
		subjects, err = s.subjectRepo.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subjects: %w", err)
	}

	scores, err := s.scoreRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	average := 0.0
	if len(scores) > 0 {
		sum := 0.0
		for _, score := range scores {
			if score.TotalQuestions > 0 {
				sum += float64(score.Score) / float64(score.TotalQuestions) * 100
			}
		}
		average = sum / float64(len(scores))
	}

	return &dto.LearnerDashboard{
		Quizzes:       quizzes,
		Subjects:      subjects,
		Scores:        toScoreViews(scores),
		TotalAttempts: len(scores),
		AverageScore:  average,
	}, nil
}

func toScoreViews(scores []model.Score) []dto.ScoreView {
	views := make([]dto.ScoreView, 0, len(scores))
	for _, score := range scores {
		var view dto.ScoreView
		_ = copier.Copy(&view, &score)
		view.Username = score.User.Username
		view.QuizTitle = score.Quiz.Title
		views = append(views, view)
	}
	return views
}
