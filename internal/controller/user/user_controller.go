package user

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMaster/internal/controller"
	"github.com/lshigami/QuizMaster/internal/middleware"
	"github.com/lshigami/QuizMaster/internal/service"
	"github.com/lshigami/QuizMaster/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UserController serves the learner-facing screens: dashboard, quiz attempts
// and results.
type UserController struct {
	dashboardService service.DashboardService
	attemptService   service.AttemptService
}

func NewUserController(dashboardService service.DashboardService, attemptService service.AttemptService) *UserController {
	return &UserController{dashboardService: dashboardService, attemptService: attemptService}
}

// Dashboard lists quizzes and subjects, optionally filtered by the search
// boxes, plus the learner's own attempt history.
func (ctrl *UserController) Dashboard(c *gin.Context) {
	me := middleware.CurrentUser(c)
	subjectSearch := c.Query("subject_search")
	quizSearch := c.Query("quiz_search")

	overview, err := ctrl.dashboardService.LearnerOverview(me.ID, subjectSearch, quizSearch)
	if err != nil {
		log.Error().Err(err).Uint("user_id", me.ID).Msg("User dashboard: failed to load overview")
		controller.ServerError(c)
		return
	}
	controller.Render(c, http.StatusOK, "user_dashboard.html", gin.H{
		"Quizzes":       overview.Quizzes,
		"Subjects":      overview.Subjects,
		"Scores":        overview.Scores,
		"TotalAttempts": overview.TotalAttempts,
		"AverageScore":  overview.AverageScore,
		"SubjectSearch": subjectSearch,
		"QuizSearch":    quizSearch,
	})
}

// ShowQuiz renders the attempt form for one quiz.
func (ctrl *UserController) ShowQuiz(c *gin.Context) {
	quizID, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}
	quiz, questions, err := ctrl.attemptService.GetQuizWithQuestions(quizID)
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}
	controller.Render(c, http.StatusOK, "user_quiz.html", gin.H{
		"Quiz":      quiz,
		"Questions": questions,
	})
}

// SubmitQuiz grades the posted answers and records a Score. Answers arrive as
// question_<id> form fields holding the selected option number; anything
// missing or unparseable counts as incorrect.
func (ctrl *UserController) SubmitQuiz(c *gin.Context) {
	me := middleware.CurrentUser(c)
	quizID, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		session.AddFlash(c, "danger", "Invalid form submission.")
		c.Redirect(http.StatusFound, "/user/quiz/"+c.Param("id"))
		return
	}

	answers := make(map[uint]int)
	for field, values := range c.Request.PostForm {
		if len(values) == 0 || !strings.HasPrefix(field, "question_") {
			continue
		}
		questionID, err := strconv.ParseUint(strings.TrimPrefix(field, "question_"), 10, 32)
		if err != nil {
			continue
		}
		selected, err := strconv.Atoi(values[0])
		if err != nil {
			continue
		}
		answers[uint(questionID)] = selected
	}

	if _, err := ctrl.attemptService.SubmitAttempt(me.ID, quizID, answers); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			controller.NotFound(c, "Quiz")
			return
		}
		log.Error().Err(err).Uint("quiz_id", quizID).Msg("Quiz attempt: submission failed")
		session.AddFlash(c, "danger", "Failed to submit quiz.")
		c.Redirect(http.StatusFound, "/user/quiz/"+c.Param("id"))
		return
	}

	session.AddFlash(c, "success", "Quiz submitted successfully!")
	c.Redirect(http.StatusFound, "/user/quiz/"+c.Param("id")+"/results")
}

// Results shows the learner's most recent score for the quiz.
func (ctrl *UserController) Results(c *gin.Context) {
	me := middleware.CurrentUser(c)
	quizID, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}
	score, err := ctrl.attemptService.LatestResult(me.ID, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			controller.NotFound(c, "Result")
			return
		}
		log.Error().Err(err).Uint("quiz_id", quizID).Msg("Quiz results: lookup failed")
		controller.NotFound(c, "Result")
		return
	}
	controller.Render(c, http.StatusOK, "user_quiz_results.html", gin.H{"Score": score})
}
