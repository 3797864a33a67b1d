package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMaster/internal/controller"
	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/service"
	"github.com/lshigami/QuizMaster/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Questions renders the question list for one quiz.
func (ctrl *AdminController) Questions(c *gin.Context) {
	quizID, err := controller.ParseID(c, "quiz_id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}
	quiz, err := ctrl.quizService.GetQuiz(quizID)
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}
	questions, err := ctrl.questionService.ListQuestions(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quiz_id", quizID).Msg("Admin questions: list failed")
		session.AddFlash(c, "danger", "Failed to load questions.")
	}
	controller.Render(c, http.StatusOK, "admin_questions.html", gin.H{
		"Quiz":      quiz,
		"Questions": questions,
	})
}

// AddQuestion creates a question under the quiz.
func (ctrl *AdminController) AddQuestion(c *gin.Context) {
	quizID, err := controller.ParseID(c, "quiz_id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}

	var form dto.QuestionForm
	if err := c.ShouldBind(&form); err != nil {
		controller.FlashFormErrors(c, err)
		ctrl.backToQuestions(c, quizID)
		return
	}
	if _, err := ctrl.questionService.AddQuestion(quizID, form); err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			controller.NotFound(c, "Quiz")
			return
		case errors.Is(err, service.ErrCorrectOptionGap):
			session.AddFlash(c, "danger", err.Error())
		default:
			log.Error().Err(err).Uint("quiz_id", quizID).Msg("Admin questions: create failed")
			session.AddFlash(c, "danger", "An error occurred while adding the question.")
		}
	} else {
		session.AddFlash(c, "success", "Question added successfully!")
	}
	ctrl.backToQuestions(c, quizID)
}

// EditQuestion overwrites the question named by the form's question_id.
func (ctrl *AdminController) EditQuestion(c *gin.Context) {
	quizID, err := controller.ParseID(c, "quiz_id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}

	var form dto.QuestionForm
	if err := c.ShouldBind(&form); err != nil {
		controller.FlashFormErrors(c, err)
		ctrl.backToQuestions(c, quizID)
		return
	}
	if _, err := ctrl.questionService.UpdateQuestion(quizID, form); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, service.ErrQuestionQuizMixup):
			controller.NotFound(c, "Question")
			return
		case errors.Is(err, service.ErrCorrectOptionGap):
			session.AddFlash(c, "danger", err.Error())
		default:
			log.Error().Err(err).Uint("quiz_id", quizID).Msg("Admin questions: update failed")
			session.AddFlash(c, "danger", "Failed to update question.")
		}
	} else {
		session.AddFlash(c, "success", "Question updated successfully!")
	}
	ctrl.backToQuestions(c, quizID)
}

// DeleteQuestion removes the question named by the form's question_id.
func (ctrl *AdminController) DeleteQuestion(c *gin.Context) {
	quizID, err := controller.ParseID(c, "quiz_id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}
	questionID, err := strconv.ParseUint(c.PostForm("question_id"), 10, 32)
	if err != nil {
		controller.NotFound(c, "Question")
		return
	}

	if err := ctrl.questionService.DeleteQuestion(quizID, uint(questionID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, service.ErrQuestionQuizMixup) {
			controller.NotFound(c, "Question")
			return
		}
		log.Error().Err(err).Uint("quiz_id", quizID).Msg("Admin questions: delete failed")
		session.AddFlash(c, "danger", "Failed to delete question.")
	} else {
		session.AddFlash(c, "success", "Question deleted successfully!")
	}
	ctrl.backToQuestions(c, quizID)
}

func (ctrl *AdminController) backToQuestions(c *gin.Context, quizID uint) {
	c.Redirect(http.StatusFound, "/admin/questions/"+strconv.FormatUint(uint64(quizID), 10))
}
