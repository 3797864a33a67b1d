package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMaster/internal/controller"
	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/service"
	"github.com/lshigami/QuizMaster/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Quizzes lists all quizzes with the dropdown data (GET) or creates one
// (POST).
func (ctrl *AdminController) Quizzes(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		ctrl.createQuiz(c)
		return
	}

	quizzes, err := ctrl.quizService.ListQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("Admin quizzes: list failed")
		session.AddFlash(c, "danger", "Failed to load quizzes.")
	}
	subjects, err := ctrl.subjectService.ListSubjects()
	if err != nil {
		log.Error().Err(err).Msg("Admin quizzes: subject list failed")
	}
	controller.Render(c, http.StatusOK, "admin_quizzes.html", gin.H{
		"Quizzes":  quizzes,
		"Subjects": subjects,
	})
}

// AddQuiz is the form-post alias for quiz creation.
func (ctrl *AdminController) AddQuiz(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusFound, "/admin/quizzes")
		return
	}
	ctrl.createQuiz(c)
}

func (ctrl *AdminController) createQuiz(c *gin.Context) {
	var form dto.QuizForm
	if err := c.ShouldBind(&form); err != nil {
		controller.FlashFormErrors(c, err)
		c.Redirect(http.StatusFound, "/admin/quizzes")
		return
	}
	if _, err := ctrl.quizService.CreateQuiz(form); err != nil {
		switch {
		case errors.Is(err, service.ErrQuizDateInPast),
			errors.Is(err, service.ErrInvalidQuizDate),
			errors.Is(err, service.ErrInvalidDuration),
			errors.Is(err, service.ErrChapterNotFound):
			session.AddFlash(c, "danger", err.Error())
		default:
			log.Error().Err(err).Msg("Admin quizzes: create failed")
			session.AddFlash(c, "danger", "Failed to add quiz.")
		}
	} else {
		session.AddFlash(c, "success", "Quiz added successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/quizzes")
}

// EditQuiz pre-populates the edit form (GET) or overwrites the quiz (POST).
func (ctrl *AdminController) EditQuiz(c *gin.Context) {
	id, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}

	if c.Request.Method == http.MethodPost {
		var form dto.QuizForm
		if err := c.ShouldBind(&form); err != nil {
			controller.FlashFormErrors(c, err)
			c.Redirect(http.StatusFound, "/admin/edit_quiz/"+c.Param("id"))
			return
		}
		if _, err := ctrl.quizService.UpdateQuiz(id, form); err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				controller.NotFound(c, "Quiz")
				return
			case errors.Is(err, service.ErrInvalidQuizDate),
				errors.Is(err, service.ErrInvalidDuration),
				errors.Is(err, service.ErrChapterNotFound):
				session.AddFlash(c, "danger", err.Error())
			default:
				log.Error().Err(err).Uint("quiz_id", id).Msg("Admin quizzes: update failed")
				session.AddFlash(c, "danger", "Failed to update quiz.")
			}
			c.Redirect(http.StatusFound, "/admin/quizzes")
			return
		}
		session.AddFlash(c, "success", "Quiz updated successfully!")
		c.Redirect(http.StatusFound, "/admin/quizzes")
		return
	}

	quiz, err := ctrl.quizService.GetQuiz(id)
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}
	chapters, err := ctrl.chapterService.ListChapters()
	if err != nil {
		log.Error().Err(err).Msg("Admin quizzes: chapter list failed")
	}
	controller.Render(c, http.StatusOK, "admin_edit_quiz.html", gin.H{
		"Quiz":     quiz,
		"Chapters": chapters,
	})
}

// DeleteQuiz removes a quiz with its questions and scores.
func (ctrl *AdminController) DeleteQuiz(c *gin.Context) {
	id, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Quiz")
		return
	}
	if err := ctrl.quizService.DeleteQuiz(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			controller.NotFound(c, "Quiz")
			return
		}
		log.Error().Err(err).Uint("quiz_id", id).Msg("Admin quizzes: delete failed")
		session.AddFlash(c, "danger", "Failed to delete quiz.")
	} else {
		session.AddFlash(c, "success", "Quiz deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/quizzes")
}
