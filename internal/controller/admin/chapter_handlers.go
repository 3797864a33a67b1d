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

// Chapters lists all chapters with the subject dropdown (GET) or creates one
// (POST).
func (ctrl *AdminController) Chapters(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		ctrl.createChapter(c)
		return
	}

	chapters, err := ctrl.chapterService.ListChapters()
	if err != nil {
		log.Error().Err(err).Msg("Admin chapters: list failed")
		session.AddFlash(c, "danger", "Failed to load chapters.")
	}
	subjects, err := ctrl.subjectService.ListSubjects()
	if err != nil {
		log.Error().Err(err).Msg("Admin chapters: subject list failed")
	}
	controller.Render(c, http.StatusOK, "admin_chapters.html", gin.H{
		"Chapters": chapters,
		"Subjects": subjects,
	})
}

// AddChapter is the form-post alias for chapter creation.
func (ctrl *AdminController) AddChapter(c *gin.Context) {
	ctrl.createChapter(c)
}

func (ctrl *AdminController) createChapter(c *gin.Context) {
	var form dto.ChapterForm
	if err := c.ShouldBind(&form); err != nil {
		controller.FlashFormErrors(c, err)
		c.Redirect(http.StatusFound, "/admin/chapters")
		return
	}
	if _, err := ctrl.chapterService.CreateChapter(form); err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			session.AddFlash(c, "danger", err.Error())
		} else {
			log.Error().Err(err).Msg("Admin chapters: create failed")
			session.AddFlash(c, "danger", "Failed to add chapter.")
		}
	} else {
		session.AddFlash(c, "success", "Chapter added successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/chapters")
}

// EditChapter pre-populates the edit form (GET) or overwrites the chapter
// (POST).
func (ctrl *AdminController) EditChapter(c *gin.Context) {
	id, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Chapter")
		return
	}

	if c.Request.Method == http.MethodPost {
		var form dto.ChapterForm
		if err := c.ShouldBind(&form); err != nil {
			controller.FlashFormErrors(c, err)
			c.Redirect(http.StatusFound, "/admin/edit_chapter/"+c.Param("id"))
			return
		}
		if _, err := ctrl.chapterService.UpdateChapter(id, form); err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				controller.NotFound(c, "Chapter")
				return
			case errors.Is(err, service.ErrSubjectNotFound):
				session.AddFlash(c, "danger", err.Error())
			default:
				log.Error().Err(err).Uint("chapter_id", id).Msg("Admin chapters: update failed")
				session.AddFlash(c, "danger", "Failed to update chapter.")
			}
			c.Redirect(http.StatusFound, "/admin/chapters")
			return
		}
		session.AddFlash(c, "success", "Chapter updated successfully!")
		c.Redirect(http.StatusFound, "/admin/chapters")
		return
	}

	chapter, err := ctrl.chapterService.GetChapter(id)
	if err != nil {
		controller.NotFound(c, "Chapter")
		return
	}
	subjects, err := ctrl.subjectService.ListSubjects()
	if err != nil {
		log.Error().Err(err).Msg("Admin chapters: subject list failed")
	}
	controller.Render(c, http.StatusOK, "admin_edit_chapter.html", gin.H{
		"Chapter":  chapter,
		"Subjects": subjects,
	})
}

// DeleteChapter removes a chapter and all its descendants.
func (ctrl *AdminController) DeleteChapter(c *gin.Context) {
	id, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Chapter")
		return
	}
	if err := ctrl.chapterService.DeleteChapter(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			controller.NotFound(c, "Chapter")
			return
		}
		log.Error().Err(err).Uint("chapter_id", id).Msg("Admin chapters: delete failed")
		session.AddFlash(c, "danger", "Failed to delete chapter.")
	} else {
		session.AddFlash(c, "success", "Chapter deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/chapters")
}

// GetChapters serves the dependent-dropdown lookup: chapters of one subject
// as JSON id/name pairs. Missing subject_id is a bad request.
func (ctrl *AdminController) GetChapters(c *gin.Context) {
	raw := c.Query("subject_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Subject ID is required"})
		return
	}
	subjectID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid subject ID"})
		return
	}

	options, err := ctrl.chapterService.ListChaptersBySubject(uint(subjectID))
	if err != nil {
		log.Error().Err(err).Msg("Admin chapters: lookup failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load chapters"})
		return
	}
	c.JSON(http.StatusOK, options)
}
