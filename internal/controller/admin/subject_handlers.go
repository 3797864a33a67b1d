package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMaster/internal/controller"
	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Subjects lists all subjects (GET) or creates one (POST).
func (ctrl *AdminController) Subjects(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		var form dto.SubjectForm
		if err := c.ShouldBind(&form); err != nil {
			controller.FlashFormErrors(c, err)
			c.Redirect(http.StatusFound, "/admin/subjects")
			return
		}
		if _, err := ctrl.subjectService.CreateSubject(form); err != nil {
			log.Error().Err(err).Msg("Admin subjects: create failed")
			session.AddFlash(c, "danger", "Failed to add subject.")
		} else {
			session.AddFlash(c, "success", "Subject added successfully!")
		}
		c.Redirect(http.StatusFound, "/admin/subjects")
		return
	}

	subjects, err := ctrl.subjectService.ListSubjects()
	if err != nil {
		log.Error().Err(err).Msg("Admin subjects: list failed")
		session.AddFlash(c, "danger", "Failed to load subjects.")
	}
	controller.Render(c, http.StatusOK, "admin_subjects.html", gin.H{"Subjects": subjects})
}

// EditSubject pre-populates the edit form (GET) or overwrites the subject's
// fields (POST).
func (ctrl *AdminController) EditSubject(c *gin.Context) {
	id, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Subject")
		return
	}

	if c.Request.Method == http.MethodPost {
		var form dto.SubjectForm
		if err := c.ShouldBind(&form); err != nil {
			controller.FlashFormErrors(c, err)
			c.Redirect(http.StatusFound, "/admin/edit_subject/"+c.Param("id"))
			return
		}
		if _, err := ctrl.subjectService.UpdateSubject(id, form); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				controller.NotFound(c, "Subject")
				return
			}
			log.Error().Err(err).Uint("subject_id", id).Msg("Admin subjects: update failed")
			session.AddFlash(c, "danger", "Failed to update subject.")
			c.Redirect(http.StatusFound, "/admin/subjects")
			return
		}
		session.AddFlash(c, "success", "Subject updated successfully!")
		c.Redirect(http.StatusFound, "/admin/subjects")
		return
	}

	subject, err := ctrl.subjectService.GetSubject(id)
	if err != nil {
		controller.NotFound(c, "Subject")
		return
	}
	controller.Render(c, http.StatusOK, "admin_edit_subject.html", gin.H{"Subject": subject})
}

// DeleteSubject removes a subject and all its descendants.
func (ctrl *AdminController) DeleteSubject(c *gin.Context) {
	id, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "Subject")
		return
	}
	if err := ctrl.subjectService.DeleteSubject(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			controller.NotFound(c, "Subject")
			return
		}
		log.Error().Err(err).Uint("subject_id", id).Msg("Admin subjects: delete failed")
		session.AddFlash(c, "danger", "Failed to delete subject.")
	} else {
		session.AddFlash(c, "success", "Subject deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/subjects")
}
