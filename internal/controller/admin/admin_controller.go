package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMaster/internal/controller"
	"github.com/lshigami/QuizMaster/internal/service"
	"github.com/lshigami/QuizMaster/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminController serves every admin-gated screen: dashboard, catalog
// management and user management. Role gating happens in the middleware the
// routes are registered under, not here.
type AdminController struct {
	subjectService   service.SubjectService
	chapterService   service.ChapterService
	quizService      service.QuizService
	questionService  service.QuestionService
	dashboardService service.DashboardService
	userAdminService service.UserAdminService
}

func NewAdminController(
	subjectService service.SubjectService,
	chapterService service.ChapterService,
	quizService service.QuizService,
	questionService service.QuestionService,
	dashboardService service.DashboardService,
	userAdminService service.UserAdminService,
) *AdminController {
	return &AdminController{
		subjectService:   subjectService,
		chapterService:   chapterService,
		quizService:      quizService,
		questionService:  questionService,
		dashboardService: dashboardService,
		userAdminService: userAdminService,
	}
}

// Dashboard renders the aggregate counts and the most recent attempts.
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	overview, err := ctrl.dashboardService.AdminOverview()
	if err != nil {
		log.Error().Err(err).Msg("Admin dashboard: failed to load overview")
		controller.ServerError(c)
		return
	}
	controller.Render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Stats":        overview.Stats,
		"RecentScores": overview.RecentScores,
	})
}

// Users renders one page of the user listing, optionally filtered.
func (ctrl *AdminController) Users(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	userPage, err := ctrl.userAdminService.ListUsers(search, page)
	if err != nil {
		log.Error().Err(err).Msg("Admin users: failed to list users")
		controller.ServerError(c)
		return
	}
	controller.Render(c, http.StatusOK, "admin_users.html", gin.H{
		"Page":   userPage,
		"Search": search,
	})
}

// DeleteUser removes a non-admin user and their scores.
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	id, err := controller.ParseID(c, "id")
	if err != nil {
		controller.NotFound(c, "User")
		return
	}
	if err := ctrl.userAdminService.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCannotDeleteAdmin):
			session.AddFlash(c, "danger", "Cannot delete admin users.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			controller.NotFound(c, "User")
			return
		default:
			log.Error().Err(err).Uint("user_id", id).Msg("Admin users: delete failed")
			session.AddFlash(c, "danger", "Error deleting user.")
		}
	} else {
		session.AddFlash(c, "success", "User deleted successfully.")
	}
	c.Redirect(http.StatusFound, "/admin/users")
}
