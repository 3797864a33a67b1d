package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMaster/internal/controller"
	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/repository"
	"github.com/lshigami/QuizMaster/internal/service"
	"github.com/lshigami/QuizMaster/internal/session"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
	sessions    *session.Manager
	userRepo    repository.UserRepository
}

func NewAuthController(authService service.AuthService, sessions *session.Manager, userRepo repository.UserRepository) *AuthController {
	return &AuthController{authService: authService, sessions: sessions, userRepo: userRepo}
}

// Home redirects the root path to the login page.
func (ctrl *AuthController) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/auth/login")
}

// ShowLogin renders the login form; an already authenticated visitor goes
// straight to their dashboard.
func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	if ctrl.redirectAuthenticated(c) {
		return
	}
	controller.Render(c, http.StatusOK, "login.html", nil)
}

// Login checks the submitted credentials and establishes a session.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		session.AddFlash(c, "danger", "Invalid email or password.")
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	user, err := ctrl.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.Error().Err(err).Msg("Login: authentication failed")
		}
		session.AddFlash(c, "danger", "Invalid email or password.")
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	if err := ctrl.sessions.Issue(c, user.ID); err != nil {
		log.Error().Err(err).Msg("Login: failed to issue session")
		session.AddFlash(c, "danger", "An error occurred. Please try again.")
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	if user.IsAdmin {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/user/dashboard")
}

// ShowRegister renders the registration form.
func (ctrl *AuthController) ShowRegister(c *gin.Context) {
	if ctrl.redirectAuthenticated(c) {
		return
	}
	controller.Render(c, http.StatusOK, "register.html", nil)
}

// Register validates the submission and creates a non-admin account.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		controller.FlashFormErrors(c, err)
		c.Redirect(http.StatusFound, "/auth/register")
		return
	}

	if _, err := ctrl.authService.Register(req); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrInvalidDateOfBirth):
			session.AddFlash(c, "danger", err.Error())
		default:
			log.Error().Err(err).Msg("Register: service error")
			session.AddFlash(c, "danger", "An error occurred. Please try again.")
		}
		c.Redirect(http.StatusFound, "/auth/register")
		return
	}

	session.AddFlash(c, "success", "Account created successfully! Please log in.")
	c.Redirect(http.StatusFound, "/auth/login")
}

// Logout clears the session and returns to the login page.
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/auth/login")
}

func (ctrl *AuthController) redirectAuthenticated(c *gin.Context) bool {
	userID, err := ctrl.sessions.UserID(c)
	if err != nil {
		return false
	}
	user, err := ctrl.userRepo.FindByID(userID)
	if err != nil {
		return false
	}
	if user.IsAdmin {
		c.Redirect(http.StatusFound, "/admin/dashboard")
	} else {
		c.Redirect(http.StatusFound, "/user/dashboard")
	}
	return true
}
