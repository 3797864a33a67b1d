package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
	"github.com/lshigami/QuizMaster/internal/session"
	"github.com/rs/zerolog/log"
)

const userContextKey = "current_user"

// RequireAuth verifies the session cookie, loads the session-bound user and
// stores it in the request context. Unauthenticated requests are redirected
// to the login page.
func RequireAuth(sessions *session.Manager, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.UserID(c)
		if err != nil {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		user, err := userRepo.FindByID(userID)
		if err != nil {
			log.Warn().Err(err).Uint("user_id", userID).Msg("Session references unknown user")
			sessions.Clear(c)
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin gates a handler group to admin accounts. Must run after
// RequireAuth. Non-admins are flashed and sent to their own dashboard.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			session.AddFlash(c, "danger", "Unauthorized access.")
			c.Redirect(http.StatusFound, "/user/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireLearner bars admin accounts from learner-only operations such as
// attempting quizzes; admins are redirected to the admin dashboard.
func RequireLearner() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		if user.IsAdmin {
			c.Redirect(http.StatusFound, "/admin/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session-bound user placed by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *model.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
