package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/QuizMaster/internal/middleware"
	"github.com/lshigami/QuizMaster/internal/session"
)

// ParseID reads a numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

// FlashFormErrors converts binding/validation failures into per-field flash
// messages, matching the form-error surfacing contract.
func FlashFormErrors(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			session.AddFlash(c, "danger", fmt.Sprintf("Error in %s: failed %s validation", fe.Field(), fe.Tag()))
		}
		return
	}
	session.AddFlash(c, "danger", "Invalid form submission.")
}

// Render draws a template with the pending flash messages and the
// session-bound user merged into the data.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = session.TakeFlashes(c)
	if user := middleware.CurrentUser(c); user != nil {
		data["CurrentUser"] = user
	}
	c.HTML(status, name, data)
}

// NotFound renders the shared not-found page.
func NotFound(c *gin.Context, what string) {
	Render(c, http.StatusNotFound, "error.html", gin.H{"Message": what + " not found"})
}

// ServerError renders the shared error page for unexpected failures.
func ServerError(c *gin.Context) {
	Render(c, http.StatusInternalServerError, "error.html", gin.H{"Message": "Something went wrong. Please try again."})
}
