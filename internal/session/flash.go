package session

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "qm_flash"

// Flash is a one-time notice shown on the next rendered page.
type Flash struct {
	Category string // "success", "danger", "warning"
	Message  string
}

// AddFlash queues a flash message for the next rendered page. Multiple
// messages accumulate within one redirect cycle.
func AddFlash(c *gin.Context, category, message string) {
	entries := pendingFlashes(c)
	entries = append(entries, category+"|"+message)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(strings.Join(entries, "\n")),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeFlashes returns queued flash messages and clears them.
func TakeFlashes(c *gin.Context) []Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return parseFlashes(raw)
}

func pendingFlashes(c *gin.Context) []string {
	// Cookies written earlier in this same request take precedence over
	// what the client sent.
	for _, line := range c.Writer.Header().Values("Set-Cookie") {
		if strings.HasPrefix(line, flashCookie+"=") {
			value := strings.TrimPrefix(strings.SplitN(line, ";", 2)[0], flashCookie+"=")
			if decoded, err := url.QueryUnescape(value); err == nil && decoded != "" {
				return strings.Split(decoded, "\n")
			}
			return nil
		}
	}
	// c.Cookie already unescapes the value.
	if raw, err := c.Cookie(flashCookie); err == nil && raw != "" {
		return strings.Split(raw, "\n")
	}
	return nil
}

func parseFlashes(raw string) []Flash {
	var flashes []Flash
	for _, entry := range strings.Split(raw, "\n") {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "|", 2)
		if len(parts) != 2 {
			continue
		}
		flashes = append(flashes, Flash{Category: parts[0], Message: parts[1]})
	}
	return flashes
}
