package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/QuizMaster/config"
)

const (
	CookieName = "qm_session"
	// Sessions live for up to seven days or until explicit logout.
	TTL = 7 * 24 * time.Hour
)

var (
	ErrNoSession      = errors.New("no session")
	ErrInvalidSession = errors.New("invalid session")
)

// Claims bind a session token to the user's durable identifier.
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// Manager mints and verifies session cookies. Tokens are HS256 JWTs stored in
// an HTTP-only cookie; Secure is enforced in production.
type Manager struct {
	secret []byte
	secure bool
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{secret: []byte(cfg.Session.Secret), secure: cfg.Production()}
}

// Issue establishes a session for the given user on the response.
func (m *Manager) Issue(c *gin.Context, userID uint) error {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}
	m.setCookie(c, CookieName, token, int(TTL.Seconds()))
	return nil
}

// UserID extracts and verifies the session-bound user id from the request.
func (m *Manager) UserID(c *gin.Context) (uint, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return 0, ErrNoSession
	}
	return m.Verify(raw)
}

// Verify parses a raw session token and returns the user id it is bound to.
func (m *Manager) Verify(raw string) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidSession
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return 0, ErrInvalidSession
	}
	return claims.UserID, nil
}

// Clear removes the session cookie (logout).
func (m *Manager) Clear(c *gin.Context) {
	m.setCookie(c, CookieName, "", -1)
}

func (m *Manager) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
