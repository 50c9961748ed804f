package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"reservation-portal/internal/domain/session"
	"reservation-portal/internal/pkg/cookie"
	"reservation-portal/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionKey = "admin_session"

type SessionStore interface {
	Get(id uuid.UUID) (*session.Session, error)
}

type SessionMiddleware struct {
	tokens   *jwt.Service
	sessions SessionStore
}

func NewSessionMiddleware(tokens *jwt.Service, sessions SessionStore) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:   tokens,
		sessions: sessions,
	}
}

// Load resolves the session token (cookie or bearer) when present and never
// aborts; booking requests are open to anonymous visitors.
func (m *SessionMiddleware) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("session token rejected", "error", err.Error())
			c.Next()
			return
		}

		sess, err := m.sessions.Get(claims.SessionID)
		if err != nil {
			// Token outlived the in-memory session, e.g. after a restart.
			c.Next()
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// RequireSession gates the admin-only routes.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}

	sess, ok := value.(*session.Session)
	return sess, ok
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
