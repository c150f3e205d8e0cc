package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"breeze/internal/model"
	"breeze/pkg/log"
)

const sessionKey = "session_id"

// Session ensures every request carries an anonymous session id cookie.
// A missing or malformed cookie is replaced by a fresh UUID.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.cookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     m.cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(m.cookieTTL.Seconds()),
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionKey, id)
		ctx := context.WithValue(c.Request.Context(), log.SessionIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetScope returns the caller scope set by Session.
func GetScope(c *gin.Context) model.Scope {
	return model.NewScope(c.GetString(sessionKey))
}
