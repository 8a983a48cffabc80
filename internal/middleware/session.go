package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"todo-list/internal/model"
	"todo-list/pkg/log"
)

const scopeKey = "scope"

// Session makes sure every request carries a session cookie holding a UUID
// and stores the resulting scope in the gin context. The cookie is written on
// every response so its expiry slides with the server side session TTL.
func (mw Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(mw.cfg.SessionCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			mw.l.Debugf(c.Request.Context(), "middleware.Session: new session %s", id)
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     mw.cfg.SessionCookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(mw.cfg.SessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   mw.cfg.SessionSecureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		c.Set(scopeKey, model.Scope{SessionID: id})
		c.Request = c.Request.WithContext(log.WithFields(c.Request.Context(), "session_id", id))
		c.Next()
	}
}

// GetScope returns the scope stored by Session.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
