package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "session_token"
	userIDKey         = "userId"
)

// sessionGuard redirects unauthenticated requests to the login page.
// A missing or invalid session is not an error, just a redirect.
func (h *Handler) sessionGuard(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	userID, err := h.services.Sessions.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("session_rejected", "err", err)
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	// store in Gin context
	c.Set(userIDKey, userID)
	c.Next()
}

// currentUserID reads the guard-installed user id.
func currentUserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

// The cookie lives for the browser session; the token's own expiry bounds it
// server-side.
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
