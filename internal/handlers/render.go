package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// User-facing messages for the shared error page.
const (
	errNoUsername       = "You didn't provide a username!"
	errNoPassword       = "You didn't provide a password!"
	errNoConfirmation   = "You didn't confirm your password!"
	errPasswordMismatch = "Passwords don't match!"
	errUsernameTaken    = "Username taken! Provide a new username!"
	errInvalidLogin     = "Invalid username and/or password!"
	errNoSearchData     = "You didn't provide any data for the book!"
	errInvalidISBN      = "Invalid ISBN"
	errNoBook           = "Sorry, there is no book with that ISBN"
	errNoRating         = "You must provide a rating for this book!"
	errNoReviewText     = "You must provide a review for this book!"
	errReviewComplete   = "You have already rated and reviewed this book!"
	errInternal         = "Something went wrong. Please try again."
)

// renderError renders the shared error page parameterized by message.
func (h *Handler) renderError(c *gin.Context, httpCode int, msg string) {
	c.HTML(httpCode, "error.html", gin.H{"Message": msg})
}

// Centralized error logging and error-page rendering.
func (h *Handler) logAndRenderError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.renderError(c, httpCode, userMsg)
}

// startSession issues a session token for the user and sets the cookie.
// Renders the error page itself on failure.
func (h *Handler) startSession(c *gin.Context, userID int) bool {
	token, err := h.services.Sessions.IssueToken(userID)
	if err != nil {
		h.logAndRenderError(c, http.StatusInternalServerError, errInternal, "issue_session_token_failed", err, "user_id", userID)
		return false
	}
	setSessionCookie(c, token)
	return true
}
