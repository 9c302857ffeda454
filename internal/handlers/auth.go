package handlers

import (
	"errors"
	"net/http"

	"bookreviews/internal/service"

	"github.com/gin-gonic/gin"
)

// index is the authenticated entry point: straight to search.
func (h *Handler) index(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/search")
}

func (h *Handler) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// register handles the registration form. Field checks short-circuit in
// order: username, password, confirmation, mismatch.
func (h *Handler) register(c *gin.Context) {
	username := c.PostForm("username")
	if username == "" {
		h.renderError(c, http.StatusBadRequest, errNoUsername)
		return
	}
	password := c.PostForm("password")
	if password == "" {
		h.renderError(c, http.StatusBadRequest, errNoPassword)
		return
	}
	confirmation := c.PostForm("confirmation")
	if confirmation == "" {
		h.renderError(c, http.StatusBadRequest, errNoConfirmation)
		return
	}
	if confirmation != password {
		h.renderError(c, http.StatusBadRequest, errPasswordMismatch)
		return
	}

	id, err := h.services.Authorization.Register(username, password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.renderError(c, http.StatusConflict, errUsernameTaken)
			return
		}
		h.logAndRenderError(c, http.StatusInternalServerError, errInternal, "register_failed", err, "username", username)
		return
	}

	if !h.startSession(c, id) {
		return
	}
	c.Redirect(http.StatusSeeOther, "/search")
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// login validates credentials. All authentication failures render the same
// message so usernames cannot be enumerated.
func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	if username == "" {
		h.renderError(c, http.StatusBadRequest, errNoUsername)
		return
	}
	password := c.PostForm("password")
	if password == "" {
		h.renderError(c, http.StatusBadRequest, errNoPassword)
		return
	}

	id, err := h.services.Authorization.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.renderError(c, http.StatusUnauthorized, errInvalidLogin)
			return
		}
		h.logAndRenderError(c, http.StatusInternalServerError, errInternal, "login_failed", err, "username", username)
		return
	}

	if !h.startSession(c, id) {
		return
	}
	c.Redirect(http.StatusSeeOther, "/search")
}

// logout drops the session cookie unconditionally. No store interaction.
func (h *Handler) logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}
