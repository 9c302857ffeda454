package handlers

import (
	"errors"
	"net/http"

	"bookreviews/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) searchPage(c *gin.Context) {
	c.HTML(http.StatusOK, "search.html", nil)
}

// search runs the OR-combined substring query and renders results,
// a distinct not-found page, or the missing-data error.
func (h *Handler) search(c *gin.Context) {
	q := service.SearchQuery{
		Title:  c.PostForm("title"),
		Author: c.PostForm("author"),
		ISBN:   c.PostForm("isbn"),
	}

	books, err := h.services.Catalog.Search(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, service.ErrNoSearchData) {
			h.renderError(c, http.StatusBadRequest, errNoSearchData)
			return
		}
		h.logAndRenderError(c, http.StatusInternalServerError, errInternal, "search_failed", err)
		return
	}

	if len(books) == 0 {
		c.HTML(http.StatusOK, "not_found.html", nil)
		return
	}
	c.HTML(http.StatusOK, "results.html", gin.H{"Books": books})
}
