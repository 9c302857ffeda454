package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bookreviews/internal/goodreads"
	"bookreviews/internal/models"
	"bookreviews/internal/service"

	"github.com/gin-gonic/gin"
)

// fetchBookInfo resolves the merged aggregator+catalog view for the ISBN in
// the path. On failure it renders the matching error page and returns false.
func (h *Handler) fetchBookInfo(c *gin.Context) (*models.BookInfo, bool) {
	isbn := c.Param("isbn")

	info, err := h.services.Catalog.BookInfo(c.Request.Context(), isbn)
	if err != nil {
		switch {
		case errors.Is(err, goodreads.ErrInvalidISBN):
			h.renderError(c, http.StatusBadRequest, errInvalidISBN)
		case errors.Is(err, service.ErrBookNotFound):
			h.renderError(c, http.StatusNotFound, errNoBook)
		default:
			h.logAndRenderError(c, http.StatusInternalServerError, errInternal, "book_info_failed", err, "isbn", isbn)
		}
		return nil, false
	}
	return info, true
}

// renderBook derives the caller's review state, loads the per-book review
// list and renders the detail page.
func (h *Handler) renderBook(c *gin.Context, info *models.BookInfo) {
	ctx := c.Request.Context()
	userID := currentUserID(c)

	status, err := h.services.Reviews.Status(ctx, info.BookID, userID)
	if err != nil {
		h.logAndRenderError(c, http.StatusInternalServerError, errInternal, "review_status_failed", err, "isbn", info.ISBN)
		return
	}

	list, err := h.services.Reviews.ListForBook(ctx, info.BookID)
	if err != nil {
		h.logAndRenderError(c, http.StatusInternalServerError, errInternal, "review_list_failed", err, "isbn", info.ISBN)
		return
	}

	c.HTML(http.StatusOK, "book.html", gin.H{
		"Book":     info,
		"NoRating": status.NoRating,
		"NoReview": status.NoReview,
		"Others":   len(list) > 0,
		"Reviews":  list,
	})
}

func (h *Handler) bookPage(c *gin.Context) {
	info, ok := h.fetchBookInfo(c)
	if !ok {
		return
	}
	h.renderBook(c, info)
}

// submitReview applies at most one review mutation for the (user, book)
// pair and re-renders the detail page with the fresh state.
func (h *Handler) submitReview(c *gin.Context) {
	info, ok := h.fetchBookInfo(c)
	if !ok {
		return
	}

	ratingStr := c.PostForm("rating")
	if ratingStr == "" {
		h.renderError(c, http.StatusBadRequest, errNoRating)
		return
	}
	review := c.PostForm("review")
	if review == "" {
		h.renderError(c, http.StatusBadRequest, errNoReviewText)
		return
	}
	rating, err := strconv.Atoi(ratingStr)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, errNoRating)
		return
	}

	err = h.services.Reviews.Submit(c.Request.Context(), info.BookID, currentUserID(c), rating, review)
	if err != nil {
		if errors.Is(err, service.ErrReviewComplete) {
			h.renderError(c, http.StatusConflict, errReviewComplete)
			return
		}
		h.logAndRenderError(c, http.StatusInternalServerError, errInternal, "review_submit_failed", err, "isbn", info.ISBN)
		return
	}

	h.renderBook(c, info)
}
