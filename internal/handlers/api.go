package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Book info by ISBN
// @Description  Local catalog fields merged with external aggregate rating counts
// @Tags         books
// @Produce      json
// @Param        isbn  path  string  true  "ISBN"
// @Success      200  {object}  models.BookInfo
// @Failure      400  {string}  string  "invalid ISBN"
// @Failure      404  {string}  string  "unknown book"
// @Router       /api/{isbn} [get]
func (h *Handler) bookInfo(c *gin.Context) {
	info, ok := h.fetchBookInfo(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, info)
}
