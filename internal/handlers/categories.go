package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog/internal/models"
)

// ListCategories handles GET /categories: every row, verbatim, no paging.
// Фронт использует это для фильтров в дашборде.
func (h *Handler) ListCategories(c *gin.Context) {
	items := make([]models.Category, 0)
	if err := h.db.WithContext(c.Request.Context()).Find(&items).Error; err != nil {
		fail(c, http.StatusInternalServerError, kindDatabase, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
