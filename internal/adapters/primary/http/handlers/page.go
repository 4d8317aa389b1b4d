package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index serves the price estimation form. Query parameters are left for the
// page to auto-fill from.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.indexHTML)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
