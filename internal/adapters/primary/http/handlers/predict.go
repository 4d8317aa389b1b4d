package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"car-price-assistant/internal/core/domain"
)

// Predict forwards the request body to the prediction upstream and relays
// its status and body unchanged.
func (h *Handler) Predict(c *gin.Context) {
	resp, err := h.proxy.Forward(c.Request.Context(), http.MethodPost, h.predictPath, c.Request.Body, c.Request.Header)
	if err != nil {
		log.WithError(err).Error("forward prediction request failed")
		mapDomainError(c, domain.ErrUpstreamUnavailable)
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	c.Status(resp.StatusCode)
	c.Header("Content-Type", contentType)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		log.WithError(err).Warn("relay prediction response")
	}
}
