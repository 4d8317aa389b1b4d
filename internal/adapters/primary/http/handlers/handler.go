package handlers

import (
	"github.com/gin-gonic/gin"

	"car-price-assistant/internal/proxy"
)

type Handler struct {
	proxy       *proxy.Client
	predictPath string
	indexHTML   []byte
}

func New(proxy *proxy.Client, predictPath string, indexHTML []byte) *Handler {
	return &Handler{
		proxy:       proxy,
		predictPath: predictPath,
		indexHTML:   indexHTML,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.POST(h.predictPath, h.Predict)
	r.GET("/healthz", h.Health)
}
