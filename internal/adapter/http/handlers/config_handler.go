package handlers

import (
	"net/http"

	response "payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// ConfigHandler exposes the provider publishable key and sandbox card tokens
// for demo frontends. The secret key never leaves the server.

type ConfigHandler struct {
	cfg *config.Config
}

func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, response.ConfigResponse{
		PublishableKey: h.cfg.StripePublishableKey,
		TestTokens:     config.TestCardTokens,
	})
}
