package controllers

import (
	"github.com/factorymaster/mission-control/backend/gateway"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func Health(gw *gateway.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":        "ok",
			"ai_configured": gw.Configured(),
		})
	}
}
