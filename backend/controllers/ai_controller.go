package controllers

import (
	"github.com/factorymaster/mission-control/backend/gateway"
	"github.com/factorymaster/mission-control/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AIController struct {
	Gateway *gateway.Gateway
}

func NewAIController(gw *gateway.Gateway) *AIController {
	return &AIController{Gateway: gw}
}

// Chat godoc
// @Summary Ask the factory assistant
// @Description Forwards a question to the model with the assistant's system instruction
// @Tags ai
// @Accept json
// @Produce json
// @Param body body object true "{\"message\": \"...\"}"
// @Success 200 {object} map[string]string "{\"response\": \"...\"}"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /chat [post]
func (ac *AIController) Chat(c *fiber.Ctx) error {
	return ac.invoke(c, gateway.Chat)
}

// Translate godoc
// @Summary Translate business text into Sinhala
// @Tags ai
// @Accept json
// @Produce json
// @Param body body object true "{\"text\": \"...\"}"
// @Success 200 {object} map[string]string "{\"translation\": \"...\"}"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /translate [post]
func (ac *AIController) Translate(c *fiber.Ctx) error {
	return ac.invoke(c, gateway.Translate)
}

// DraftEmail godoc
// @Summary Draft a business email with a Sinhala summary
// @Tags ai
// @Accept json
// @Produce json
// @Param body body object true "{\"details\": \"...\"}"
// @Success 200 {object} map[string]string "{\"email\": \"...\"}"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /email [post]
func (ac *AIController) DraftEmail(c *fiber.Ctx) error {
	return ac.invoke(c, gateway.DraftEmail)
}

func (ac *AIController) invoke(c *fiber.Ctx, op gateway.Operation) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	payload, _ := body[op.RequestField()].(string)

	result := ac.Gateway.Invoke(c.UserContext(), gateway.Request{Operation: op, Payload: payload})
	if !result.OK() {
		return utils.Error(c, statusFor(result.Err.Kind), result.Err.Message)
	}

	return c.JSON(fiber.Map{
		op.ResponseField(): result.Text,
	})
}

func statusFor(kind gateway.ErrorKind) int {
	switch kind {
	case gateway.InvalidRequest:
		return fiber.StatusBadRequest
	case gateway.BackendUnconfigured:
		return fiber.StatusServiceUnavailable
	case gateway.UpstreamError:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
