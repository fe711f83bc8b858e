package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse — единый формат ошибки API: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error создает JSON ответ с ошибкой
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// BadRequest отправляет ответ 400 Bad Request
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// NotFound отправляет ответ 404 Not Found в виде текста
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("Not Found")
}

// InternalServerError отправляет ответ 500 Internal Server Error
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ErrorHandler превращает необработанные ошибки в {"error": message}
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		status = e.Code
	}
	// Маршрут с другим методом тоже считаем ненайденным
	if status == fiber.StatusNotFound || status == fiber.StatusMethodNotAllowed {
		return NotFound(c)
	}
	return Error(c, status, err.Error())
}
