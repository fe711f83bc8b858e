package middleware

import (
	"log"
	"time"

	"github.com/factorymaster/mission-control/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware возвращает middleware для логирования запросов
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Передаем управление следующему обработчику
		err := c.Next()
		if err != nil {
			// Ошибку превращаем в ответ здесь, чтобы в логе был итоговый статус
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		method := c.Method()
		statusColor, methodColor, resetColor := utils.Colors(logger, status, method)

		logger.Printf("%s %s %s%s%s %s %s%d%s %s %v",
			c.IP(),
			requestID(c),
			methodColor, method, resetColor,
			c.Path(),
			statusColor, status, resetColor,
			time.Since(start),
			err,
		)

		return nil
	}
}
