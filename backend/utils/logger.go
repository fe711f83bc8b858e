package utils

import (
	"io"
	"log"
	"os"
)

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// Формат логов (текст/json)
	Format string
	// Выходной поток (os.Stdout, файл и т.д.)
	Output io.Writer
	// Включить/выключить цвета для консоли
	EnableColors bool
}

// InitLogger инициализирует и возвращает логгер
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	// Установка вывода по умолчанию
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Mission Control] "

	// Lmsgprefix также служит признаком "без цветов" для middleware
	var logger *log.Logger
	if cfg.Format == "json" {
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC|log.Lmsgprefix)
	} else if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m" // Голубой цвет
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
	} else {
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC|log.Lmsgprefix)
	}

	return logger
}

func colorsEnabled(logger *log.Logger) bool {
	return logger.Flags()&log.Lmsgprefix == 0
}

func StatusColor(status int) string {
	switch {
	case status >= 500:
		return "\033[31m" // Красный
	case status >= 400:
		return "\033[33m" // Желтый
	case status >= 300:
		return "\033[36m" // Голубой
	case status >= 200:
		return "\033[32m" // Зеленый
	default:
		return "\033[37m" // Белый
	}
}

func MethodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m" // Синий
	case "POST":
		return "\033[33m" // Желтый
	case "OPTIONS":
		return "\033[36m" // Голубой
	default:
		return "\033[37m" // Белый
	}
}

// Colors возвращает цвета статуса, метода и сброса для строки лога
func Colors(logger *log.Logger, status int, method string) (string, string, string) {
	if !colorsEnabled(logger) {
		return "", "", ""
	}
	return StatusColor(status), MethodColor(method), "\033[0m"
}
