package middleware

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/factorymaster/mission-control/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Use(RequestID())
	app.Use(CORS())
	app.Use(LoggingMiddleware(log.New(buf, "", log.Lmsgprefix)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("broken") })
	return app
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-42", resp.Header.Get(HeaderRequestID))
	assert.Contains(t, buf.String(), "req-42")
	assert.Contains(t, buf.String(), "GET /ok 200")
}

func TestRequestID_Generated(t *testing.T) {
	var buf bytes.Buffer
	resp, err := newTestApp(&buf).Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(HeaderRequestID), 36)
}

func TestLoggingMiddleware_LogsFinalStatusOfErrors(t *testing.T) {
	var buf bytes.Buffer
	resp, err := newTestApp(&buf).Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "GET /fail 500")
	assert.Contains(t, buf.String(), "broken")
}

func TestCORS_AnswersOptionsWithoutPreflightHeader(t *testing.T) {
	var buf bytes.Buffer
	resp, err := newTestApp(&buf).Test(httptest.NewRequest("OPTIONS", "/anything", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
}
