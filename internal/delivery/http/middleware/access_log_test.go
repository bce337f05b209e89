package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedApp(logger *log.Logger) *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logger, "/health").Middleware())
	app.Get("/health", func(c fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/health/db", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusServiceUnavailable) })
	app.Get("/api/jobs", func(c fiber.Ctx) error { return c.SendString("[]") })
	return app
}

func TestAccessLog_NilLoggerWritesNothing(t *testing.T) {
	var std bytes.Buffer
	log.SetOutput(&std)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	app := newLoggedApp(nil)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))

	assert.Empty(t, std.String())
}

func TestAccessLog_LogsRequestsAndSkipsQuietPaths(t *testing.T) {
	var buf bytes.Buffer
	app := newLoggedApp(log.New(&buf, "", 0))

	req := httptest.NewRequest("GET", "/api/jobs", nil)
	req.Header.Set(requestIDHeader, "rid-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "rid-42", resp.Header.Get(requestIDHeader), "client id echoed back")
	assert.Contains(t, buf.String(), "[HTTP] access rid=rid-42 method=GET path=/api/jobs status=200")

	buf.Reset()
	_, err = app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "successful health checks are quiet")

	_, err = app.Test(httptest.NewRequest("GET", "/health/db", nil))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "status=503", "failures under a quiet prefix are still logged")
}
