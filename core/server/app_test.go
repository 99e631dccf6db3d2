package server_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"unit-converter/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeError(t *testing.T, app *fiber.App, method, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestNewApp_ErrorHandling(t *testing.T) {
	app := server.NewApp(server.Config{Port: "5000"}, zap.NewNop())
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("kaboom") })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("unexpected") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	t.Run("NotFound", func(t *testing.T) {
		code, body := decodeError(t, app, "GET", "/missing")
		assert.Equal(t, 404, code)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("PlainErrorIsInternal", func(t *testing.T) {
		code, body := decodeError(t, app, "GET", "/boom")
		assert.Equal(t, 500, code)
		assert.Equal(t, "Internal Server Error", body["error"])
	})

	t.Run("PanicIsInternal", func(t *testing.T) {
		code, _ := decodeError(t, app, "GET", "/panic")
		assert.Equal(t, 500, code)
	})

	t.Run("FiberErrorKeepsStatus", func(t *testing.T) {
		code, body := decodeError(t, app, "GET", "/teapot")
		assert.Equal(t, fiber.StatusTeapot, code)
		assert.Equal(t, "short and stout", body["error"])
	})
}

func TestNewApp_Middleware(t *testing.T) {
	app := server.NewApp(server.Config{Port: "5000", CORSOrigins: "*"}, zap.NewNop())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "http://frontend.test")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
}

func TestNewApp_RateLimit(t *testing.T) {
	app := server.NewApp(server.Config{Port: "5000", RateLimit: 2}, zap.NewNop())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	code, body := decodeError(t, app, "GET", "/ping")
	assert.Equal(t, fiber.StatusTooManyRequests, code)
	assert.NotEmpty(t, body["error"])
}
