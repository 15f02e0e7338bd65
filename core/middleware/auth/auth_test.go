package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	t.Run("Empty Key Allows All", func(t *testing.T) {
		app := setupApp("")

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Rejects Missing Key", func(t *testing.T) {
		app := setupApp("secret")

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Rejects Wrong Key", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(Header, "nope")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Accepts Valid Key", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(Header, "secret")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
