package greeter

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	NewHandler(zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleGreeting(t *testing.T) {
	t.Run("Returns Greeting", func(t *testing.T) {
		app := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Hello World!", string(body))
	})

	t.Run("Ignores Query And Headers", func(t *testing.T) {
		app := setupTestApp(t)

		req := httptest.NewRequest("GET", "/?name=ignored", nil)
		req.Header.Set("X-Anything", "ignored")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Hello World!", string(body))
	})
}

func TestLoader(t *testing.T) {
	feature := NewFeature(zap.NewNop())

	assert.Equal(t, "greeter", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
