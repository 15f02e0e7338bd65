package logger

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("Console Format", func(t *testing.T) {
		l, err := New(&Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("JSON Format", func(t *testing.T) {
		l, err := New(&Config{Level: "info", Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})
}

func TestWithRayID(t *testing.T) {
	app := fiber.New()
	base := zap.NewNop()

	var withID, withoutID *zap.Logger
	app.Get("/tagged", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-123")
		withID = WithRayID(base, c)
		return nil
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		withoutID = WithRayID(base, c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/tagged", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)

	// Without a ray_id the base logger is returned untouched.
	assert.Same(t, base, withoutID)
	assert.NotSame(t, base, withID)
}

func TestTee(t *testing.T) {
	var buf bytes.Buffer
	l := Tee(zap.NewNop(), &buf)

	l.Debug("streamed entry", zap.String("k", "v"))
	require.NoError(t, l.Sync())

	assert.Contains(t, buf.String(), "streamed entry")
	assert.Contains(t, buf.String(), `"k":"v"`)
}
