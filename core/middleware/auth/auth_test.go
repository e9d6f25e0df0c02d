package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: key}))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		header string
		query  string
		want   int
	}{
		{"Disabled", "", "", "", fiber.StatusOK},
		{"MissingKey", "secret", "", "", fiber.StatusUnauthorized},
		{"WrongKey", "secret", "nope", "", fiber.StatusUnauthorized},
		{"HeaderKey", "secret", "secret", "", fiber.StatusOK},
		{"QueryKey", "secret", "", "secret", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/ping"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}

			resp, err := newApp(tt.apiKey).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
