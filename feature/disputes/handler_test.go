package disputes

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New()
	feature := NewFeature(setupStore(t))
	require.NoError(t, feature.Load(app))
	return app
}

func decodeList(t *testing.T, app *fiber.App, target string) []map[string]any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleList(t *testing.T) {
	app := setupTestApp(t)

	assert.Len(t, decodeList(t, app, "/disputes"), 3)

	lost := decodeList(t, app, "/disputes?status=lost")
	require.Len(t, lost, 1)
	assert.Equal(t, "case_002", lost[0]["dispute_id"])
}

func TestHandleGet(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/disputes/case_001", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/disputes/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleCreate(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Created", `{"dispute_id":"case_100","transaction_id":"txn_100","amount":"55.10","currency":"GBP","status":"Open","reason":"Fraud"}`, 201},
		{"Duplicate", `{"dispute_id":"case_001","amount":1}`, 409},
		{"MissingID", `{"amount":1}`, 400},
		{"Malformed", `{"dispute_id":`, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/disputes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	assert.Len(t, decodeList(t, app, "/disputes"), 4)
}

func TestHandleUpdate(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/disputes/case_004", strings.NewReader(`{"transaction_id":"txn_007","amount":"90","currency":"USD","status":"Won","reason":"Unauthorized"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	won := decodeList(t, app, "/disputes?status=won")
	require.Len(t, won, 1)
	assert.Equal(t, "case_004", won[0]["dispute_id"])

	req = httptest.NewRequest("PUT", "/disputes/ghost", strings.NewReader(`{"status":"Won"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	disabled := NewFeature(nil)
	assert.Equal(t, "disputes", disabled.Name())
	assert.False(t, disabled.IsEnabled())

	assert.True(t, NewFeature(setupStore(t)).IsEnabled())
}
