package middlewares

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Post("/probe", GplusAuth(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func postAuth(t *testing.T, app *fiber.App, body map[string]any) (int, string) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/probe", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func signFor(operatorCode, requestTime, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(operatorCode + requestTime))
	return hex.EncodeToString(h.Sum(nil))
}

func TestGplusAuthRejectsUnknownOperator(t *testing.T) {
	t.Setenv("GPLUS_OPERATOR_CODE", "OP01")
	app := newAuthApp()

	status, body := postAuth(t, app, map[string]any{
		"operator_code": "EVIL",
		"request_time":  1719500000,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"code":500`)
	assert.Contains(t, body, "Invalid operator")
}

func TestGplusAuthRejectsBadSignature(t *testing.T) {
	t.Setenv("GPLUS_OPERATOR_CODE", "OP01")
	t.Setenv("GPLUS_SECRET_KEY", "sekrit")
	app := newAuthApp()

	status, body := postAuth(t, app, map[string]any{
		"operator_code": "OP01",
		"request_time":  1719500000,
		"sign":          "deadbeef",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Invalid signature")
}

func TestGplusAuthAcceptsValidSignature(t *testing.T) {
	t.Setenv("GPLUS_OPERATOR_CODE", "OP01")
	t.Setenv("GPLUS_SECRET_KEY", "sekrit")
	app := newAuthApp()

	status, body := postAuth(t, app, map[string]any{
		"operator_code": "OP01",
		"request_time":  1719500000,
		"sign":          signFor("OP01", "1719500000", "sekrit"),
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestGplusAuthPassThroughWhenUnconfigured(t *testing.T) {
	t.Setenv("GPLUS_OPERATOR_CODE", "")
	t.Setenv("GPLUS_SECRET_KEY", "")
	app := newAuthApp()

	status, body := postAuth(t, app, map[string]any{
		"operator_code": "ANY",
		"request_time":  1719500000,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body)
}
