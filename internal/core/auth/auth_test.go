package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator(t *testing.T, password string) *Authenticator {
	t.Helper()

	hash, err := HashPassword(password)
	require.NoError(t, err)

	return NewAuthenticator(hash, "test-secret", time.Hour)
}

func TestLogin_Success(t *testing.T) {
	a := newTestAuthenticator(t, "deluxe2017")

	token, err := a.Login("deluxe2017")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	a := newTestAuthenticator(t, "deluxe2017")

	_, err := a.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify_Garbage(t *testing.T) {
	a := newTestAuthenticator(t, "deluxe2017")

	_, err := a.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	a := newTestAuthenticator(t, "deluxe2017")
	token, err := a.Login("deluxe2017")
	require.NoError(t, err)

	hash, err := HashPassword("deluxe2017")
	require.NoError(t, err)
	other := NewAuthenticator(hash, "different-secret", time.Hour)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHandler_Login(t *testing.T) {
	a := newTestAuthenticator(t, "deluxe2017")

	app := fiber.New()
	app.Post("/admin/login", NewHandler(a).Login)

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"password":"deluxe2017"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body LoginResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		_, err = a.Verify(body.Token)
		assert.NoError(t, err, "issued token should verify")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(`{"password":"guess"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequire_Middleware(t *testing.T) {
	a := newTestAuthenticator(t, "deluxe2017")

	app := fiber.New()
	app.Use(Require(a))
	app.Get("/admin/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	t.Run("MissingHeader", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/admin/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/ping", nil)
		req.Header.Set("Authorization", "Token abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := a.Login("deluxe2017")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
