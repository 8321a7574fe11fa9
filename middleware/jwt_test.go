package middleware_test

import (
	"fithub/config"
	"fithub/middleware"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals("email")})
	})
	return app
}

func TestGenerateJWTClaims(t *testing.T) {
	config.LoadConfig()

	tokenString, err := middleware.GenerateJWT("Jane", "jane@example.com", "student")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTKey), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, "student", claims["role"])

	// 24h expiry
	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(24*time.Hour/time.Second), exp-iat)
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	config.LoadConfig()
	app := protectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareGarbledToken(t *testing.T) {
	config.LoadConfig()
	app := protectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	config.LoadConfig()
	app := protectedApp()

	claims := jwt.MapClaims{
		"email": "jane@example.com",
		"iat":   time.Now().Add(-25 * time.Hour).Unix(),
		"exp":   time.Now().Add(-1 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	config.LoadConfig()
	app := protectedApp()

	tokenString, err := middleware.GenerateJWT("Jane", "jane@example.com", "student")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareWrongSignature(t *testing.T) {
	config.LoadConfig()
	app := protectedApp()

	claims := jwt.MapClaims{
		"email": "jane@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
