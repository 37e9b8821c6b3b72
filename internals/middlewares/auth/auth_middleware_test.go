package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communityhub_backend/internals/configs"
)

const testSecret = "middleware-test-secret"

type memoryTokenStore struct {
	blacklisted map[string]bool
}

func (m *memoryTokenStore) IsBlacklisted(token string) (bool, error) {
	return m.blacklisted[token], nil
}

func newAuthApp(store TokenStore) *fiber.App {
	app := fiber.New()
	app.Get("/private", AuthMiddleware(store), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("role"),
		})
	})
	return app
}

func issueToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func request(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = testSecret
	t.Cleanup(func() { configs.JWTSecret = prev })

	userID := "6f1a48f2-8f6a-4b7e-9a6e-111111111111"
	store := &memoryTokenStore{blacklisted: map[string]bool{}}

	t.Run("valid token passes", func(t *testing.T) {
		tok := issueToken(t, testSecret, jwt.MapClaims{
			"user_id": userID,
			"role":    "member",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, fiber.StatusOK, request(t, newAuthApp(store), tok))
	})

	t.Run("sub claim works as identity", func(t *testing.T) {
		tok := issueToken(t, testSecret, jwt.MapClaims{
			"sub": userID,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, fiber.StatusOK, request(t, newAuthApp(store), tok))
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, request(t, newAuthApp(store), ""))
	})

	t.Run("wrong signature is rejected", func(t *testing.T) {
		tok := issueToken(t, "some-other-secret", jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, fiber.StatusUnauthorized, request(t, newAuthApp(store), tok))
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		tok := issueToken(t, testSecret, jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		assert.Equal(t, fiber.StatusUnauthorized, request(t, newAuthApp(store), tok))
	})

	t.Run("just-expired token survives clock skew", func(t *testing.T) {
		tok := issueToken(t, testSecret, jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(-10 * time.Second).Unix(),
		})
		assert.Equal(t, fiber.StatusOK, request(t, newAuthApp(store), tok))
	})

	t.Run("blacklisted token is rejected", func(t *testing.T) {
		tok := issueToken(t, testSecret, jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		store.blacklisted[tok] = true
		assert.Equal(t, fiber.StatusUnauthorized, request(t, newAuthApp(store), tok))
	})

	t.Run("missing identity claim is rejected", func(t *testing.T) {
		tok := issueToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, fiber.StatusUnauthorized, request(t, newAuthApp(store), tok))
	})

	t.Run("cookie fallback", func(t *testing.T) {
		// fresh store: the blacklist subtest taints the shared one, and a
		// token with identical claims issued in the same second collides
		store := &memoryTokenStore{blacklisted: map[string]bool{}}
		tok := issueToken(t, testSecret, jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
		req.Header.Set("Cookie", "access_token="+tok)
		resp, err := newAuthApp(store).Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
