package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"communityhub_backend/internals/configs"
	authRepo "communityhub_backend/internals/features/users/auth/repository"
	helper "communityhub_backend/internals/helpers"
)

const defaultBlacklistTTL = 24 * time.Hour

/* ==========================
   LOGOUT
========================== */

// Logout is idempotent: whatever token is presented gets blacklisted for its
// remaining lifetime, and the auth cookies are cleared either way.
func Logout(repo authRepo.TokenBlacklister, c *fiber.Ctx) error {
	accessToken := getRawAccessToken(c)

	if accessToken != "" {
		ttl := resolveBlacklistTTL(accessToken)
		if err := repo.BlacklistToken(accessToken, ttl); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout without access token; clearing cookies anyway (idempotent)")
	}

	clearAuthCookies(c)

	return helper.JsonOK(c, "Logout successful", nil)
}

func getRawAccessToken(c *fiber.Ctx) string {
	if auth := strings.TrimSpace(c.Get("Authorization")); auth != "" {
		fields := strings.Fields(auth)
		if len(fields) >= 2 && strings.EqualFold(fields[0], "Bearer") {
			return strings.Trim(fields[1], "\"'")
		}
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// resolveBlacklistTTL keeps the blacklist row alive only as long as the token
// itself; an unreadable exp falls back to a day.
func resolveBlacklistTTL(accessToken string) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return defaultBlacklistTTL
	}
	expVal, ok := claims["exp"].(float64)
	if !ok {
		return defaultBlacklistTTL
	}
	remaining := time.Until(time.Unix(int64(expVal), 0))
	if remaining <= 0 {
		return time.Minute
	}
	return remaining
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().UTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   configs.IsProduction(),
			SameSite: "Strict",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}
