package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"bursary_backend/internals/configs"
	authDTO "bursary_backend/internals/features/users/auth/dto"
	authRepo "bursary_backend/internals/features/users/auth/repository"
	helper "bursary_backend/internals/helpers"
)

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if err := helper.Validate().Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		// same message as a wrong password so emails cannot be probed
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	access, refresh, err := issueTokenPair(c, db, *user)
	if err != nil {
		log.Println("[ERROR] Failed to issue tokens:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":          authDTO.ToAuthUser(user),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

// LoginGoogle signs in an existing account via a Google ID token. Accounts
// are provisioned by an admin beforehand; there is no self-signup here.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate().Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode Google ID token")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		// first Google sign-in: bind by email to an existing account
		user, err = authRepo.FindUserByEmail(db, claimSet.Email)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "No account is registered for this Google identity")
		}
		if err := db.Model(user).Update("google_id", claimSet.Sub).Error; err != nil {
			log.Println("[WARN] Failed to bind google_id:", err)
		}
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	access, refresh, err := issueTokenPair(c, db, *user)
	if err != nil {
		log.Println("[ERROR] Failed to issue tokens:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":          authDTO.ToAuthUser(user),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := rawAccessToken(c)

	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	}

	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(rt, secret))
		}
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout successful", nil)
}

func rawAccessToken(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// resolveBlacklistTTL keeps the blacklist row alive only as long as the
// token itself; an unreadable exp falls back to the configured access TTL.
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := accessTTL()
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return ttl
	}
	if exp, ok := claims["exp"].(float64); ok {
		if remain := time.Until(time.Unix(int64(exp), 0)); remain > 0 {
			return remain
		}
	}
	return ttl
}
