package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/configs"
	authModel "bursary_backend/internals/features/users/auth/model"
	authRepo "bursary_backend/internals/features/users/auth/repository"
	userModel "bursary_backend/internals/features/users/user/model"
	helper "bursary_backend/internals/helpers"
)

func nowUTC() time.Time { return time.Now().UTC() }

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET is not set")
	}
	return configs.JWTRefreshSecret, nil
}

func accessTTL() time.Duration  { return configs.Conf.GetDuration("ACCESS_TOKEN_TTL") }
func refreshTTL() time.Duration { return configs.Conf.GetDuration("REFRESH_TOKEN_TTL") }

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        user.ID.String(),
		"full_name": user.FullName,
		"role":      user.Role,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL()).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL()).Unix(),
	}
}

// computeRefreshHash keys the stored token on HMAC-SHA256 so a database
// leak cannot be replayed as a live refresh token.
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// issueTokenPair signs both tokens, persists the refresh hash and sets cookies.
func issueTokenPair(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) (access string, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}

	if err = authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTL()),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return "", "", err
	}

	setAuthCookies(c, access, refresh, now)
	return access, refresh, nil
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	secure := configs.IsProduction()
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
		Expires:  now.Add(accessTTL()),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
		Expires:  now.Add(refreshTTL()),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   configs.IsProduction(),
			SameSite: "Lax",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		// body fallback for non-browser clients
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&input); err == nil {
			raw = strings.TrimSpace(input.RefreshToken)
		}
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token is missing")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token is invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token is invalid")
	}

	oldHash := computeRefreshHash(raw, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, oldHash)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify refresh token")
	}
	if !exists {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token is not recognized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// rotate: the old token must not survive a successful refresh
	if err := authRepo.DeleteRefreshTokenByHash(db, oldHash); err != nil {
		log.Printf("[WARN] failed to delete rotated refresh token: %v", err)
	}

	access, refresh, err := issueTokenPair(c, db, *user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue new tokens")
	}

	return helper.JsonOK(c, "Token refreshed successfully", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}
