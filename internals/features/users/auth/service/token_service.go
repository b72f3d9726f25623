package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"academyku_backend/internals/configs"
)

const defaultAccessTokenTTLHours = 24

// CreateAccessToken menerbitkan JWT berisi user_id + satu role tertinggi.
// TTL bisa dioverride via ACCESS_TOKEN_TTL_HOURS.
func CreateAccessToken(userID uuid.UUID, role string) (string, error) {
	ttlHours := defaultAccessTokenTTLHours
	if raw := configs.GetEnv("ACCESS_TOKEN_TTL_HOURS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlHours = parsed
		}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     userID.String(),
		"user_id": userID.String(),
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
