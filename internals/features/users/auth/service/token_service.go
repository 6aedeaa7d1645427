package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"hrbuddy_backend/internals/configs"
	userModel "hrbuddy_backend/internals/features/users/user/model"
)

// Access tokens live 30 days, same as the web client expects.
const accessTokenTTL = 30 * 24 * time.Hour

// GenerateToken issues an HS256 access token carrying the user id and role.
func GenerateToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
