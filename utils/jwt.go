package utils

import (
	"errors"
	"fmt"
	"time"

	"souk/config"

	"github.com/golang-jwt/jwt/v5"
)

// Token roles. A merchant token carries the store's public code as subject,
// an admin token carries the admin code. Possession of the code is the only
// proof of identity; tokens are session plumbing on top of it.
const (
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

var jwtConfig = &config.JWTConfig{
	SigningKey:    "souk-dev-secret",
	AccessExpiry:  15 * time.Minute,
	RefreshExpiry: 12 * time.Hour,
}

// InitJWT sets the signing key and expiries from configuration.
func InitJWT(cfg *config.JWTConfig) {
	jwtConfig = cfg
}

func GenerateTokens(role, subject string) (string, string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"sub":  subject,
		"exp":  time.Now().Add(jwtConfig.AccessExpiry).Unix(),
	})
	access, err := accessToken.SignedString([]byte(jwtConfig.SigningKey))
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"sub":  subject,
		"exp":  time.Now().Add(jwtConfig.RefreshExpiry).Unix(),
	})
	refresh, err := refreshToken.SignedString([]byte(jwtConfig.SigningKey))
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func ValidateToken(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtConfig.SigningKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if exp, ok := claims["exp"].(float64); ok {
			if time.Unix(int64(exp), 0).Before(time.Now()) {
				return nil, errors.New("token has expired")
			}
		} else {
			return nil, errors.New("invalid or missing expiration claim")
		}

		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// RefreshTokens validates a refresh token and issues a fresh pair with the
// same role and subject.
func RefreshTokens(oldRefreshToken string) (string, string, error) {
	claims, err := ValidateToken(oldRefreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %v", err)
	}

	role, _ := claims["role"].(string)
	subject, _ := claims["sub"].(string)
	if role == "" || subject == "" {
		return "", "", errors.New("invalid refresh token claims")
	}

	return GenerateTokens(role, subject)
}
