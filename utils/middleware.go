package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MerchantMiddleware gates the dashboard routes and puts the store's public
// code into the context as "store_id".
func MerchantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, subject, err := extractClaims(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if role != RoleMerchant {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: merchant access required"})
			c.Abort()
			return
		}

		c.Set("store_id", subject)
		c.Next()
	}
}

// AdminMiddleware gates the omnibus admin routes and puts the admin code
// into the context as "admin_id".
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, subject, err := extractClaims(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if role != RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: admin access required"})
			c.Abort()
			return
		}

		c.Set("admin_id", subject)
		c.Next()
	}
}

func extractClaims(authHeader string) (string, string, error) {
	if authHeader == "" {
		return "", "", errors.New("Authorization header required")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "", errors.New("invalid token format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", "", errors.New("role not found in token")
	}
	subject, ok := claims["sub"].(string)
	if !ok {
		return "", "", errors.New("subject not found in token")
	}

	return role, subject, nil
}
