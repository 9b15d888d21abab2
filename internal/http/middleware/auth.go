package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// AuthOptional verifies an HS256 bearer token when one is sent and stores its
// user_id and role claims on the context. Requests without a token pass through.
// An empty secret disables verification entirely.
func AuthOptional(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(c *gin.Context) {
		if len(key) == 0 {
			c.Next()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abortUnauthorized(c, errors.New("malformed authorization header"))
			return
		}

		claims := jwt.MapClaims{}
		_, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		if v, ok := claims["user_id"]; ok {
			c.Set(userIDKey, fmt.Sprint(v))
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(userRoleKey, role)
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      "unauthorized",
		"code":       "unauthorized",
		"message":    err.Error(),
		"request_id": GetRequestID(c),
	})
}
