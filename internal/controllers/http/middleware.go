package http

import (
	"errors"
	"net/http"
	"strings"

	"marketplace-service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "user"

// AuthMiddleware verifies the HMAC bearer token and attaches the
// authenticated user to the request context. Everything past this point
// trusts the user object and never re-checks credentials.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			fail(c, http.StatusUnauthorized, "authorization header is missing")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			fail(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			fail(c, http.StatusUnauthorized, "invalid token claims")
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			fail(c, http.StatusUnauthorized, "invalid token claims")
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)

		c.Set(userContextKey, domain.User{ID: sub, Email: email})
		c.Next()
	}
}

func currentUser(c *gin.Context) (domain.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)
	return user, ok
}
