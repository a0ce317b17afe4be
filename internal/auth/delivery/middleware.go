package delivery

import (
	"net/http"
	"strings"

	authdomain "journal-backend/internal/auth/domain"
	"journal-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// ExtractBearerToken pulls the token out of the Authorization header. The
// header must read "Bearer <token>" with a non-empty remainder.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", authdomain.ErrMissingAuthHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", authdomain.ErrMalformedAuthHeader
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", authdomain.ErrMalformedAuthHeader
	}
	return token, nil
}

// AuthMiddleware is the single authorization gate for protected routes: it
// resolves the bearer token to a user and stores it on the context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		user, err := authUsecase.ValidateSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid session token"})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) *authdomain.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*authdomain.User)
	return user
}
