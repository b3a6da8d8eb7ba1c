package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"femaqua-be/internal/apperrors"
	"femaqua-be/internal/entities"
	"femaqua-be/internal/logger"
	"femaqua-be/internal/models"
	"femaqua-be/internal/service"
)

const (
	userContextKey  = "current_user"
	tokenContextKey = "bearer_token"
)

// AuthMiddleware resolves the bearer token to a user and stores both on the
// gin context. Requests without a valid token are aborted with 401.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := parseBearer(c.GetHeader("Authorization"))
		if !ok {
			abortWith(c, apperrors.ErrUnauthenticated)
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				logger.Error("authentication failed", "error", err, "path", c.Request.URL.Path)
				appErr = apperrors.Internal(err)
			}
			abortWith(c, appErr)
			return
		}

		c.Set(userContextKey, user)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok && user != nil
}

// BearerToken returns the token AuthMiddleware authenticated the request with
func BearerToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}

func parseBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.Code, models.MessageResponse{Message: err.Message})
}
