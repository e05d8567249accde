package middleware

import (
	"net/http"
	"signifiya/internal/domain/entity"
	"signifiya/internal/infrastructure/aws/identity"
	"signifiya/internal/utils"
	"signifiya/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	EnsureExists(user *entity.User) error
}

type AuthMiddlewareConfig struct {
	Identity identity.Provider
	UserRepo UserRepository
}

// NewAuthMiddleware resolves the bearer token into a session through the
// identity provider and mirrors the account into our store on first
// contact. Handlers downstream read the session from the context.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			sess, err := cfg.Identity.ResolveSession(c.Request().Context(), token)
			if err != nil {
				log.Warnf("failed to resolve session: %v", err)
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			now := utils.NowUTC()
			user := &entity.User{
				ID:        sess.ID,
				Name:      sess.Name,
				Email:     sess.Email,
				Image:     utils.NullableString(sess.Image),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := cfg.UserRepo.EnsureExists(user); err != nil {
				log.Errorf("failed to ensure user %s exists: %v", sess.ID, err)
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			c.Set("session", sess)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
