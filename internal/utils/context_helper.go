package utils

import (
	"signifiya/internal/infrastructure/aws/identity"
	"signifiya/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func GetSessionFromContext(c echo.Context) (*identity.Session, apierror.ErrorResponse) {
	val := c.Get("session")
	if val == nil {
		log.Warnf("route %s attempted to read nil session from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	sess, ok := val.(*identity.Session)
	if !ok {
		log.Warnf("expected session type at 'session' context key, got %v", val)
		return nil, apierror.InternalServerError
	}
	return sess, nil
}
