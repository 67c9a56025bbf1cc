package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"hostelops/internal/auth"
	"hostelops/internal/errors"
	"hostelops/internal/model"
	"hostelops/internal/repository"
)

const currentUserKey = "currentUser"

// CurrentUser resolves the validated JWT claims to a live user record and
// stores it on the context. Runs after the echo-jwt middleware; a token that
// refers to a non-existent user fails authentication rather than surfacing a
// store error.
func CurrentUser(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return unauthenticated()
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return unauthenticated()
			}
			userID, err := claims.Subject()
			if err != nil {
				return unauthenticated()
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return unauthenticated()
				}
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin rejects callers whose resolved user is not an admin.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFromContext(c)
			if !ok {
				return unauthenticated()
			}
			if !user.IsAdmin() {
				httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// UserFromContext returns the resolved current user, if any.
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(currentUserKey).(*model.User)
	return user, ok
}

func unauthenticated() *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(errors.ErrUnauthenticated)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
