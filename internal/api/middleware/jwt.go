package middleware

import (
	"context"
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const adminSubject = "admin"

// RequireAdmin expects echo-jwt to have stored a validated token under
// "user" and rejects tokens whose subject is not the admin.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok || token == nil {
				return forbidden(c)
			}

			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return forbidden(c)
			}

			sub, err := claims.GetSubject()
			if err != nil || sub != adminSubject {
				return forbidden(c)
			}

			ctx := context.WithValue(c.Request().Context(), adminKey, true)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
}
