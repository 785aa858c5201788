package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	VisitorCookie = "vt_visitor"
	visitorMaxAge = 365 * 24 * time.Hour
)

// Visitor makes sure every request carries a visitor ID, issuing a new
// cookie when the request has none or an unreadable one.
func Visitor(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			visitorID := uuid.Nil
			if cookie, err := c.Cookie(VisitorCookie); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					visitorID = parsed
				}
			}

			if visitorID == uuid.Nil {
				visitorID = uuid.New()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookie,
					Value:    visitorID.String(),
					Path:     "/",
					MaxAge:   int(visitorMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ContextWithVisitorID(c.Request().Context(), visitorID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
