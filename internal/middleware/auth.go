package middleware

import (
	"github.com/abdulbasset-benz/misskitty-api/internal/repository"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
	"github.com/abdulbasset-benz/misskitty-api/pkg/utils"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the only token transport; there is no bearer path.
const SessionCookieName = "admin_token"

// CreateAdminGuard returns the middleware protecting admin endpoints. The
// admin row is re-checked on every request, so a deleted admin loses access
// immediately even with a valid token.
func CreateAdminGuard(repo repository.AdminRepository, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			adminID, err := utils.ParseJWTToken(cookie.Value, jwtSecret)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}

			admin, err := repo.GetAdminByID(c.Request().Context(), adminID)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}
			if admin.ID == 0 {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set("adminID", admin.ID)

			return next(c)
		}
	}
}
