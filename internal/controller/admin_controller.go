package controller

import (
	"net/http"
	"time"

	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/internal/middleware"
	"github.com/abdulbasset-benz/misskitty-api/internal/service"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	service service.AdminService
}

func CreateAdminController(e *echo.Group, service service.AdminService, adminGuard echo.MiddlewareFunc) {
	c := AdminController{
		service: service,
	}
	e.POST("/admin/login", c.Login)
	e.POST("/admin/logout", c.Logout, adminGuard)
	e.GET("/admin/validate-token", c.ValidateToken, adminGuard)
}

func (c *AdminController) Login(e echo.Context) error {
	payload := dto.AdminRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	e.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AdminController) Logout(e echo.Context) error {
	e.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.WriteSuccessResponse(e, "logged out", nil)
}

func (c *AdminController) ValidateToken(e echo.Context) error {
	return response.WriteSuccessResponse(e, "token is valid", nil)
}
