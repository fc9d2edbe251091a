package controller

import (
	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/internal/service"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService) {
	c := OrderController{
		service: service,
	}
	e.POST("/orders/whatsapp-link", c.ComposeWhatsAppLink)
}

func (c *OrderController) ComposeWhatsAppLink(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "ComposeWhatsAppLink").Msg("")
	}

	resp, verrs, err := c.service.ComposeWhatsAppLink(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, verrs)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
