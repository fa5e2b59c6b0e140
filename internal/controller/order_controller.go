package controller

import (
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/middleware"
	"github.com/alimikegami/velvet-storefront/internal/service"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(account *echo.Group, admin *echo.Group, service service.OrderService) {
	oc := OrderController{
		service: service,
	}

	account.GET("/orders", oc.GetMyOrders)

	admin.GET("/dashboard", oc.GetDashboardStats, middleware.RequireTab(domain.TabDashboard))

	orders := admin.Group("/orders", middleware.RequireTab(domain.TabOrders))
	orders.GET("", oc.GetOrders)
	orders.GET("/:id", oc.GetOrder)
	orders.PATCH("/:id/status", oc.UpdateOrderStatus)
}

// GetMyOrders lists the orders placed with the signed-in account's email.
func (c *OrderController) GetMyOrders(e echo.Context) error {
	session, ok := middleware.Session(e)
	if !ok {
		return response.WriteErrorResponse(e, errs.ErrNotLoggedIn, nil)
	}

	resp, err := c.service.GetOrdersByEmail(e.Request().Context(), session.Email)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	filter := dto.OrderFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
	}

	resp, err := c.service.GetOrders(e.Request().Context(), filter)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrder(e echo.Context) error {
	resp, err := c.service.GetOrder(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	resp, err := c.service.UpdateOrderStatus(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "Order status updated", resp)
}

func (c *OrderController) GetDashboardStats(e echo.Context) error {
	resp, err := c.service.GetDashboardStats(e.Request().Context())
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
