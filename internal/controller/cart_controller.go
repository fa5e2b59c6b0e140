package controller

import (
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/service"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CartController struct {
	carts  service.CartService
	orders service.OrderService
}

func CreateCartController(g *echo.Group, carts service.CartService, orders service.OrderService) {
	cc := CartController{
		carts:  carts,
		orders: orders,
	}

	g.POST("/carts", cc.CreateCart)
	g.GET("/carts/:id", cc.GetCart)
	g.POST("/carts/:id/items", cc.AddToCart)
	g.PATCH("/carts/:id/items/:product_id", cc.UpdateQuantity)
	g.DELETE("/carts/:id/items/:product_id", cc.RemoveFromCart)
	g.GET("/carts/:id/quote", cc.Quote)
	g.POST("/carts/:id/checkout", cc.Checkout)
	g.POST("/coupons/apply", cc.ApplyCoupon)
}

func (c *CartController) CreateCart(e echo.Context) error {
	resp, err := c.carts.CreateCart(e.Request().Context())
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *CartController) GetCart(e echo.Context) error {
	resp, err := c.carts.GetCart(e.Request().Context(), e.Param("id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) AddToCart(e echo.Context) error {
	payload := dto.CartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddToCart").Msg("")
	}

	resp, err := c.carts.AddToCart(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) UpdateQuantity(e echo.Context) error {
	payload := dto.CartQuantityRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateQuantity").Msg("")
	}

	resp, err := c.carts.UpdateQuantity(e.Request().Context(), e.Param("id"), e.Param("product_id"), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) RemoveFromCart(e echo.Context) error {
	resp, err := c.carts.RemoveFromCart(e.Request().Context(), e.Param("id"), e.Param("product_id"))
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) Quote(e echo.Context) error {
	payload := dto.QuoteRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Quote").Msg("")
	}

	resp, err := c.orders.Quote(e.Request().Context(), e.Param("id"), payload.CouponCode)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) ApplyCoupon(e echo.Context) error {
	payload := dto.ApplyCouponRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "ApplyCoupon").Msg("")
	}

	resp, err := c.orders.ApplyCoupon(e.Request().Context(), payload.Subtotal, payload.Code)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteSuccessResponse(e, "Coupon applied", resp)
}

func (c *CartController) Checkout(e echo.Context) error {
	payload := dto.CheckoutRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("")
	}

	resp, err := c.orders.PlaceOrder(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return writeError(e, err)
	}

	return response.WriteCreatedResponse(e, "Order placed", resp)
}
