package dto

import (
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CartItemRequest struct {
	ProductID string `json:"product_id"`
}

type CartQuantityRequest struct {
	Delta int `json:"delta"`
}

type CartResponse struct {
	ID    string            `json:"id"`
	Items []domain.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Count int               `json:"count"`
}

func NewCartResponse(c domain.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []domain.CartItem{}
	}

	return CartResponse{ID: c.ID, Items: items, Total: c.Total(), Count: c.Count()}
}
