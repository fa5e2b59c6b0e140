package dto

import (
	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/pkg/utils"
	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	Details    domain.CheckoutDetails `json:"details"`
	CouponCode string                 `json:"coupon_code"`
}

type QuoteRequest struct {
	CouponCode string `query:"coupon_code"`
}

type ApplyCouponRequest struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderNotification struct {
	OrderID    string             `json:"order_id"`
	Email      string             `json:"email"`
	Status     domain.OrderStatus `json:"status"`
	FinalTotal decimal.Decimal    `json:"final_total"`
	ItemCount  int                `json:"item_count"`
	CreatedAt  int64              `json:"created_at"`
	OccurredAt string             `json:"occurred_at"`
}

func NewOrderNotification(o domain.Order) OrderNotification {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}

	return OrderNotification{
		OrderID:    o.ID,
		Email:      o.Details.Email,
		Status:     o.Status,
		FinalTotal: o.FinalTotal,
		ItemCount:  count,
		CreatedAt:  o.CreatedAt,
		OccurredAt: utils.ConvertUnixMilliToISO8601(o.UpdatedAt),
	}
}
