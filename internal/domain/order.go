package domain

import (
	"net/mail"
	"strings"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCOD   PaymentMethod = "COD"
	PaymentMethodCard  PaymentMethod = "CARD"
	PaymentMethodBkash PaymentMethod = "BKASH"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

var fulfillmentRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

func (s OrderStatus) IsValid() bool {
	_, ok := fulfillmentRank[s]
	return ok || s == OrderStatusCancelled
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo allows forward moves along the fulfillment chain and cancellation
// from any non-terminal state. Re-setting the current status is a no-op and allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	return fulfillmentRank[next] > fulfillmentRank[s]
}

type CheckoutDetails struct {
	FullName           string        `json:"full_name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	Address            string        `json:"address"`
	City               string        `json:"city"`
	Zip                string        `json:"zip"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	CardNumber         string        `json:"card_number,omitempty"`
	Expiry             string        `json:"expiry,omitempty"`
	CVV                string        `json:"cvv,omitempty"`
	BkashTransactionID string        `json:"bkash_transaction_id,omitempty"`
}

// Validate reports missing fields. bKash is only accepted while it is enabled in the checkout settings.
func (d CheckoutDetails) Validate(bkashEnabled bool) error {
	var c fieldChecker
	c.required("full_name", d.FullName)
	c.required("email", d.Email)
	c.required("phone", d.Phone)
	c.required("address", d.Address)
	c.required("city", d.City)
	c.required("zip", d.Zip)

	if d.Email != "" {
		if _, err := mail.ParseAddress(d.Email); err != nil {
			c.fail("email", "email")
		}
	}

	switch d.PaymentMethod {
	case PaymentMethodCOD:
	case PaymentMethodCard:
		c.required("card_number", d.CardNumber)
		c.required("expiry", d.Expiry)
		c.required("cvv", d.CVV)
	case PaymentMethodBkash:
		if !bkashEnabled {
			return errs.ErrPaymentMethodDisabled
		}
		c.required("bkash_transaction_id", d.BkashTransactionID)
	default:
		c.fail("payment_method", "oneof=COD CARD BKASH")
	}

	return c.result(errs.ErrInvalidCheckoutDetails)
}

// Sanitized drops card secrets before the details are stored on an order.
func (d CheckoutDetails) Sanitized() CheckoutDetails {
	out := d
	out.CVV = ""
	out.Expiry = ""
	if d.CardNumber != "" {
		digits := strings.ReplaceAll(d.CardNumber, " ", "")
		if len(digits) > 4 {
			digits = digits[len(digits)-4:]
		}
		out.CardNumber = "**** " + digits
	}

	return out
}

type Order struct {
	ID              string          `json:"id"`
	CreatedAt       int64           `json:"created_at"`
	UpdatedAt       int64           `json:"updated_at"`
	Details         CheckoutDetails `json:"details"`
	Items           []CartItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	DiscountApplied decimal.Decimal `json:"discount_applied"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	FinalTotal      decimal.Decimal `json:"final_total"`
	Status          OrderStatus     `json:"status"`
}

func (o *Order) TransitionTo(next OrderStatus, now int64) error {
	if !o.Status.CanTransitionTo(next) {
		return errs.ErrInvalidStatusTransition
	}
	if o.Status != next {
		o.Status = next
		o.UpdatedAt = now
	}

	return nil
}

func (o Order) BelongsTo(email string) bool {
	return strings.EqualFold(strings.TrimSpace(o.Details.Email), strings.TrimSpace(email))
}

const profitMargin = "0.35"

type DashboardStats struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
	ProductCount    int             `json:"product_count"`
	UserCount       int             `json:"user_count"`
}

// SummarizeOrders totals final amounts of orders that were not cancelled.
func SummarizeOrders(orders []Order) DashboardStats {
	stats := DashboardStats{TotalSales: decimal.Zero, TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Status == OrderStatusPending {
			stats.PendingOrders++
		}
		if o.Status == OrderStatusCancelled {
			continue
		}
		stats.TotalSales = stats.TotalSales.Add(o.FinalTotal)
	}
	stats.EstimatedProfit = stats.TotalSales.Mul(decimal.RequireFromString(profitMargin))

	return stats
}
