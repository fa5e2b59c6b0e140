package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ShippingPolicy struct {
	Charge        decimal.Decimal
	FreeThreshold decimal.Decimal
}

type Quote struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	CouponCode    string          `json:"coupon_code,omitempty"`
	CouponInvalid bool            `json:"coupon_invalid"`
	Discount      decimal.Decimal `json:"discount"`
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
	FinalTotal    decimal.Decimal `json:"final_total"`
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FindActiveCoupon looks up an active coupon by normalized code.
func FindActiveCoupon(coupons []Coupon, code string) (Coupon, bool) {
	code = NormalizeCouponCode(code)
	if code == "" {
		return Coupon{}, false
	}

	for _, c := range coupons {
		if c.IsActive && NormalizeCouponCode(c.Code) == code {
			return c, true
		}
	}

	return Coupon{}, false
}

func CalculateDiscount(subtotal, percent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(ClampPercent(percent)).Div(hundred)
}

// CalculateShipping waives the charge at or above the threshold. A zero charge disables shipping fees.
func CalculateShipping(subtotal decimal.Decimal, policy ShippingPolicy) decimal.Decimal {
	if !policy.Charge.IsPositive() {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(policy.FreeThreshold) {
		return decimal.Zero
	}

	return policy.Charge
}

func PriceCheckout(subtotal decimal.Decimal, couponCode string, coupons []Coupon, policy ShippingPolicy) Quote {
	q := Quote{
		Subtotal:   subtotal,
		CouponCode: NormalizeCouponCode(couponCode),
		Discount:   decimal.Zero,
	}

	if q.CouponCode != "" {
		if coupon, ok := FindActiveCoupon(coupons, q.CouponCode); ok {
			q.Discount = CalculateDiscount(subtotal, coupon.DiscountPercent)
		} else {
			q.CouponInvalid = true
		}
	}

	q.ShippingCost = CalculateShipping(subtotal, policy)
	q.FinalTotal = subtotal.Sub(q.Discount).Add(q.ShippingCost)

	return q
}
