package domain

import (
	"testing"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	type TestCase struct {
		From     OrderStatus
		To       OrderStatus
		Expected bool
	}

	testCases := []TestCase{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusProcessing, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatus("Lost"), false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.From)+"->"+string(tc.To), func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.From.CanTransitionTo(tc.To))
		})
	}
}

func TestOrder_TransitionTo(t *testing.T) {
	o := Order{Status: OrderStatusPending}

	require.NoError(t, o.TransitionTo(OrderStatusShipped, 10))
	assert.Equal(t, OrderStatusShipped, o.Status)
	assert.Equal(t, int64(10), o.UpdatedAt)

	assert.ErrorIs(t, o.TransitionTo(OrderStatusPending, 11), errs.ErrInvalidStatusTransition)
	assert.Equal(t, OrderStatusShipped, o.Status)
}

func validDetails() CheckoutDetails {
	return CheckoutDetails{
		FullName: "Nadia Rahman", Email: "nadia@example.com", Phone: "01700000000",
		Address: "House 1, Road 2", City: "Dhaka", Zip: "1212", PaymentMethod: PaymentMethodCOD,
	}
}

func TestCheckoutDetails_Validate(t *testing.T) {
	type TestCase struct {
		Name         string
		Mutate       func(d *CheckoutDetails)
		BkashEnabled bool
		ExpectedErr  error
		Fields       []string
	}

	testCases := []TestCase{
		{Name: "Cash on delivery", Mutate: func(d *CheckoutDetails) {}},
		{Name: "Missing address", Mutate: func(d *CheckoutDetails) { d.Address = " " }, ExpectedErr: errs.ErrInvalidCheckoutDetails, Fields: []string{"address"}},
		{Name: "Card without card fields", Mutate: func(d *CheckoutDetails) { d.PaymentMethod = PaymentMethodCard }, ExpectedErr: errs.ErrInvalidCheckoutDetails, Fields: []string{"card_number", "expiry", "cvv"}},
		{Name: "bKash disabled", Mutate: func(d *CheckoutDetails) { d.PaymentMethod = PaymentMethodBkash }, ExpectedErr: errs.ErrPaymentMethodDisabled},
		{Name: "bKash without transaction id", BkashEnabled: true, Mutate: func(d *CheckoutDetails) { d.PaymentMethod = PaymentMethodBkash }, ExpectedErr: errs.ErrInvalidCheckoutDetails, Fields: []string{"bkash_transaction_id"}},
		{Name: "Unknown payment method", Mutate: func(d *CheckoutDetails) { d.PaymentMethod = "CRYPTO" }, ExpectedErr: errs.ErrInvalidCheckoutDetails, Fields: []string{"payment_method"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			d := validDetails()
			tc.Mutate(&d)

			err := d.Validate(tc.BkashEnabled)
			if tc.ExpectedErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.ExpectedErr)
			if tc.Fields != nil {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				names := []string{}
				for _, f := range verr.Fields {
					names = append(names, f.Field)
				}
				assert.Equal(t, tc.Fields, names)
			}
		})
	}
}

func TestCheckoutDetails_SanitizedMasksCard(t *testing.T) {
	d := validDetails()
	d.PaymentMethod = PaymentMethodCard
	d.CardNumber = "4242 4242 4242 4242"
	d.CVV = "123"
	d.Expiry = "12/30"

	out := d.Sanitized()

	assert.Equal(t, "**** 4242", out.CardNumber)
	assert.Empty(t, out.CVV)
	assert.Empty(t, out.Expiry)
}

func TestSummarizeOrders(t *testing.T) {
	orders := []Order{
		{Status: OrderStatusPending, FinalTotal: decimal.NewFromInt(1000)},
		{Status: OrderStatusDelivered, FinalTotal: decimal.NewFromInt(3000)},
		{Status: OrderStatusCancelled, FinalTotal: decimal.NewFromInt(9000)},
	}

	stats := SummarizeOrders(orders)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.True(t, stats.TotalSales.Equal(decimal.NewFromInt(4000)))
	assert.True(t, stats.EstimatedProfit.Equal(decimal.NewFromInt(1400)))
}

func TestOrder_BelongsToIsCaseInsensitive(t *testing.T) {
	o := Order{Details: CheckoutDetails{Email: "Nadia@Example.com"}}

	assert.True(t, o.BelongsTo("nadia@example.com"))
	assert.False(t, o.BelongsTo("other@example.com"))
}
