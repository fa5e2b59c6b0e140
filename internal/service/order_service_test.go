package service

import (
	"context"
	"testing"
	"time"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/internal/task"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CheckoutTestSuite struct {
	suite.Suite
	ctx        context.Context
	carts      CartService
	orders     OrderService
	siteConfig repository.SiteConfigRepository
	publisher  *recordingPublisher
	mailer     *recordingMailer
	tasks      *task.Manager
}

func (s *CheckoutTestSuite) SetupTest() {
	s.ctx = context.Background()
	catalog := repository.CreateCatalogRepository(domain.DefaultProducts(), domain.DefaultCategories())
	cartRepo := repository.CreateCartRepository()
	s.siteConfig = repository.CreateSiteConfigRepository(domain.DefaultSiteConfig())
	s.publisher = &recordingPublisher{}
	s.mailer = &recordingMailer{}
	s.tasks = task.CreateManager(time.Second, time.Minute)

	s.carts = CreateCartService(cartRepo, catalog)
	s.orders = CreateOrderService(repository.CreateOrderRepository(), cartRepo, catalog, repository.CreateUserRepository(),
		s.siteConfig, s.publisher, s.mailer, s.tasks)
}

func (s *CheckoutTestSuite) cartWith(productIDs ...string) string {
	cart, err := s.carts.CreateCart(s.ctx)
	s.Require().NoError(err)

	for _, id := range productIDs {
		_, err = s.carts.AddToCart(s.ctx, cart.ID, dto.CartItemRequest{ProductID: id})
		s.Require().NoError(err)
	}

	return cart.ID
}

func codDetails() domain.CheckoutDetails {
	return domain.CheckoutDetails{
		FullName:      "Nadia Rahman",
		Email:         "nadia@example.com",
		Phone:         "01700000000",
		Address:       "12 Lake Road",
		City:          "Dhaka",
		Zip:           "1212",
		PaymentMethod: domain.PaymentMethodCOD,
	}
}

func (s *CheckoutTestSuite) TestPlaceOrder() {
	type TestCase struct {
		Name          string
		Products      []string
		Request       dto.CheckoutRequest
		ExpectedErr   error
		ExpectedFinal decimal.Decimal
		ExpectedShip  decimal.Decimal
	}

	card := codDetails()
	card.PaymentMethod = domain.PaymentMethodCard
	card.CardNumber = "4111 1111 1111 1234"
	card.Expiry = "12/29"
	card.CVV = "123"

	bkash := codDetails()
	bkash.PaymentMethod = domain.PaymentMethodBkash
	bkash.BkashTransactionID = "TX1"

	testCases := []TestCase{
		{
			Name:          "coupon applied with free shipping",
			Products:      []string{"1", "3"},
			Request:       dto.CheckoutRequest{Details: codDetails(), CouponCode: " velvet10 "},
			ExpectedFinal: decimal.NewFromInt(16470),
			ExpectedShip:  decimal.Zero,
		},
		{
			Name:          "shipping charged below threshold",
			Products:      []string{"5"},
			Request:       dto.CheckoutRequest{Details: card},
			ExpectedFinal: decimal.NewFromInt(1620),
			ExpectedShip:  decimal.NewFromInt(120),
		},
		{
			Name:        "inactive coupon rejected",
			Products:    []string{"5"},
			Request:     dto.CheckoutRequest{Details: codDetails(), CouponCode: "WELCOME20"},
			ExpectedErr: errs.ErrInvalidCoupon,
		},
		{
			Name:        "empty cart rejected",
			Request:     dto.CheckoutRequest{Details: codDetails()},
			ExpectedErr: errs.ErrEmptyCart,
		},
		{
			Name:        "bkash disabled",
			Products:    []string{"5"},
			Request:     dto.CheckoutRequest{Details: bkash},
			ExpectedErr: errs.ErrPaymentMethodDisabled,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			cartID := s.cartWith(tc.Products...)

			order, err := s.orders.PlaceOrder(s.ctx, cartID, tc.Request)
			if tc.ExpectedErr != nil {
				s.ErrorIs(err, tc.ExpectedErr)

				cart, err := s.carts.GetCart(s.ctx, cartID)
				s.Require().NoError(err)
				s.Equal(len(tc.Products), cart.Count)
				return
			}

			s.Require().NoError(err)
			s.True(tc.ExpectedFinal.Equal(order.FinalTotal), "final total %s", order.FinalTotal)
			s.True(tc.ExpectedShip.Equal(order.ShippingCost), "shipping %s", order.ShippingCost)
			s.Equal(domain.OrderStatusPending, order.Status)
			s.Empty(order.Details.CVV)

			cart, err := s.carts.GetCart(s.ctx, cartID)
			s.Require().NoError(err)
			s.Zero(cart.Count)
		})
	}
}

func (s *CheckoutTestSuite) TestPlaceOrderMasksCardAndNotifies() {
	details := codDetails()
	details.PaymentMethod = domain.PaymentMethodCard
	details.CardNumber = "4111 1111 1111 1234"
	details.Expiry = "12/29"
	details.CVV = "123"

	_, err := s.siteConfig.UpdateSiteConfig(s.ctx, func(conf *domain.SiteConfig) error {
		conf.SMTP.Pass = "app-password"
		return nil
	})
	s.Require().NoError(err)

	order, err := s.orders.PlaceOrder(s.ctx, s.cartWith("2"), dto.CheckoutRequest{Details: details})
	s.Require().NoError(err)
	s.tasks.Wait()

	s.Equal("**** 1234", order.Details.CardNumber)
	s.Empty(order.Details.Expiry)
	s.Equal([]string{dto.EventOrderCreated}, s.publisher.Events())

	sent := s.mailer.Sent()
	s.Require().Len(sent, 1)
	s.Equal("nadia@example.com", sent[0].To)
	s.Contains(sent[0].Body, "Blush Velvet Clutch")
	s.Contains(sent[0].Body, order.ID)
}

func (s *CheckoutTestSuite) TestPlaceOrderWithoutSMTPStillSucceeds() {
	s.mailer.err = errs.ErrMailerNotConfigured

	_, err := s.orders.PlaceOrder(s.ctx, s.cartWith("3"), dto.CheckoutRequest{Details: codDetails()})
	s.Require().NoError(err)
	s.tasks.Wait()

	s.Equal([]string{dto.EventOrderCreated}, s.publisher.Events())
}

func (s *CheckoutTestSuite) TestApplyCoupon() {
	quote, err := s.orders.ApplyCoupon(s.ctx, decimal.NewFromInt(2000), "velvet10")
	s.Require().NoError(err)
	s.Equal("VELVET10", quote.CouponCode)
	s.True(decimal.NewFromInt(200).Equal(quote.Discount))

	_, err = s.orders.ApplyCoupon(s.ctx, decimal.NewFromInt(2000), "NOPE")
	s.ErrorIs(err, errs.ErrInvalidCoupon)

	_, err = s.orders.ApplyCoupon(s.ctx, decimal.NewFromInt(2000), "  ")
	s.ErrorIs(err, errs.ErrInvalidCoupon)

	_, err = s.orders.ApplyCoupon(s.ctx, decimal.NewFromInt(-1000), "VELVET10")
	s.ErrorIs(err, errs.ErrClient)
	var ve *domain.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal([]domain.FieldError{{Field: "subtotal", Tag: "gte=0"}}, ve.Fields)
}

func (s *CheckoutTestSuite) TestUpdateOrderStatus() {
	order, err := s.orders.PlaceOrder(s.ctx, s.cartWith("3"), dto.CheckoutRequest{Details: codDetails()})
	s.Require().NoError(err)

	updated, err := s.orders.UpdateOrderStatus(s.ctx, order.ID, dto.OrderStatusRequest{Status: string(domain.OrderStatusProcessing)})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusProcessing, updated.Status)

	_, err = s.orders.UpdateOrderStatus(s.ctx, order.ID, dto.OrderStatusRequest{Status: string(domain.OrderStatusPending)})
	s.ErrorIs(err, errs.ErrInvalidStatusTransition)

	_, err = s.orders.UpdateOrderStatus(s.ctx, order.ID, dto.OrderStatusRequest{Status: "Lost"})
	s.ErrorIs(err, errs.ErrClient)

	_, err = s.orders.UpdateOrderStatus(s.ctx, order.ID, dto.OrderStatusRequest{Status: string(domain.OrderStatusCancelled)})
	s.Require().NoError(err)

	_, err = s.orders.UpdateOrderStatus(s.ctx, order.ID, dto.OrderStatusRequest{Status: string(domain.OrderStatusShipped)})
	s.ErrorIs(err, errs.ErrInvalidStatusTransition)

	s.tasks.Wait()
	s.Equal([]string{dto.EventOrderCreated, dto.EventOrderStatusUpdated, dto.EventOrderStatusUpdated}, sortedEvents(s.publisher.Events()))
}

func (s *CheckoutTestSuite) TestDashboardStats() {
	_, err := s.orders.PlaceOrder(s.ctx, s.cartWith("1"), dto.CheckoutRequest{Details: codDetails()})
	s.Require().NoError(err)
	cancelled, err := s.orders.PlaceOrder(s.ctx, s.cartWith("3"), dto.CheckoutRequest{Details: codDetails()})
	s.Require().NoError(err)
	_, err = s.orders.UpdateOrderStatus(s.ctx, cancelled.ID, dto.OrderStatusRequest{Status: string(domain.OrderStatusCancelled)})
	s.Require().NoError(err)

	stats, err := s.orders.GetDashboardStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, stats.TotalOrders)
	s.Equal(1, stats.PendingOrders)
	s.True(decimal.NewFromInt(15500).Equal(stats.TotalSales), "sales %s", stats.TotalSales)
	s.Equal(6, stats.ProductCount)

	mine, err := s.orders.GetOrdersByEmail(s.ctx, "nadia@example.com")
	s.Require().NoError(err)
	s.Len(mine, 2)
	s.Equal(cancelled.ID, mine[0].ID)
}

func sortedEvents(events []string) []string {
	created := []string{}
	rest := []string{}
	for _, e := range events {
		if e == dto.EventOrderCreated {
			created = append(created, e)
		} else {
			rest = append(rest, e)
		}
	}
	return append(created, rest...)
}

func TestCheckoutTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}
