package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/internal/task"
	pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/alimikegami/velvet-storefront/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<h2>Thank you for your order, {{.Details.FullName}}!</h2>
<p>Order <strong>{{.ID}}</strong> was placed on {{.PlacedAt}}.</p>
<table>
{{range .Items}}<tr><td>{{.Product.Name}}</td><td>x{{.Quantity}}</td><td>৳{{.LineTotal.StringFixed 2}}</td></tr>
{{end}}</table>
<p>Subtotal: ৳{{.Total.StringFixed 2}}<br>
Discount: ৳{{.DiscountApplied.StringFixed 2}}<br>
Shipping: ৳{{.ShippingCost.StringFixed 2}}<br>
<strong>Total: ৳{{.FinalTotal.StringFixed 2}}</strong></p>
<p>Payment method: {{.Details.PaymentMethod}}</p>`))

type OrderServiceImpl struct {
	orders     repository.OrderRepository
	carts      repository.CartRepository
	catalog    repository.CatalogRepository
	users      repository.UserRepository
	siteConfig repository.SiteConfigRepository
	publisher  EventPublisher
	mailer     Mailer
	tasks      *task.Manager
}

func CreateOrderService(orders repository.OrderRepository, carts repository.CartRepository, catalog repository.CatalogRepository, users repository.UserRepository, siteConfig repository.SiteConfigRepository, publisher EventPublisher, mailer Mailer, tasks *task.Manager) OrderService {
	return &OrderServiceImpl{
		orders:     orders,
		carts:      carts,
		catalog:    catalog,
		users:      users,
		siteConfig: siteConfig,
		publisher:  publisher,
		mailer:     mailer,
		tasks:      tasks,
	}
}

// Quote previews the checkout totals for a cart without placing anything.
func (s *OrderServiceImpl) Quote(ctx context.Context, cartID string, couponCode string) (resp domain.Quote, err error) {
	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return resp, err
	}

	conf, err := s.siteConfig.GetSiteConfig(ctx)
	if err != nil {
		return resp, err
	}

	return domain.PriceCheckout(cart.Total(), couponCode, conf.Coupons, conf.ShippingPolicy()), nil
}

func (s *OrderServiceImpl) ApplyCoupon(ctx context.Context, subtotal decimal.Decimal, code string) (resp domain.Quote, err error) {
	if subtotal.IsNegative() {
		return resp, &domain.ValidationError{Err: errs.ErrClient, Fields: []domain.FieldError{{Field: "subtotal", Tag: "gte=0"}}}
	}

	conf, err := s.siteConfig.GetSiteConfig(ctx)
	if err != nil {
		return resp, err
	}

	resp = domain.PriceCheckout(subtotal, code, conf.Coupons, conf.ShippingPolicy())
	if resp.CouponCode == "" || resp.CouponInvalid {
		return resp, errs.ErrInvalidCoupon
	}

	return resp, nil
}

// PlaceOrder prices the cart, appends the order and empties the cart in one step.
// Notifications go out in the background and never fail the order.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, cartID string, req dto.CheckoutRequest) (resp domain.Order, err error) {
	conf, err := s.siteConfig.GetSiteConfig(ctx)
	if err != nil {
		return resp, err
	}

	if err = req.Details.Validate(conf.Checkout.EnableBkash); err != nil {
		return resp, err
	}

	var order domain.Order
	_, err = s.carts.UpdateCart(ctx, cartID, func(cart *domain.Cart) error {
		if cart.IsEmpty() {
			return errs.ErrEmptyCart
		}

		quote := domain.PriceCheckout(cart.Total(), req.CouponCode, conf.Coupons, conf.ShippingPolicy())
		if quote.CouponInvalid {
			return errs.ErrInvalidCoupon
		}

		now := time.Now().UnixMilli()
		order = domain.Order{
			ID:              ulid.Make().String(),
			CreatedAt:       now,
			UpdatedAt:       now,
			Details:         req.Details.Sanitized(),
			Items:           cart.Clone().Items,
			Total:           quote.Subtotal,
			CouponCode:      quote.CouponCode,
			DiscountApplied: quote.Discount,
			ShippingCost:    quote.ShippingCost,
			FinalTotal:      quote.FinalTotal,
			Status:          domain.OrderStatusPending,
		}

		if err := s.orders.AddOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to add order: %w", err)
		}

		cart.Clear()
		return nil
	})
	if err != nil {
		return resp, err
	}

	log.Ctx(ctx).Info().Str("component", "PlaceOrder").Str("order_id", order.ID).Str("final_total", order.FinalTotal.String()).Msg("order placed")

	s.tasks.Submit(ctx, "order_notification", func(ctx context.Context) (interface{}, error) {
		return nil, s.notifyOrderPlaced(ctx, order, conf.SMTP)
	})

	return order, nil
}

func (s *OrderServiceImpl) notifyOrderPlaced(ctx context.Context, order domain.Order, smtp domain.SMTPSettings) error {
	publishErr := s.publisher.Publish(ctx, dto.EventOrderCreated, dto.NewOrderNotification(order))

	body, err := renderConfirmation(order)
	if err != nil {
		return errors.Join(publishErr, err)
	}

	err = s.mailer.Send(ctx, smtp, order.Details.Email, fmt.Sprintf("Order %s confirmed", order.ID), body)
	if errors.Is(err, errs.ErrMailerNotConfigured) {
		log.Ctx(ctx).Warn().Str("component", "PlaceOrder").Msg("smtp not configured, confirmation email skipped")
		err = nil
	}

	return errors.Join(publishErr, err)
}

func renderConfirmation(order domain.Order) (string, error) {
	var buf bytes.Buffer
	err := confirmationTemplate.Execute(&buf, struct {
		domain.Order
		PlacedAt string
	}{order, utils.ConvertDateTimeToHumanReadableFormat(order.CreatedAt)})
	if err != nil {
		return "", fmt.Errorf("failed to render confirmation: %w", err)
	}

	return buf.String(), nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, filter dto.OrderFilter) (resp pkgdto.PaginationResponse, err error) {
	data, total, err := s.orders.GetOrders(ctx, filter)
	if err != nil {
		return resp, fmt.Errorf("failed to get orders: %w", err)
	}

	resp.Records = data
	resp.Metadata = pkgdto.PaginationMetadata{
		TotalCount: uint64(total),
		Page:       uint64(filter.Page),
		Limit:      filter.Limit,
	}

	return resp, nil
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (resp domain.Order, err error) {
	return s.orders.GetOrderByID(ctx, id)
}

func (s *OrderServiceImpl) GetOrdersByEmail(ctx context.Context, email string) (resp []domain.Order, err error) {
	resp, _, err = s.orders.GetOrders(ctx, dto.OrderFilter{Email: email})
	return resp, err
}

func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (resp domain.Order, err error) {
	next := domain.OrderStatus(req.Status)
	if !next.IsValid() {
		return resp, &domain.ValidationError{Err: errs.ErrClient, Fields: []domain.FieldError{{Field: "status", Tag: "oneof=Pending Processing Shipped Delivered Cancelled"}}}
	}

	var previous domain.OrderStatus
	resp, err = s.orders.UpdateOrder(ctx, id, func(order *domain.Order) error {
		previous = order.Status
		return order.TransitionTo(next, time.Now().UnixMilli())
	})
	if err != nil {
		return resp, err
	}

	if previous != resp.Status {
		order := resp
		s.tasks.Submit(ctx, "order_status_event", func(ctx context.Context) (interface{}, error) {
			return nil, s.publisher.Publish(ctx, dto.EventOrderStatusUpdated, dto.NewOrderNotification(order))
		})
	}

	return resp, nil
}

func (s *OrderServiceImpl) GetDashboardStats(ctx context.Context) (resp domain.DashboardStats, err error) {
	orders, err := s.orders.GetAllOrders(ctx)
	if err != nil {
		return resp, err
	}

	resp = domain.SummarizeOrders(orders)

	resp.ProductCount, err = s.catalog.CountProducts(ctx)
	if err != nil {
		return resp, err
	}

	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return resp, err
	}
	resp.UserCount = len(users)

	return resp, nil
}
