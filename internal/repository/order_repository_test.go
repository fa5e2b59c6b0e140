package repository

import (
	"context"
	"testing"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository(t *testing.T) {
	repo := CreateOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddOrder(ctx, domain.Order{ID: "a", Status: domain.OrderStatusPending, Details: domain.CheckoutDetails{Email: "One@example.com"}}))
	require.NoError(t, repo.AddOrder(ctx, domain.Order{ID: "b", Status: domain.OrderStatusPending, Details: domain.CheckoutDetails{Email: "two@example.com"}}))
	assert.ErrorIs(t, repo.AddOrder(ctx, domain.Order{ID: "a"}), errs.ErrConflict)

	orders, total, err := repo.GetOrders(ctx, dto.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "b", orders[0].ID)

	orders, _, err = repo.GetOrders(ctx, dto.OrderFilter{Email: "one@EXAMPLE.com"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "a", orders[0].ID)

	_, err = repo.UpdateOrder(ctx, "a", func(o *domain.Order) error {
		return o.TransitionTo(domain.OrderStatusShipped, 1)
	})
	require.NoError(t, err)

	_, err = repo.UpdateOrder(ctx, "a", func(o *domain.Order) error {
		return o.TransitionTo(domain.OrderStatusPending, 2)
	})
	assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

	order, err := repo.GetOrderByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, order.Status)

	orders, _, err = repo.GetOrders(ctx, dto.OrderFilter{Status: "Pending"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "b", orders[0].ID)
}
