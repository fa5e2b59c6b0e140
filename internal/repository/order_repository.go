package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
)

// OrderRepositoryImpl keeps the ledger newest first. Orders are never removed.
type OrderRepositoryImpl struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func CreateOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{}
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.orders, func(o domain.Order) bool { return o.ID == data.ID }) {
		return errs.ErrConflict
	}

	r.orders = slices.Insert(r.orders, 0, data)

	return nil
}

func (r *OrderRepositoryImpl) GetOrders(ctx context.Context, filter dto.OrderFilter) (data []domain.Order, total int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data = []domain.Order{}
	for _, o := range r.orders {
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		if filter.Email != "" && !o.BelongsTo(filter.Email) {
			continue
		}
		data = append(data, o)
	}

	total = len(data)
	start, end, _ := filter.Pagination().Offset(total)

	return data[start:end], total, nil
}

func (r *OrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (data domain.Order, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}

	return data, errs.ErrOrderNotFound
}

func (r *OrderRepositoryImpl) UpdateOrder(ctx context.Context, id string, fn func(order *domain.Order) error) (data domain.Order, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}

		working := r.orders[i]
		if err = fn(&working); err != nil {
			return r.orders[i], err
		}
		r.orders[i] = working

		return working, nil
	}

	return data, errs.ErrOrderNotFound
}

func (r *OrderRepositoryImpl) GetAllOrders(ctx context.Context) (data []domain.Order, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.orders), nil
}

func (r *OrderRepositoryImpl) ReplaceOrders(ctx context.Context, data []domain.Order) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = slices.Clone(data)

	return nil
}
