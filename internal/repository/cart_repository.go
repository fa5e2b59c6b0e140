package repository

import (
	"context"
	"sync"
	"time"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/google/uuid"
)

type CartRepositoryImpl struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func CreateCartRepository() CartRepository {
	return &CartRepositoryImpl{carts: make(map[string]*domain.Cart)}
}

func (r *CartRepositoryImpl) CreateCart(ctx context.Context) (data domain.Cart, err error) {
	id, err := uuid.NewV7()
	if err != nil {
		return data, err
	}

	cart := &domain.Cart{ID: id.String(), Items: []domain.CartItem{}, UpdatedAt: time.Now().UnixMilli()}

	r.mu.Lock()
	r.carts[cart.ID] = cart
	r.mu.Unlock()

	return cart.Clone(), nil
}

func (r *CartRepositoryImpl) GetCart(ctx context.Context, id string) (data domain.Cart, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[id]
	if !ok {
		return data, errs.ErrCartNotFound
	}

	return cart.Clone(), nil
}

// UpdateCart runs fn under the cart lock. Changes made by fn are discarded when it fails.
func (r *CartRepositoryImpl) UpdateCart(ctx context.Context, id string, fn func(cart *domain.Cart) error) (data domain.Cart, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[id]
	if !ok {
		return data, errs.ErrCartNotFound
	}

	working := cart.Clone()
	if err = fn(&working); err != nil {
		return cart.Clone(), err
	}

	working.UpdatedAt = time.Now().UnixMilli()
	r.carts[id] = &working

	return working.Clone(), nil
}

// DeleteStaleCarts drops carts last touched before the given unix milli time.
func (r *CartRepositoryImpl) DeleteStaleCarts(ctx context.Context, before int64) (deleted int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, cart := range r.carts {
		if cart.UpdatedAt < before {
			delete(r.carts, id)
			deleted++
		}
	}

	return deleted, nil
}
