package service

import (
	"context"
	"time"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/rs/zerolog/log"
)

// Carts untouched for this long are dropped by PurgeStaleCarts.
const staleCartAge = 7 * 24 * time.Hour

type CartServiceImpl struct {
	carts   repository.CartRepository
	catalog repository.CatalogRepository
}

func CreateCartService(carts repository.CartRepository, catalog repository.CatalogRepository) CartService {
	return &CartServiceImpl{carts: carts, catalog: catalog}
}

func (s *CartServiceImpl) CreateCart(ctx context.Context) (resp dto.CartResponse, err error) {
	cart, err := s.carts.CreateCart(ctx)
	if err != nil {
		return resp, err
	}

	return dto.NewCartResponse(cart), nil
}

func (s *CartServiceImpl) GetCart(ctx context.Context, cartID string) (resp dto.CartResponse, err error) {
	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return resp, err
	}

	return dto.NewCartResponse(cart), nil
}

// AddToCart snapshots the current catalog entry into the cart line.
func (s *CartServiceImpl) AddToCart(ctx context.Context, cartID string, req dto.CartItemRequest) (resp dto.CartResponse, err error) {
	product, err := s.catalog.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return resp, err
	}

	cart, err := s.carts.UpdateCart(ctx, cartID, func(cart *domain.Cart) error {
		cart.AddItem(product)
		return nil
	})
	if err != nil {
		return resp, err
	}

	return dto.NewCartResponse(cart), nil
}

func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, cartID string, productID string, req dto.CartQuantityRequest) (resp dto.CartResponse, err error) {
	cart, err := s.carts.UpdateCart(ctx, cartID, func(cart *domain.Cart) error {
		return cart.UpdateQuantity(productID, req.Delta)
	})
	if err != nil {
		return resp, err
	}

	return dto.NewCartResponse(cart), nil
}

func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, cartID string, productID string) (resp dto.CartResponse, err error) {
	cart, err := s.carts.UpdateCart(ctx, cartID, func(cart *domain.Cart) error {
		cart.Remove(productID)
		return nil
	})
	if err != nil {
		return resp, err
	}

	return dto.NewCartResponse(cart), nil
}

func (s *CartServiceImpl) PurgeStaleCarts() {
	deleted, err := s.carts.DeleteStaleCarts(context.Background(), time.Now().Add(-staleCartAge).UnixMilli())
	if err != nil {
		log.Error().Err(err).Str("component", "PurgeStaleCarts").Msg("")
		return
	}

	if deleted > 0 {
		log.Info().Str("component", "PurgeStaleCarts").Int("deleted", deleted).Msg("stale carts purged")
	}
}
