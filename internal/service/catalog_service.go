package service

import (
	"context"
	"fmt"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

type CatalogServiceImpl struct {
	repo repository.CatalogRepository
}

func CreateCatalogService(repo repository.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{repo: repo}
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context, filter dto.ProductFilter) (resp pkgdto.PaginationResponse, err error) {
	data, total, err := s.repo.GetProducts(ctx, filter)
	if err != nil {
		return resp, fmt.Errorf("failed to get products: %w", err)
	}

	resp.Records = data
	resp.Metadata = pkgdto.PaginationMetadata{
		TotalCount: uint64(total),
		Page:       uint64(filter.Page),
		Limit:      filter.Limit,
	}

	return resp, nil
}

func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (resp domain.Product, err error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (resp domain.Product, err error) {
	product := productFromRequest(ulid.Make().String(), req)
	if err = product.Validate(); err != nil {
		return resp, err
	}

	if err = s.repo.AddProduct(ctx, product); err != nil {
		return resp, err
	}

	log.Ctx(ctx).Info().Str("component", "AddProduct").Str("product_id", product.ID).Msg("product created")

	return product, nil
}

// UpdateProduct replaces the product wholesale, keeping only its id.
func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (resp domain.Product, err error) {
	product := productFromRequest(id, req)
	if err = product.Validate(); err != nil {
		return resp, err
	}

	if err = s.repo.UpdateProduct(ctx, product); err != nil {
		return resp, err
	}

	return product, nil
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *CatalogServiceImpl) GetCategories(ctx context.Context) (resp []string, err error) {
	return s.repo.GetCategories(ctx)
}

func (s *CatalogServiceImpl) AddCategory(ctx context.Context, req dto.CategoryRequest) (err error) {
	name := domain.NormalizeCategoryName(req.Name)
	if name == "" {
		return &domain.ValidationError{Err: errs.ErrClient, Fields: []domain.FieldError{{Field: "name", Tag: "required"}}}
	}

	return s.repo.AddCategory(ctx, name)
}

func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, name string) (err error) {
	return s.repo.DeleteCategory(ctx, name)
}

func productFromRequest(id string, req dto.ProductRequest) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        req.Name,
		Slug:        domain.Slugify(req.Name),
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		IsNew:       req.IsNew,
		IsFeatured:  req.IsFeatured,
	}
}
