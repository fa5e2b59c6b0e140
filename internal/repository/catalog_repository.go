package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

type CatalogRepositoryImpl struct {
	mu         sync.RWMutex
	products   []domain.Product
	categories []string
}

func CreateCatalogRepository(products []domain.Product, categories []string) CatalogRepository {
	return &CatalogRepositoryImpl{
		products:   slices.Clone(products),
		categories: slices.Clone(categories),
	}
}

func (r *CatalogRepositoryImpl) GetProducts(ctx context.Context, filter dto.ProductFilter) (data []domain.Product, total int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data = []domain.Product{}
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Featured && !p.IsFeatured {
			continue
		}
		if !p.MatchesQuery(filter.Q) {
			continue
		}
		data = append(data, p)
	}

	total = len(data)
	start, end, _ := filter.Pagination().Offset(total)

	return data[start:end], total, nil
}

func (r *CatalogRepositoryImpl) GetProductByID(ctx context.Context, id string) (data domain.Product, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return data, errs.ErrProductNotFound
	}

	return r.products[idx], nil
}

func (r *CatalogRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.categories, data.Category) {
		return errs.ErrUnknownCategory
	}
	if r.indexOf(data.ID) >= 0 {
		log.Ctx(ctx).Error().Str("component", "AddProduct").Str("product_id", data.ID).Msg("duplicate product id")
		return errs.ErrConflict
	}

	r.products = append(r.products, data)

	return nil
}

func (r *CatalogRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(data.ID)
	if idx < 0 {
		return errs.ErrProductNotFound
	}
	if !slices.Contains(r.categories, data.Category) {
		return errs.ErrUnknownCategory
	}

	r.products[idx] = data

	return nil
}

func (r *CatalogRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return errs.ErrProductNotFound
	}

	r.products = slices.Delete(r.products, idx, idx+1)

	return nil
}

func (r *CatalogRepositoryImpl) CountProducts(ctx context.Context) (count int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products), nil
}

func (r *CatalogRepositoryImpl) GetCategories(ctx context.Context) (data []string, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.categories), nil
}

func (r *CatalogRepositoryImpl) AddCategory(ctx context.Context, name string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if strings.EqualFold(c, name) {
			return errs.ErrDuplicateName
		}
	}

	r.categories = append(r.categories, name)

	return nil
}

// DeleteCategory refuses to leave products pointing at a missing category.
func (r *CatalogRepositoryImpl) DeleteCategory(ctx context.Context, name string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.Index(r.categories, name)
	if idx < 0 {
		return errs.ErrNotFound
	}

	for _, p := range r.products {
		if p.Category == name {
			return errs.ErrCategoryInUse
		}
	}

	r.categories = slices.Delete(r.categories, idx, idx+1)

	return nil
}

// ReplaceCatalog installs a loaded catalog. Categories referenced by products
// but missing from the set are appended so no product dangles.
func (r *CatalogRepositoryImpl) ReplaceCatalog(ctx context.Context, products []domain.Product, categories []string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if products != nil {
		r.products = slices.Clone(products)
	}
	if categories != nil {
		r.categories = slices.Clone(categories)
	}

	for _, p := range r.products {
		if p.Category == "" || slices.Contains(r.categories, p.Category) {
			continue
		}
		log.Ctx(ctx).Warn().Str("component", "ReplaceCatalog").Str("product_id", p.ID).Str("category", p.Category).Msg("restoring missing category")
		r.categories = append(r.categories, p.Category)
	}

	return nil
}

func (r *CatalogRepositoryImpl) indexOf(id string) int {
	return slices.IndexFunc(r.products, func(p domain.Product) bool { return p.ID == id })
}
