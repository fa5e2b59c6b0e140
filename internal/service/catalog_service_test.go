package service

import (
	"context"
	"testing"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService() CatalogService {
	return CreateCatalogService(repository.CreateCatalogRepository(domain.DefaultProducts(), domain.DefaultCategories()))
}

func TestCatalogProducts(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, dto.ProductRequest{Name: "Silk Scarf Duo", Price: decimal.NewFromInt(2200), Category: "Scarves"})
	require.NoError(t, err)
	assert.Equal(t, "silk-scarf-duo", product.Slug)
	assert.NotEmpty(t, product.ID)

	_, err = svc.AddProduct(ctx, dto.ProductRequest{Name: "Ghost", Price: decimal.NewFromInt(10), Category: "Nope"})
	assert.ErrorIs(t, err, errs.ErrUnknownCategory)

	page, err := svc.GetProducts(ctx, dto.ProductFilter{Q: "scarf"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), page.Metadata.TotalCount)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))
	_, err = svc.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestCatalogCategories(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddCategory(ctx, dto.CategoryRequest{Name: "  "}), errs.ErrClient)
	assert.ErrorIs(t, svc.AddCategory(ctx, dto.CategoryRequest{Name: "bag"}), errs.ErrDuplicateName)
	assert.ErrorIs(t, svc.DeleteCategory(ctx, "Bag"), errs.ErrCategoryInUse)
	assert.NoError(t, svc.DeleteCategory(ctx, "Jewelry"))

	categories, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	assert.NotContains(t, categories, "Jewelry")
}

func TestBlogService(t *testing.T) {
	svc := CreateBlogService(repository.CreateBlogRepository(domain.DefaultBlogPosts()))
	ctx := context.Background()

	post, err := svc.AddBlogPost(ctx, domain.BlogPost{Title: "Packing for Cox's Bazar", Content: "Light layers."})
	require.NoError(t, err)
	assert.Equal(t, "packing-for-cox-s-bazar", post.Slug)
	assert.NotEmpty(t, post.Date)

	posts, err := svc.GetBlogPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, post.ID, posts[0].ID)

	bySlug, err := svc.GetBlogPost(ctx, post.Slug)
	require.NoError(t, err)
	assert.Equal(t, post.ID, bySlug.ID)

	_, err = svc.AddBlogPost(ctx, domain.BlogPost{Title: "No body"})
	assert.ErrorIs(t, err, errs.ErrClient)

	require.NoError(t, svc.DeleteBlogPost(ctx, post.ID))
	_, err = svc.GetBlogPost(ctx, post.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
