package repository

import (
	"context"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"
)

type CatalogRepository interface {
	GetProducts(ctx context.Context, filter dto.ProductFilter) (data []domain.Product, total int, err error)
	GetProductByID(ctx context.Context, id string) (data domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	CountProducts(ctx context.Context) (count int, err error)
	GetCategories(ctx context.Context) (data []string, err error)
	AddCategory(ctx context.Context, name string) (err error)
	DeleteCategory(ctx context.Context, name string) (err error)
	ReplaceCatalog(ctx context.Context, products []domain.Product, categories []string) (err error)
}

type CartRepository interface {
	CreateCart(ctx context.Context) (data domain.Cart, err error)
	GetCart(ctx context.Context, id string) (data domain.Cart, err error)
	UpdateCart(ctx context.Context, id string, fn func(cart *domain.Cart) error) (data domain.Cart, err error)
	DeleteStaleCarts(ctx context.Context, before int64) (deleted int, err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (err error)
	GetOrders(ctx context.Context, filter dto.OrderFilter) (data []domain.Order, total int, err error)
	GetOrderByID(ctx context.Context, id string) (data domain.Order, err error)
	UpdateOrder(ctx context.Context, id string, fn func(order *domain.Order) error) (data domain.Order, err error)
	GetAllOrders(ctx context.Context) (data []domain.Order, err error)
	ReplaceOrders(ctx context.Context, data []domain.Order) (err error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id string) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (err error)
	DeleteUser(ctx context.Context, id string) (err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, total int, err error)
	GetAllUsers(ctx context.Context) (data []domain.User, err error)
	ReplaceUsers(ctx context.Context, data []domain.User) (err error)
	AddPendingRegistration(ctx context.Context, data domain.PendingRegistration) (err error)
	GetPendingRegistration(ctx context.Context, id string) (data domain.PendingRegistration, err error)
	DeletePendingRegistration(ctx context.Context, id string) (err error)
	DeleteExpiredPendingRegistrations(ctx context.Context, now int64) (deleted int, err error)
}

type SiteConfigRepository interface {
	GetSiteConfig(ctx context.Context) (data domain.SiteConfig, err error)
	UpdateSiteConfig(ctx context.Context, fn func(conf *domain.SiteConfig) error) (data domain.SiteConfig, err error)
	ReplaceSiteConfig(ctx context.Context, data domain.SiteConfig) (err error)
}

type BlogRepository interface {
	GetBlogPosts(ctx context.Context) (data []domain.BlogPost, err error)
	GetBlogPost(ctx context.Context, idOrSlug string) (data domain.BlogPost, err error)
	AddBlogPost(ctx context.Context, data domain.BlogPost) (err error)
	UpdateBlogPost(ctx context.Context, data domain.BlogPost) (err error)
	DeleteBlogPost(ctx context.Context, id string) (err error)
	ReplaceBlogPosts(ctx context.Context, data []domain.BlogPost) (err error)
}

// DocumentRepository is the remote snapshot target. Implementations return
// errs.ErrDocumentNotFound for a missing key and errs.ErrRemoteSchemaMissing
// when the backing table or collection has not been provisioned.
type DocumentRepository interface {
	GetDocument(ctx context.Context, key string) (doc []byte, err error)
	UpsertDocument(ctx context.Context, key string, doc []byte) (err error)
	Close(ctx context.Context) (err error)
}

type CredentialRepository interface {
	GetCredentials(ctx context.Context) (data domain.StoreCredentials, err error)
	SaveCredentials(ctx context.Context, data domain.StoreCredentials) (err error)
}
