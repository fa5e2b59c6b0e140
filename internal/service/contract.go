package service

import (
	"context"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/task"
	pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"
	"github.com/shopspring/decimal"
)

type CatalogService interface {
	GetProducts(ctx context.Context, filter dto.ProductFilter) (resp pkgdto.PaginationResponse, err error)
	GetProduct(ctx context.Context, id string) (resp domain.Product, err error)
	AddProduct(ctx context.Context, req dto.ProductRequest) (resp domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (resp domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetCategories(ctx context.Context) (resp []string, err error)
	AddCategory(ctx context.Context, req dto.CategoryRequest) (err error)
	DeleteCategory(ctx context.Context, name string) (err error)
}

type CartService interface {
	CreateCart(ctx context.Context) (resp dto.CartResponse, err error)
	GetCart(ctx context.Context, cartID string) (resp dto.CartResponse, err error)
	AddToCart(ctx context.Context, cartID string, req dto.CartItemRequest) (resp dto.CartResponse, err error)
	UpdateQuantity(ctx context.Context, cartID string, productID string, req dto.CartQuantityRequest) (resp dto.CartResponse, err error)
	RemoveFromCart(ctx context.Context, cartID string, productID string) (resp dto.CartResponse, err error)
	PurgeStaleCarts()
}

type OrderService interface {
	Quote(ctx context.Context, cartID string, couponCode string) (resp domain.Quote, err error)
	ApplyCoupon(ctx context.Context, subtotal decimal.Decimal, code string) (resp domain.Quote, err error)
	PlaceOrder(ctx context.Context, cartID string, req dto.CheckoutRequest) (resp domain.Order, err error)
	GetOrders(ctx context.Context, filter dto.OrderFilter) (resp pkgdto.PaginationResponse, err error)
	GetOrder(ctx context.Context, id string) (resp domain.Order, err error)
	GetOrdersByEmail(ctx context.Context, email string) (resp []domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, id string, req dto.OrderStatusRequest) (resp domain.Order, err error)
	GetDashboardStats(ctx context.Context) (resp domain.DashboardStats, err error)
}

type UserService interface {
	Register(ctx context.Context, req dto.UserRequest) (resp dto.RegisterResponse, err error)
	VerifyRegistration(ctx context.Context, req dto.VerifyRegistrationRequest) (resp dto.LoginResponse, err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error)
	CreateUser(ctx context.Context, req dto.UserRequest) (resp dto.UserResponse, err error)
	DeleteUser(ctx context.Context, actorID string, id string) (err error)
	SeedAccounts(ctx context.Context, accounts []domain.SeedAccount) (err error)
	PurgeExpiredRegistrations()
}

type SiteConfigService interface {
	GetSiteConfig(ctx context.Context) (resp domain.SiteConfig, err error)
	UpdateGeneralInfo(ctx context.Context, req dto.GeneralInfoRequest) (resp domain.SiteConfig, err error)
	UpdateStoreDesign(ctx context.Context, req dto.StoreDesignRequest) (resp domain.SiteConfig, err error)
	UpdateContactInfo(ctx context.Context, req domain.ContactInfo) (resp domain.SiteConfig, err error)
	UpdateSMTPSettings(ctx context.Context, req domain.SMTPSettings) (resp domain.SiteConfig, err error)
	UpdateCheckoutSettings(ctx context.Context, req domain.CheckoutSettings) (resp domain.SiteConfig, err error)

	AddHeroSlide(ctx context.Context, req domain.HeroSlide) (resp domain.SiteConfig, err error)
	UpdateHeroSlide(ctx context.Context, id string, req domain.HeroSlide) (resp domain.SiteConfig, err error)
	DeleteHeroSlide(ctx context.Context, id string) (resp domain.SiteConfig, err error)

	AddTestimonial(ctx context.Context, req domain.Testimonial) (resp domain.SiteConfig, err error)
	UpdateTestimonial(ctx context.Context, id string, req domain.Testimonial) (resp domain.SiteConfig, err error)
	DeleteTestimonial(ctx context.Context, id string) (resp domain.SiteConfig, err error)

	AddFeaturedCategory(ctx context.Context, req domain.FeaturedCategory) (resp domain.SiteConfig, err error)
	UpdateFeaturedCategory(ctx context.Context, id string, req domain.FeaturedCategory) (resp domain.SiteConfig, err error)
	DeleteFeaturedCategory(ctx context.Context, id string) (resp domain.SiteConfig, err error)

	AddUSP(ctx context.Context, req domain.USP) (resp domain.SiteConfig, err error)
	UpdateUSP(ctx context.Context, id string, req domain.USP) (resp domain.SiteConfig, err error)
	DeleteUSP(ctx context.Context, id string) (resp domain.SiteConfig, err error)

	AddCoupon(ctx context.Context, req dto.CouponRequest) (resp domain.SiteConfig, err error)
	ToggleCoupon(ctx context.Context, id string) (resp domain.SiteConfig, err error)
	DeleteCoupon(ctx context.Context, id string) (resp domain.SiteConfig, err error)
}

type StoreSyncService interface {
	GetStoreStatus(ctx context.Context) (resp dto.StoreStatusResponse, err error)
	SaveCredentials(ctx context.Context, req dto.CredentialsRequest) (resp dto.StoreStatusResponse, err error)
	LoadConfig(ctx context.Context) (resp dto.SyncResult, err error)
	SaveConfig(ctx context.Context) (resp dto.SyncResult, err error)
	StartLoad(ctx context.Context) (resp task.Task)
	StartSave(ctx context.Context) (resp task.Task)
	Close(ctx context.Context) (err error)
}

type BlogService interface {
	GetBlogPosts(ctx context.Context) (resp []domain.BlogPost, err error)
	GetBlogPost(ctx context.Context, idOrSlug string) (resp domain.BlogPost, err error)
	AddBlogPost(ctx context.Context, req domain.BlogPost) (resp domain.BlogPost, err error)
	UpdateBlogPost(ctx context.Context, id string, req domain.BlogPost) (resp domain.BlogPost, err error)
	DeleteBlogPost(ctx context.Context, id string) (err error)
}

type ContentService interface {
	GenerateDescription(ctx context.Context, req dto.GenerateDescriptionRequest) (resp task.Task)
	GenerateTagline(ctx context.Context) (resp task.Task)
	GetTask(ctx context.Context, id string) (resp task.Task, err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

type Mailer interface {
	Send(ctx context.Context, settings domain.SMTPSettings, to string, subject string, htmlBody string) error
}

type TextGenerator interface {
	GenerateDescription(ctx context.Context, name, category, keywords string) domain.GeneratedText
	GenerateTagline(ctx context.Context) domain.GeneratedText
}
