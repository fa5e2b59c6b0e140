package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/internal/task"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	SyncSourceRemote   = "remote"
	SyncSourceDefaults = "defaults"
)

type StoreSyncServiceImpl struct {
	credentials repository.CredentialRepository
	openStore   repository.DocumentRepositoryFactory
	catalog     repository.CatalogRepository
	orders      repository.OrderRepository
	users       repository.UserRepository
	blog        repository.BlogRepository
	siteConfig  repository.SiteConfigRepository
	tasks       *task.Manager
}

type StoreSyncRepositories struct {
	Credentials repository.CredentialRepository
	Catalog     repository.CatalogRepository
	Orders      repository.OrderRepository
	Users       repository.UserRepository
	Blog        repository.BlogRepository
	SiteConfig  repository.SiteConfigRepository
}

func CreateStoreSyncService(repos StoreSyncRepositories, openStore repository.DocumentRepositoryFactory, tasks *task.Manager) StoreSyncService {
	return &StoreSyncServiceImpl{
		credentials: repos.Credentials,
		openStore:   openStore,
		catalog:     repos.Catalog,
		orders:      repos.Orders,
		users:       repos.Users,
		blog:        repos.Blog,
		siteConfig:  repos.SiteConfig,
		tasks:       tasks,
	}
}

func (s *StoreSyncServiceImpl) GetStoreStatus(ctx context.Context) (resp dto.StoreStatusResponse, err error) {
	creds, err := s.credentials.GetCredentials(ctx)
	if err != nil {
		return resp, err
	}

	return dto.StoreStatusResponse{
		Credentials: creds.Masked(),
		Configured:  creds.Configured(),
		Schema:      repository.SiteDocumentsSchema,
	}, nil
}

func (s *StoreSyncServiceImpl) SaveCredentials(ctx context.Context, req dto.CredentialsRequest) (resp dto.StoreStatusResponse, err error) {
	creds := domain.StoreCredentials{
		Provider: domain.StoreProvider(strings.ToLower(strings.TrimSpace(req.Provider))),
		URL:      strings.TrimSpace(req.URL),
		Key:      strings.TrimSpace(req.Key),
	}
	if creds.Provider == "" {
		creds.Provider = domain.StoreProviderPostgres
	}

	var fields []domain.FieldError
	if creds.Provider != domain.StoreProviderPostgres && creds.Provider != domain.StoreProviderMongoDB {
		fields = append(fields, domain.FieldError{Field: "provider", Tag: "oneof=postgres mongodb"})
	}
	if creds.URL == "" {
		fields = append(fields, domain.FieldError{Field: "url", Tag: "required"})
	}
	if creds.Key == "" {
		fields = append(fields, domain.FieldError{Field: "key", Tag: "required"})
	}
	if len(fields) > 0 {
		return resp, &domain.ValidationError{Err: errs.ErrClient, Fields: fields}
	}

	if err = s.credentials.SaveCredentials(ctx, creds); err != nil {
		return resp, fmt.Errorf("failed to save credentials: %w", err)
	}

	log.Ctx(ctx).Info().Str("component", "SaveCredentials").Str("provider", string(creds.Provider)).Msg("store credentials updated")

	return s.GetStoreStatus(ctx)
}

// LoadConfig pulls the snapshot and merges it over the running state. A missing
// document leaves the defaults in place. Any other failure leaves state untouched.
func (s *StoreSyncServiceImpl) LoadConfig(ctx context.Context) (resp dto.SyncResult, err error) {
	raw, err := s.withStore(ctx, func(store repository.DocumentRepository) ([]byte, error) {
		return store.GetDocument(ctx, domain.SnapshotKey)
	})
	if errors.Is(err, errs.ErrDocumentNotFound) {
		return dto.SyncResult{
			Source:   SyncSourceDefaults,
			Message:  "no saved site data found, using defaults",
			SyncedAt: time.Now().UnixMilli(),
		}, nil
	}
	if err != nil {
		return resp, err
	}

	var sections map[string]json.RawMessage
	if err = json.Unmarshal(raw, &sections); err != nil {
		return resp, fmt.Errorf("%w: decode snapshot: %v", errs.ErrRemoteStore, err)
	}

	snap, err := s.decodeSnapshot(ctx, sections)
	if err != nil {
		return resp, err
	}

	if err = s.apply(ctx, snap); err != nil {
		return resp, err
	}

	resp = s.result(ctx, SyncSourceRemote, "site data loaded")
	log.Ctx(ctx).Info().Str("component", "LoadConfig").Int("products", resp.Products).Int("orders", resp.Orders).Msg("snapshot loaded")

	return resp, nil
}

func (s *StoreSyncServiceImpl) SaveConfig(ctx context.Context) (resp dto.SyncResult, err error) {
	snap, err := s.capture(ctx)
	if err != nil {
		return resp, err
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return resp, fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.withStore(ctx, func(store repository.DocumentRepository) ([]byte, error) {
		return nil, store.UpsertDocument(ctx, domain.SnapshotKey, raw)
	})
	if err != nil {
		return resp, err
	}

	resp = dto.SyncResult{
		Source:     SyncSourceRemote,
		Message:    "site data saved",
		SyncedAt:   snap.SavedAt,
		Products:   len(snap.Products),
		Orders:     len(snap.Orders),
		Users:      len(snap.Users),
		BlogPosts:  len(snap.BlogPosts),
		Categories: len(snap.Categories),
	}
	log.Ctx(ctx).Info().Str("component", "SaveConfig").Int("bytes", len(raw)).Msg("snapshot saved")

	return resp, nil
}

func (s *StoreSyncServiceImpl) StartLoad(ctx context.Context) (resp task.Task) {
	return s.tasks.Submit(ctx, "store_load", func(ctx context.Context) (interface{}, error) {
		return s.LoadConfig(ctx)
	})
}

func (s *StoreSyncServiceImpl) StartSave(ctx context.Context) (resp task.Task) {
	return s.tasks.Submit(ctx, "store_save", func(ctx context.Context) (interface{}, error) {
		return s.SaveConfig(ctx)
	})
}

// Close waits for in-flight sync tasks so a shutdown does not cut a save short.
func (s *StoreSyncServiceImpl) Close(ctx context.Context) (err error) {
	done := make(chan struct{})
	go func() {
		s.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *StoreSyncServiceImpl) withStore(ctx context.Context, fn func(store repository.DocumentRepository) ([]byte, error)) ([]byte, error) {
	creds, err := s.credentials.GetCredentials(ctx)
	if err != nil {
		return nil, err
	}
	if !creds.Configured() {
		return nil, errs.ErrRemoteStoreNotConfigured
	}

	store, err := s.openStore(ctx, creds)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "StoreSync").Msg("closing document store")
		}
	}()

	return fn(store)
}

// decodeSnapshot merges the stored config key by key over the defaults, so
// sections added after the snapshot was written still get sensible values.
func (s *StoreSyncServiceImpl) decodeSnapshot(ctx context.Context, sections map[string]json.RawMessage) (domain.StoreSnapshot, error) {
	var snap domain.StoreSnapshot

	conf, err := mergeSiteConfig(domain.DefaultSiteConfig(), sections["config"])
	if err != nil {
		return snap, err
	}
	ensureConfigIDs(&conf)
	snap.Config = conf

	decode := func(key string, dst interface{}) error {
		raw, ok := sections[key]
		if !ok || string(raw) == "null" {
			return nil
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("%w: decode %s: %v", errs.ErrRemoteStore, key, err)
		}
		return nil
	}

	for key, dst := range map[string]interface{}{
		"products":   &snap.Products,
		"categories": &snap.Categories,
		"orders":     &snap.Orders,
		"users":      &snap.Users,
		"blog_posts": &snap.BlogPosts,
	} {
		if err := decode(key, dst); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "LoadConfig").Msg("")
			return snap, err
		}
	}

	return snap, nil
}

func mergeSiteConfig(base domain.SiteConfig, raw json.RawMessage) (domain.SiteConfig, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return base, nil
	}

	baseRaw, err := json.Marshal(base)
	if err != nil {
		return base, err
	}

	var merged map[string]json.RawMessage
	if err = json.Unmarshal(baseRaw, &merged); err != nil {
		return base, err
	}

	var stored map[string]json.RawMessage
	if err = json.Unmarshal(raw, &stored); err != nil {
		return base, fmt.Errorf("%w: decode config: %v", errs.ErrRemoteStore, err)
	}

	for k, v := range stored {
		if string(v) == "null" {
			continue
		}
		merged[k] = v
	}

	mergedRaw, err := json.Marshal(merged)
	if err != nil {
		return base, err
	}

	var out domain.SiteConfig
	if err = json.Unmarshal(mergedRaw, &out); err != nil {
		return base, fmt.Errorf("%w: decode config: %v", errs.ErrRemoteStore, err)
	}

	return out, nil
}

func ensureConfigIDs(conf *domain.SiteConfig) {
	for i := range conf.HeroSlides {
		if conf.HeroSlides[i].ID == "" {
			conf.HeroSlides[i].ID = newEntityID()
		}
	}
	for i := range conf.Testimonials {
		if conf.Testimonials[i].ID == "" {
			conf.Testimonials[i].ID = newEntityID()
		}
	}
	for i := range conf.FeaturedCategories {
		if conf.FeaturedCategories[i].ID == "" {
			conf.FeaturedCategories[i].ID = newEntityID()
		}
	}
	for i := range conf.USPs {
		if conf.USPs[i].ID == "" {
			conf.USPs[i].ID = newEntityID()
		}
	}
	for i := range conf.Coupons {
		if conf.Coupons[i].ID == "" {
			conf.Coupons[i].ID = newEntityID()
		}
		conf.Coupons[i].Code = domain.NormalizeCouponCode(conf.Coupons[i].Code)
	}
}

// apply installs the snapshot. Sections absent from the document keep their
// current contents, and an empty user list never wipes the bootstrap accounts.
func (s *StoreSyncServiceImpl) apply(ctx context.Context, snap domain.StoreSnapshot) error {
	if err := s.siteConfig.ReplaceSiteConfig(ctx, snap.Config); err != nil {
		return err
	}

	if snap.Products != nil || snap.Categories != nil {
		products, categories := snap.Products, snap.Categories
		if products == nil {
			current, _, err := s.catalog.GetProducts(ctx, dto.ProductFilter{})
			if err != nil {
				return err
			}
			products = current
		}
		if categories == nil {
			current, err := s.catalog.GetCategories(ctx)
			if err != nil {
				return err
			}
			categories = current
		}
		if err := s.catalog.ReplaceCatalog(ctx, products, categories); err != nil {
			return err
		}
	}

	if snap.Orders != nil {
		if err := s.orders.ReplaceOrders(ctx, snap.Orders); err != nil {
			return err
		}
	}

	if len(snap.Users) > 0 {
		if err := s.users.ReplaceUsers(ctx, snap.Users); err != nil {
			return err
		}
	}

	if snap.BlogPosts != nil {
		if err := s.blog.ReplaceBlogPosts(ctx, snap.BlogPosts); err != nil {
			return err
		}
	}

	return nil
}

func (s *StoreSyncServiceImpl) capture(ctx context.Context) (snap domain.StoreSnapshot, err error) {
	if snap.Config, err = s.siteConfig.GetSiteConfig(ctx); err != nil {
		return snap, err
	}
	if snap.Products, _, err = s.catalog.GetProducts(ctx, dto.ProductFilter{}); err != nil {
		return snap, err
	}
	if snap.Categories, err = s.catalog.GetCategories(ctx); err != nil {
		return snap, err
	}
	if snap.Orders, err = s.orders.GetAllOrders(ctx); err != nil {
		return snap, err
	}
	if snap.Users, err = s.users.GetAllUsers(ctx); err != nil {
		return snap, err
	}
	if snap.BlogPosts, err = s.blog.GetBlogPosts(ctx); err != nil {
		return snap, err
	}
	snap.SavedAt = time.Now().UnixMilli()

	return snap, nil
}

func (s *StoreSyncServiceImpl) result(ctx context.Context, source, message string) dto.SyncResult {
	resp := dto.SyncResult{Source: source, Message: message, SyncedAt: time.Now().UnixMilli()}

	if _, total, err := s.catalog.GetProducts(ctx, dto.ProductFilter{}); err == nil {
		resp.Products = total
	}
	if categories, err := s.catalog.GetCategories(ctx); err == nil {
		resp.Categories = len(categories)
	}
	if orders, err := s.orders.GetAllOrders(ctx); err == nil {
		resp.Orders = len(orders)
	}
	if users, err := s.users.GetAllUsers(ctx); err == nil {
		resp.Users = len(users)
	}
	if posts, err := s.blog.GetBlogPosts(ctx); err == nil {
		resp.BlogPosts = len(posts)
	}

	return resp
}
