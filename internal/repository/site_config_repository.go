package repository

import (
	"context"
	"sync"

	"github.com/alimikegami/velvet-storefront/internal/domain"
)

type SiteConfigRepositoryImpl struct {
	mu   sync.RWMutex
	conf domain.SiteConfig
}

func CreateSiteConfigRepository(conf domain.SiteConfig) SiteConfigRepository {
	return &SiteConfigRepositoryImpl{conf: conf.Clone()}
}

func (r *SiteConfigRepositoryImpl) GetSiteConfig(ctx context.Context) (data domain.SiteConfig, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.conf.Clone(), nil
}

// UpdateSiteConfig applies fn to a copy and commits it only when fn succeeds.
func (r *SiteConfigRepositoryImpl) UpdateSiteConfig(ctx context.Context, fn func(conf *domain.SiteConfig) error) (data domain.SiteConfig, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.conf.Clone()
	if err = fn(&working); err != nil {
		return r.conf.Clone(), err
	}
	r.conf = working

	return working.Clone(), nil
}

func (r *SiteConfigRepositoryImpl) ReplaceSiteConfig(ctx context.Context, data domain.SiteConfig) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conf = data.Clone()

	return nil
}
