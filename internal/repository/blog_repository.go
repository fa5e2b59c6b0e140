package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
)

type BlogRepositoryImpl struct {
	mu    sync.RWMutex
	posts []domain.BlogPost
}

func CreateBlogRepository(posts []domain.BlogPost) BlogRepository {
	return &BlogRepositoryImpl{posts: slices.Clone(posts)}
}

func (r *BlogRepositoryImpl) GetBlogPosts(ctx context.Context) (data []domain.BlogPost, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.posts), nil
}

func (r *BlogRepositoryImpl) GetBlogPost(ctx context.Context, idOrSlug string) (data domain.BlogPost, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == idOrSlug || p.Slug == idOrSlug {
			return p, nil
		}
	}

	return data, errs.ErrNotFound
}

// AddBlogPost puts the newest post first.
func (r *BlogRepositoryImpl) AddBlogPost(ctx context.Context, data domain.BlogPost) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.posts {
		if p.Slug == data.Slug {
			return errs.ErrDuplicateName
		}
	}

	r.posts = slices.Insert(r.posts, 0, data)

	return nil
}

func (r *BlogRepositoryImpl) UpdateBlogPost(ctx context.Context, data domain.BlogPost) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == data.ID {
			r.posts[i] = data
			return nil
		}
	}

	return errs.ErrNotFound
}

func (r *BlogRepositoryImpl) DeleteBlogPost(ctx context.Context, id string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.posts, func(p domain.BlogPost) bool { return p.ID == id })
	if idx < 0 {
		return errs.ErrNotFound
	}

	r.posts = slices.Delete(r.posts, idx, idx+1)

	return nil
}

func (r *BlogRepositoryImpl) ReplaceBlogPosts(ctx context.Context, data []domain.BlogPost) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = slices.Clone(data)

	return nil
}
