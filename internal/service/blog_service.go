package service

import (
	"context"
	"time"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const blogDateLayout = "January 2, 2006"

type BlogServiceImpl struct {
	repo repository.BlogRepository
}

func CreateBlogService(repo repository.BlogRepository) BlogService {
	return &BlogServiceImpl{repo: repo}
}

func (s *BlogServiceImpl) GetBlogPosts(ctx context.Context) (resp []domain.BlogPost, err error) {
	return s.repo.GetBlogPosts(ctx)
}

func (s *BlogServiceImpl) GetBlogPost(ctx context.Context, idOrSlug string) (resp domain.BlogPost, err error) {
	return s.repo.GetBlogPost(ctx, idOrSlug)
}

func (s *BlogServiceImpl) AddBlogPost(ctx context.Context, req domain.BlogPost) (resp domain.BlogPost, err error) {
	req.ID = ulid.Make().String()
	fillBlogDefaults(&req)
	if err = req.Validate(); err != nil {
		return resp, err
	}

	if err = s.repo.AddBlogPost(ctx, req); err != nil {
		return resp, err
	}

	log.Ctx(ctx).Info().Str("component", "AddBlogPost").Str("post_id", req.ID).Msg("blog post created")

	return req, nil
}

func (s *BlogServiceImpl) UpdateBlogPost(ctx context.Context, id string, req domain.BlogPost) (resp domain.BlogPost, err error) {
	current, err := s.repo.GetBlogPost(ctx, id)
	if err != nil {
		return resp, err
	}

	req.ID = current.ID
	if req.Date == "" {
		req.Date = current.Date
	}
	fillBlogDefaults(&req)
	if err = req.Validate(); err != nil {
		return resp, err
	}

	if err = s.repo.UpdateBlogPost(ctx, req); err != nil {
		return resp, err
	}

	return req, nil
}

func (s *BlogServiceImpl) DeleteBlogPost(ctx context.Context, id string) (err error) {
	return s.repo.DeleteBlogPost(ctx, id)
}

func fillBlogDefaults(p *domain.BlogPost) {
	if p.Slug == "" {
		p.Slug = domain.Slugify(p.Title)
	}
	if p.Date == "" {
		p.Date = time.Now().Format(blogDateLayout)
	}
	if p.Author == "" {
		p.Author = "Velvet & Vogue"
	}
}
