package service

import (
	"context"
	"strings"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/task"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
)

type ContentServiceImpl struct {
	generator TextGenerator
	tasks     *task.Manager
}

func CreateContentService(generator TextGenerator, tasks *task.Manager) ContentService {
	return &ContentServiceImpl{generator: generator, tasks: tasks}
}

func (s *ContentServiceImpl) GenerateDescription(ctx context.Context, req dto.GenerateDescriptionRequest) (resp task.Task) {
	return s.tasks.Submit(ctx, "product_description", func(ctx context.Context) (interface{}, error) {
		return generated(s.generator.GenerateDescription(ctx, strings.TrimSpace(req.Name), req.Category, req.Keywords))
	})
}

func (s *ContentServiceImpl) GenerateTagline(ctx context.Context) (resp task.Task) {
	return s.tasks.Submit(ctx, "tagline", func(ctx context.Context) (interface{}, error) {
		return generated(s.generator.GenerateTagline(ctx))
	})
}

func (s *ContentServiceImpl) GetTask(ctx context.Context, id string) (resp task.Task, err error) {
	resp, err = s.tasks.Get(id)
	if err != nil {
		return resp, errs.ErrNotFound
	}

	return resp, nil
}

// generated surfaces canned text as a fallback so the task still carries a usable result.
func generated(out domain.GeneratedText) (interface{}, error) {
	if out.Fallback {
		return out, task.ErrFallback
	}

	return out, nil
}
