package service

import (
	"context"
	"testing"
	"time"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/dto"
	"github.com/alimikegami/velvet-storefront/internal/task"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDescription(t *testing.T) {
	testCases := []struct {
		name     string
		out      domain.GeneratedText
		expected task.Status
	}{
		{name: "model output", out: domain.GeneratedText{Text: "Soft leather, bold lines."}, expected: task.StatusSucceeded},
		{name: "canned fallback", out: domain.GeneratedText{Text: "AI generation unavailable.", Fallback: true}, expected: task.StatusFallback},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tasks := task.CreateManager(time.Second, time.Minute)
			svc := CreateContentService(cannedGenerator{out: tc.out}, tasks)

			pending := svc.GenerateDescription(context.Background(), dto.GenerateDescriptionRequest{Name: "Tote", Category: "Bag"})
			assert.Equal(t, "product_description", pending.Kind)

			tasks.Wait()
			done, err := svc.GetTask(context.Background(), pending.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, done.Status)
			assert.Equal(t, tc.out, done.Result)
		})
	}
}

func TestGetTaskUnknown(t *testing.T) {
	svc := CreateContentService(cannedGenerator{}, task.CreateManager(time.Second, time.Minute))

	_, err := svc.GetTask(context.Background(), "nope")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
