package task

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Outcomes(t *testing.T) {
	m := CreateManager(200*time.Millisecond, time.Minute)
	ctx := context.Background()

	type TestCase struct {
		Name           string
		Fn             Func
		ExpectedStatus Status
		ExpectedResult interface{}
		ExpectedCode   int
	}

	testCases := []TestCase{
		{
			Name:           "Succeeded",
			Fn:             func(ctx context.Context) (interface{}, error) { return "done", nil },
			ExpectedStatus: StatusSucceeded,
			ExpectedResult: "done",
		},
		{
			Name:           "Fallback keeps the result",
			Fn:             func(ctx context.Context) (interface{}, error) { return "canned", ErrFallback },
			ExpectedStatus: StatusFallback,
			ExpectedResult: "canned",
		},
		{
			Name: "Failed records the status code",
			Fn: func(ctx context.Context) (interface{}, error) {
				return nil, fmt.Errorf("load: %w", errs.ErrRemoteSchemaMissing)
			},
			ExpectedStatus: StatusFailed,
			ExpectedCode:   http.StatusBadGateway,
		},
		{
			Name:           "Panic is reported as failure",
			Fn:             func(ctx context.Context) (interface{}, error) { panic("boom") },
			ExpectedStatus: StatusFailed,
			ExpectedCode:   http.StatusInternalServerError,
		},
		{
			Name: "Timeout cancels the context",
			Fn: func(ctx context.Context) (interface{}, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			ExpectedStatus: StatusFailed,
			ExpectedCode:   http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			submitted := m.Submit(ctx, "test", tc.Fn)
			assert.NotEmpty(t, submitted.ID)

			m.Wait()

			got, err := m.Get(submitted.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedStatus, got.Status)
			assert.Equal(t, tc.ExpectedResult, got.Result)
			assert.Equal(t, tc.ExpectedCode, got.ErrorCode)
			assert.NotZero(t, got.FinishedAt)
		})
	}
}

func TestManager_SubmitReturnsPending(t *testing.T) {
	m := CreateManager(time.Second, time.Minute)
	release := make(chan struct{})

	submitted := m.Submit(context.Background(), "slow", func(ctx context.Context) (interface{}, error) {
		<-release
		return nil, nil
	})
	assert.Equal(t, StatusPending, submitted.Status)

	got, err := m.Get(submitted.ID)
	require.NoError(t, err)
	assert.False(t, got.Done())

	close(release)
	m.Wait()
}

func TestManager_EvictFinished(t *testing.T) {
	m := CreateManager(time.Second, 0)

	submitted := m.Submit(context.Background(), "quick", func(ctx context.Context) (interface{}, error) { return nil, nil })
	m.Wait()

	assert.Equal(t, 1, m.EvictFinished())
	_, err := m.Get(submitted.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
