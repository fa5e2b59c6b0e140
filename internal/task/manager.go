// Package task runs slow external calls in the background and keeps their
// outcome observable by id.
package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusFallback  Status = "fallback"
)

// ErrFallback marks a result that was produced without the external dependency.
var ErrFallback = errors.New("fallback result")

type Task struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	Status     Status      `json:"status"`
	Result     interface{} `json:"result,omitempty"`
	Error      string      `json:"error,omitempty"`
	ErrorCode  int         `json:"error_code,omitempty"`
	CreatedAt  int64       `json:"created_at"`
	FinishedAt int64       `json:"finished_at,omitempty"`
}

func (t Task) Done() bool {
	return t.Status != StatusPending
}

type Func func(ctx context.Context) (interface{}, error)

type Manager struct {
	mu        sync.RWMutex
	tasks     map[string]*Task
	timeout   time.Duration
	retention time.Duration
	wg        sync.WaitGroup
}

func CreateManager(timeout time.Duration, retention time.Duration) *Manager {
	return &Manager{
		tasks:     make(map[string]*Task),
		timeout:   timeout,
		retention: retention,
	}
}

// Submit starts fn in its own goroutine. The request logger is carried over but
// the request's cancellation is not, so the task outlives the HTTP call.
func (m *Manager) Submit(ctx context.Context, kind string, fn Func) Task {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	t := &Task{
		ID:        id.String(),
		Kind:      kind,
		Status:    StatusPending,
		CreatedAt: time.Now().UnixMilli(),
	}

	m.mu.Lock()
	m.tasks[t.ID] = t
	snapshot := *t
	m.mu.Unlock()

	logger := log.Ctx(ctx).With().Str("task_id", t.ID).Str("task_kind", kind).Logger()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		taskCtx, cancel := context.WithTimeout(logger.WithContext(context.Background()), m.timeout)
		defer cancel()

		result, err := m.run(taskCtx, fn)
		m.finish(t.ID, result, err)

		switch {
		case err == nil:
			logger.Info().Msg("task succeeded")
		case errors.Is(err, ErrFallback):
			logger.Warn().Msg("task used fallback")
		default:
			logger.Error().Err(err).Msg("task failed")
		}
	}()

	return snapshot
}

func (m *Manager) run(ctx context.Context, fn Func) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", errs.ErrInternalServer, r)
		}
	}()

	return fn(ctx)
}

func (m *Manager) finish(id string, result interface{}, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return
	}

	t.Result = result
	t.FinishedAt = time.Now().UnixMilli()

	switch {
	case err == nil:
		t.Status = StatusSucceeded
	case errors.Is(err, ErrFallback):
		t.Status = StatusFallback
	default:
		t.Status = StatusFailed
		t.Error = err.Error()
		t.ErrorCode = errs.GetErrorStatusCode(err)
	}
}

func (m *Manager) Get(id string) (Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tasks[id]
	if !ok {
		return Task{}, errs.ErrNotFound
	}

	return *t, nil
}

// EvictFinished drops tasks that finished longer ago than the retention window.
func (m *Manager) EvictFinished() int {
	cutoff := time.Now().Add(-m.retention).UnixMilli()

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, t := range m.tasks {
		if t.Done() && t.FinishedAt <= cutoff {
			delete(m.tasks, id)
			evicted++
		}
	}

	return evicted
}

// Wait blocks until every submitted task has finished.
func (m *Manager) Wait() {
	m.wg.Wait()
}
