package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

type UserRepositoryImpl struct {
	mu      sync.RWMutex
	users   []domain.User
	pending map[string]domain.PendingRegistration
}

func CreateUserRepository() UserRepository {
	return &UserRepositoryImpl{pending: make(map[string]domain.PendingRegistration)}
}

// GetUserByEmail matches the login key exactly.
func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return res, errs.ErrAccountNotFound
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id string) (res domain.User, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return res, errs.ErrAccountNotFound
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == data.Email {
			log.Ctx(ctx).Info().Str("component", "AddUser").Msg("email already registered")
			return errs.ErrEmailAlreadyUsed
		}
	}

	r.users = append(r.users, data)

	return nil
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.users, func(u domain.User) bool { return u.ID == id })
	if idx < 0 {
		return errs.ErrAccountNotFound
	}

	r.users = slices.Delete(r.users, idx, idx+1)

	return nil
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, total int, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total = len(r.users)
	start, end, _ := filter.Offset(total)

	return slices.Clone(r.users[start:end]), total, nil
}

func (r *UserRepositoryImpl) GetAllUsers(ctx context.Context) (data []domain.User, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.users), nil
}

func (r *UserRepositoryImpl) ReplaceUsers(ctx context.Context, data []domain.User) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = slices.Clone(data)

	return nil
}

func (r *UserRepositoryImpl) AddPendingRegistration(ctx context.Context, data domain.PendingRegistration) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[data.ID] = data

	return nil
}

func (r *UserRepositoryImpl) GetPendingRegistration(ctx context.Context, id string) (data domain.PendingRegistration, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.pending[id]
	if !ok {
		return data, errs.ErrRegistrationExpired
	}

	return data, nil
}

func (r *UserRepositoryImpl) DeletePendingRegistration(ctx context.Context, id string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pending, id)

	return nil
}

func (r *UserRepositoryImpl) DeleteExpiredPendingRegistrations(ctx context.Context, now int64) (deleted int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.pending {
		if p.Expired(now) {
			delete(r.pending, id)
			deleted++
		}
	}

	return deleted, nil
}
