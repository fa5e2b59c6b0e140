package repository

import (
	"context"
	"testing"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	pkgdto "github.com/alimikegami/velvet-storefront/pkg/dto"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	repo := CreateUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddUser(ctx, domain.User{ID: "u1", Email: "nadia@example.com", Role: domain.RoleCustomer}))
	assert.ErrorIs(t, repo.AddUser(ctx, domain.User{ID: "u2", Email: "nadia@example.com"}), errs.ErrEmailAlreadyUsed)

	_, err := repo.GetUserByEmail(ctx, "NADIA@example.com")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)

	users, total, err := repo.GetUsers(ctx, pkgdto.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, users, 1)

	require.NoError(t, repo.DeleteUser(ctx, "u1"))
	assert.ErrorIs(t, repo.DeleteUser(ctx, "u1"), errs.ErrAccountNotFound)
}

func TestUserRepository_PendingRegistrations(t *testing.T) {
	repo := CreateUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddPendingRegistration(ctx, domain.PendingRegistration{ID: "old", ExpiresAt: 100}))
	require.NoError(t, repo.AddPendingRegistration(ctx, domain.PendingRegistration{ID: "new", ExpiresAt: 300}))

	deleted, err := repo.DeleteExpiredPendingRegistrations(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = repo.GetPendingRegistration(ctx, "old")
	assert.ErrorIs(t, err, errs.ErrRegistrationExpired)

	_, err = repo.GetPendingRegistration(ctx, "new")
	assert.NoError(t, err)
}
