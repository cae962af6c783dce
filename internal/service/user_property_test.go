package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/repository/memory"
	"stayops-backend/internal/service"
)

func TestUserService_CreateUser(t *testing.T) {
	store := memory.NewStore()
	svc := service.NewUserService(store.UserRepository)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, "Alice", domain.UserRoleOwner)
		require.NoError(t, err)
		assert.Equal(t, int32(1), user.ID)
		assert.Equal(t, domain.UserRoleOwner, user.Role)
	})

	t.Run("Trims whitespace", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, "  Bob  ", domain.UserRoleOperator)
		require.NoError(t, err)
		assert.Equal(t, "Bob", user.Name)
	})

	t.Run("Blank name", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "   ", domain.UserRoleGuest)
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})

	t.Run("Unknown role", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, "Mallory", "admin")
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	store := memory.NewStore()
	svc := service.NewUserService(store.UserRepository)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "Alice", domain.UserRoleOwner)
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "Bob", domain.UserRoleOperator)
	require.NoError(t, err)

	all, err := svc.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	owners, err := svc.ListUsers(ctx, domain.UserRoleOwner)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "Alice", owners[0].Name)

	_, err = svc.ListUsers(ctx, "landlord")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestPropertyService_CreateProperty(t *testing.T) {
	store := memory.NewStore()
	userSvc := service.NewUserService(store.UserRepository)
	svc := service.NewPropertyService(store.PropertyRepository, store.UserRepository)
	ctx := context.Background()

	owner, err := userSvc.CreateUser(ctx, "Alice", domain.UserRoleOwner)
	require.NoError(t, err)
	operator, err := userSvc.CreateUser(ctx, "Bob", domain.UserRoleOperator)
	require.NoError(t, err)

	t.Run("Defaults non-economic fields", func(t *testing.T) {
		property, err := svc.CreateProperty(ctx, "New Villa", "Khao Yai, Thailand", owner.ID, operator.ID, 5000)
		require.NoError(t, err)
		assert.Equal(t, int32(1), property.ID)
		assert.Equal(t, 5.0, property.Rating)
		assert.Equal(t, int32(0), property.Reviews)
		assert.Equal(t, int32(6), property.Guests)
	})

	t.Run("Unknown owner", func(t *testing.T) {
		_, err := svc.CreateProperty(ctx, "Villa", "Khao Yai", 99, operator.ID, 5000)
		assert.ErrorIs(t, err, domain.ErrUnknownReference)
	})

	t.Run("Unknown operator", func(t *testing.T) {
		_, err := svc.CreateProperty(ctx, "Villa", "Khao Yai", owner.ID, 99, 5000)
		assert.ErrorIs(t, err, domain.ErrUnknownReference)
	})

	t.Run("Negative nightly rate", func(t *testing.T) {
		_, err := svc.CreateProperty(ctx, "Villa", "Khao Yai", owner.ID, operator.ID, -100)
		assert.ErrorIs(t, err, domain.ErrNegativeAmount)
	})
}
