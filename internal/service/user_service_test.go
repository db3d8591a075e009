package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	repo := newFakeUserRepo()
	authSvc := NewAuthService(testAuthConfig(), repo)
	svc := NewUserService(repo)

	registered, _, err := authSvc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	user, err := svc.GetByID(context.Background(), registered.ID)
	require.NoError(t, err)

	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "A", user.FirstName)
	assert.Equal(t, "Person", user.LastName)
	assert.Equal(t, "555-0100", user.Phone)
	assert.Equal(t, "USER", user.Role)
	assert.True(t, user.Active)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", domainCode(t, err))
}

func TestGetByIDStoreFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("connection refused")
	svc := NewUserService(repo)

	_, err := svc.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_ERROR", domainCode(t, err))
}
