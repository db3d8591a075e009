package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	err := NewDuplicateEmail()

	de := ToDomainError(err)
	require.NotNil(t, de)
	assert.Equal(t, "DUPLICATE_EMAIL", de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, de)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestToDomainErrorGeneric(t *testing.T) {
	cause := errors.New("connection refused")

	de := ToDomainError(cause)
	require.NotNil(t, de)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.ErrorIs(t, de, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestInvalidCredentialsDefaults(t *testing.T) {
	de := ToDomainError(NewInvalidCredentials(""))
	assert.Equal(t, "Invalid credentials", de.Message)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)

	de = ToDomainError(NewInvalidCredentials("Account is deactivated"))
	assert.Equal(t, "INVALID_CREDENTIALS", de.Code)
	assert.Equal(t, "Account is deactivated", de.Message)
}
