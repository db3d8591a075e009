package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-service/internal/domain"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		Email:     "a@x.com",
		Password:  "secret123",
		FirstName: "A",
		LastName:  "Person",
		Phone:     "555-0100",
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	assert.NoError(t, Validate(validRegister()))

	noPhone := validRegister()
	noPhone.Phone = ""
	assert.NoError(t, Validate(noPhone))
}

func TestValidateRegisterRequestFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, "Email"},
		{"malformed email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "Email"},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }, "Password"},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }, "FirstName"},
		{"missing last name", func(r *RegisterRequest) { r.LastName = "" }, "LastName"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)

			err := Validate(req)
			require.Error(t, err)

			var de *apperrors.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "VALIDATION_FAILED", de.Code)
			assert.Contains(t, de.Details, tc.field)
		})
	}
}

func TestValidateLoginRequest(t *testing.T) {
	assert.NoError(t, Validate(LoginRequest{Email: "a@x.com", Password: "secret123"}))
	assert.Error(t, Validate(LoginRequest{Email: "a@x.com"}))
	assert.Error(t, Validate(LoginRequest{Password: "secret123"}))
}

func TestNewUserResponseOmitsPasswordHash(t *testing.T) {
	user := &domain.User{
		ID:           1,
		Email:        "a@x.com",
		PasswordHash: "$2a$12$hash",
		FirstName:    "A",
		LastName:     "Person",
		Phone:        "555-0100",
		Role:         domain.RoleUser,
		Active:       true,
	}

	resp := NewUserResponse(user)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.True(t, resp.Active)

	auth := NewAuthResponse(user, "token-value")
	assert.Equal(t, "token-value", auth.Token)
	assert.Equal(t, "USER", auth.Role)
}
