package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/devoyage-api/internal/domain/entity"
	apperrors "github.com/yourusername/devoyage-api/internal/pkg/errors"
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewAuthService(users, tokens)
	user := &entity.User{ID: 1, Username: "admin", Password: hashed(t, "s3cret-pass"), IsStaff: true}
	users.On("GetByUsername", ctx, "admin").Return(user, nil)
	tokens.On("GenerateToken", user).Return("jwt-token", nil)

	// Act
	token, got, err := svc.Login(ctx, " admin ", "s3cret-pass")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, user, got)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewAuthService(users, tokens)
	users.On("GetByUsername", ctx, "admin").Return(&entity.User{ID: 1, Password: hashed(t, "right")}, nil)

	_, _, err := svc.Login(ctx, "admin", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	svc := NewAuthService(users, new(MockTokenIssuer))
	users.On("GetByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.Login(ctx, "ghost", "x")

	assert.ErrorIs(t, err, ErrInvalidCredentials, "неизвестный пользователь неотличим от неверного пароля")
}

func TestAuthService_Login_BlankFields(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), new(MockTokenIssuer))

	_, _, err := svc.Login(context.Background(), "", "x")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	svc := NewAuthService(users, new(MockTokenIssuer))
	users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "editor" && u.IsStaff
	})).Return(nil)

	_, err := svc.CreateUser(ctx, "editor", "long-enough", true)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "editor", "short", true)
	field, _ := apperrors.FieldOf(err)
	assert.Equal(t, "password", field)
}
