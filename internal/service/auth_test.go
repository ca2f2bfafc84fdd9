package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkuznecov/shopify_ecom/internal/models"
	"github.com/mkuznecov/shopify_ecom/internal/mykafka"
	"github.com/mkuznecov/shopify_ecom/internal/repo"
	"github.com/mkuznecov/shopify_ecom/internal/tokens"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	return &repo.GormRepo{DB: db}
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Repo:     newTestRepo(t),
		Tokens:   &tokens.Service{Secret: []byte("test-jwt-secret"), TTL: time.Hour},
		Producer: &mykafka.Producer{},
	}
}

func TestAuthService_Register_PersistsHashedUserWithToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)

	require.NotZero(t, user.ID)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "pw", user.PasswordHash)

	email, err := svc.Tokens.Verify(user.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "B", "a@x.com", "other")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name            string
		userName        string
		email, password string
	}{
		{name: "empty name", userName: "", email: "a@x.com", password: "pw"},
		{name: "empty email", userName: "A", email: "", password: "pw"},
		{name: "empty password", userName: "A", email: "a@x.com", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login_ReturnsRegistrationToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, registered.Token, user.Token)
	assert.Equal(t, "user", user.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "A", "a@x.com", "pw")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "nobody@x.com", "pw")
	assert.ErrorIs(t, err, ErrUserNotRegistered)
}

func TestAuthService_Login_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Login(ctx, "a@x.com", "")
	assert.ErrorIs(t, err, ErrValidation)
}
