package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hunterjohnstone/honey-discount/internal/database"
	"github.com/hunterjohnstone/honey-discount/internal/domain"
	"github.com/hunterjohnstone/honey-discount/internal/repository"
	jwtsvc "github.com/hunterjohnstone/honey-discount/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	users := repository.NewUserRepository(db)
	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	return NewService(users, j)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "s3cret-enough",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, domain.RoleMember, res.User.Role)
	assert.Empty(t, res.User.PasswordHash)

	login, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "s3cret-enough"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)

	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterMerchantRole(t *testing.T) {
	svc := setupTestService(t)

	res, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Cafe",
		Email:    "cafe@example.com",
		Password: "s3cret-enough",
		Merchant: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMerchant, res.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "s3cret-enough",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Name: "Mallory", Email: "alice@example.com", Password: "s3cret-enough",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Bob", Email: "not-an-email", Password: "s3cret-enough",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Name: "Bob", Email: "bob@example.com", Password: "short",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDeleteAccountBlocksLogin(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "s3cret-enough",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, res.User.ID))

	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "s3cret-enough"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Me(ctx, res.User.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteAccount(ctx, res.User.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
