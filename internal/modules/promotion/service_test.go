package promotion

import (
	"context"
	"fmt"
	"testing"

	"github.com/hunterjohnstone/honey-discount/internal/database"
	"github.com/hunterjohnstone/honey-discount/internal/domain"
	"github.com/hunterjohnstone/honey-discount/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:promotion_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	return NewService(repository.NewPromotionRepository(db))
}

func validCreateRequest(title string) CreatePromotionRequest {
	return CreatePromotionRequest{
		Title:       title,
		Description: "test deal",
		Price:       9.99,
		Category:    "Food & Drink",
		Location:    "Berlin",
		StartDate:   "2026-01-01",
		EndDate:     "2099-12-31",
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	promo, err := svc.Create(ctx, 1, validCreateRequest("Two-for-one coffee"))
	require.NoError(t, err)
	assert.True(t, promo.IsActive)
	assert.Empty(t, promo.Reported)
	assert.Zero(t, promo.NumReviews)

	got, err := svc.Get(ctx, promo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Two-for-one coffee", got.Title)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc := setupTestService(t)

	req := validCreateRequest("x")
	req.EndDate = "not-a-date"
	_, err := svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	req = validCreateRequest("")
	_, err = svc.Create(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestListPaginates(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, 1, validCreateRequest(fmt.Sprintf("deal %d", i)))
		require.NoError(t, err)
	}

	items, pg, err := svc.List(ctx, ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(25), pg.TotalItems)
	assert.Equal(t, 3, pg.TotalPages)

	items, pg, err = svc.List(ctx, ListParams{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 3, pg.Page)

	// Out-of-range page comes back empty but well-formed.
	items, _, err = svc.List(ctx, ListParams{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListFiltersExpired(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	fresh, err := svc.Create(ctx, 1, validCreateRequest("fresh"))
	require.NoError(t, err)

	expired := validCreateRequest("expired")
	expired.EndDate = "2020-01-01"
	_, err = svc.Create(ctx, 1, expired)
	require.NoError(t, err)

	inactive, err := svc.Create(ctx, 1, validCreateRequest("inactive"))
	require.NoError(t, err)
	upd := UpdatePromotionRequest{
		Title:       "inactive",
		Description: "test deal",
		Price:       9.99,
		StartDate:   "2026-01-01",
		EndDate:     "2099-12-31",
		IsActive:    false,
	}
	_, err = svc.Update(ctx, 1, string(domain.RoleMerchant), inactive.ID, upd)
	require.NoError(t, err)

	items, pg, err := svc.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fresh.ID, items[0].ID)
	assert.Equal(t, int64(1), pg.TotalItems)

	items, _, err = svc.List(ctx, ListParams{IncludeExpired: true})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestListFiltersCategoryAndLocation(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	food := validCreateRequest("food deal")
	_, err := svc.Create(ctx, 1, food)
	require.NoError(t, err)

	bikes := validCreateRequest("bike deal")
	bikes.Category = "Services"
	bikes.Location = "Hamburg"
	_, err = svc.Create(ctx, 1, bikes)
	require.NoError(t, err)

	items, _, err := svc.List(ctx, ListParams{Category: "Services"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "bike deal", items[0].Title)

	items, _, err = svc.List(ctx, ListParams{Location: "Berlin"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "food deal", items[0].Title)
}

func TestUpdateOwnershipEnforced(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	promo, err := svc.Create(ctx, 1, validCreateRequest("mine"))
	require.NoError(t, err)

	upd := UpdatePromotionRequest{
		Title:       "renamed",
		Description: "test deal",
		Price:       4.99,
		StartDate:   "2026-01-01",
		EndDate:     "2099-12-31",
		IsActive:    true,
	}

	_, err = svc.Update(ctx, 2, string(domain.RoleMerchant), promo.ID, upd)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Update(ctx, 1, string(domain.RoleMerchant), promo.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, 4.99, got.Price)

	// Admins may edit any listing.
	upd.Title = "admin renamed"
	got, err = svc.Update(ctx, 99, string(domain.RoleAdmin), promo.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "admin renamed", got.Title)
}

func TestDeleteOwnershipEnforced(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	promo, err := svc.Create(ctx, 1, validCreateRequest("mine"))
	require.NoError(t, err)

	err = svc.Delete(ctx, 2, string(domain.RoleMember), promo.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(ctx, 1, string(domain.RoleMerchant), promo.ID))

	_, err = svc.Get(ctx, promo.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, 1, string(domain.RoleMerchant), promo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRating(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	promo, err := svc.Create(ctx, 1, validCreateRequest("rated"))
	require.NoError(t, err)

	rating, err := svc.GetRating(ctx, promo.ID)
	require.NoError(t, err)
	assert.Zero(t, rating.NumReviews)
	assert.Zero(t, rating.StarAverage)

	_, err = svc.GetRating(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
