package promotion

import (
	"context"
	"errors"

	"github.com/hunterjohnstone/honey-discount/internal/domain"
	"github.com/hunterjohnstone/honey-discount/internal/pkg/validator"
	"github.com/hunterjohnstone/honey-discount/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ListParams struct {
	Page           int
	PageSize       int
	Category       string
	Location       string
	IncludeExpired bool
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type Service struct {
	promotions *repository.PromotionRepository
}

func NewService(promotions *repository.PromotionRepository) *Service {
	return &Service{promotions: promotions}
}

func (s *Service) List(ctx context.Context, p ListParams) ([]domain.Promotion, Pagination, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > maxPageSize {
		p.PageSize = defaultPageSize
	}

	items, total, err := s.promotions.GetAll(ctx, repository.PromotionFilters{
		Category:       p.Category,
		Location:       p.Location,
		IncludeExpired: p.IncludeExpired,
		Limit:          p.PageSize,
		Offset:         (p.Page - 1) * p.PageSize,
	})
	if err != nil {
		return nil, Pagination{}, err
	}

	pg := Pagination{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: total,
		TotalPages: int((total + int64(p.PageSize) - 1) / int64(p.PageSize)),
	}
	return items, pg, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Promotion, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	promo, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return promo, nil
}

func (s *Service) GetRating(ctx context.Context, id int64) (*RatingResponse, error) {
	if id <= 0 {
		return nil, ErrInvalidRequest
	}
	numReviews, starAverage, err := s.promotions.GetRating(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &RatingResponse{NumReviews: numReviews, StarAverage: starAverage}, nil
}

func (s *Service) Create(ctx context.Context, userID int64, req CreatePromotionRequest) (*domain.Promotion, error) {
	if userID <= 0 {
		return nil, ErrInvalidRequest
	}
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrInvalidRequest
	}

	promo := &domain.Promotion{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Price:           req.Price,
		OldPrice:        req.OldPrice,
		Discount:        req.Discount,
		ImageURL:        req.ImageURL,
		MapLocation:     req.MapLocation,
		Category:        req.Category,
		Website:         req.Website,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		IsActive:        true,
		UserID:          userID,
	}
	if err := s.promotions.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// Update rewrites a promotion's listing fields. Only the owning merchant or
// an admin may touch it; the review aggregate and report list are never
// written through this path.
func (s *Service) Update(ctx context.Context, userID int64, role string, id int64, req UpdatePromotionRequest) (*domain.Promotion, error) {
	if userID <= 0 || id <= 0 {
		return nil, ErrInvalidRequest
	}
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrInvalidRequest
	}

	promo, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if promo.UserID != userID && role != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	promo.Title = req.Title
	promo.Description = req.Description
	promo.LongDescription = req.LongDescription
	promo.Price = req.Price
	promo.OldPrice = req.OldPrice
	promo.Discount = req.Discount
	promo.ImageURL = req.ImageURL
	promo.MapLocation = req.MapLocation
	promo.Category = req.Category
	promo.Website = req.Website
	promo.StartDate = req.StartDate
	promo.EndDate = req.EndDate
	promo.Location = req.Location
	promo.IsActive = req.IsActive

	if err := s.promotions.Update(ctx, promo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.promotions.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, userID int64, role string, id int64) error {
	if userID <= 0 || id <= 0 {
		return ErrInvalidRequest
	}

	promo, err := s.promotions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if promo.UserID != userID && role != string(domain.RoleAdmin) {
		return ErrForbidden
	}

	err = s.promotions.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
