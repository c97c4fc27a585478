package review

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/hunterjohnstone/honey-discount/internal/domain"
	"github.com/hunterjohnstone/honey-discount/internal/pkg/validator"
	"github.com/hunterjohnstone/honey-discount/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	reviews    *repository.ReviewRepository
	promotions *repository.PromotionRepository
}

func NewService(reviews *repository.ReviewRepository, promotions *repository.PromotionRepository) *Service {
	return &Service{reviews: reviews, promotions: promotions}
}

// Submit writes a review and folds its rating into the promotion's running
// average. The duplicate pre-check, insert, aggregate read and aggregate
// write run in one transaction: a mid-sequence failure never leaves the
// aggregate out of sync with the review rows. The unique index on
// (product_id, user_id) stays the real guarantee; the pre-check only exists
// to return a reference to the prior review.
func (s *Service) Submit(ctx context.Context, req SubmitReviewRequest) error {
	if missing := validator.MissingFields(req); len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	if req.Rating < 1 || req.Rating > 5 {
		return ErrValidation
	}
	if req.ProductID <= 0 || req.UserID <= 0 {
		return ErrValidation
	}

	return s.reviews.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviews := repository.NewReviewRepository(tx)
		promotions := repository.NewPromotionRepository(tx)

		existing, err := reviews.FindByPromotionAndUser(ctx, req.ProductID, req.UserID)
		if err == nil {
			return &DuplicateError{ExistingID: existing.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		rv := &domain.Review{
			PromotionID: req.ProductID,
			UserID:      req.UserID,
			Rating:      req.Rating,
			Comment:     req.Comment,
		}
		if err := reviews.Create(ctx, rv); err != nil {
			if isUniqueViolation(err) {
				return &DuplicateError{}
			}
			return err
		}

		prevCount, prevMean, err := promotions.GetRating(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Running mean over the stored (already rounded) previous value,
		// kept at one decimal. Matches the stored numeric(2,1) column.
		newMean := roundToOneDecimal(
			(float64(prevCount)*prevMean + float64(req.Rating)) / float64(prevCount+1),
		)

		return promotions.UpdateRating(ctx, req.ProductID, prevCount+1, newMean)
	})
}

// GetByPromotion returns the public review feed for a promotion.
func (s *Service) GetByPromotion(ctx context.Context, promotionID int64) ([]repository.ReviewWithUser, error) {
	if promotionID <= 0 {
		return nil, ErrValidation
	}
	return s.reviews.ListWithUsers(ctx, promotionID)
}

// roundToOneDecimal rounds half away from zero, the fixed tie-break for the
// stored average.
func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "SQLSTATE 23505") ||
		strings.Contains(s, "23505") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
