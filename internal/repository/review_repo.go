package repository

import (
	"context"
	"time"

	"github.com/hunterjohnstone/honey-discount/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ProductID int64     `gorm:"column:product_id;index:review_product_idx;uniqueIndex:unique_product_user_review"`
	UserID    int64     `gorm:"column:user_id;index:review_user_idx;uniqueIndex:unique_product_user_review"`
	Rating    int       `gorm:"column:rating;index:review_rating_idx"`
	Comment   *string   `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "product_reviews" }

func toDomainReview(m reviewModel) domain.Review {
	comment := ""
	if m.Comment != nil {
		comment = *m.Comment
	}
	return domain.Review{
		ID:          m.ID,
		PromotionID: m.ProductID,
		UserID:      m.UserID,
		Rating:      m.Rating,
		Comment:     comment,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toReviewModel(r *domain.Review) reviewModel {
	var comment *string
	if r.Comment != "" {
		v := r.Comment
		comment = &v
	}
	return reviewModel{
		ID:        r.ID,
		ProductID: r.PromotionID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*rv = toDomainReview(m)
	return nil
}

// FindByPromotionAndUser returns the caller's existing review, or
// gorm.ErrRecordNotFound when none exists.
func (r *ReviewRepository) FindByPromotionAndUser(ctx context.Context, promotionID, userID int64) (*domain.Review, error) {
	var m reviewModel
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", promotionID, userID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	d := toDomainReview(m)
	return &d, nil
}

// ReviewWithUser is one row of the public review feed. UserName is nil when
// the author account was deleted.
type ReviewWithUser struct {
	UserName *string   `json:"userName"`
	Comment  *string   `json:"comment"`
	Date     time.Time `json:"date"`
	Rating   int       `json:"rating"`
}

// ListWithUsers joins reviews with their authors, newest first.
func (r *ReviewRepository) ListWithUsers(ctx context.Context, promotionID int64) ([]ReviewWithUser, error) {
	rows := make([]ReviewWithUser, 0)
	err := r.db.WithContext(ctx).
		Table("product_reviews").
		Select("users.name AS user_name, product_reviews.comment, product_reviews.created_at AS date, product_reviews.rating").
		Joins("LEFT JOIN users ON users.id = product_reviews.user_id AND users.deleted_at IS NULL").
		Where("product_reviews.product_id = ?", promotionID).
		Order("product_reviews.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReviewRepository) CountByPromotion(ctx context.Context, promotionID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("product_id = ?", promotionID).
		Count(&count).Error
	return count, err
}

func (r *ReviewRepository) DB() *gorm.DB {
	return r.db
}
