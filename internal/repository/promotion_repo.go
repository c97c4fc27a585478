package repository

import (
	"context"
	"time"

	"github.com/hunterjohnstone/honey-discount/internal/domain"

	"gorm.io/gorm"
)

type PromotionFilters struct {
	Category       string
	Location       string
	IncludeExpired bool
	Limit          int
	Offset         int
}

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

type promotionModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Title           string    `gorm:"column:title;size:100"`
	Description     string    `gorm:"column:description;size:100"`
	LongDescription string    `gorm:"column:long_description"`
	Price           float64   `gorm:"column:price;default:0"`
	OldPrice        *float64  `gorm:"column:old_price"`
	Discount        string    `gorm:"column:discount"`
	ImageURL        string    `gorm:"column:image_url;size:200"`
	MapLocation     string    `gorm:"column:map_location"`
	Category        string    `gorm:"column:category;size:100"`
	Website         string    `gorm:"column:website"`
	StartDate       string    `gorm:"column:start_date;size:100"`
	EndDate         string    `gorm:"column:end_date;size:100"`
	Location        string    `gorm:"column:location;size:100"`
	IsActive        bool      `gorm:"column:is_active"`
	Reported        string    `gorm:"column:reported;default:[]"`
	UserID          int64     `gorm:"column:user_id;index"`
	StarAverage     float64   `gorm:"column:star_average;default:0"`
	NumReviews      int       `gorm:"column:num_reviews;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (promotionModel) TableName() string { return "products" }

func toDomainPromotion(m promotionModel) domain.Promotion {
	return domain.Promotion{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		LongDescription: m.LongDescription,
		Price:           m.Price,
		OldPrice:        m.OldPrice,
		Discount:        m.Discount,
		ImageURL:        m.ImageURL,
		MapLocation:     m.MapLocation,
		Category:        m.Category,
		Website:         m.Website,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		Location:        m.Location,
		IsActive:        m.IsActive,
		Reported:        domain.ParseReports(m.Reported),
		UserID:          m.UserID,
		StarAverage:     m.StarAverage,
		NumReviews:      m.NumReviews,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toPromotionModel(p *domain.Promotion) promotionModel {
	return promotionModel{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Price:           p.Price,
		OldPrice:        p.OldPrice,
		Discount:        p.Discount,
		ImageURL:        p.ImageURL,
		MapLocation:     p.MapLocation,
		Category:        p.Category,
		Website:         p.Website,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Location:        p.Location,
		IsActive:        p.IsActive,
		UserID:          p.UserID,
		StarAverage:     p.StarAverage,
		NumReviews:      p.NumReviews,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// GetAll returns promotions with optional filters plus the total match count.
// Expired deals (end_date before today) and inactive ones are filtered out
// unless IncludeExpired is set.
func (r *PromotionRepository) GetAll(
	ctx context.Context,
	f PromotionFilters,
) ([]domain.Promotion, int64, error) {

	var rows []promotionModel
	var total int64

	q := r.db.WithContext(ctx).Model(&promotionModel{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if !f.IncludeExpired {
		today := time.Now().UTC().Format("2006-01-02")
		q = q.Where("is_active = ?", true).
			Where("end_date = '' OR end_date >= ?", today)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Promotion, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPromotion(m))
	}
	return out, total, nil
}

func (r *PromotionRepository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	var m promotionModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	p := toDomainPromotion(m)
	return &p, nil
}

func (r *PromotionRepository) Create(ctx context.Context, p *domain.Promotion) error {
	m := toPromotionModel(p)
	m.Reported = "[]"
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = toDomainPromotion(m)
	return nil
}

func (r *PromotionRepository) Update(ctx context.Context, p *domain.Promotion) error {
	m := toPromotionModel(p)
	m.UpdatedAt = time.Now().UTC()
	tx := r.db.WithContext(ctx).
		Model(&promotionModel{}).
		Where("id = ?", p.ID).
		Select("title", "description", "long_description", "price", "old_price",
			"discount", "image_url", "map_location", "category", "website",
			"start_date", "end_date", "location", "is_active", "updated_at").
		Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&promotionModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetRating loads just the denormalized review aggregate.
func (r *PromotionRepository) GetRating(ctx context.Context, id int64) (int, float64, error) {
	var m promotionModel
	err := r.db.WithContext(ctx).
		Select("id", "num_reviews", "star_average").
		First(&m, id).Error
	if err != nil {
		return 0, 0, err
	}
	return m.NumReviews, m.StarAverage, nil
}

// UpdateRating persists a freshly computed aggregate.
func (r *PromotionRepository) UpdateRating(ctx context.Context, id int64, numReviews int, starAverage float64) error {
	tx := r.db.WithContext(ctx).
		Model(&promotionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"num_reviews":  numReviews,
			"star_average": starAverage,
			"updated_at":   time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetReported returns the raw serialized report blob for a promotion.
func (r *PromotionRepository) GetReported(ctx context.Context, id int64) (string, error) {
	var m promotionModel
	err := r.db.WithContext(ctx).
		Select("id", "reported").
		First(&m, id).Error
	if err != nil {
		return "", err
	}
	return m.Reported, nil
}

// CompareAndSwapReported replaces the report blob only if it still holds the
// previously read value. Returns false when a concurrent writer got there
// first; callers re-read and retry.
func (r *PromotionRepository) CompareAndSwapReported(ctx context.Context, id int64, old, updated string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&promotionModel{}).
		Where("id = ? AND reported = ?", id, old).
		Updates(map[string]any{
			"reported":   updated,
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *PromotionRepository) DB() *gorm.DB {
	return r.db
}
