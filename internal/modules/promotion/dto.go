package promotion

type CreatePromotionRequest struct {
	Title           string   `json:"title" validate:"required,max=100"`
	Description     string   `json:"description" validate:"required,max=100"`
	LongDescription string   `json:"long_description,omitempty"`
	Price           float64  `json:"price" validate:"gte=0"`
	OldPrice        *float64 `json:"old_price,omitempty"`
	Discount        string   `json:"discount,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
	MapLocation     string   `json:"map_location,omitempty"`
	Category        string   `json:"category,omitempty" validate:"max=100"`
	Website         string   `json:"website,omitempty"`
	StartDate       string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	Location        string   `json:"location,omitempty" validate:"max=100"`
}

type UpdatePromotionRequest struct {
	Title           string   `json:"title" validate:"required,max=100"`
	Description     string   `json:"description" validate:"required,max=100"`
	LongDescription string   `json:"long_description,omitempty"`
	Price           float64  `json:"price" validate:"gte=0"`
	OldPrice        *float64 `json:"old_price,omitempty"`
	Discount        string   `json:"discount,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
	MapLocation     string   `json:"map_location,omitempty"`
	Category        string   `json:"category,omitempty" validate:"max=100"`
	Website         string   `json:"website,omitempty"`
	StartDate       string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	Location        string   `json:"location,omitempty" validate:"max=100"`
	IsActive        bool     `json:"is_active"`
}

type RatingResponse struct {
	NumReviews  int     `json:"num_reviews"`
	StarAverage float64 `json:"star_average"`
}
