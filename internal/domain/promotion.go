package domain

import "time"

// Promotion is a time-bounded local deal published by a merchant.
// StartDate/EndDate are YYYY-MM-DD strings, matching the stored schema.
type Promotion struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description,omitempty"`
	Price           float64   `json:"price"`
	OldPrice        *float64  `json:"old_price,omitempty"`
	Discount        string    `json:"discount,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	MapLocation     string    `json:"map_location,omitempty"`
	Category        string    `json:"category,omitempty"`
	Website         string    `json:"website,omitempty"`
	StartDate       string    `json:"start_date,omitempty"`
	EndDate         string    `json:"end_date,omitempty"`
	Location        string    `json:"location,omitempty"`
	IsActive        bool      `json:"is_active"`
	// Reported is the parsed form of the serialized report blob stored on
	// the row.
	Reported    []ReportEntry `json:"reported"`
	UserID      int64         `json:"user_id"`
	StarAverage float64       `json:"star_average"`
	NumReviews  int           `json:"num_reviews"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
