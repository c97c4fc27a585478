package review

type SubmitReviewRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Rating    int    `json:"rating" validate:"required"`
	Comment   string `json:"comment" validate:"required"`
	UserID    int64  `json:"userId" validate:"required,gt=0"`
}
