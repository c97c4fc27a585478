package report

type SubmitReportRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required"`
	Message   string `json:"message" validate:"required"`
	UserID    int64  `json:"userId" validate:"required,gt=0"`
}
