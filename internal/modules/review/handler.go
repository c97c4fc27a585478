package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hunterjohnstone/honey-discount/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/reviews", h.GetByPromotion)
	}
	if protected != nil {
		protected.POST("/reviews", h.Submit)
	}
}

// Submit handles POST /api/v1/reviews.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	// The token is authoritative for the author, whatever the body says.
	req.UserID = c.GetInt64("user_id")

	if err := h.svc.Submit(c.Request.Context(), req); err != nil {
		var missing *MissingFieldError
		var dup *DuplicateError
		switch {
		case errors.As(err, &missing):
			response.ErrorWithDetails(c, http.StatusBadRequest, "MISSING_FIELD",
				"Missing required fields", gin.H{"missingFields": missing.Fields})
		case errors.As(err, &dup):
			response.ErrorWithDetails(c, http.StatusConflict, "DUPLICATE_SUBMISSION",
				"You have already reviewed this promotion", gin.H{"existingReviewId": dup.ExistingID})
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Rating must be an integer from 1 to 5")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Message(c, http.StatusOK, "Review created successfully")
}

// GetByPromotion handles GET /api/v1/reviews?productId=.
func (h *Handler) GetByPromotion(c *gin.Context) {
	raw := c.Query("productId")
	if raw == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_FIELD", "Product ID is required")
		return
	}

	promotionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || promotionID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid product ID")
		return
	}

	items, err := h.svc.GetByPromotion(c.Request.Context(), promotionID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, items)
}
