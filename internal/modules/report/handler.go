package report

import (
	"errors"
	"net/http"

	"github.com/hunterjohnstone/honey-discount/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	if protected != nil {
		protected.PUT("/promotions/report", h.Submit)
	}
}

// Submit handles PUT /api/v1/promotions/report.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	req.UserID = c.GetInt64("user_id")

	entries, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		var missing *MissingFieldError
		switch {
		case errors.As(err, &missing):
			response.ErrorWithDetails(c, http.StatusBadRequest, "MISSING_FIELD",
				"Missing required fields", gin.H{"missingFields": missing.Fields})
		case errors.Is(err, ErrDuplicate):
			// The legacy client expects a 400 here, not a 409.
			response.Error(c, http.StatusBadRequest, "DUPLICATE_SUBMISSION",
				"You have already reported this promotion")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT",
				"Promotion was updated concurrently, please retry")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reported": entries})
}
