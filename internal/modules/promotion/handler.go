package promotion

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
		public.GET("/promotions", h.List)
		public.GET("/promotions/:id", h.Get)
		public.GET("/promotions/:id/rating", h.GetRating)
	}
	if protected != nil {
		protected.POST("/promotions", h.Create)
		protected.PUT("/promotions/:id", h.Update)
		protected.DELETE("/promotions/:id", h.Delete)
	}
}

// List handles GET /api/v1/promotions with pagination and filters.
func (h *Handler) List(c *gin.Context) {
	var p ListParams

	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		p.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		p.PageSize = size
	}
	p.Category = c.Query("category")
	p.Location = c.Query("location")
	p.IncludeExpired = c.Query("include_expired") == "true"

	items, pg, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"promotions": items,
		"pagination": pg,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	promo, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"promotion": promo})
}

// GetRating handles GET /api/v1/promotions/:id/rating.
func (h *Handler) GetRating(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rating, err := h.svc.GetRating(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rating)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	promo, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"promotion": promo},
		"message": "Promotion created successfully",
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	promo, err := h.svc.Update(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"promotion": promo})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Promotion deleted")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid promotion ID")
		return 0, false
	}
	return id, true
}

func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid input")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this promotion")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
