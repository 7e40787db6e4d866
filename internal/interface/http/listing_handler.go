package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkypratama/havenly/internal/application"
	"github.com/rizkypratama/havenly/internal/interface/middleware"
	"github.com/rizkypratama/havenly/pkg/response"
	"github.com/rizkypratama/havenly/pkg/validation"
)

type ListingHandler struct {
	Svc    *application.ListingService
	Logger *logrus.Logger
}

func NewListingHandler(svc *application.ListingService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Logger: logger}
}

type listingRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	Type          string   `json:"type" binding:"required,listingtype"`
	Bedrooms      int      `json:"bedrooms" binding:"required,gte=1"`
	Bathrooms     int      `json:"bathrooms" binding:"required,gte=1"`
	RegularPrice  float64  `json:"regularPrice" binding:"required,gt=0"`
	DiscountPrice float64  `json:"discountPrice" binding:"omitempty,gte=0"`
	Offer         bool     `json:"offer"`
	Parking       bool     `json:"parking"`
	Furnished     bool     `json:"furnished"`
	ImageURLs     []string `json:"imageUrls" binding:"required,min=1,max=6,dive,url"`
}

func (r *listingRequest) toInput() application.ListingInput {
	return application.ListingInput{
		Name:          r.Name,
		Description:   r.Description,
		Address:       r.Address,
		Type:          r.Type,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		RegularPrice:  r.RegularPrice,
		DiscountPrice: r.DiscountPrice,
		Offer:         r.Offer,
		Parking:       r.Parking,
		Furnished:     r.Furnished,
		ImageURLs:     r.ImageURLs,
	}
}

func (h *ListingHandler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, application.ErrListingNotFound):
		response.Error(c, http.StatusNotFound, "listing not found", nil)
	case errors.Is(err, application.ErrNotOwner):
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidDiscount), errors.Is(err, application.ErrInvalidImageURLs):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error(action + " failed")
		}
		response.Error(c, http.StatusInternalServerError, "could not "+action, nil)
	}
}

// Create POST /api/listing/create
func (h *ListingHandler) Create(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	caller := c.GetString(middleware.CtxUserIDKey)
	l, err := h.Svc.Create(c.Request.Context(), caller, req.toInput())
	if err != nil {
		h.fail(c, err, "create listing")
		return
	}
	response.JSON(c, http.StatusCreated, l)
}

// Get GET /api/listing/get/:id (public)
func (h *ListingHandler) Get(c *gin.Context) {
	l, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "load listing")
		return
	}
	response.JSON(c, http.StatusOK, l)
}

// Update POST /api/listing/update/:id
func (h *ListingHandler) Update(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	caller := c.GetString(middleware.CtxUserIDKey)
	l, err := h.Svc.Update(c.Request.Context(), caller, c.Param("id"), req.toInput())
	if err != nil {
		h.fail(c, err, "update listing")
		return
	}
	response.JSON(c, http.StatusOK, l)
}

// Delete DELETE /api/listing/delete/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	caller := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
		h.fail(c, err, "delete listing")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "listing deleted"})
}

// Search GET /api/listing/search?q=&limit= (public)
func (h *ListingHandler) Search(c *gin.Context) {
	q := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, limit)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("listing search failed")
		}
		response.Error(c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.JSON(c, http.StatusOK, hits)
}
