package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkypratama/havenly/internal/application"
	"github.com/rizkypratama/havenly/pkg/helpers"
	"github.com/rizkypratama/havenly/pkg/response"
	"github.com/rizkypratama/havenly/pkg/validation"
)

// UserHandler serves the owner-only account routes. The ownership check
// itself lives in middleware.RequireSelf, so handlers can trust :id.
type UserHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type updateUserRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=32"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,pwd"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
}

// Update POST /api/user/update/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), c.Param("id"), application.UpdateProfileInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, application.ErrDuplicateAccount):
			response.Error(c, http.StatusConflict, err.Error(), nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("update profile failed")
			}
			response.Error(c, http.StatusInternalServerError, "could not update profile", nil)
		}
		return
	}
	response.JSON(c, http.StatusOK, userJSON(u))
}

// Delete DELETE /api/user/delete/:id
// Terminal operation; the session cookie is cleared in the response.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("delete account failed")
		}
		response.Error(c, http.StatusInternalServerError, "could not delete account", nil)
		return
	}
	h.Cookies.Clear(c)
	response.JSON(c, http.StatusOK, gin.H{"message": "account deleted"})
}

// Listings GET /api/user/listings/:id
func (h *UserHandler) Listings(c *gin.Context) {
	listings, err := h.Svc.ListingsByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list own listings failed")
		}
		response.Error(c, http.StatusInternalServerError, "could not load listings", nil)
		return
	}
	response.JSON(c, http.StatusOK, listings)
}
