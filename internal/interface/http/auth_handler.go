package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkypratama/havenly/internal/application"
	"github.com/rizkypratama/havenly/internal/domain/entity"
	"github.com/rizkypratama/havenly/pkg/helpers"
	"github.com/rizkypratama/havenly/pkg/response"
	"github.com/rizkypratama/havenly/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

// userJSON shapes a user for the wire with the password hash stripped.
func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"username":  u.Username,
		"email":     u.Email,
		"avatar":    u.Avatar,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}

type signUpRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type googleRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo" binding:"omitempty,url"`
}

// SignUp POST /api/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.SignUp(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateAccount) {
			response.Error(c, http.StatusConflict, err.Error(), nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("signup failed")
		}
		response.Error(c, http.StatusInternalServerError, "could not create account", nil)
		return
	}
	response.JSON(c, http.StatusCreated, userJSON(u))
}

// SignIn POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, exp, err := h.Svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.SetSession(c, token, exp)
	response.JSON(c, http.StatusOK, userJSON(u))
}

// SignOut GET /api/auth/signout
// Only the cookie is cleared; an already-issued token stays valid until expiry.
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.Cookies.Clear(c)
	response.JSON(c, http.StatusOK, gin.H{"message": "signed out"})
}

// Google POST /api/auth/google
// OAuth passthrough: the client completes the Google flow and forwards the
// profile; the account is created on first sight.
func (h *AuthHandler) Google(c *gin.Context) {
	var req googleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, exp, err := h.Svc.GoogleSignIn(c.Request.Context(), req.Name, req.Email, req.Photo)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("google sign-in failed")
		}
		response.Error(c, http.StatusInternalServerError, "could not sign in with google", nil)
		return
	}
	h.Cookies.SetSession(c, token, exp)
	response.JSON(c, http.StatusOK, userJSON(u))
}
