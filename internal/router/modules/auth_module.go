package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/internal/container"
	handlers "github.com/rizkypratama/havenly/internal/interface/http"
	"github.com/rizkypratama/havenly/internal/interface/middleware"
)

// AuthModule wires the public authentication routes.
// POST /api/auth/signup, POST /api/auth/signin, GET /api/auth/signout,
// POST /api/auth/google
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	googleLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/signup", signupLimiter, m.Handler.SignUp)
	rg.POST("/auth/signin", signinLimiter, m.Handler.SignIn)
	rg.GET("/auth/signout", m.Handler.SignOut)
	rg.POST("/auth/google", googleLimiter, m.Handler.Google)
}
