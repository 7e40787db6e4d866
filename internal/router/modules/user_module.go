package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/internal/container"
	handlers "github.com/rizkypratama/havenly/internal/interface/http"
	"github.com/rizkypratama/havenly/internal/interface/middleware"
	"github.com/rizkypratama/havenly/pkg/helpers"
)

// UserModule wires the owner-only account routes. Every route requires a
// valid session and a matching :id (RequireSelf).
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/user")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/update/:id", middleware.RequireSelf(), m.Handler.Update)
		auth.DELETE("/delete/:id", middleware.RequireSelf(), m.Handler.Delete)
		auth.GET("/listings/:id", middleware.RequireSelf(), m.Handler.Listings)
	}
}
