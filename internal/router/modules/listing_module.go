package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/internal/container"
	handlers "github.com/rizkypratama/havenly/internal/interface/http"
	"github.com/rizkypratama/havenly/internal/interface/middleware"
	"github.com/rizkypratama/havenly/pkg/helpers"
)

// ListingModule wires listing routes.
// Public: GET /api/listing/get/:id, GET /api/listing/search
// Protected: POST /api/listing/create, POST /api/listing/update/:id,
// DELETE /api/listing/delete/:id
type ListingModule struct {
	Handler *handlers.ListingHandler
	JWT     *helpers.TokenManager
}

func NewListingModule(h *handlers.ListingHandler, jwt *helpers.TokenManager) *ListingModule {
	return &ListingModule{Handler: h, JWT: jwt}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/listing/get/:id", readLimiter, m.Handler.Get)
	rg.GET("/listing/search", readLimiter, m.Handler.Search)

	auth := rg.Group("/listing")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/create", m.Handler.Create)
		auth.POST("/update/:id", m.Handler.Update)
		auth.DELETE("/delete/:id", m.Handler.Delete)
	}
}
