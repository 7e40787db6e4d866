package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/internal/container"
	handlers "github.com/rizkypratama/havenly/internal/interface/http"
	"github.com/rizkypratama/havenly/internal/interface/middleware"
	"github.com/rizkypratama/havenly/pkg/helpers"
)

// UploadModule wires the protected image upload routes.
type UploadModule struct {
	Handler *handlers.UploadHandler
	JWT     *helpers.TokenManager
}

func NewUploadModule(h *handlers.UploadHandler, jwt *helpers.TokenManager) *UploadModule {
	return &UploadModule{Handler: h, JWT: jwt}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/upload")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/avatar", m.Handler.Avatar)
		auth.POST("/listing-images", m.Handler.ListingImages)
	}
}
