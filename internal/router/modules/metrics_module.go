package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/internal/container"
	"github.com/rizkypratama/havenly/internal/interface/middleware"
	"github.com/rizkypratama/havenly/internal/metrics"
)

// MetricsModule exposes the Prometheus scrape endpoint, rate-limited per IP
// with a bypass for private addresses (the scraper usually lives in-cluster).
type MetricsModule struct{}

func NewMetricsModule() *MetricsModule { return &MetricsModule{} }

func (m *MetricsModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/metrics", rl, gin.WrapH(metrics.Handler(container.GetPromRegistry())))
}
