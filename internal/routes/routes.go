package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencivic/civicfix/internal/config"
	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/features/feed"
	"github.com/opencivic/civicfix/internal/features/incentives"
	"github.com/opencivic/civicfix/internal/features/media"
	"github.com/opencivic/civicfix/internal/features/notifications"
	"github.com/opencivic/civicfix/internal/features/reports"
	"github.com/opencivic/civicfix/internal/features/timeline"
	"github.com/opencivic/civicfix/internal/features/votes"
	"github.com/opencivic/civicfix/internal/pkg/cache"
)

// SetupRoutes mounts every feature under /api/v1
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, c *cache.Cache, notifier *notifications.Service) {
	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, db, cfg)
	reports.RegisterRoutes(api, db, cfg, notifier)
	votes.RegisterRoutes(api, db, cfg)
	feed.RegisterRoutes(api, db, cfg, c)
	timeline.RegisterRoutes(api, db)
	incentives.RegisterRoutes(api, db, cfg)
	media.RegisterRoutes(api, db, cfg)
}
