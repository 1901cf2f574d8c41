package feed

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencivic/civicfix/internal/config"
	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/features/reports"
	"github.com/opencivic/civicfix/internal/features/votes"
	"github.com/opencivic/civicfix/internal/pkg/cache"
)

// RegisterRoutes wires the feed endpoint. Authentication is optional:
// anonymous viewers get the feed without vote highlights.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, c *cache.Cache) {
	users := auth.NewRepository(db)
	service := NewService(reports.NewRepository(db), users, votes.NewRepository(db), c)
	handler := NewHandler(service)

	router.GET("/feed", auth.OptionalAuthMiddleware(users, cfg), handler.Feed)
}
