package votes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencivic/civicfix/internal/config"
	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/features/reports"
	"github.com/opencivic/civicfix/internal/pkg/ratelimit"
)

// RegisterRoutes wires the vote endpoints. Casting is rate limited per
// user to absorb rapid double-taps from the client.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	ledger := NewRepository(db)
	reportRepo := reports.NewRepository(db)
	users := auth.NewRepository(db)

	service := NewService(reportRepo, ledger)
	handler := NewHandler(service, ledger)

	authRequired := auth.NewAuthMiddleware(users, cfg)
	voteLimiter := ratelimit.New(10, time.Minute)

	group := router.Group("/reports/:id/vote")
	group.Use(authRequired)
	{
		group.POST("", ratelimit.UserBasedMiddleware(voteLimiter), handler.Cast)
		group.GET("", handler.State)
	}
}
