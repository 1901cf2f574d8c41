package incentives

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencivic/civicfix/internal/config"
	"github.com/opencivic/civicfix/internal/features/auth"
)

// RegisterRoutes wires the incentive catalog and redemption endpoints
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	users := auth.NewRepository(db)
	handler := NewHandler(repo, users)

	authRequired := auth.NewAuthMiddleware(users, cfg)

	group := router.Group("/incentives")
	{
		group.GET("", handler.List)
		group.GET("/redemptions", authRequired, handler.Redemptions)
		group.POST("/:id/redeem", authRequired, handler.Redeem)
	}
}
