package reports

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencivic/civicfix/internal/config"
	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/features/notifications"
)

// RegisterRoutes wires the report lifecycle endpoints
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, notifier *notifications.Service) {
	repo := NewRepository(db)
	users := auth.NewRepository(db)
	handler := NewHandler(repo, users, notifier)

	authRequired := auth.NewAuthMiddleware(users, cfg)

	group := router.Group("/reports")
	{
		group.GET("/:id", handler.GetByID)

		group.POST("", authRequired, handler.Create)
		group.GET("", authRequired, handler.ListMine)
		group.PUT("/:id/status", authRequired, handler.UpdateStatus)
		group.PUT("/:id/confirm", authRequired, handler.Confirm)
	}
}
