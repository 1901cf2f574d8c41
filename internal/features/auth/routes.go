package auth

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencivic/civicfix/internal/config"
)

// RegisterRoutes registers the auth and profile routes
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo, cfg)

	authMiddleware := NewAuthMiddleware(repo, cfg)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/google", handler.GoogleAuth)
	}

	usersGroup := router.Group("/users")
	{
		usersGroup.GET("/me", authMiddleware, handler.Me)
		usersGroup.PUT("/me", authMiddleware, handler.UpdateMe)
		usersGroup.PUT("/me/device-token", authMiddleware, handler.SetDeviceToken)
	}
}
