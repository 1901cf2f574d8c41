package media

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencivic/civicfix/internal/config"
	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/pkg/cloudinary"
)

// RegisterRoutes wires the image upload endpoint. When Cloudinary is
// not configured the route is not mounted.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	uploads, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		"reports",
	)
	if err != nil {
		log.Printf("media: cloudinary unavailable, uploads disabled: %v", err)
		return
	}

	users := auth.NewRepository(db)
	handler := NewHandler(uploads)

	router.POST("/media/upload", auth.NewAuthMiddleware(users, cfg), handler.Upload)
}
