package timeline

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencivic/civicfix/internal/features/reports"
)

// RegisterRoutes wires the timeline endpoint
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	handler := NewHandler(reports.NewRepository(db))
	router.GET("/reports/:id/timeline", handler.Timeline)
}
