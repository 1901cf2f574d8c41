package feed

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/pkg/response"
)

// Handler serves the community feed
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Feed godoc
// @Summary Community feed of all reports
// @Description Returns every report joined with reporter names and, for
// @Description authenticated callers, their own vote on each report.
// @Tags feed
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /feed [get]
func (h *Handler) Feed(c *gin.Context) {
	var viewerID *primitive.ObjectID
	if user, ok := auth.CurrentUser(c); ok {
		viewerID = &user.ID
	}

	result, err := h.service.Feed(c.Request.Context(), viewerID)
	if err != nil {
		response.ServiceUnavailable(c, "Feed is temporarily unavailable", "FEED_UNAVAILABLE")
		return
	}

	response.Success(c, result)
}
