package timeline

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicfix/internal/features/reports"
	"github.com/opencivic/civicfix/internal/pkg/response"
	apperrors "github.com/opencivic/civicfix/pkg/errors"
)

// Handler serves report status timelines
type Handler struct {
	reports *reports.Repository
}

func NewHandler(reportRepo *reports.Repository) *Handler {
	return &Handler{reports: reportRepo}
}

// Timeline godoc
// @Summary Status timeline for a report
// @Tags timeline
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/timeline [get]
func (h *Handler) Timeline(c *gin.Context) {
	reportID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || reportID <= 0 {
		response.BadRequest(c, "Report ID must be a positive integer", "INVALID_REPORT_ID")
		return
	}

	report, err := h.reports.GetByReportID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to fetch report")
		return
	}

	response.Success(c, Build(report))
}
