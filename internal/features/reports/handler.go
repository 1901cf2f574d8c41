package reports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/features/notifications"
	"github.com/opencivic/civicfix/internal/pkg/response"
	apperrors "github.com/opencivic/civicfix/pkg/errors"
)

// ResolvedRewardPoints is credited to the reporter when their report
// reaches the Resolved state.
const ResolvedRewardPoints = 50

// Handler handles report lifecycle endpoints
type Handler struct {
	repo     *Repository
	users    *auth.Repository
	notifier *notifications.Service
}

func NewHandler(repo *Repository, users *auth.Repository, notifier *notifications.Service) *Handler {
	return &Handler{repo: repo, users: users, notifier: notifier}
}

// Create godoc
// @Summary Submit a new report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report payload"
// @Success 201 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", "INVALID_REQUEST")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		response.BadRequest(c, "Date must be in YYYY-MM-DD format", "INVALID_DATE")
		return
	}
	if _, err := time.Parse("15:04:05", req.Time); err != nil {
		response.BadRequest(c, "Time must be in HH:MM:SS format", "INVALID_TIME")
		return
	}

	exists, err := h.repo.URLExists(c.Request.Context(), req.URL)
	if err != nil {
		response.DatabaseError(c, "Failed to check for existing report")
		return
	}
	if exists {
		response.Conflict(c, "A report with these images already exists", "DUPLICATE_REPORT")
		return
	}

	now := time.Now()
	report := &Report{
		UserID:        user.ID,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Category:      req.Category,
		Description:   req.Description,
		URL:           req.URL,
		Severity:      CalculateSeverity(0, 0),
		Status:        StatusUnderReview,
		UnderReviewAt: &now,
	}

	if err := h.repo.Create(c.Request.Context(), report); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "A report with these images already exists", "DUPLICATE_REPORT")
			return
		}
		response.DatabaseError(c, "Failed to create report")
		return
	}

	response.Created(c, report)
}

// ListMine godoc
// @Summary List the authenticated user's reports
// @Tags reports
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.PaginatedResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *Handler) ListMine(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid pagination parameters", "INVALID_QUERY")
		return
	}

	result, total, err := h.repo.ListByUser(c.Request.Context(), user.ID, query.Page, query.Limit)
	if err != nil {
		response.DatabaseError(c, "Failed to fetch reports")
		return
	}

	response.Paginated(c, result, total, query.Limit, query.Page)
}

// GetByID godoc
// @Summary Fetch a single report
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	reportID, ok := parseReportID(c)
	if !ok {
		return
	}

	report, err := h.repo.GetByReportID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to fetch report")
		return
	}

	response.Success(c, report)
}

// UpdateStatus godoc
// @Summary Advance a report's lifecycle status
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	reportID, ok := parseReportID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", "INVALID_REQUEST")
		return
	}

	if !IsValidStatus(req.Status) {
		response.BadRequest(c, "Unknown status value", "INVALID_STATUS")
		return
	}

	previous, err := h.repo.GetByReportID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to fetch report")
		return
	}

	updated, err := h.repo.UpdateStatus(c.Request.Context(), reportID, req.Status, req.Remarks)
	if err != nil {
		response.DatabaseError(c, "Failed to update status")
		return
	}

	// Reward and notify once, on the first transition into Resolved.
	if req.Status == StatusResolved && previous.Status != StatusResolved {
		if err := h.users.AwardPoints(c.Request.Context(), updated.UserID, ResolvedRewardPoints); err != nil {
			// Status change already succeeded; the reward can be re-credited later.
			log.Printf("reports: award points for report %d failed: %v", reportID, err)
		}
	}

	if previous.Status != updated.Status {
		go h.notifyStatusChange(updated)
	}

	response.Success(c, updated)
}

// Confirm godoc
// @Summary Confirm or dispute a resolved report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body ConfirmRequest true "Confirmation flag"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/confirm [put]
func (h *Handler) Confirm(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	reportID, parsed := parseReportID(c)
	if !parsed {
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", "INVALID_REQUEST")
		return
	}

	report, err := h.repo.GetByReportID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to fetch report")
		return
	}

	if report.UserID != user.ID {
		response.Forbidden(c, "Only the reporter can confirm resolution", "NOT_REPORTER")
		return
	}
	if report.Status != StatusResolved {
		response.BadRequest(c, "Report is not resolved yet", "NOT_RESOLVED")
		return
	}

	updated, err := h.repo.SetConfirmation(c.Request.Context(), reportID, *req.Confirmed)
	if err != nil {
		response.DatabaseError(c, "Failed to record confirmation")
		return
	}

	response.Success(c, updated)
}

func (h *Handler) notifyStatusChange(report *Report) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reporter, err := h.users.GetUserByID(ctx, report.UserID.Hex())
	if err != nil || reporter.DeviceToken == "" {
		return
	}

	title := "Report update"
	body := statusMessage(report)
	h.notifier.SendToDevice(ctx, reporter.DeviceToken, title, body, map[string]string{
		"report_id": strconv.FormatInt(report.ReportID, 10),
		"status":    string(report.Status),
	})
}

func statusMessage(report *Report) string {
	switch report.Status {
	case StatusProcessing:
		return fmt.Sprintf("Your report #%d is now being processed.", report.ReportID)
	case StatusPendingConfirmation:
		return fmt.Sprintf("Your report #%d is awaiting your confirmation.", report.ReportID)
	case StatusResolved:
		return fmt.Sprintf("Your report #%d has been resolved. You earned %d points!", report.ReportID, ResolvedRewardPoints)
	default:
		return fmt.Sprintf("Your report #%d is under review.", report.ReportID)
	}
}

func parseReportID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Report ID must be a positive integer", "INVALID_REPORT_ID")
		return 0, false
	}
	return id, true
}
