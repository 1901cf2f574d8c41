package votes

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/pkg/response"
	apperrors "github.com/opencivic/civicfix/pkg/errors"
)

// Handler handles vote endpoints
type Handler struct {
	service *Service
	ledger  *Repository
}

func NewHandler(service *Service, ledger *Repository) *Handler {
	return &Handler{service: service, ledger: ledger}
}

// Cast godoc
// @Summary Cast a vote on a report
// @Tags votes
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body CastVoteRequest true "Vote direction"
// @Success 200 {object} response.SuccessResponse
// @Failure 409 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/vote [post]
func (h *Handler) Cast(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	reportID, ok := parseReportID(c)
	if !ok {
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Vote type must be upvote or downvote", "INVALID_VOTE_TYPE")
		return
	}

	updated, err := h.service.Cast(c.Request.Context(), user.ID, reportID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateVote):
			response.DuplicateVote(c)
		case errors.Is(err, apperrors.ErrNotFound):
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
		default:
			response.DatabaseError(c, "Failed to record vote")
		}
		return
	}

	response.Success(c, updated)
}

// State godoc
// @Summary Get the caller's current vote on a report
// @Tags votes
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Security BearerAuth
// @Router /reports/{id}/vote [get]
func (h *Handler) State(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	reportID, ok := parseReportID(c)
	if !ok {
		return
	}

	vote, err := h.ledger.GetVote(c.Request.Context(), user.ID, reportID)
	if err != nil {
		response.DatabaseError(c, "Failed to fetch vote")
		return
	}

	state := VoteStateResponse{ReportID: reportID}
	if vote != nil {
		state.Type = vote.Type
	}
	response.Success(c, state)
}

func parseReportID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Report ID must be a positive integer", "INVALID_REPORT_ID")
		return 0, false
	}
	return id, true
}
