package incentives

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencivic/civicfix/internal/features/auth"
	"github.com/opencivic/civicfix/internal/pkg/response"
	apperrors "github.com/opencivic/civicfix/pkg/errors"
)

// Handler handles the incentive catalog and redemptions
type Handler struct {
	repo  *Repository
	users *auth.Repository
}

func NewHandler(repo *Repository, users *auth.Repository) *Handler {
	return &Handler{repo: repo, users: users}
}

// List godoc
// @Summary List redeemable incentives
// @Tags incentives
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /incentives [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to fetch incentives")
		return
	}
	response.Success(c, result)
}

// Redeem godoc
// @Summary Redeem an incentive with earned points
// @Tags incentives
// @Produce json
// @Param id path string true "Incentive ID"
// @Success 201 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /incentives/{id}/redeem [post]
func (h *Handler) Redeem(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	incentiveID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid incentive ID", "INVALID_INCENTIVE_ID")
		return
	}

	incentive, err := h.repo.GetByID(c.Request.Context(), incentiveID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Incentive not found", "INCENTIVE_NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to fetch incentive")
		return
	}
	if !incentive.Active {
		response.BadRequest(c, "This incentive is no longer available", "INCENTIVE_INACTIVE")
		return
	}

	// Points are deducted with a balance guard before the voucher is
	// minted, so a balance can never go negative.
	if err := h.users.DeductPoints(c.Request.Context(), user.ID, incentive.Cost); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientPoints) {
			response.ValidationError(c, "Not enough points for this incentive", "INSUFFICIENT_POINTS")
			return
		}
		response.DatabaseError(c, "Failed to deduct points")
		return
	}

	now := time.Now()
	code, payload, validUntil := NewVoucher(incentive, now)

	redemption := &Redemption{
		UserID:      user.ID,
		IncentiveID: incentive.ID,
		Title:       incentive.Title,
		VoucherCode: code,
		QRPayload:   payload,
		PointsSpent: incentive.Cost,
		ValidUntil:  validUntil,
	}

	if err := h.repo.CreateRedemption(c.Request.Context(), redemption); err != nil {
		// Points are already gone; refund so the user is not charged
		// for a voucher that was never issued.
		_ = h.users.AwardPoints(c.Request.Context(), user.ID, incentive.Cost)
		response.DatabaseError(c, "Failed to issue voucher")
		return
	}

	response.Created(c, redemption)
}

// Redemptions godoc
// @Summary List the caller's redemption history
// @Tags incentives
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Security BearerAuth
// @Router /incentives/redemptions [get]
func (h *Handler) Redemptions(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.repo.ListRedemptionsByUser(c.Request.Context(), user.ID)
	if err != nil {
		response.DatabaseError(c, "Failed to fetch redemptions")
		return
	}
	response.Success(c, result)
}
