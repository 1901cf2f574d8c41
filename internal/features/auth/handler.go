package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/opencivic/civicfix/internal/config"
	"github.com/opencivic/civicfix/internal/pkg/jwt"
	"github.com/opencivic/civicfix/internal/pkg/response"
	apperrors "github.com/opencivic/civicfix/pkg/errors"
)

// Handler handles auth-related HTTP requests
type Handler struct {
	repo   *Repository
	jwtCfg *jwt.Config
	cfg    *config.Config
}

// NewHandler creates a new auth handler
func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{
		repo:   repo,
		jwtCfg: jwt.DefaultConfig(cfg.JWTSecret, cfg.JWTExpireHours),
		cfg:    cfg,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 409 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		response.InternalServerError(c, "Failed to process password", "INTERNAL_ERROR")
		return
	}

	user := &User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Mobile:       req.Mobile,
		City:         req.City,
		Points:       0,
		PasswordHash: hash,
	}

	if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "An account with this email already exists", "EMAIL_TAKEN")
			return
		}
		response.DatabaseError(c, "Failed to create user")
		return
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, h.jwtCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token", "TOKEN_ERROR")
		return
	}

	response.Created(c, AuthResponse{User: user, AccessToken: token})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		response.DatabaseError(c, "Failed to look up user")
		return
	}
	if user == nil || !CheckPassword(user.PasswordHash, req.Password) {
		response.Unauthorized(c, "Invalid email or password", "INVALID_CREDENTIALS")
		return
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, h.jwtCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token", "TOKEN_ERROR")
		return
	}

	response.Success(c, AuthResponse{User: user, AccessToken: token})
}

// GoogleAuth godoc
// @Summary Sign in with a Google ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google ID token"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/google [post]
func (h *Handler) GoogleAuth(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	googleUser, err := VerifyGoogleToken(c.Request.Context(), req.GoogleIDToken, h.cfg.GoogleClientID)
	if err != nil {
		response.Unauthorized(c, "Invalid Google token", "INVALID_GOOGLE_TOKEN")
		return
	}

	user, err := h.repo.GetUserByGoogleID(c.Request.Context(), googleUser.UID)
	if err != nil {
		response.DatabaseError(c, "Failed to look up user")
		return
	}

	if user == nil {
		user = &User{
			Name:     googleUser.Name,
			Email:    strings.ToLower(googleUser.Email),
			GoogleID: googleUser.UID,
			Points:   0,
		}
		if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				response.Conflict(c, "An account with this email already exists", "EMAIL_TAKEN")
				return
			}
			response.DatabaseError(c, "Failed to create user")
			return
		}
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, h.jwtCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token", "TOKEN_ERROR")
		return
	}

	response.Success(c, AuthResponse{User: user, AccessToken: token})
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=User}
// @Router /users/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	response.Success(c, user)
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.SuccessResponse{data=User}
// @Router /users/me [put]
func (h *Handler) UpdateMe(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	updates := bson.M{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Mobile != "" {
		updates["mobile"] = req.Mobile
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update", "EMPTY_UPDATE")
		return
	}

	if err := h.repo.UpdateUser(c.Request.Context(), user.ID, updates); err != nil {
		response.DatabaseError(c, "Failed to update profile")
		return
	}

	updated, err := h.repo.GetUserByID(c.Request.Context(), user.ID.Hex())
	if err != nil {
		response.DatabaseError(c, "Failed to reload profile")
		return
	}

	response.Success(c, updated)
}

// SetDeviceToken godoc
// @Summary Register an FCM device token for push notifications
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeviceTokenRequest true "Device token"
// @Success 200 {object} response.SuccessResponse
// @Router /users/me/device-token [put]
func (h *Handler) SetDeviceToken(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req DeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := h.repo.SetDeviceToken(c.Request.Context(), user.ID, req.DeviceToken); err != nil {
		response.DatabaseError(c, "Failed to store device token")
		return
	}

	response.Success(c, gin.H{"registered": true})
}
