package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appidentity "github.com/opalessence/backend/internal/application/identity"
	"github.com/opalessence/backend/internal/interfaces/http/dto"
	"github.com/opalessence/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and account recovery
type AuthHandler struct {
	BaseHandler
	identity *appidentity.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identity *appidentity.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(logger), identity: identity}
}

// Register creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.identity.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewUserResponse(user))
}

// Login authenticates and issues an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.identity.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.LoginResponse{
		Token: result.Token,
		User:  dto.NewUserResponse(result.User),
	})
}

// VerifyEmail confirms a pending verification token
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.identity.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Email verified"})
}

// ForgotPassword requests a password reset email. The response does not
// reveal whether the account exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.identity.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "If the account exists, a reset email has been sent"})
}

// ResetPassword sets a new password from a reset token
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.identity.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Password updated"})
}

// Me returns the authenticated user's account
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Not authenticated"))
		return
	}

	user, err := h.identity.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewUserResponse(user))
}
