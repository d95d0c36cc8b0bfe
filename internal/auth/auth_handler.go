package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	autherrors "github.com/baobabplus/application-agent-services/internal/auth/errors"
	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

func mapBindError(err error) error {
	return apperror.MapValidationError(err)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, mapBindError(err))
		return
	}

	result, err := h.service.SendOTP(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, mapBindError(err))
		return
	}

	result, err := h.service.VerifyOTP(c.Request.Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Refresh reads the refresh token from the Authorization header, not
// the body, matching the mobile client's session handling.
func (h *Handler) Refresh(c *gin.Context) {
	raw, ok := bearerToken(c)
	if !ok {
		response.FromError(c, autherrors.ErrInvalidRefreshToken)
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), raw)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *Handler) Logout(c *gin.Context) {
	raw, ok := bearerToken(c)
	if !ok {
		response.FromError(c, autherrors.ErrInvalidRefreshToken)
		return
	}

	if err := h.service.Logout(c.Request.Context(), raw); err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, LogoutResponse{Message: "User logged out successfully."})
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}
