package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public auth endpoints. sendLimiter guards
// the OTP send endpoint against SMS abuse.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, sendLimiter gin.HandlerFunc) {
	group := r.Group("/auth")
	if sendLimiter != nil {
		group.POST("/otp/send", sendLimiter, h.SendOTP)
	} else {
		group.POST("/otp/send", h.SendOTP)
	}
	group.POST("/otp/verify", h.VerifyOTP)
	group.POST("/refresh", h.Refresh)
	group.POST("/logout", h.Logout)
}
