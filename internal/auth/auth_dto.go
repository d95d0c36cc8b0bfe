package auth

type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// SendOTPResponse echoes the generated code outside production so
// testers can log in without a live SMS gateway.
type SendOTPResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTP         string `json:"otp" binding:"required,len=6"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}
