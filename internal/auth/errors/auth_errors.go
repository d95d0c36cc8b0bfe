package autherrors

import (
	"fmt"
	"net/http"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
)

var (
	ErrOTPInvalid = apperror.New(
		apperror.CodeOTPInvalid,
		"The OTP provided is invalid",
		http.StatusBadRequest,
	)
	ErrOTPExpired = apperror.New(
		apperror.CodeOTPInvalid,
		"The OTP provided is expired",
		http.StatusBadRequest,
	)
	ErrOTPUsed = apperror.New(
		apperror.CodeOTPInvalid,
		"The OTP is already used",
		http.StatusBadRequest,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired refresh token",
		http.StatusUnauthorized,
	)
)

// ErrOTPThrottled tells the caller how long to wait before requesting
// a new code.
func ErrOTPThrottled(secondsLeft int) *apperror.AppError {
	return apperror.New(
		apperror.CodeOTPSpam,
		fmt.Sprintf("Please wait for %d seconds before generating a new OTP", secondsLeft),
		http.StatusBadRequest,
	)
}
