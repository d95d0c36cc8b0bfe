package apperror

const (
	// Client errors (4xx)
	CodeValidationError = "validation_error"
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeOTPInvalid      = "otp_invalid"
	CodeOTPSpam         = "otp_spam"

	// Server errors (5xx)
	CodeInternalError = "internal_server_error"
	CodeUpstreamError = "upstream_error"
)
