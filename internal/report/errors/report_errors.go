package reporterrors

import (
	"net/http"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidationError,
		"Invalid period. Use 'current' or 'previous'.",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeValidationError,
		"Unknown category filter",
		http.StatusBadRequest,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeValidationError,
		"Invalid report ID",
		http.StatusBadRequest,
	)
)
