package taskerrors

import (
	"net/http"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
)

var ErrInvalidDayLateFilter = apperror.New(
	apperror.CodeValidationError,
	"Invalid day_late filter. Use 'new' or 'urgent'.",
	http.StatusBadRequest,
)
