package employeeerrors

import (
	"net/http"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotEntitled = apperror.New(
		apperror.CodeForbidden,
		"Employee is not allowed to use the agent application",
		http.StatusForbidden,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidationError,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
