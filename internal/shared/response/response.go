package response

import (
	"github.com/gin-gonic/gin"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
)

// ErrorEnvelope is the uniform failure shape for every endpoint.
type ErrorEnvelope struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// JSON writes a success payload as-is. The mobile contract exposes the
// view models directly, without a wrapper envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, errorCode string, description string) {
	c.JSON(status, ErrorEnvelope{
		Error:            errorCode,
		ErrorDescription: description,
	})
}

// FromError resolves any service error to the wire envelope.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}

type Pagination struct {
	Offset         int `json:"offset"`
	Limit          int `json:"limit"`
	CurrentRecords int `json:"current_records"`
	TotalRecords   int `json:"total_records"`
}

// NewPagination fills the bookkeeping block for a returned page.
// CurrentRecords is the count actually returned, TotalRecords the full
// matching-set count from the separate count query.
func NewPagination(offset, limit, current, total int) Pagination {
	return Pagination{
		Offset:         offset,
		Limit:          limit,
		CurrentRecords: current,
		TotalRecords:   total,
	}
}
