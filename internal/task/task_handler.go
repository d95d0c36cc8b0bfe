package task

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/baobabplus/application-agent-services/internal/middleware"
	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetSlowPayers(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		writeMissingContext(c)
		return
	}

	q := PageQuery{
		DayLate: c.Query("day_late"),
		Offset:  queryInt(c, "offset", 0),
		Limit:   queryInt(c, "limit", 10),
		Order:   c.Query("order"),
	}

	page, err := h.service.SlowPayers(c.Request.Context(), ectx, q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

func (h *Handler) GetHypercare(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		writeMissingContext(c)
		return
	}

	q := PageQuery{
		Offset: queryInt(c, "offset", 0),
		Limit:  queryInt(c, "limit", 10),
		Order:  c.Query("order"),
	}

	page, err := h.service.Hypercare(c.Request.Context(), ectx, q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func writeMissingContext(c *gin.Context) {
	response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing employee context")
}
