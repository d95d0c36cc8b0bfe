package prospect

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

func (h *Handler) GetProspects(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing employee context")
		return
	}

	q := Query{
		Offset: queryInt(c, "offset", 0),
		Limit:  queryInt(c, "limit", defaultLimit),
		Order:  c.Query("order"),
	}

	result, err := h.service.List(c.Request.Context(), ectx, q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
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
