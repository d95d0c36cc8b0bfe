package screen

import (
	"net/http"

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

func (h *Handler) GetHomepage(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing employee context")
		return
	}

	payload, err := h.service.ComposeHomeSummary(c.Request.Context(), ectx)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payload)
}

func (h *Handler) GetHomepageTasks(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing employee context")
		return
	}

	block, err := h.service.ComposeTasks(c.Request.Context(), ectx)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, block)
}
