package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/employee/tasks/slow-payers", h.GetSlowPayers)
	r.GET("/employee/tasks/hypercare", h.GetHypercare)
}
