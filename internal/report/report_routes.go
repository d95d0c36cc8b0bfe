package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/employee/report", h.GetReports)
	r.GET("/employee/report/:id/summary", h.GetSummary)
	r.GET("/employee/report/:id/details", h.GetDetails)
	r.GET("/employee/bonuses", h.GetBonuses)
}
