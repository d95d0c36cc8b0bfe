package screen

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/ui/homepage", h.GetHomepage)
	r.GET("/ui/homepage/tasks", h.GetHomepageTasks)
}
