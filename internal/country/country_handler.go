package country

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

type Country struct {
	Name     string `json:"name"`
	FlagURL  string `json:"flag_url"`
	DialCode string `json:"dial_code"`
}

type ListResponse struct {
	Count   int       `json:"count"`
	Records []Country `json:"records"`
}

// available lists the markets the mobile app operates in. Extended by
// deployment, not by request.
var available = []Country{
	{Name: "Nigeria", FlagURL: "https://flagcdn.com/w320/ng.png", DialCode: "+234"},
	{Name: "Democratic Republic of Congo", FlagURL: "https://flagcdn.com/w320/cd.png", DialCode: "+243"},
	{Name: "Madagascar", FlagURL: "https://flagcdn.com/w320/mg.png", DialCode: "+261"},
	{Name: "Senegal", FlagURL: "https://flagcdn.com/w320/sn.png", DialCode: "+221"},
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) GetAvailableCountries(c *gin.Context) {
	response.JSON(c, http.StatusOK, ListResponse{
		Count:   len(available),
		Records: available,
	})
}
