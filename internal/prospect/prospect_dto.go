package prospect

import "github.com/baobabplus/application-agent-services/internal/shared/response"

type Record struct {
	ID         int    `json:"id"`
	ExtID      string `json:"prospect_ext_id"`
	CreateDate string `json:"create_date"`
	State      string `json:"state"`
}

type ListResponse struct {
	Pagination response.Pagination `json:"pagination"`
	Records    []Record            `json:"records"`
}
