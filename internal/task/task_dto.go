package task

import (
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CollapsedCard struct {
	Icon           string `json:"icon"`
	IconColor      string `json:"icon_color"`
	Rows           []Row  `json:"rows"`
	AlertText      string `json:"alert_text"`
	AlertTextColor string `json:"alert_text_color"`
}

type ExpandedCard struct {
	Rows []Row `json:"rows"`
}

type Card struct {
	ID        string        `json:"id"`
	Collapsed CollapsedCard `json:"collapsed"`
	Expanded  ExpandedCard  `json:"expanded"`
}

type Filter struct {
	Value string `json:"value"`
	Param string `json:"param"`
	Label string `json:"label"`
}

// Page is one task-list block as rendered by the mobile dashboard.
// TotalValue mirrors the unfiltered account count so the header badge
// does not change while paging.
type Page struct {
	Icon       string              `json:"icon"`
	TotalValue float64             `json:"total_value"`
	Title      string              `json:"title"`
	Pagination response.Pagination `json:"pagination"`
	Filters    []Filter            `json:"filters"`
	Cards      []Card              `json:"cards"`
}

// Counts feeds the homepage task metadata block.
type Counts struct {
	SlowPayers int `json:"slow_payers"`
	Hypercare  int `json:"hypercare"`
}
