package report

import (
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

// ReportContext is the slim report header returned next to every
// summary. A zero ID means "no report for the requested period".
type ReportContext struct {
	ID        int    `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

type CategoryValue struct {
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Color string  `json:"color"`
	Value float64 `json:"value"`
}

type CategorySummary struct {
	Categories []CategoryValue `json:"event_categories"`
	TotalValue float64         `json:"total_value"`
	Currency   string          `json:"currency"`
}

// SummaryResponse is the canonical (report_context, summary) tuple.
type SummaryResponse struct {
	Report  ReportContext   `json:"report"`
	Summary CategorySummary `json:"summary"`
}

type SimpleReport struct {
	ID        int    `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Action    string `json:"action"`
}

type ReportListResponse struct {
	Count   int            `json:"count"`
	Records []SimpleReport `json:"records"`
}

type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CollapsedCard struct {
	Icon       string  `json:"icon"`
	IconColor  string  `json:"icon_color"`
	Title      string  `json:"title"`
	Value      float64 `json:"value"`
	Currency   string  `json:"currency"`
	ValueColor string  `json:"value_color"`
	Subtitle   string  `json:"subtitle"`
}

type ExpandedCard struct {
	Rows []Row `json:"rows"`
}

// Card pairs a collapsed summary with its expandable detail rows. The
// id is derived from the source event so re-renders stay stable.
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

type DetailPage struct {
	Report     ReportContext       `json:"report"`
	Pagination response.Pagination `json:"pagination"`
	Filters    []Filter            `json:"filters"`
	Cards      []Card              `json:"cards"`
}

type BonusRecord struct {
	ID        int     `json:"id"`
	EventDate string  `json:"event_date"`
	Value     float64 `json:"value"`
	EventType string  `json:"event_type"`
	Category  string  `json:"category"`
	Account   string  `json:"account"`
	Currency  string  `json:"currency"`
}

type BonusPage struct {
	Pagination response.Pagination `json:"pagination"`
	Records    []BonusRecord       `json:"records"`
}

// value colors for signed amounts
const (
	valueColorPositive = "#2E7D32"
	valueColorNegative = "#C62828"
)

func valueColor(v float64) string {
	if v < 0 {
		return valueColorNegative
	}
	return valueColorPositive
}
