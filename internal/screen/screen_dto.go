package screen

import "github.com/baobabplus/application-agent-services/internal/report"

// TaskMeta is the static homepage entry for one task list: label,
// icon and badge count plus the path the app should fetch next.
type TaskMeta struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Count  int    `json:"count"`
	Action string `json:"action"`
}

type TasksBlock struct {
	Items []TaskMeta `json:"items"`
}

// HomePayload is the composed homepage: the current-period earnings
// summary plus the task-list metadata.
type HomePayload struct {
	Summary report.SummaryResponse `json:"summary"`
	Tasks   TasksBlock             `json:"tasks"`
}
