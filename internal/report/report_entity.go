package report

import (
	"time"

	"github.com/baobabplus/application-agent-services/internal/erp"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusToValidate Status = "to_validate"
	StatusDone       Status = "done"
)

type Period string

const (
	PeriodCurrent  Period = "current"
	PeriodPrevious Period = "previous"
)

// StatusForPeriod maps the mobile period selector onto the report
// lifecycle: "current" is the active report, "previous" the last
// closed one. to_validate reports are invisible to the mobile summary.
func StatusForPeriod(p Period) (Status, bool) {
	switch p {
	case PeriodCurrent:
		return StatusInProgress, true
	case PeriodPrevious:
		return StatusDone, true
	}
	return "", false
}

// IncentiveReport identifies one payout period for a job/company scope.
// Reports are created and transitioned upstream; this service only
// reads and classifies them.
type IncentiveReport struct {
	ID        int
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Job       erp.Many2One
	Company   erp.Many2One
	Status    Status
}

// IncentiveEvent is a single bonus-worthy occurrence, immutable from
// this service's perspective.
type IncentiveEvent struct {
	ID        int
	EventDate time.Time
	Value     float64
	EventType erp.Many2One // display name is the raw event-type code
	Currency  erp.Many2One
	Account   erp.Many2One
	Report    erp.Many2One
	Status    string
}

var reportFields = []string{
	"id", "name", "start_date", "end_date", "generic_job_id", "company_id", "status",
}

var eventFields = []string{
	"id", "event_date", "value", "event_type_id", "currency_id",
	"account_id", "incentive_report_id", "event_status",
}

// eligibleEventStatuses are the only statuses that count towards
// aggregation.
var eligibleEventStatuses = []string{"validated", "calculated"}

func reportFromRecord(r erp.Record) IncentiveReport {
	return IncentiveReport{
		ID:        r.Int("id"),
		Name:      r.String("name"),
		StartDate: r.Date("start_date"),
		EndDate:   r.Date("end_date"),
		Job:       r.Many2One("generic_job_id"),
		Company:   r.Many2One("company_id"),
		Status:    Status(r.String("status")),
	}
}

func eventFromRecord(r erp.Record) IncentiveEvent {
	return IncentiveEvent{
		ID:        r.Int("id"),
		EventDate: r.Date("event_date"),
		Value:     r.Float("value"),
		EventType: r.Many2One("event_type_id"),
		Currency:  r.Many2One("currency_id"),
		Account:   r.Many2One("account_id"),
		Report:    r.Many2One("incentive_report_id"),
		Status:    r.String("event_status"),
	}
}
