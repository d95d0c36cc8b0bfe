package task

import (
	"time"

	"github.com/baobabplus/application-agent-services/internal/erp"
)

// Account is a PAYG account surfaced as a follow-up task. Read-only
// from this service; segmentation and overdue counters are maintained
// upstream.
type Account struct {
	ID           int
	ExtID        string
	CreateDate   time.Time
	Client       erp.Many2One
	Segmentation erp.Many2One
	DaysOverdue  int
	Status       string
}

var accountFields = []string{
	"id", "account_ext_id", "create_date", "client_id",
	"account_segmentation_id", "nb_days_overdue", "account_status",
}

func accountFromRecord(r erp.Record) Account {
	return Account{
		ID:           r.Int("id"),
		ExtID:        r.String("account_ext_id"),
		CreateDate:   r.DateTime("create_date"),
		Client:       r.Many2One("client_id"),
		Segmentation: r.Many2One("account_segmentation_id"),
		DaysOverdue:  r.Int("nb_days_overdue"),
		Status:       r.String("account_status"),
	}
}
