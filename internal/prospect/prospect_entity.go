package prospect

import (
	"time"

	"github.com/baobabplus/application-agent-services/internal/erp"
)

// Prospect is a potential customer assigned to an agent. The state
// field is a plain string upstream but may come back as false when the
// workflow has not started; Record.String already folds that to "".
type Prospect struct {
	ID         int
	ExtID      string
	CreateDate time.Time
	State      string
}

var prospectFields = []string{"id", "prospect_ext_id", "create_date", "state"}

func fromRecord(r erp.Record) Prospect {
	return Prospect{
		ID:         r.Int("id"),
		ExtID:      r.String("prospect_ext_id"),
		CreateDate: r.DateTime("create_date"),
		State:      r.String("state"),
	}
}
