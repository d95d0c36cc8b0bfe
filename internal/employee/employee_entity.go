package employee

import "github.com/baobabplus/application-agent-services/internal/erp"

// Employee is the slice of the hr.employee record this service reads.
type Employee struct {
	ID            int
	Name          string
	MobilePhone   string
	Job           erp.Many2One
	Company       erp.Many2One
	CanUseAgent   bool
	PictureBase64 string
}

// Context carries the employee scope every report, task and screen call
// operates under. It is built once from the access-token claims.
type Context struct {
	EmployeeID int
	JobID      int
	CompanyID  int
}

var employeeFields = []string{
	"id", "name", "mobile_phone", "generic_job_id", "company_id",
	"can_use_application_agent", "image_128",
}

func fromRecord(r erp.Record) Employee {
	return Employee{
		ID:            r.Int("id"),
		Name:          r.String("name"),
		MobilePhone:   r.String("mobile_phone"),
		Job:           r.Many2One("generic_job_id"),
		Company:       r.Many2One("company_id"),
		CanUseAgent:   r.Bool("can_use_application_agent"),
		PictureBase64: r.String("image_128"),
	}
}
