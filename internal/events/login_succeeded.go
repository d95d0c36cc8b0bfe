package events

import "time"

// TopicLogins carries one record per successful mobile login, keyed by
// employee id. Consumed by the engagement pipeline.
const TopicLogins = "mobile.auth.login.v1"

type LoginSucceeded struct {
	EmployeeID  int       `json:"employee_id"`
	PhoneNumber string    `json:"phone_number"`
	At          time.Time `json:"at"`
}
