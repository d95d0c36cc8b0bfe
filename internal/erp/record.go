package erp

import "time"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Record is one row returned by search_read. The record store encodes
// null as boolean false, so every accessor tolerates that shape.
type Record map[string]any

func (r Record) Int(field string) int {
	switch v := r[field].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func (r Record) Float(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (r Record) String(field string) string {
	if v, ok := r[field].(string); ok {
		return v
	}
	return ""
}

func (r Record) Bool(field string) bool {
	if v, ok := r[field].(bool); ok {
		return v
	}
	return false
}

// Date parses a date field ("2006-01-02"). Zero time when absent.
func (r Record) Date(field string) time.Time {
	if v, ok := r[field].(string); ok {
		if t, err := time.Parse(dateLayout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DateTime parses a datetime field ("2006-01-02 15:04:05") as UTC.
func (r Record) DateTime(field string) time.Time {
	if v, ok := r[field].(string); ok {
		if t, err := time.ParseInLocation(dateTimeLayout, v, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Many2One is a relational reference serialized as [id, display_name].
type Many2One struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
}

// Many2One decodes a relational field. The zero value covers both null
// (false on the wire) and malformed pairs.
func (r Record) Many2One(field string) Many2One {
	pair, ok := r[field].([]any)
	if !ok || len(pair) != 2 {
		return Many2One{}
	}
	ref := Many2One{}
	if id, ok := pair[0].(float64); ok {
		ref.ID = int(id)
	}
	if name, ok := pair[1].(string); ok {
		ref.DisplayName = name
	}
	return ref
}
