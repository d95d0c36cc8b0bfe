package erp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Accessors(t *testing.T) {
	r := Record{
		"id":         float64(3),
		"value":      250.5,
		"name":       "RPP",
		"active":     true,
		"event_date": "2024-09-25",
		"create_d":   "2024-09-14 06:03:51",
	}

	assert.Equal(t, 3, r.Int("id"))
	assert.Equal(t, 250.5, r.Float("value"))
	assert.Equal(t, "RPP", r.String("name"))
	assert.True(t, r.Bool("active"))
	assert.Equal(t, time.Date(2024, 9, 25, 0, 0, 0, 0, time.UTC), r.Date("event_date"))
	assert.Equal(t, time.Date(2024, 9, 14, 6, 3, 51, 0, time.UTC), r.DateTime("create_d"))
}

func TestRecord_NullAsFalse(t *testing.T) {
	// the record store sends boolean false for null fields
	r := Record{
		"name":       false,
		"client_id":  false,
		"event_date": false,
	}
	assert.Equal(t, "", r.String("name"))
	assert.Equal(t, Many2One{}, r.Many2One("client_id"))
	assert.True(t, r.Date("event_date").IsZero())
	assert.Equal(t, 0, r.Int("missing"))
}

func TestRecord_Many2One(t *testing.T) {
	r := Record{"event_type_id": []any{float64(27), "RPP"}}
	ref := r.Many2One("event_type_id")
	assert.Equal(t, 27, ref.ID)
	assert.Equal(t, "RPP", ref.DisplayName)
}

func TestDomain_Args(t *testing.T) {
	d := Where("status", "=", "done").And("id", "in", []int{1, 2})
	args := d.args()
	assert.Len(t, args, 2)
	assert.Equal(t, []any{"status", "=", "done"}, args[0])
}
