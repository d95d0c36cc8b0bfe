package erp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOrder_Accepts(t *testing.T) {
	cols := OrderColumns("event_date")

	for _, order := range []string{"id asc", "create_date desc", "event_date desc", "Event_Date ASC"} {
		got, err := ValidateOrder(order, cols)
		assert.NoError(t, err, order)
		assert.Equal(t, order, got)
	}
}

func TestValidateOrder_Rejects(t *testing.T) {
	cols := OrderColumns()

	for _, order := range []string{
		"value desc",             // not in allow-list
		"id ascending",           // bad direction
		"id asc; drop table foo", // injection attempt
		"",
	} {
		_, err := ValidateOrder(order, cols)
		assert.Error(t, err, order)
	}
}

func TestOrderColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "create_date"}, OrderColumns())
	assert.Equal(t, []string{"id", "create_date", "event_date"}, OrderColumns("event_date"))
}
