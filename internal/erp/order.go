package erp

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
)

// OrderColumns returns the base sortable columns plus any
// context-specific extras.
func OrderColumns(extra ...string) []string {
	cols := []string{"id", "create_date"}
	return append(cols, extra...)
}

// ValidateOrder checks an order string against the allow-list before it
// is passed through to the record store. Format: "<column> asc|desc".
func ValidateOrder(order string, columns []string) (string, error) {
	for _, col := range columns {
		if col == "" {
			return "", apperror.New(apperror.CodeInternalError,
				"empty column in order allow-list", http.StatusInternalServerError)
		}
	}
	pattern := fmt.Sprintf(`^(?i)(%s) (asc|desc)$`, strings.Join(columns, "|"))
	matched, err := regexp.MatchString(pattern, order)
	if err != nil || !matched {
		return "", apperror.New(apperror.CodeValidationError,
			"Invalid order format. Use '<column> asc' or '<column> desc'.", http.StatusBadRequest)
	}
	return order, nil
}
