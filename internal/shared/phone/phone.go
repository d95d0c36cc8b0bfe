package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
)

// Number is a parsed, normalized phone number.
type Number struct {
	E164    string // formatted number, e.g. +261340000000
	Country string // ISO region code, e.g. MG
}

// Parse validates a phone number with country code and normalizes it to
// E.164. A missing leading "+" is tolerated since mobile clients send
// raw digits.
func Parse(raw string) (Number, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" && !strings.HasPrefix(trimmed, "+") {
		trimmed = "+" + trimmed
	}

	parsed, err := phonenumbers.Parse(trimmed, "")
	if err != nil {
		return Number{}, apperror.Wrap(err, apperror.CodeValidationError,
			fmt.Sprintf("Invalid phone number: %s", raw), 400)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return Number{}, apperror.New(apperror.CodeValidationError,
			fmt.Sprintf("Invalid phone number: %s", raw), 400)
	}

	return Number{
		E164:    phonenumbers.Format(parsed, phonenumbers.E164),
		Country: phonenumbers.GetRegionCodeForNumber(parsed),
	}, nil
}
