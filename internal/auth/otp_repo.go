package auth

import (
	"context"
	"time"

	"github.com/baobabplus/application-agent-services/internal/erp"
)

// OTPRecord mirrors the sms.otp rows this service reads back.
type OTPRecord struct {
	ID         int
	EmployeeID int
	Active     bool
}

//go:generate mockgen -source=otp_repo.go -destination=mock/otp_repo_mock.go -package=mock
type OTPRepository interface {
	// LastCreateDate returns the creation time of the newest code for
	// the phone, active or not. Drives the resend throttle.
	LastCreateDate(ctx context.Context, phoneNumber string) (time.Time, bool, error)

	Create(ctx context.Context, phoneNumber, code string, employeeID int) error

	// Find locates the stored code regardless of active flag so a spent
	// code can be told apart from a never-issued one.
	Find(ctx context.Context, phoneNumber, code string) (OTPRecord, bool, error)

	// DeactivateAll retires every active code for the phone.
	DeactivateAll(ctx context.Context, phoneNumber string) error
}

type otpRepository struct {
	otps erp.Model
}

func NewOTPRepository(client *erp.Client) OTPRepository {
	return &otpRepository{otps: erp.NewModel(client, "sms.otp")}
}

// activeAny matches both active and archived rows; the upstream store
// hides archived records from plain searches.
var activeAny = []bool{true, false}

func (r *otpRepository) LastCreateDate(ctx context.Context, phoneNumber string) (time.Time, bool, error) {
	domain := erp.Where("phone_number", "=", phoneNumber).
		And("active", "in", activeAny)

	records, err := r.otps.Search(ctx, domain, []string{"id", "create_date"}, 0, 1, "create_date desc")
	if err != nil {
		return time.Time{}, false, err
	}
	if len(records) == 0 {
		return time.Time{}, false, nil
	}
	return records[0].DateTime("create_date"), true, nil
}

func (r *otpRepository) Create(ctx context.Context, phoneNumber, code string, employeeID int) error {
	_, err := r.otps.Create(ctx, map[string]any{
		"name":         code,
		"phone_number": phoneNumber,
		"res_id":       employeeID,
		"res_model":    "hr.employee",
	})
	return err
}

func (r *otpRepository) Find(ctx context.Context, phoneNumber, code string) (OTPRecord, bool, error) {
	domain := erp.Where("name", "=", code).
		And("phone_number", "=", phoneNumber).
		And("active", "in", activeAny)

	records, err := r.otps.Search(ctx, domain, []string{"id", "res_id", "active"}, 0, 1, "create_date desc")
	if err != nil {
		return OTPRecord{}, false, err
	}
	if len(records) == 0 {
		return OTPRecord{}, false, nil
	}

	rec := records[0]
	return OTPRecord{
		ID:         rec.Int("id"),
		EmployeeID: rec.Int("res_id"),
		Active:     rec.Bool("active"),
	}, true, nil
}

func (r *otpRepository) DeactivateAll(ctx context.Context, phoneNumber string) error {
	domain := erp.Where("phone_number", "=", phoneNumber).
		And("active", "=", true)

	records, err := r.otps.Search(ctx, domain, []string{"id"}, 0, -1, "")
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := r.otps.Write(ctx, rec.Int("id"), map[string]any{"active": false}); err != nil {
			return err
		}
	}
	return nil
}
