package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherrors "github.com/baobabplus/application-agent-services/internal/auth/errors"
	"github.com/baobabplus/application-agent-services/internal/employee"
	"github.com/baobabplus/application-agent-services/internal/erp"
)

const testPhone = "+261340000001"

type fakeEmployeeRepo struct {
	findByPhoneFn     func(ctx context.Context, e164 string) (employee.Employee, error)
	findByIDFn        func(ctx context.Context, id int) (employee.Employee, error)
	setRefreshFn      func(ctx context.Context, id int, token string) error
	clearRefreshCalls []int
}

func (f *fakeEmployeeRepo) FindByPhone(ctx context.Context, e164 string) (employee.Employee, error) {
	return f.findByPhoneFn(ctx, e164)
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id int) (employee.Employee, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) SetRefreshToken(ctx context.Context, id int, token string) error {
	if f.setRefreshFn != nil {
		return f.setRefreshFn(ctx, id, token)
	}
	return nil
}

func (f *fakeEmployeeRepo) ClearRefreshToken(_ context.Context, id int) error {
	f.clearRefreshCalls = append(f.clearRefreshCalls, id)
	return nil
}

type fakeOTPRepo struct {
	lastCreateFn    func(ctx context.Context, phone string) (time.Time, bool, error)
	createFn        func(ctx context.Context, phone, code string, employeeID int) error
	findFn          func(ctx context.Context, phone, code string) (OTPRecord, bool, error)
	deactivateCalls int
}

func (f *fakeOTPRepo) LastCreateDate(ctx context.Context, phone string) (time.Time, bool, error) {
	if f.lastCreateFn != nil {
		return f.lastCreateFn(ctx, phone)
	}
	return time.Time{}, false, nil
}

func (f *fakeOTPRepo) Create(ctx context.Context, phone, code string, employeeID int) error {
	if f.createFn != nil {
		return f.createFn(ctx, phone, code, employeeID)
	}
	return nil
}

func (f *fakeOTPRepo) Find(ctx context.Context, phone, code string) (OTPRecord, bool, error) {
	if f.findFn != nil {
		return f.findFn(ctx, phone, code)
	}
	return OTPRecord{}, false, nil
}

func (f *fakeOTPRepo) DeactivateAll(_ context.Context, _ string) error {
	f.deactivateCalls++
	return nil
}

type fakePublisher struct {
	employeeIDs []int
}

func (f *fakePublisher) LoginSucceeded(_ context.Context, employeeID int, _ string) {
	f.employeeIDs = append(f.employeeIDs, employeeID)
}

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func testIssuer() *TokenIssuer {
	// real clock: token parsing checks exp against time.Now
	return NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, 30*24*time.Hour)
}

func testOpts() Options {
	return Options{
		OTPSecret:      "base-secret",
		OTPInterval:    30,
		OTPValidWindow: 1,
		Prod:           false,
		Now:            func() time.Time { return fixedNow },
	}
}

func entitledEmployee() employee.Employee {
	return employee.Employee{
		ID:          7,
		Name:        "Agent",
		MobilePhone: testPhone,
		Job:         erp.Many2One{ID: 3},
		Company:     erp.Many2One{ID: 2},
		CanUseAgent: true,
	}
}

func TestSendOTP(t *testing.T) {
	var createdCode string
	employees := &fakeEmployeeRepo{
		findByPhoneFn: func(_ context.Context, e164 string) (employee.Employee, error) {
			assert.Equal(t, testPhone, e164)
			return entitledEmployee(), nil
		},
	}
	otps := &fakeOTPRepo{
		createFn: func(_ context.Context, phone, code string, employeeID int) error {
			assert.Equal(t, testPhone, phone)
			assert.Equal(t, 7, employeeID)
			createdCode = code
			return nil
		},
	}
	svc := NewService(employees, otps, testIssuer(), nil, testOpts())

	got, err := svc.SendOTP(context.Background(), testPhone)
	require.NoError(t, err)

	assert.Equal(t, "OTP Sent to "+testPhone, got.Message)
	require.Len(t, createdCode, 6)
	// outside production the code is echoed for testing
	assert.Equal(t, createdCode, got.OTP)
}

func TestSendOTPProductionHidesCode(t *testing.T) {
	employees := &fakeEmployeeRepo{
		findByPhoneFn: func(_ context.Context, _ string) (employee.Employee, error) {
			return entitledEmployee(), nil
		},
	}
	opts := testOpts()
	opts.Prod = true
	svc := NewService(employees, &fakeOTPRepo{}, testIssuer(), nil, opts)

	got, err := svc.SendOTP(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Empty(t, got.OTP)
}

func TestSendOTPNotEntitled(t *testing.T) {
	employees := &fakeEmployeeRepo{
		findByPhoneFn: func(_ context.Context, _ string) (employee.Employee, error) {
			emp := entitledEmployee()
			emp.CanUseAgent = false
			return emp, nil
		},
	}
	svc := NewService(employees, &fakeOTPRepo{}, testIssuer(), nil, testOpts())

	_, err := svc.SendOTP(context.Background(), testPhone)
	assert.Error(t, err)
}

func TestSendOTPThrottled(t *testing.T) {
	employees := &fakeEmployeeRepo{
		findByPhoneFn: func(_ context.Context, _ string) (employee.Employee, error) {
			return entitledEmployee(), nil
		},
	}
	otps := &fakeOTPRepo{
		lastCreateFn: func(_ context.Context, _ string) (time.Time, bool, error) {
			return fixedNow.Add(-10 * time.Second), true, nil
		},
	}
	svc := NewService(employees, otps, testIssuer(), nil, testOpts())

	_, err := svc.SendOTP(context.Background(), testPhone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "20 seconds")
}

func TestVerifyOTP(t *testing.T) {
	secret := DeriveSecret("base-secret", testPhone)
	code, err := GenerateCode(secret, fixedNow, 30)
	require.NoError(t, err)

	var storedRefresh string
	employees := &fakeEmployeeRepo{
		findByIDFn: func(_ context.Context, id int) (employee.Employee, error) {
			assert.Equal(t, 7, id)
			return entitledEmployee(), nil
		},
		setRefreshFn: func(_ context.Context, id int, token string) error {
			assert.Equal(t, 7, id)
			storedRefresh = token
			return nil
		},
	}
	otps := &fakeOTPRepo{
		findFn: func(_ context.Context, phone, c string) (OTPRecord, bool, error) {
			assert.Equal(t, code, c)
			return OTPRecord{ID: 1, EmployeeID: 7, Active: true}, true, nil
		},
	}
	publisher := &fakePublisher{}
	svc := NewService(employees, otps, testIssuer(), publisher, testOpts())

	got, err := svc.VerifyOTP(context.Background(), testPhone, code)
	require.NoError(t, err)

	assert.NotEmpty(t, got.AccessToken)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Equal(t, storedRefresh, got.RefreshToken)
	assert.Equal(t, 1, otps.deactivateCalls)
	assert.Equal(t, []int{7}, publisher.employeeIDs)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	otps := &fakeOTPRepo{}
	svc := NewService(&fakeEmployeeRepo{}, otps, testIssuer(), nil, testOpts())

	_, err := svc.VerifyOTP(context.Background(), testPhone, "000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, autherrors.ErrOTPExpired))
	assert.Equal(t, 1, otps.deactivateCalls)
}

func TestVerifyOTPAlreadyUsed(t *testing.T) {
	secret := DeriveSecret("base-secret", testPhone)
	code, err := GenerateCode(secret, fixedNow, 30)
	require.NoError(t, err)

	otps := &fakeOTPRepo{
		findFn: func(_ context.Context, _, _ string) (OTPRecord, bool, error) {
			return OTPRecord{ID: 1, EmployeeID: 7, Active: false}, true, nil
		},
	}
	svc := NewService(&fakeEmployeeRepo{}, otps, testIssuer(), nil, testOpts())

	_, err = svc.VerifyOTP(context.Background(), testPhone, code)
	assert.True(t, errors.Is(err, autherrors.ErrOTPUsed))
}

func TestRefreshRotatesTokens(t *testing.T) {
	issuer := testIssuer()
	refresh, err := issuer.IssueRefresh(7)
	require.NoError(t, err)

	employees := &fakeEmployeeRepo{
		findByIDFn: func(_ context.Context, id int) (employee.Employee, error) {
			assert.Equal(t, 7, id)
			return entitledEmployee(), nil
		},
	}
	svc := NewService(employees, &fakeOTPRepo{}, issuer, nil, testOpts())

	got, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)
	assert.NotEmpty(t, got.RefreshToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewService(&fakeEmployeeRepo{}, &fakeOTPRepo{}, testIssuer(), nil, testOpts())

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.True(t, errors.Is(err, autherrors.ErrInvalidRefreshToken))
}

func TestLogout(t *testing.T) {
	issuer := testIssuer()
	refresh, err := issuer.IssueRefresh(7)
	require.NoError(t, err)

	employees := &fakeEmployeeRepo{}
	svc := NewService(employees, &fakeOTPRepo{}, issuer, nil, testOpts())

	require.NoError(t, svc.Logout(context.Background(), refresh))
	assert.Equal(t, []int{7}, employees.clearRefreshCalls)
}
