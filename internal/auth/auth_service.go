package auth

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	autherrors "github.com/baobabplus/application-agent-services/internal/auth/errors"
	"github.com/baobabplus/application-agent-services/internal/employee"
	employeeerrors "github.com/baobabplus/application-agent-services/internal/employee/errors"
	"github.com/baobabplus/application-agent-services/internal/shared/phone"
)

// EventPublisher receives successful-login notifications. Publishing
// is best-effort; implementations must not fail the login.
type EventPublisher interface {
	LoginSucceeded(ctx context.Context, employeeID int, phoneNumber string)
}

// Options carries the OTP parameters from configuration. Prod
// suppresses the code echo in the send response.
type Options struct {
	OTPSecret      string
	OTPInterval    int
	OTPValidWindow int
	Prod           bool
	Now            func() time.Time
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// SendOTP generates a time-based code for an entitled employee and
	// records it upstream, which triggers the SMS delivery.
	SendOTP(ctx context.Context, phoneNumber string) (SendOTPResponse, error)

	// VerifyOTP exchanges a valid code for a token pair. The code is
	// single-use: all active codes for the phone are retired.
	VerifyOTP(ctx context.Context, phoneNumber, code string) (TokenResponse, error)

	// Refresh rotates the token pair. Concurrent refreshes race with
	// last-write-wins semantics on the stored refresh token.
	Refresh(ctx context.Context, rawRefresh string) (TokenResponse, error)

	// Logout invalidates the stored refresh token.
	Logout(ctx context.Context, rawRefresh string) error
}

type service struct {
	employees employee.Repository
	otps      OTPRepository
	issuer    *TokenIssuer
	publisher EventPublisher
	opts      Options
}

func NewService(employees employee.Repository, otps OTPRepository, issuer *TokenIssuer, publisher EventPublisher, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		employees: employees,
		otps:      otps,
		issuer:    issuer,
		publisher: publisher,
		opts:      opts,
	}
}

func (s *service) SendOTP(ctx context.Context, phoneNumber string) (SendOTPResponse, error) {
	num, err := phone.Parse(phoneNumber)
	if err != nil {
		return SendOTPResponse{}, err
	}

	emp, err := s.employees.FindByPhone(ctx, num.E164)
	if err != nil {
		return SendOTPResponse{}, err
	}
	if !emp.CanUseAgent {
		return SendOTPResponse{}, employeeerrors.ErrEmployeeNotEntitled
	}

	if err := s.checkThrottle(ctx, num.E164); err != nil {
		return SendOTPResponse{}, err
	}

	secret := DeriveSecret(s.opts.OTPSecret, num.E164)
	code, err := GenerateCode(secret, s.opts.Now(), s.opts.OTPInterval)
	if err != nil {
		return SendOTPResponse{}, err
	}

	if err := s.otps.Create(ctx, num.E164, code, emp.ID); err != nil {
		return SendOTPResponse{}, err
	}

	resp := SendOTPResponse{Message: fmt.Sprintf("OTP Sent to %s", num.E164)}
	if !s.opts.Prod {
		resp.OTP = code
	}
	return resp, nil
}

func (s *service) checkThrottle(ctx context.Context, e164 string) error {
	last, found, err := s.otps.LastCreateDate(ctx, e164)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	elapsed := s.opts.Now().Sub(last)
	interval := time.Duration(s.opts.OTPInterval) * time.Second
	if elapsed < interval {
		return autherrors.ErrOTPThrottled(int((interval - elapsed).Seconds()))
	}
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, phoneNumber, code string) (TokenResponse, error) {
	num, err := phone.Parse(phoneNumber)
	if err != nil {
		return TokenResponse{}, err
	}

	secret := DeriveSecret(s.opts.OTPSecret, num.E164)
	if !ValidateCode(secret, code, s.opts.Now(), s.opts.OTPInterval, s.opts.OTPValidWindow) {
		// an expired code can never be retried, retire anything pending
		if derr := s.otps.DeactivateAll(ctx, num.E164); derr != nil {
			zap.L().Warn("otp cleanup failed", zap.Error(derr))
		}
		return TokenResponse{}, autherrors.ErrOTPExpired
	}

	rec, found, err := s.otps.Find(ctx, num.E164, code)
	if err != nil {
		return TokenResponse{}, err
	}
	if !found {
		return TokenResponse{}, autherrors.ErrOTPInvalid
	}
	if !rec.Active {
		return TokenResponse{}, autherrors.ErrOTPUsed
	}

	if err := s.otps.DeactivateAll(ctx, num.E164); err != nil {
		return TokenResponse{}, err
	}

	emp, err := s.employees.FindByID(ctx, rec.EmployeeID)
	if err != nil {
		return TokenResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, emp)
	if err != nil {
		return TokenResponse{}, err
	}

	if s.publisher != nil {
		s.publisher.LoginSucceeded(ctx, emp.ID, num.E164)
	}
	return tokens, nil
}

func (s *service) Refresh(ctx context.Context, rawRefresh string) (TokenResponse, error) {
	employeeID, err := s.issuer.ParseRefresh(rawRefresh)
	if err != nil {
		return TokenResponse{}, err
	}

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	return s.issueTokens(ctx, emp)
}

func (s *service) Logout(ctx context.Context, rawRefresh string) error {
	employeeID, err := s.issuer.ParseRefresh(rawRefresh)
	if err != nil {
		return err
	}
	return s.employees.ClearRefreshToken(ctx, employeeID)
}

func (s *service) issueTokens(ctx context.Context, emp employee.Employee) (TokenResponse, error) {
	access, err := s.issuer.IssueAccess(emp)
	if err != nil {
		return TokenResponse{}, err
	}
	refresh, err := s.issuer.IssueRefresh(emp.ID)
	if err != nil {
		return TokenResponse{}, err
	}

	if err := s.employees.SetRefreshToken(ctx, emp.ID, refresh); err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  access,
		TokenType:    "Bearer",
		RefreshToken: refresh,
	}, nil
}
