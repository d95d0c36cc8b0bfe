package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherrors "github.com/baobabplus/application-agent-services/internal/auth/errors"
	"github.com/baobabplus/application-agent-services/internal/employee"
)

// TokenIssuer signs and verifies the HS256 token pair. Access and
// refresh tokens use separate secrets so leaking one does not
// compromise the other.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// IssueAccess embeds the employee scope in the token so request
// handling never needs a lookup to rebuild it.
func (i *TokenIssuer) IssueAccess(emp employee.Employee) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub":        strconv.Itoa(emp.ID),
		"name":       emp.Name,
		"job_id":     emp.Job.ID,
		"company_id": emp.Company.ID,
		"iat":        now.Unix(),
		"exp":        now.Add(i.accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.accessSecret)
}

func (i *TokenIssuer) IssueRefresh(employeeID int) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub": strconv.Itoa(employeeID),
		"iat": now.Unix(),
		"exp": now.Add(i.refreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.refreshSecret)
}

// ParseRefresh returns the employee id carried by a valid refresh
// token.
func (i *TokenIssuer) ParseRefresh(raw string) (int, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.refreshSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, autherrors.ErrInvalidRefreshToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, autherrors.ErrInvalidRefreshToken
	}
	id, err := strconv.Atoi(sub)
	if err != nil || id <= 0 {
		return 0, autherrors.ErrInvalidRefreshToken
	}
	return id, nil
}
