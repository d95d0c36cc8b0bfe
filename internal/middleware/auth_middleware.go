package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/baobabplus/application-agent-services/internal/employee"
	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

const employeeContextKey = "employee_context"

// Auth validates the bearer access token and stores the resolved
// employee context for downstream handlers.
func Auth(accessSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c, "Missing bearer token")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(accessSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "Invalid or expired token")
			return
		}

		ectx, ok := employeeFromClaims(claims)
		if !ok {
			unauthorized(c, "Invalid token claims")
			return
		}

		c.Set(employeeContextKey, ectx)
		c.Next()
	}
}

func employeeFromClaims(claims jwt.MapClaims) (employee.Context, bool) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return employee.Context{}, false
	}
	id, err := strconv.Atoi(sub)
	if err != nil {
		return employee.Context{}, false
	}

	jobID, ok1 := claimInt(claims, "job_id")
	companyID, ok2 := claimInt(claims, "company_id")
	if !ok1 || !ok2 {
		return employee.Context{}, false
	}

	return employee.Context{
		EmployeeID: id,
		JobID:      jobID,
		CompanyID:  companyID,
	}, true
}

func claimInt(claims jwt.MapClaims, key string) (int, bool) {
	v, ok := claims[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// CurrentEmployee retrieves the employee context stored by Auth.
func CurrentEmployee(c *gin.Context) (employee.Context, bool) {
	v, ok := c.Get(employeeContextKey)
	if !ok {
		return employee.Context{}, false
	}
	ectx, ok := v.(employee.Context)
	return ectx, ok
}

// SetCurrentEmployee injects an employee context directly, bypassing
// token validation. Test helper.
func SetCurrentEmployee(c *gin.Context, ectx employee.Context) {
	c.Set(employeeContextKey, ectx)
}

func unauthorized(c *gin.Context, description string) {
	response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, description)
	c.Abort()
}
