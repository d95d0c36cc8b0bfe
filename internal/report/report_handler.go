package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baobabplus/application-agent-services/internal/middleware"
	reporterrors "github.com/baobabplus/application-agent-services/internal/report/errors"
	"github.com/baobabplus/application-agent-services/internal/shared/apperror"
	"github.com/baobabplus/application-agent-services/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetReports serves both the closed-report listing and, when a period
// query parameter is present, the period summary shortcut.
func (h *Handler) GetReports(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		writeMissingContext(c)
		return
	}

	if period := c.Query("period"); period != "" {
		result, err := h.service.PeriodSummary(c.Request.Context(), ectx, Period(period))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		response.JSON(c, http.StatusOK, result)
		return
	}

	result, err := h.service.ListReports(c.Request.Context(), ectx)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *Handler) GetSummary(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		writeMissingContext(c)
		return
	}

	reportID, err := strconv.Atoi(c.Param("id"))
	if err != nil || reportID <= 0 {
		writeServiceError(c, reporterrors.ErrInvalidReportID)
		return
	}

	result, err := h.service.Summary(c.Request.Context(), ectx, reportID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *Handler) GetDetails(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		writeMissingContext(c)
		return
	}

	reportID, err := strconv.Atoi(c.Param("id"))
	if err != nil || reportID <= 0 {
		writeServiceError(c, reporterrors.ErrInvalidReportID)
		return
	}

	q := DetailQuery{
		Category: c.Query("category"),
		Offset:   queryInt(c, "offset", 0),
		Limit:    queryInt(c, "limit", defaultDetailLimit),
		Order:    c.Query("order"),
	}

	result, err := h.service.Details(c.Request.Context(), ectx, reportID, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *Handler) GetBonuses(c *gin.Context) {
	ectx, ok := middleware.CurrentEmployee(c)
	if !ok {
		writeMissingContext(c)
		return
	}

	q := BonusQuery{
		Offset: queryInt(c, "offset", 0),
		Limit:  queryInt(c, "limit", defaultBonusLimit),
		Order:  c.Query("order"),
	}

	var parseErr error
	if q.DateStart, parseErr = queryDate(c, "date_start"); parseErr != nil {
		writeServiceError(c, parseErr)
		return
	}
	if q.DateEnd, parseErr = queryDate(c, "date_end"); parseErr != nil {
		writeServiceError(c, parseErr)
		return
	}

	result, err := h.service.Bonuses(c.Request.Context(), ectx, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func queryDate(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperror.InvalidField(key)
	}
	return t, nil
}

func writeServiceError(c *gin.Context, err error) {
	he := apperror.ToHTTP(err)
	response.Error(c, he.Status, he.Code, he.Message)
}

func writeMissingContext(c *gin.Context) {
	response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing employee context")
}
