package aggregate

import (
	"net/http"
	"time"

	aggregateerrors "go-attendo/internal/aggregate/errors"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service  Service
	location *time.Location
	logger   *zap.Logger
}

// NewHandler parses query dates in loc; nil means time.Local.
func NewHandler(service Service, loc *time.Location, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("aggregate.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("aggregate.handler")
	}
	if loc == nil {
		loc = time.Local
	}
	return &Handler{service: service, location: loc, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("status request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetWeekly(c *gin.Context) {
	var q WeeklyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	var ref time.Time
	if q.Date != "" {
		t, err := time.ParseInLocation(DateLayout, q.Date, h.location)
		if err != nil {
			h.writeServiceError(c, aggregateerrors.ErrInvalidDate)
			return
		}
		ref = t
	}

	weekly, err := h.service.GetWeeklyStatus(c.Request.Context(), c.GetString("user_id"), ref)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, weekly, nil)
}

func (h *Handler) GetMonthly(c *gin.Context) {
	var q MonthlyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	stats, err := h.service.GetMonthlyStats(c.Request.Context(), c.GetString("user_id"), q.Year, time.Month(q.Month))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, nil)
}

func (h *Handler) ExportMonthly(c *gin.Context) {
	var q MonthlyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	body, filename, err := h.service.ExportMonthly(c.Request.Context(), c.GetString("user_id"), q.Year, time.Month(q.Month))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Spreadsheet(c, filename, body)
}

func (h *Handler) SetDayStatus(c *gin.Context) {
	var req DayStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	detail, err := h.service.SetDayStatus(c.Request.Context(), c.GetString("user_id"), c.Param("date"), Code(req.Code), req.Note)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail, nil)
}

func (h *Handler) RebuildTallies(c *gin.Context) {
	tallies, err := h.service.RebuildTallies(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tallies, nil)
}
