package reminder

import (
	"net/http"
	"time"

	remindererrors "go-attendo/internal/reminder/errors"
	"go-attendo/internal/shared/apperror"
	"go-attendo/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reminder.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reminder.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("reminder request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	reminders, err := h.service.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reminders, nil)
}

// Calendar serves the pending reminders as text/calendar for subscription.
func (h *Handler) Calendar(c *gin.Context) {
	reminders, err := h.service.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="reminders.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(BuildCalendar(reminders, time.Now())))
}

func (h *Handler) Refresh(c *gin.Context) {
	reminders, err := h.service.Refresh(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reminders, nil)
}

func (h *Handler) GetPolicy(c *gin.Context) {
	p, err := h.service.GetPolicy(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, PolicyResponse{Policy: p}, nil)
}

func (h *Handler) UpdatePolicy(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	p, err := ParsePolicy(req.Policy)
	if err != nil {
		h.writeServiceError(c, remindererrors.ErrInvalidPolicy)
		return
	}

	reminders, err := h.service.SetPolicy(c.Request.Context(), c.GetString("user_id"), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, PolicyResponse{Policy: p, Reminders: reminders}, nil)
}
