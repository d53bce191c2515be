package workstatus

import (
	"net/http"

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
	l := zap.L().Named("workstatus.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workstatus.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("work status request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) PerformAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	status, err := h.service.PerformAction(c.Request.Context(), c.GetString("user_id"), Action(req.Action), req.Confirmed)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, status, nil)
}

func (h *Handler) NeedsConfirmation(c *gin.Context) {
	var q ConfirmationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	conf, err := h.service.NeedsConfirmation(c.Request.Context(), c.GetString("user_id"), Action(q.Action))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, conf, nil)
}

func (h *Handler) GetToday(c *gin.Context) {
	status, err := h.service.GetTodayStatus(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, status, nil)
}

func (h *Handler) ResetDay(c *gin.Context) {
	status, err := h.service.ResetDay(c.Request.Context(), c.GetString("user_id"), c.Param("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, status, nil)
}
