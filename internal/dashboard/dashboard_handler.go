package dashboard

import (
	"net/http"
	"time"

	"go-shift-admin/internal/shared/apperror"
	"go-shift-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// dateParam reads an optional ?date=YYYY-MM-DD, defaulting to today. The
// shift_date column is a plain date, so the day is truncated in UTC.
func (h *Handler) dateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("date"))
		return time.Time{}, false
	}
	return d, true
}

func (h *Handler) GetStats(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}

	res, err := h.service.GetStats(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetTodayOverview(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}

	res, err := h.service.GetTodayOverview(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
