package shift

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-shift-admin/internal/shared/apperror"
	"go-shift-admin/internal/shared/response"
	shifterrors "go-shift-admin/internal/shift/errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("shift.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis additionally finishes the idempotency protocol:
// the lock set by the middleware is released and successful responses are
// cached for replay.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lk, ok := c.Get("idempotency_lock_key"); ok {
		if key, ok := lk.(string); ok && key != "" {
			h.rdb.Del(c.Request.Context(), key)
		}
	}
}

func (h *Handler) cacheIdempotentResponse(c *gin.Context, res any) {
	if h.rdb == nil {
		return
	}
	if ck, ok := c.Get("idempotency_cache_key"); ok {
		if key, ok := ck.(string); ok && key != "" {
			if payload, err := json.Marshal(res); err == nil {
				_ = h.rdb.Set(c.Request.Context(), key, payload, 24*time.Hour).Err()
			}
		}
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("shift request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) shiftID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, shifterrors.ErrInvalidShiftID)
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create shift validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, res)
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.shiftID(c)
	if !ok {
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.shiftID(c)
	if !ok {
		return
	}

	var req UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update shift validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.shiftID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetCalendar(c *gin.Context) {
	q := CalendarQuery{
		Month:  c.Query("month"),
		Search: c.Query("search"),
	}
	if raw := c.Query("group_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("group_id"))
			return
		}
		q.GroupID = &id
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	res, meta, err := h.service.GetCalendar(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, meta)
}

func (h *Handler) GetTable(c *gin.Context) {
	q := TableQuery{
		Month: c.Query("month"),
	}
	if raw := c.Query("group_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("group_id"))
			return
		}
		q.GroupID = &id
	}
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("employee_id"))
			return
		}
		q.EmployeeID = &id
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))

	rows, total, err := h.service.GetTable(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, rows, meta)
}

func (h *Handler) BulkEdit(c *gin.Context) {
	var req BulkEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("bulk edit validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	summary, err := h.service.BulkEdit(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if summary.Failed > 0 {
		status = http.StatusMultiStatus
	}
	response.Success(c, status, summary, nil)
}

func (h *Handler) BulkImport(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("bulk import validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	summary, err := h.service.BulkImport(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if summary.Failed > 0 {
		// partial success still reports row level failures in the body
		status = http.StatusMultiStatus
	}
	if summary.Failed == 0 {
		h.cacheIdempotentResponse(c, summary)
	}
	response.Success(c, status, summary, nil)
}
