package history

import (
	"net/http"
	"strconv"

	historyerrors "go-shift-admin/internal/history/errors"
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
	l := zap.L().Named("history.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("history request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetShiftHistory lists the shift change log, newest first, optionally
// narrowed to one shift or one employee.
func (h *Handler) GetShiftHistory(c *gin.Context) {
	ctx := c.Request.Context()

	var filter ChangeFilter
	if raw := c.Query("shift_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeServiceError(c, historyerrors.ErrInvalidShiftID)
			return
		}
		filter.ShiftID = &id
	}
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeServiceError(c, historyerrors.ErrInvalidEmployeeID)
			return
		}
		filter.EmployeeID = &id
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
	}

	rows, total, err := h.service.GetShiftHistory(ctx, filter, page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, rows, meta)
}

func (h *Handler) GetShiftVersions(c *gin.Context) {
	ctx := c.Request.Context()

	shiftID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, historyerrors.ErrInvalidShiftID)
		return
	}

	rows, err := h.service.GetShiftVersions(ctx, shiftID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) GetEmployeeHistory(c *gin.Context) {
	ctx := c.Request.Context()

	employeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, historyerrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.GetEmployeeHistory(ctx, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RestoreShiftVersion(c *gin.Context) {
	ctx := c.Request.Context()

	shiftID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, historyerrors.ErrInvalidShiftID)
		return
	}

	var req RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("restore validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	h.logger.Info("http restore shift version",
		zap.Int64("shift_id", shiftID),
		zap.Int("version", req.Version),
	)

	if err := h.service.RestoreShiftVersion(ctx, shiftID, req.Version); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restored": true}, nil)
}

func (h *Handler) PurgeShiftChange(c *gin.Context) {
	ctx := c.Request.Context()

	historyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, historyerrors.ErrHistoryNotFound)
		return
	}

	if err := h.service.PurgeShiftChange(ctx, historyID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
