package bootstrap

import (
	"context"
	"time"

	"go-shift-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit events to the process log. Good enough for
// an internal tool; swap in a persistent sink behind AuditLogger if needed.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
