package consumer

import (
	"context"
	"encoding/json"

	"go-shift-admin/internal/employee"
	"go-shift-admin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeChanges drops the employee options cache whenever an
// employee record changes, so other instances of the API serve fresh
// picker data without waiting for the TTL.
func ConsumeEmployeeChanges(
	ctx context.Context,
	reader *kafkago.Reader,
	employeeService employee.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_changes")
	log.Info("employee change consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee change consumer stopped")
				return
			}
			log.Error("fetch employee change message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		employeeService.InvalidateOptionsCache(ctx)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee change message failed", zap.Error(err))
			continue
		}

		log.Info("employee options cache invalidated from event",
			zap.Int64("employee_id", event.EmployeeID),
			zap.String("change_type", event.ChangeType),
			zap.Int("version", event.Version),
		)
	}
}
