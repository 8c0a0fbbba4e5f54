package consumer

import (
	"context"
	"encoding/json"

	"github.com/IonixCH/hris-api/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAttendanceActivity membaca event check-in/check-out dan menulisnya
// sebagai audit trail terstruktur. Downstream (payroll eksternal, BI) membaca
// topic yang sama; consumer ini sekaligus memverifikasi pipeline outbox jalan.
func ConsumeAttendanceActivity(
	ctx context.Context,
	reader *kafkago.Reader,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_activity")
	log.Info("attendance activity consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance activity consumer stopped")
				return
			}
			log.Error("fetch attendance activity message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceActivityEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance activity event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		log.Info("attendance activity",
			zap.String("event_type", event.EventType),
			zap.Int64("attendance_id", event.AttendanceID),
			zap.Int64("employee_id", event.EmployeeID),
			zap.String("working_hours", event.WorkingHours),
			zap.Time("occurred_at", event.OccurredAt),
		)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance activity message failed", zap.Error(err))
		}
	}
}
