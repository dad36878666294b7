package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publish.go -destination=publish_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// activityPublisher publishes activities best-effort; failures are logged and never returned.
type activityPublisher struct {
	writer KafkaWriter
}

func (p activityPublisher) publish(ctx context.Context, userID, eventID int64, operation, detail string) {
	activity := models.Activity{
		ActivityID: uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID,
		EventID:    eventID,
		Operation:  operation,
		Detail:     detail,
	}

	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "activity_id", activity.ActivityID, "operation", operation)
		return
	}

	data, err := json.Marshal(activity)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity for Kafka", "activity_id", activity.ActivityID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(activity.ActivityID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity to Kafka", "activity_id", activity.ActivityID, "operation", operation, "error", err)
	} else {
		logger.Log.Infow("Activity published to Kafka", "activity_id", activity.ActivityID, "operation", operation, "event_id", eventID)
	}
}
