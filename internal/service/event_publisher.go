package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Event channels consumed by downstream services
const (
	PatientEventsChannel = "patient-events"
	DoctorEventsChannel  = "doctor-events"

	publishTimeout = 5 * time.Second
)

// Lifecycle actions carried in event tokens
const (
	ActionCreated = "CREATED"
	ActionUpdated = "UPDATED"
	ActionDeleted = "DELETED"
)

// LifecycleToken formats a lifecycle event token, e.g. "PATIENT_CREATED:42".
func LifecycleToken(entityName, action string, id int64) string {
	return fmt.Sprintf("%s_%s:%d", entityName, action, id)
}

// EventPublisher emits lifecycle event tokens after successful mutations.
// Delivery is best-effort: failures are logged and never surfaced to callers.
type EventPublisher interface {
	Publish(ctx context.Context, channel, token string)
}

type redisEventPublisher struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewEventPublisher(redisClient *redis.Client, log *logrus.Logger) EventPublisher {
	return &redisEventPublisher{
		redisClient: redisClient,
		log:         log,
	}
}

func (p *redisEventPublisher) Publish(ctx context.Context, channel, token string) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.redisClient.Publish(ctx, channel, token).Err(); err != nil {
		p.log.Warnf("Failed to publish event %s to %s: %+v", token, channel, err)
	}
}
