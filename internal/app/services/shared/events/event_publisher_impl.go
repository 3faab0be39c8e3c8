package events

import (
	"context"
	"sync"
	"time"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
	Log     *zap.Logger
}

// NewEventPublisher publishes to queue over conn. A nil connection yields a
// publisher that only logs, so the portal runs without a broker.
func NewEventPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	if conn == nil {
		return &noopPublisher{Log: logger}, nil
	}

	publisher := &rabbitMQPublisher{conn: conn, queue: queue, Log: logger}
	if err := publisher.openChannel(); err != nil {
		return nil, err
	}
	return publisher, nil
}

type closer interface {
	Close() error
}

func (p *rabbitMQPublisher) closeChannel(channel closer) {
	if err := channel.Close(); err != nil {
		p.Log.Warn("rabbitMQPublisher.closeChannel error closing channel",
			zap.String(constvars.LoggingQueueKey, p.queue),
			zap.Error(err),
		)
	}
}

func (p *rabbitMQPublisher) openChannel() error {
	channel, err := p.conn.Channel()
	if err != nil {
		return exceptions.ErrPublishEvent(err)
	}
	_, err = channel.QueueDeclare(p.queue, true, false, false, false, nil)
	if err != nil {
		p.closeChannel(channel)
		return exceptions.ErrPublishEvent(err)
	}
	p.channel = channel
	return nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.PortalEvent) error {
	requestID := utils.RequestIDFromContext(ctx)
	fillEvent(event)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		if err := p.openChannel(); err != nil {
			p.Log.Error("rabbitMQPublisher.Publish error reopening channel",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	})
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.String(constvars.LoggingQueueKey, p.queue),
			zap.Error(err),
		)
		return exceptions.ErrPublishEvent(err)
	}

	p.Log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

type noopPublisher struct {
	Log *zap.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *models.PortalEvent) error {
	fillEvent(event)
	p.Log.Debug("noopPublisher.Publish broker not configured, event dropped",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

func fillEvent(event *models.PortalEvent) {
	if event.ID == "" {
		event.ID = utils.GenerateRequestID()
	}
	if event.Source == "" {
		event.Source = constvars.PortalEventSourceHeader
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
}
