// Package nats publishes order lifecycle events to NATS subjects so other
// systems (notifications, reporting) can react to workflow changes.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"amsral/internal/core/domain/model/order"

	"github.com/nats-io/nats.go"
)

const (
	// SubjectOrderStatus carries order status transition events.
	SubjectOrderStatus = "orders.status"
	// SubjectOrderEscalations carries stale-intake escalation events.
	SubjectOrderEscalations = "orders.escalations"
)

// orderStatusChangedEvent is the wire format for status transitions.
type orderStatusChangedEvent struct {
	OrderID    int64     `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// orderEscalatedEvent is the wire format for aging escalations.
type orderEscalatedEvent struct {
	OrderID    int64     `json:"orderId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher implements ports.EventPublisher on top of a NATS connection.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher connects to the NATS server at the given URL.
// The caller owns the publisher and must Close it on shutdown.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{conn: conn}, nil
}

// PublishOrderStatusChanged announces a status transition of an order.
func (p *Publisher) PublishOrderStatusChanged(_ context.Context, orderID int64, status order.Status) error {
	payload, err := json.Marshal(orderStatusChangedEvent{
		OrderID:    orderID,
		Status:     status.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.conn.Publish(SubjectOrderStatus, payload)
}

// PublishOrderEscalated announces that an order sat in intake past the
// aging threshold.
func (p *Publisher) PublishOrderEscalated(_ context.Context, orderID int64) error {
	payload, err := json.Marshal(orderEscalatedEvent{
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.conn.Publish(SubjectOrderEscalations, payload)
}

// Close drains the connection.
func (p *Publisher) Close() error {
	p.conn.Close()
	return nil
}

// NoopPublisher discards all events. Used when no NATS URL is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// PublishOrderStatusChanged discards the event.
func (*NoopPublisher) PublishOrderStatusChanged(_ context.Context, _ int64, _ order.Status) error {
	return nil
}

// PublishOrderEscalated discards the event.
func (*NoopPublisher) PublishOrderEscalated(_ context.Context, _ int64) error {
	return nil
}
