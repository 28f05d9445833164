package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// WorkflowEvent is one committed stage transition, published for the audit
// trail. Codes and client data never travel on the queue.
type WorkflowEvent struct {
	SessionID  string    `json:"session_id"`
	FromStage  string    `json:"from_stage"`
	ToStage    string    `json:"to_stage"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishTransition(ctx context.Context, event WorkflowEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal workflow event: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.workflow
		RoutingKey,   // k.transition
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %v", err)
	}

	return nil
}
