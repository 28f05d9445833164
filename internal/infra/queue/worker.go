package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EventRecorder is where consumed audit events end up (Postgres in prod).
type EventRecorder interface {
	Record(ctx context.Context, event WorkflowEvent) error
}

type Worker struct {
	Channel  *amqp.Channel
	Recorder EventRecorder
}

func NewWorker(ch *amqp.Channel, recorder EventRecorder) *Worker {
	return &Worker{
		Channel:  ch,
		Recorder: recorder,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack (manual is safer)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event WorkflowEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it can't jam the queue.
				d.Nack(false, false)
				continue
			}

			if err := w.Recorder.Record(context.Background(), event); err != nil {
				log.Printf("❌ [WORKER] failed to record event %s→%s: %s", event.FromStage, event.ToStage, err)
				d.Nack(false, false)
			} else {
				log.Printf("📝 [WORKER] recorded %s→%s for session %s", event.FromStage, event.ToStage, event.SessionID)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Audit worker running, waiting on queue '%s'", queueName)
	<-forever
}
