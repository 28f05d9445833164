package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"

	"github.com/xavierca1/handover-portal/internal/infra/queue"
)

// EventRepository persists consumed workflow audit events.
type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Record(ctx context.Context, event queue.WorkflowEvent) error {
	query := `
		INSERT INTO workflow_events (id, session_id, from_stage, to_stage, detail, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		uuid.New().String(),
		event.SessionID,
		event.FromStage,
		event.ToStage,
		event.Detail,
		event.OccurredAt,
	)

	if err != nil {
		log.Printf("❌ failed to insert workflow event: %v", err)
		return err
	}

	return nil
}
