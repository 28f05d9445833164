package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// EventRetentionWorker prunes old rows from workflow_events so the audit
// table doesn't grow without bound.
type EventRetentionWorker struct {
	db              *sql.DB
	retentionWindow time.Duration
	tickInterval    time.Duration
}

func NewEventRetentionWorker(db *sql.DB) *EventRetentionWorker {
	return &EventRetentionWorker{
		db:              db,
		retentionWindow: 90 * 24 * time.Hour,
		tickInterval:    1 * time.Hour,
	}
}

func (w *EventRetentionWorker) Start(ctx context.Context) {
	log.Println("🕒 Event retention worker started (90d window)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.pruneOldEvents(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Event retention worker stopped")
			return
		case <-ticker.C:
			w.pruneOldEvents(ctx)
		}
	}
}

func (w *EventRetentionWorker) pruneOldEvents(ctx context.Context) {
	query := `
		DELETE FROM workflow_events
		WHERE occurred_at < $1
	`

	res, err := w.db.ExecContext(ctx, query, time.Now().Add(-w.retentionWindow))
	if err != nil {
		log.Printf("❌ retention prune failed: %v", err)
		return
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Printf("🧹 pruned %d old workflow events", n)
	}
}
