package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/handover-portal/internal/entity"
	"github.com/xavierca1/handover-portal/internal/infra/queue"
)

func (uc *WorkflowUseCase) loadState(ctx context.Context, sessionID string) (*entity.WorkflowState, error) {
	state, err := uc.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeSessionUnavailable,
			Message: "session backend unavailable: " + err.Error(),
		}
	}
	return state, nil
}

// requireStage refuses any action whose stage does not match the current
// state. This is what makes the workflow strictly linear.
func requireStage(state *entity.WorkflowState, want entity.Stage) error {
	if state.Stage != want {
		return &DomainError{
			Code:    CodeWrongStage,
			Message: fmt.Sprintf("action not allowed at stage %s", state.Stage),
		}
	}
	return nil
}

// commit writes the new state back and emits the audit event. The event is
// best-effort: the transition already happened, a broker hiccup must not
// undo it.
func (uc *WorkflowUseCase) commit(ctx context.Context, sessionID string, state *entity.WorkflowState, from entity.Stage, detail string) error {
	if err := uc.Sessions.Put(ctx, sessionID, state); err != nil {
		return &TechnicalError{
			Code:    CodeSessionUnavailable,
			Message: "failed to persist workflow state: " + err.Error(),
		}
	}

	if uc.Events != nil {
		event := queue.WorkflowEvent{
			SessionID:  sessionID,
			FromStage:  from.String(),
			ToStage:    state.Stage.String(),
			Detail:     detail,
			OccurredAt: time.Now(),
		}
		if err := uc.Events.PublishTransition(ctx, event); err != nil {
			log.Printf("⚠️ audit: failed to publish %s→%s for session %s: %v",
				event.FromStage, event.ToStage, sessionID, err)
		}
	}

	return nil
}
