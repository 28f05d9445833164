package usecase

import (
	"context"

	"github.com/xavierca1/handover-portal/internal/entity"
	"github.com/xavierca1/handover-portal/internal/infra/queue"
)

// SessionStore keeps one WorkflowState per session. Get must hand back a
// fresh LOGIN state when the session has no record yet.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*entity.WorkflowState, error)
	Put(ctx context.Context, sessionID string, state *entity.WorkflowState) error
}

// ClientRepositoryInterface is the record lookup collaborator: exact match on
// (email, phone), zero or one result.
type ClientRepositoryInterface interface {
	FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Client, error)
}

// EmailService delivers a one-time code to the client's inbox.
type EmailService interface {
	SendOTP(to, code string) error
}

// AdminAlertService delivers a freeform text to the administrator's phone.
type AdminAlertService interface {
	SendAlert(text string) error
}

type EventProducerInterface interface {
	PublishTransition(ctx context.Context, payload queue.WorkflowEvent) error
}

// WorkflowUseCase is the verification workflow engine: it is the sole writer
// of WorkflowState and the only caller of the delivery channels.
type WorkflowUseCase struct {
	Sessions SessionStore
	Clients  ClientRepositoryInterface
	Mailer   EmailService
	Notifier AdminAlertService
	Events   EventProducerInterface // optional, best-effort audit trail

	// Payee identity rendered into the UPI payment link.
	UPIPayeeVPA  string
	UPIPayeeName string
}

func NewWorkflowUseCase(
	sessions SessionStore,
	clients ClientRepositoryInterface,
	mailer EmailService,
	notifier AdminAlertService,
	events EventProducerInterface,
	upiPayeeVPA, upiPayeeName string,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		Sessions:     sessions,
		Clients:      clients,
		Mailer:       mailer,
		Notifier:     notifier,
		Events:       events,
		UPIPayeeVPA:  upiPayeeVPA,
		UPIPayeeName: upiPayeeName,
	}
}
