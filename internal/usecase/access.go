package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/handover-portal/internal/entity"
)

// Dashboard returns the client summary. Display only; the client is always
// bound by the time this stage is reachable.
func (uc *WorkflowUseCase) Dashboard(ctx context.Context, sessionID string) (*DashboardOutput, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StageDashboard); err != nil {
		return nil, err
	}

	c := state.Client
	return &DashboardOutput{
		Stage:       state.Stage.String(),
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		ProjectName: c.ProjectName,
		DueAmount:   c.DueRupees(),
	}, nil
}

// Proceed is the user-triggered DASHBOARD → PAYMENT edge. No input, no side
// effect, deterministic.
func (uc *WorkflowUseCase) Proceed(ctx context.Context, sessionID string) (*StageOutput, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StageDashboard); err != nil {
		return nil, err
	}

	from := state.Stage
	state.Stage = entity.StagePayment

	if err := uc.commit(ctx, sessionID, state, from, "proceeded to payment"); err != nil {
		return nil, err
	}

	return &StageOutput{Stage: state.Stage.String()}, nil
}

// AccessDetails exposes the download credential. Only reachable after both
// OTP verifications succeeded.
func (uc *WorkflowUseCase) AccessDetails(ctx context.Context, sessionID string) (*AccessOutput, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StageAccess); err != nil {
		return nil, err
	}

	return &AccessOutput{
		Stage:             state.Stage.String(),
		ProjectName:       state.Client.ProjectName,
		ProjectAccessLink: state.Client.ProjectAccessLink,
	}, nil
}

// Finish is the user-triggered ACCESS → DONE edge, closing the workflow.
func (uc *WorkflowUseCase) Finish(ctx context.Context, sessionID string) (*FinishOutput, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StageAccess); err != nil {
		return nil, err
	}

	from := state.Stage
	state.Stage = entity.StageDone

	if err := uc.commit(ctx, sessionID, state, from, "workflow finished"); err != nil {
		return nil, err
	}

	return &FinishOutput{
		Stage: state.Stage.String(),
		Msg:   fmt.Sprintf("Dear %s, we thank you for doing business with us!", state.Client.Name),
	}, nil
}
