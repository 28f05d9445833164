package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/handover-portal/internal/entity"
)

// Login resolves the client by exact (email, phone) match, emails a fresh
// login OTP and, only once delivery succeeded, binds the client and moves the
// session to OTP_VERIFY. A failed delivery leaves the state untouched, so no
// code the user never received can lock the stage.
func (uc *WorkflowUseCase) Login(ctx context.Context, sessionID string, input LoginInput) (*StageOutput, error) {
	if errs := ValidateLoginInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StageLogin); err != nil {
		return nil, err
	}

	client, err := uc.Clients.FindByEmailAndPhone(ctx, input.Email, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			// Deliberately the same answer for "no record" and "fields
			// don't match": the login form never confirms which.
			return nil, &DomainError{
				Code:    CodeInvalidCredentials,
				Message: "Invalid credentials. Please try again.",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeLookupUnavailable,
			Message: "client lookup unavailable: " + err.Error(),
		}
	}

	code, err := generateOTP()
	if err != nil {
		return nil, &TechnicalError{Code: CodeOTPGeneration, Message: err.Error()}
	}

	if err := uc.Mailer.SendOTP(client.Email, code); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDeliveryFailed,
			Message: "failed to send OTP email: " + err.Error(),
		}
	}

	from := state.Stage
	state.Client = client
	state.LoginOTP = code
	state.Stage = entity.StageOTPVerify

	if err := uc.commit(ctx, sessionID, state, from, "login otp emailed"); err != nil {
		return nil, err
	}

	return &StageOutput{Stage: state.Stage.String(), Msg: "OTP sent to your email"}, nil
}

// VerifyLoginOTP compares the submitted code against the active login OTP.
// On success the code is invalidated before the transition commits, so the
// same code can never pass a second verification. On mismatch the stage does
// not move and the code stays valid for another attempt.
func (uc *WorkflowUseCase) VerifyLoginOTP(ctx context.Context, sessionID string, input VerifyOTPInput) (*StageOutput, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StageOTPVerify); err != nil {
		return nil, err
	}

	if state.LoginOTP == "" || input.OTP != state.LoginOTP {
		return nil, &DomainError{
			Code:    CodeIncorrectOTP,
			Message: "Incorrect OTP. Please try again.",
		}
	}

	from := state.Stage
	state.LoginOTP = ""
	state.Stage = entity.StageDashboard

	if err := uc.commit(ctx, sessionID, state, from, "login otp verified"); err != nil {
		return nil, err
	}

	return &StageOutput{Stage: state.Stage.String()}, nil
}
