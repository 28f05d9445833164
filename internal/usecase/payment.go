package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/xavierca1/handover-portal/internal/entity"
)

const qrServiceURL = "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data="

// PaymentDetails returns the due amount plus the UPI deep link and the QR
// image URL for the PAYMENT screen. Display only, nothing moves.
func (uc *WorkflowUseCase) PaymentDetails(ctx context.Context, sessionID string) (*PaymentDetailsOutput, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StagePayment); err != nil {
		return nil, err
	}

	upiLink := uc.buildUPILink(state.Client)

	return &PaymentDetailsOutput{
		Stage:     state.Stage.String(),
		DueAmount: state.Client.DueRupees(),
		UPILink:   upiLink,
		QRCodeURL: qrServiceURL + url.QueryEscape(upiLink),
	}, nil
}

// SubmitPayment records the transaction reference, generates an independent
// payment OTP and alerts the administrator over the chat channel, including
// the code itself. The OTP is stored only after the alert went out.
func (uc *WorkflowUseCase) SubmitPayment(ctx context.Context, sessionID string, input PaymentInput) (*StageOutput, error) {
	ref := strings.TrimSpace(input.TransactionReference)
	if ref == "" {
		return nil, &DomainError{
			Code:    CodeMissingReference,
			Message: "transaction reference is required",
		}
	}
	if errs := ValidatePaymentInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StagePayment); err != nil {
		return nil, err
	}

	code, err := generateOTP()
	if err != nil {
		return nil, &TechnicalError{Code: CodeOTPGeneration, Message: err.Error()}
	}

	alert := adminAlertText(state.Client, ref, code)
	if err := uc.Notifier.SendAlert(alert); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDeliveryFailed,
			Message: "failed to alert administrator: " + err.Error(),
		}
	}

	from := state.Stage
	state.TransactionReference = ref
	state.PaymentOTP = code
	state.Stage = entity.StagePaymentOTPVerify

	if err := uc.commit(ctx, sessionID, state, from, "payment submitted, admin alerted"); err != nil {
		return nil, err
	}

	return &StageOutput{Stage: state.Stage.String(), Msg: "Payment submitted, awaiting verification"}, nil
}

// VerifyPaymentOTP is the human-in-the-loop check: the code only exists on
// the administrator's phone, so passing it proves the admin acknowledged the
// payment out of band. Single use, same discipline as the login OTP.
func (uc *WorkflowUseCase) VerifyPaymentOTP(ctx context.Context, sessionID string, input VerifyOTPInput) (*StageOutput, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStage(state, entity.StagePaymentOTPVerify); err != nil {
		return nil, err
	}

	if state.PaymentOTP == "" || input.OTP != state.PaymentOTP {
		return nil, &DomainError{
			Code:    CodeIncorrectOTP,
			Message: "Incorrect OTP. Please try again.",
		}
	}

	from := state.Stage
	state.PaymentOTP = ""
	state.Stage = entity.StageAccess

	if err := uc.commit(ctx, sessionID, state, from, "payment otp verified"); err != nil {
		return nil, err
	}

	return &StageOutput{Stage: state.Stage.String()}, nil
}

func (uc *WorkflowUseCase) buildUPILink(client *entity.Client) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR",
		uc.UPIPayeeVPA,
		url.QueryEscape(uc.UPIPayeeName),
		client.DueRupees(),
	)
}

func adminAlertText(client *entity.Client, ref, otp string) string {
	return fmt.Sprintf(
		"New Payment Submission:\nName: %s\nEmail: %s\nAmount: ₹%s\nTransaction Ref: %s\nOTP for Payment Verification: %s",
		client.Name, client.Email, client.DueRupees(), ref, otp,
	)
}
