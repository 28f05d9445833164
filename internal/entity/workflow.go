package entity

import "fmt"

// Stage is the position in the linear handover workflow. The order is fixed:
// no skipping, no going back. The usecase layer is the only writer.
type Stage int

const (
	StageLogin Stage = iota
	StageOTPVerify
	StageDashboard
	StagePayment
	StagePaymentOTPVerify
	StageAccess
	StageDone
)

var stageNames = map[Stage]string{
	StageLogin:            "LOGIN",
	StageOTPVerify:        "OTP_VERIFY",
	StageDashboard:        "DASHBOARD",
	StagePayment:          "PAYMENT",
	StagePaymentOTPVerify: "PAYMENT_OTP_VERIFY",
	StageAccess:           "ACCESS",
	StageDone:             "DONE",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(s))
}

// Next returns the single successor stage. DONE is terminal.
func (s Stage) Next() Stage {
	if s >= StageDone {
		return StageDone
	}
	return s + 1
}

// WorkflowState is the one mutable record per session. OTP fields are non-empty
// only while their matching verification stage is active and are cleared on
// the first successful compare (single use).
type WorkflowState struct {
	Stage      Stage   `json:"stage"`
	LoginOTP   string  `json:"login_otp,omitempty"`
	PaymentOTP string  `json:"payment_otp,omitempty"`
	Client     *Client `json:"client,omitempty"`

	// Free text captured at PAYMENT, immutable once recorded.
	TransactionReference string `json:"transaction_reference,omitempty"`
}

// NewWorkflowState is the state a session starts in: LOGIN, nothing resolved.
func NewWorkflowState() *WorkflowState {
	return &WorkflowState{Stage: StageLogin}
}
