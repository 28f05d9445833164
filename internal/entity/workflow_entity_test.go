package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageOrderIsLinear(t *testing.T) {
	order := []Stage{
		StageLogin, StageOTPVerify, StageDashboard, StagePayment,
		StagePaymentOTPVerify, StageAccess, StageDone,
	}

	for i := 0; i < len(order)-1; i++ {
		assert.Equal(t, order[i+1], order[i].Next())
	}

	// DONE is terminal.
	assert.Equal(t, StageDone, StageDone.Next())
}

func TestStageNames(t *testing.T) {
	assert.Equal(t, "LOGIN", StageLogin.String())
	assert.Equal(t, "PAYMENT_OTP_VERIFY", StagePaymentOTPVerify.String())
	assert.Equal(t, "DONE", StageDone.String())
	assert.Contains(t, Stage(99).String(), "UNKNOWN")
}

func TestNewWorkflowState(t *testing.T) {
	state := NewWorkflowState()
	assert.Equal(t, StageLogin, state.Stage)
	assert.Nil(t, state.Client)
	assert.Empty(t, state.LoginOTP)
	assert.Empty(t, state.PaymentOTP)
	assert.Empty(t, state.TransactionReference)
}

func TestClientDueRupees(t *testing.T) {
	c := &Client{DuePaise: 50000}
	assert.Equal(t, "500.00", c.DueRupees())

	c.DuePaise = 123456
	assert.Equal(t, "1234.56", c.DueRupees())

	c.DuePaise = 5
	assert.Equal(t, "0.05", c.DueRupees())
}

func TestClientValidate(t *testing.T) {
	valid := &Client{Name: "A", Email: "a@x.com", PhoneNumber: "555"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&Client{Email: "a@x.com", PhoneNumber: "555"}).Validate())
	assert.Error(t, (&Client{Name: "A", PhoneNumber: "555"}).Validate())
	assert.Error(t, (&Client{Name: "A", Email: "a@x.com"}).Validate())
	assert.Error(t, (&Client{Name: "A", Email: "a@x.com", PhoneNumber: "555", DuePaise: -1}).Validate())
}
