package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLoginInput(t *testing.T) {
	cases := []struct {
		name    string
		input   LoginInput
		wantErr bool
	}{
		{"valid", LoginInput{Email: "a@x.com", PhoneNumber: "555"}, false},
		{"valid full phone", LoginInput{Email: "client@example.com", PhoneNumber: "+91 99999 99999"}, false},
		{"missing email", LoginInput{PhoneNumber: "555"}, true},
		{"bad email", LoginInput{Email: "not-an-email", PhoneNumber: "555"}, true},
		{"missing phone", LoginInput{Email: "a@x.com"}, true},
		{"phone without digits", LoginInput{Email: "a@x.com", PhoneNumber: "abc"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateLoginInput(tc.input)
			if tc.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidatePaymentInput(t *testing.T) {
	assert.Empty(t, ValidatePaymentInput(PaymentInput{TransactionReference: "TXN123"}))
	assert.NotEmpty(t, ValidatePaymentInput(PaymentInput{TransactionReference: ""}))
	assert.NotEmpty(t, ValidatePaymentInput(PaymentInput{TransactionReference: "   "}))
	assert.NotEmpty(t, ValidatePaymentInput(PaymentInput{TransactionReference: strings.Repeat("x", 121)}))
}
