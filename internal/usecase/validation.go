package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var nonDigits = regexp.MustCompile(`\D`)

func ValidateLoginInput(input LoginInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.PhoneNumber) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if nonDigits.ReplaceAllString(input.PhoneNumber, "") == "" {
		errors = append(errors, ValidationError{"phone", "must contain digits"})
	}

	return errors
}

func ValidatePaymentInput(input PaymentInput) []ValidationError {
	var errors []ValidationError

	ref := strings.TrimSpace(input.TransactionReference)
	if ref == "" {
		errors = append(errors, ValidationError{"transaction_reference", "is required"})
	} else if len(ref) > 120 {
		errors = append(errors, ValidationError{"transaction_reference", "must not exceed 120 characters"})
	}

	return errors
}

func validationDomainError(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{
		Code:    CodeValidationError,
		Message: strings.TrimSuffix(msg, ", "),
	}
}
