package usecase

// Error codes surfaced to the HTTP layer.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeIncorrectOTP       = "INCORRECT_OTP"
	CodeWrongStage         = "WRONG_STAGE"
	CodeMissingReference   = "MISSING_REFERENCE"
	CodeValidationError    = "VALIDATION_ERROR"

	CodeSessionUnavailable = "SESSION_UNAVAILABLE"
	CodeOTPGeneration      = "OTP_GENERATION"
	CodeLookupUnavailable  = "LOOKUP_UNAVAILABLE"
	CodeDeliveryFailed     = "DELIVERY_FAILED"
)

// DomainError: the caller did something the workflow rejects. The state
// machine does not move and the user is re-prompted.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError: an infrastructure collaborator failed (session backend,
// record lookup, delivery channel). Still a rejected transition, never fatal.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func ErrorCode(err error) string {
	switch e := err.(type) {
	case *DomainError:
		return e.Code
	case *TechnicalError:
		return e.Code
	}
	return ""
}
