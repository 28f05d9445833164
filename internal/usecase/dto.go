package usecase

type LoginInput struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone"`
}

type VerifyOTPInput struct {
	OTP string `json:"otp"`
}

type PaymentInput struct {
	TransactionReference string `json:"transaction_reference"`
}

// StageOutput is the common "transition happened" response.
type StageOutput struct {
	Stage string `json:"stage"`
	Msg   string `json:"msg,omitempty"`
}

type DashboardOutput struct {
	Stage       string `json:"stage"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	ProjectName string `json:"project_name"`
	DueAmount   string `json:"due_amount"`
}

type PaymentDetailsOutput struct {
	Stage     string `json:"stage"`
	DueAmount string `json:"due_amount"`
	UPILink   string `json:"upi_link"`
	QRCodeURL string `json:"qr_code_url"`
}

type AccessOutput struct {
	Stage             string `json:"stage"`
	ProjectName       string `json:"project_name"`
	ProjectAccessLink string `json:"project_access_link"`
}

type FinishOutput struct {
	Stage string `json:"stage"`
	Msg   string `json:"msg"`
}
