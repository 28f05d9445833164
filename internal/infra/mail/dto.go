package mail

type OTPEmailData struct {
	Code string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
