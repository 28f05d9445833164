package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/handover-portal/internal/entity"
	"github.com/xavierca1/handover-portal/internal/infra/http/handlers"
	"github.com/xavierca1/handover-portal/internal/infra/http/middleware"
	"github.com/xavierca1/handover-portal/internal/usecase"
)

// In-memory collaborators; the handler tests exercise routing, the session
// cookie and the error envelope, not the engine logic itself.

type memSessions struct {
	states map[string]*entity.WorkflowState
}

func (s *memSessions) Get(ctx context.Context, id string) (*entity.WorkflowState, error) {
	if st, ok := s.states[id]; ok {
		cp := *st
		return &cp, nil
	}
	return entity.NewWorkflowState(), nil
}

func (s *memSessions) Put(ctx context.Context, id string, st *entity.WorkflowState) error {
	cp := *st
	s.states[id] = &cp
	return nil
}

type stubClients struct {
	client *entity.Client
}

func (s *stubClients) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.Client, error) {
	if s.client != nil && s.client.Email == email && s.client.PhoneNumber == phone {
		return s.client, nil
	}
	return nil, entity.ErrClientNotFound
}

type capturingMailer struct {
	lastCode string
	err      error
}

func (m *capturingMailer) SendOTP(to, code string) error {
	if m.err != nil {
		return m.err
	}
	m.lastCode = code
	return nil
}

type capturingNotifier struct {
	lastAlert string
	err       error
}

func (n *capturingNotifier) SendAlert(text string) error {
	if n.err != nil {
		return n.err
	}
	n.lastAlert = text
	return nil
}

func newTestRouter(mailer *capturingMailer, notifier *capturingNotifier) http.Handler {
	uc := usecase.NewWorkflowUseCase(
		&memSessions{states: map[string]*entity.WorkflowState{}},
		&stubClients{client: &entity.Client{
			ID:                "client-1",
			Name:              "Aniketh",
			Email:             "a@x.com",
			PhoneNumber:       "555",
			ProjectName:       "Portfolio Website",
			DuePaise:          50000,
			ProjectAccessLink: "https://drive.example.com/project.zip",
		}},
		mailer, notifier, nil,
		"payee@oksbi", "Md Waseel",
	)

	h := handlers.NewWorkflowHandler(uc)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.EnsureSession)
		r.Post("/login", h.Login)
		r.Post("/otp/verify", h.VerifyOTP)
		r.Get("/dashboard", h.Dashboard)
		r.Post("/dashboard/proceed", h.Proceed)
		r.Get("/payment", h.PaymentDetails)
		r.Post("/payment", h.SubmitPayment)
		r.Post("/payment/verify", h.VerifyPaymentOTP)
		r.Get("/access", h.Access)
		r.Post("/access/finish", h.Finish)
	})
	return r
}

type client struct {
	t      *testing.T
	router http.Handler
	cookie *http.Cookie
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	// Carry the session cookie across requests, like a browser would.
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			c.cookie = ck
		}
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var m map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&m))
	return m
}

func TestLoginHandlerSetsSessionCookie(t *testing.T) {
	mailer := &capturingMailer{}
	c := &client{t: t, router: newTestRouter(mailer, &capturingNotifier{})}

	w := c.do("POST", "/api/login", map[string]string{"email": "a@x.com", "phone": "555"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, c.cookie)
	assert.Equal(t, "OTP_VERIFY", decode(t, w)["stage"])
	assert.Regexp(t, `^\d{6}$`, mailer.lastCode)
}

func TestLoginHandlerInvalidJSON(t *testing.T) {
	c := &client{t: t, router: newTestRouter(&capturingMailer{}, &capturingNotifier{})}

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_JSON", decode(t, w)["error"])
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	c := &client{t: t, router: newTestRouter(&capturingMailer{}, &capturingNotifier{})}

	w := c.do("POST", "/api/login", map[string]string{"email": "b@x.com", "phone": "555"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, w)["error"])
}

func TestLoginHandlerDeliveryFailure(t *testing.T) {
	mailer := &capturingMailer{err: errors.New("smtp down")}
	c := &client{t: t, router: newTestRouter(mailer, &capturingNotifier{})}

	w := c.do("POST", "/api/login", map[string]string{"email": "a@x.com", "phone": "555"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "DELIVERY_FAILED", decode(t, w)["error"])
}

func TestActionAtWrongStageConflicts(t *testing.T) {
	c := &client{t: t, router: newTestRouter(&capturingMailer{}, &capturingNotifier{})}

	// Fresh session: verification is not reachable yet.
	w := c.do("POST", "/api/otp/verify", map[string]string{"otp": "123456"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "WRONG_STAGE", decode(t, w)["error"])
}

func TestIncorrectOTPUnauthorized(t *testing.T) {
	mailer := &capturingMailer{}
	c := &client{t: t, router: newTestRouter(mailer, &capturingNotifier{})}

	c.do("POST", "/api/login", map[string]string{"email": "a@x.com", "phone": "555"})
	wrong := "000000"
	if wrong == mailer.lastCode {
		wrong = "000001"
	}
	w := c.do("POST", "/api/otp/verify", map[string]string{"otp": wrong})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INCORRECT_OTP", decode(t, w)["error"])
}

func TestFullHandoverOverHTTP(t *testing.T) {
	mailer := &capturingMailer{}
	notifier := &capturingNotifier{}
	c := &client{t: t, router: newTestRouter(mailer, notifier)}

	w := c.do("POST", "/api/login", map[string]string{"email": "a@x.com", "phone": "555"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do("POST", "/api/otp/verify", map[string]string{"otp": mailer.lastCode})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DASHBOARD", decode(t, w)["stage"])

	w = c.do("GET", "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	dash := decode(t, w)
	assert.Equal(t, "Aniketh", dash["name"])
	assert.Equal(t, "500.00", dash["due_amount"])

	w = c.do("POST", "/api/dashboard/proceed", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do("GET", "/api/payment", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	pay := decode(t, w)
	assert.Contains(t, pay["upi_link"], "upi://pay?pa=payee@oksbi")
	assert.Contains(t, pay["qr_code_url"], "api.qrserver.com")

	w = c.do("POST", "/api/payment", map[string]string{"transaction_reference": "TXN123"})
	assert.Equal(t, http.StatusOK, w.Code)

	code := regexp.MustCompile(`OTP for Payment Verification: (\d{6})`).
		FindStringSubmatch(notifier.lastAlert)[1]
	w = c.do("POST", "/api/payment/verify", map[string]string{"otp": code})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ACCESS", decode(t, w)["stage"])

	w = c.do("GET", "/api/access", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://drive.example.com/project.zip", decode(t, w)["project_access_link"])

	w = c.do("POST", "/api/access/finish", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	done := decode(t, w)
	assert.Equal(t, "DONE", done["stage"])
	assert.Contains(t, done["msg"], "Aniketh")
}
