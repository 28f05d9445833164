package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/handover-portal/internal/infra/http/middleware"
	"github.com/xavierca1/handover-portal/internal/usecase"
)

type WorkflowHandler struct {
	UC *usecase.WorkflowUseCase
}

func NewWorkflowHandler(uc *usecase.WorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{UC: uc}
}

func (h *WorkflowHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := middleware.SessionIDFromContext(r.Context())
	if id == "" {
		writeErrorResponse(w, http.StatusInternalServerError, "NO_SESSION", "session middleware not active")
		return "", false
	}
	return id, true
}

func (h *WorkflowHandler) Login(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.UC.Login(r.Context(), sessionID, input)
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeDeliveryFailed {
			middleware.RecordDeliveryError("email")
		}
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordOTPDelivery("email")
	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var input usecase.VerifyOTPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.UC.VerifyLoginOTP(r.Context(), sessionID, input)
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeIncorrectOTP {
			middleware.RecordVerificationFailure("login")
		}
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	output, err := h.UC.Dashboard(r.Context(), sessionID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) Proceed(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	output, err := h.UC.Proceed(r.Context(), sessionID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) PaymentDetails(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	output, err := h.UC.PaymentDetails(r.Context(), sessionID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var input usecase.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.UC.SubmitPayment(r.Context(), sessionID, input)
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeDeliveryFailed {
			middleware.RecordDeliveryError("whatsapp")
		}
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordOTPDelivery("whatsapp")
	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) VerifyPaymentOTP(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var input usecase.VerifyOTPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.UC.VerifyPaymentOTP(r.Context(), sessionID, input)
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeIncorrectOTP {
			middleware.RecordVerificationFailure("payment")
		}
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) Access(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	output, err := h.UC.AccessDetails(r.Context(), sessionID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *WorkflowHandler) Finish(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	output, err := h.UC.Finish(r.Context(), sessionID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordWorkflowCompleted()
	writeJSON(w, http.StatusOK, output)
}
