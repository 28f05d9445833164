package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowEventPayload(t *testing.T) {
	event := WorkflowEvent{
		SessionID:  "sess-123",
		FromStage:  "LOGIN",
		ToStage:    "OTP_VERIFY",
		Detail:     "login otp emailed",
		OccurredAt: time.Now(),
	}

	body, err := json.Marshal(event)
	assert.NoError(t, err)

	var data map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &data))

	for _, field := range []string{"session_id", "from_stage", "to_stage", "detail", "occurred_at"} {
		assert.Contains(t, data, field)
	}

	// Codes and client data must never travel on the queue.
	assert.NotContains(t, data, "login_otp")
	assert.NotContains(t, data, "client")
}
