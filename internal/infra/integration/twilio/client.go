package twilio

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the Twilio Messages API and sends WhatsApp texts. Transport
// failures and API rejections both come back as errors; the caller decides
// whether to retry.
type Client struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

func NewClient(accountSID, authToken, fromNumber string) *Client {
	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    "https://api.twilio.com/2010-04-01",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SendMessage(input SendMessageInput) error {
	if c.accountSID == "" || c.authToken == "" {
		log.Println("⚠️ Twilio: ACCOUNT_SID or AUTH_TOKEN not configured")
		return fmt.Errorf("twilio not configured")
	}

	form := url.Values{}
	form.Set("From", "whatsapp:"+c.fromNumber)
	form.Set("To", "whatsapp:"+input.To)
	form.Set("Body", input.Body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("❌ Twilio: failed to build request: %v", err)
		return err
	}

	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ Twilio: failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr ErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Message != "" {
			log.Printf("❌ Twilio: API error %d: %s", apiErr.Code, apiErr.Message)
			return fmt.Errorf("twilio: %s", apiErr.Message)
		}
		log.Printf("❌ Twilio: API returned status %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("twilio api error: %d", resp.StatusCode)
	}

	var result SendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Printf("❌ Twilio: failed to parse response: %v", err)
		return err
	}

	if result.ErrorCode != nil {
		log.Printf("❌ Twilio: message rejected: %s (Code: %d)", result.ErrorMessage, *result.ErrorCode)
		return fmt.Errorf("twilio: %s", result.ErrorMessage)
	}

	log.Printf("✅ Twilio: message sent to %s (SID %s)", input.To, result.SID)
	return nil
}
