package entity

import (
	"errors"
	"fmt"
)

var ErrClientNotFound = errors.New("client not found")

// Entidade: Client
// Identity and transaction facts for one counterparty. Resolved once at
// login and read-only for the rest of the workflow.
type Client struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	ProjectName     string `json:"project_name"`
	ProjectCategory string `json:"project_category"`

	// Amount owed, in paise. Stored as an integer to avoid float money math.
	DuePaise int64 `json:"due_paise"`

	ProjectAccessLink string `json:"project_access_link"`
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.PhoneNumber == "" {
		return errors.New("phone number is required")
	}
	if c.DuePaise < 0 {
		return errors.New("due amount cannot be negative")
	}
	return nil
}

// DueRupees formats the due amount for display and for the UPI "am" field.
func (c *Client) DueRupees() string {
	return fmt.Sprintf("%d.%02d", c.DuePaise/100, c.DuePaise%100)
}
