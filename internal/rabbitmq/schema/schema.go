package schema

import (
	"encoding/json"
)

// Confirmation is the payload of a queued "reminder saved" email.
type Confirmation struct {
	ReminderID int64  `json:"reminder_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	LeadDays   int    `json:"lead_days"`
}

func (c *Confirmation) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *Confirmation) Unmarshal(data []byte) error {
	return json.Unmarshal(data, c)
}
