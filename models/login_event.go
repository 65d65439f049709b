package models

import "time"

// LoginEvent is an audit row recorded for every login reported by the
// platform. Geolocation fields are best-effort and may be empty when the
// lookup failed or was skipped.
type LoginEvent struct {
	LoginEventID int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	IP           string `json:"ip"`
	Country      string `json:"country,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
	City         string `json:"city,omitempty"`
	Region       string `json:"region,omitempty"`
	ISP          string `json:"isp,omitempty"`
	UserAgent    string `json:"user_agent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the LoginEvent model.
func (l LoginEvent) TableName() string {
	return "login_events"
}
