package models

// Location is the result of a geolocation lookup. Success=false means
// "unknown", never an error to propagate: callers degrade gracefully.
type Location struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Region      string `json:"region"`
	ISP         string `json:"isp"`
	Success     bool   `json:"success"`
}
