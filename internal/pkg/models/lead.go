package models

// Submission is the decoded lead form body: a flat map of field name to
// string/number value. Bodies are decoded with json.Decoder.UseNumber so
// numeric values survive stringification without float formatting artifacts.
type Submission map[string]any

// LeadSuccessResponse is returned when the partner recorded the lead.
// ExpiresAt is epoch milliseconds, matching what the confirmation page
// compares against Date.now().
type LeadSuccessResponse struct {
	Success           bool   `json:"success"`
	RedirectURL       string `json:"redirectUrl"`
	LeadProsperStatus string `json:"leadProsperStatus"`
	AccessToken       string `json:"accessToken"`
	ExpiresAt         int64  `json:"expiresAt"`
}

// LeadErrorResponse covers every failure shape: validation (MissingFields),
// partner rejection (LeadProsperStatus), and configuration errors (Details).
type LeadErrorResponse struct {
	Success           bool     `json:"success"`
	Error             string   `json:"error"`
	MissingFields     []string `json:"missingFields,omitempty"`
	LeadProsperStatus string   `json:"leadProsperStatus,omitempty"`
	Details           string   `json:"details,omitempty"`
}

// ConfirmationResponse is the confirmation-page gate's verdict.
type ConfirmationResponse struct {
	Valid     bool   `json:"valid"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
	Error     string `json:"error,omitempty"`
}
