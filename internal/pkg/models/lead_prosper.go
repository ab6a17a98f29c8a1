package models

// LeadProsperResponse is the partner's acceptance verdict. Status is one of
// the tokens in consts (ACCEPTED, DUPLICATED, ERROR) or anything else the
// partner decides to return.
type LeadProsperResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	LeadID  string `json:"lead_id,omitempty"`
}

// LeadCredentials is the resolved 4-tuple required to post a lead for one
// product. Absence of any value is a configuration error, never a user error.
type LeadCredentials struct {
	CampaignID string
	SupplierID string
	APIKey     string
	APIURL     string
}
