package log_messages

const (
	ErrorDecodingRequestBody   = "Failed to decode lead submission body"
	ErrorResolvingCredentials  = "Missing LeadProsper credentials"
	ErrorForwardingLead        = "Failed to forward lead to LeadProsper"
	ErrorIssuingAccessGrant    = "Failed to issue thank-you access grant"
	ErrorPartnerBodyNotJSON    = "LeadProsper response body is not JSON, treating as ACCEPTED"
	ErrorLeadRejectedByPartner = "Lead rejected by LeadProsper"
	LeadValidationFailed       = "Lead submission failed validation"
	LeadForwarded              = "Lead forwarded to LeadProsper"
	LeadRecorded               = "Lead recorded, access grant issued"
)
