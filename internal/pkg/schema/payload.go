package schema

import (
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/common"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"
)

// BuildPartnerPayload re-keys a validated submission into the partner's
// fixed schema. Every value is a trimmed string, numbers stringified via
// their exact textual form. Inactive conditional fields are emitted as empty
// strings, never omitted. The default TCPA disclosure is substituted when
// the caller supplies no consent text.
func (s ProductSchema) BuildPartnerPayload(sub models.Submission, zip string, creds models.LeadCredentials) map[string]string {
	payload := map[string]string{
		"campaign_id": creds.CampaignID,
		"supplier_id": creds.SupplierID,
		"api_key":     creds.APIKey,
		"zip_code":    common.TrimmedString(zip),
	}

	for _, f := range s.Fields {
		payload[f.PartnerKey] = common.TrimmedString(sub[f.Name])
	}

	for _, group := range s.Conditionals {
		active := common.TrimmedString(sub[group.When]) == group.Equals
		for _, f := range group.Fields {
			if active {
				payload[f.PartnerKey] = common.TrimmedString(sub[f.Name])
			} else {
				payload[f.PartnerKey] = ""
			}
		}
	}

	for _, f := range s.Optional {
		payload[f.PartnerKey] = common.TrimmedString(sub[f.Name])
	}

	if payload["tcpa_consent_text"] == "" {
		payload["tcpa_consent_text"] = consts.DefaultConsentText
	}

	return payload
}
