package config

import (
	"os"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"
)

// credentialVars are the four variables a credential source must provide,
// suffixed onto the source prefix (e.g. LEAD_PROSPER_REFINANCE_CAMPAIGN_ID).
var credentialVars = []string{
	"CAMPAIGN_ID",
	"SUPPLIER_ID",
	"API_KEY",
	"API_URL",
}

// ResolveLeadCredentials resolves the partner credential 4-tuple from an
// ordered list of environment prefixes, first-match-wins per variable. A new
// fallback tier is added by appending a prefix to a product schema, not by
// touching this function.
//
// When any variable stays unresolved across every source, the returned
// ConfigurationError names all of them (using the most specific source's
// name) so an operator fixes the deployment in one pass.
func ResolveLeadCredentials(sources []string) (models.LeadCredentials, error) {
	values := make(map[string]string, len(credentialVars))
	var missing []string

	for _, v := range credentialVars {
		resolved := ""
		for _, prefix := range sources {
			if val := os.Getenv(prefix + "_" + v); val != "" {
				resolved = val
				break
			}
		}
		if resolved == "" {
			missing = append(missing, sources[0]+"_"+v)
			continue
		}
		values[v] = resolved
	}

	if len(missing) > 0 {
		return models.LeadCredentials{}, &models.ConfigurationError{MissingVars: missing}
	}

	return models.LeadCredentials{
		CampaignID: values["CAMPAIGN_ID"],
		SupplierID: values["SUPPLIER_ID"],
		APIKey:     values["API_KEY"],
		APIURL:     values["API_URL"],
	}, nil
}
