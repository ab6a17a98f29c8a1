package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"
)

var testCreds = models.LeadCredentials{
	CampaignID: "camp-1",
	SupplierID: "supp-2",
	APIKey:     "key-3",
	APIURL:     "https://api.leadprosper.io/ingest",
}

func TestBuildPartnerPayload_CredentialsAndZip(t *testing.T) {
	payload := Refinance.BuildPartnerPayload(validRefinanceSubmission(), "78701", testCreds)

	assert.Equal(t, "camp-1", payload["campaign_id"])
	assert.Equal(t, "supp-2", payload["supplier_id"])
	assert.Equal(t, "key-3", payload["api_key"])
	assert.Equal(t, "78701", payload["zip_code"])
}

func TestBuildPartnerPayload_TrimsAndStringifies(t *testing.T) {
	sub := validRefinanceSubmission()
	sub["firstName"] = "  Jordan "
	sub["homeValue"] = json.Number("350000")
	sub["interestRate"] = json.Number("6.25")

	payload := Refinance.BuildPartnerPayload(sub, "78701", testCreds)

	assert.Equal(t, "Jordan", payload["first_name"])
	assert.Equal(t, "350000", payload["home_value"])
	assert.Equal(t, "6.25", payload["interest_rate"])
}

func TestBuildPartnerPayload_ConditionalKeysAlwaysPresent(t *testing.T) {
	payload := Refinance.BuildPartnerPayload(validRefinanceSubmission(), "78701", testCreds)

	balance, ok := payload["second_mortgage_balance"]
	assert.True(t, ok, "inactive conditional key must still be emitted")
	assert.Equal(t, "", balance)
	interest, ok := payload["second_mortgage_interest"]
	assert.True(t, ok)
	assert.Equal(t, "", interest)
}

func TestBuildPartnerPayload_ActiveConditionalValues(t *testing.T) {
	sub := validRefinanceSubmission()
	sub["secondMortgage"] = "yes"
	sub["secondMortgageBalance"] = json.Number("40000")
	sub["secondMortgageInterest"] = json.Number("7.1")

	payload := Refinance.BuildPartnerPayload(sub, "78701", testCreds)

	assert.Equal(t, "yes", payload["has_second_mortgage"])
	assert.Equal(t, "40000", payload["second_mortgage_balance"])
	assert.Equal(t, "7.1", payload["second_mortgage_interest"])
}

func TestBuildPartnerPayload_DefaultConsentText(t *testing.T) {
	payload := Purchase.BuildPartnerPayload(validPurchaseSubmission(), "75201", testCreds)
	assert.Equal(t, consts.DefaultConsentText, payload["tcpa_consent_text"])
}

func TestBuildPartnerPayload_SuppliedConsentTextKept(t *testing.T) {
	sub := validPurchaseSubmission()
	sub["consentText"] = "I agree to be contacted."
	sub["trustedFormCertUrl"] = "https://cert.trustedform.com/abc123"

	payload := Purchase.BuildPartnerPayload(sub, "75201", testCreds)

	assert.Equal(t, "I agree to be contacted.", payload["tcpa_consent_text"])
	assert.Equal(t, "https://cert.trustedform.com/abc123", payload["trusted_form_cert_url"])
}
