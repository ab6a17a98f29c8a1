package consts

import "time"

// Partner status tokens. All three of ACCEPTED, DUPLICATED and ERROR mean the
// partner recorded the submission attempt, so all three grant access to the
// confirmation page.
const (
	StatusAccepted   = "ACCEPTED"
	StatusDuplicated = "DUPLICATED"
	StatusError      = "ERROR"
)

// DecodeFailurePolicy names what the forwarder does when the partner body is
// not valid JSON. Kept as an explicit policy so it can be revisited instead
// of hiding as an unmarshal fallback.
type DecodeFailurePolicy string

const OnDecodeFailureTreatAsAccepted DecodeFailurePolicy = "treatAsAccepted"

const (
	ThankYouCookie      = "thankyou_access"
	ThankYouRedirectURL = "/thankyou"
	AccessGrantTTL      = 10 * time.Minute
)

const ContentTypeJSON = "application/json"

// Products handled by the lead pipeline.
const (
	ProductRefinance = "refinance"
	ProductPurchase  = "purchase"
)

// SensitiveKeys are masked before request details are logged.
var SensitiveKeys = []string{
	"Authorization",
	"Cookie",
	"X-Api-Key",
	"consentText",
	"trustedFormCertUrl",
}

// DefaultConsentText is the TCPA disclosure substituted when a submission
// carries no consent text of its own. Do not edit the wording without legal
// review.
const DefaultConsentText = "By clicking the button above, you acknowledge, consent, and agree " +
	"to our Terms of Use and Privacy Policy, and provide your express written consent to receive " +
	"marketing calls, text messages, and emails from AssureRates and its marketing partners at the " +
	"phone number and email address you provided, including through the use of an automatic telephone " +
	"dialing system, artificial or prerecorded voice messages. You understand that your consent is not " +
	"a condition of purchasing any property, goods, or services, that message and data rates may apply, " +
	"and that you may revoke your consent at any time."
