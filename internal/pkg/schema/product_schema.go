package schema

import "github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"

// FieldKind selects the presence predicate for a field: string fields are
// required-and-non-empty-after-trim, number fields are defined-and-not-null
// so a legitimate 0 is never rejected.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldNumber
)

// Field ties an internal form field name to the partner schema's fixed key.
type Field struct {
	Name       string
	PartnerKey string
	Kind       FieldKind
}

// ConditionalGroup makes its Fields required only while the controlling
// field equals the given value. Inactive conditional fields are still
// emitted to the partner as empty strings; the partner schema expects the
// keys to always be present.
type ConditionalGroup struct {
	When   string
	Equals string
	Fields []Field
}

// ProductSchema is the per-product descriptor driving the one generic lead
// pipeline: required fields, conditional rules, partner key mapping and the
// credential source chain. The two endpoints differ only by which instance
// they hand to the pipeline.
type ProductSchema struct {
	Product      string
	Fields       []Field
	Conditionals []ConditionalGroup
	Optional     []Field

	// CredentialSources is the ordered list of environment prefixes the
	// credential resolver walks, first-match-wins per variable.
	CredentialSources []string
}

var contactFields = []Field{
	{Name: "firstName", PartnerKey: "first_name", Kind: FieldString},
	{Name: "lastName", PartnerKey: "last_name", Kind: FieldString},
	{Name: "email", PartnerKey: "email", Kind: FieldString},
	{Name: "phone", PartnerKey: "phone", Kind: FieldString},
	{Name: "address", PartnerKey: "address", Kind: FieldString},
	{Name: "city", PartnerKey: "city", Kind: FieldString},
	{Name: "state", PartnerKey: "state", Kind: FieldString},
}

var consentFields = []Field{
	{Name: "trustedFormCertUrl", PartnerKey: "trusted_form_cert_url", Kind: FieldString},
	{Name: "consentText", PartnerKey: "tcpa_consent_text", Kind: FieldString},
}

// Refinance describes the mortgage-refinance lead form.
var Refinance = ProductSchema{
	Product: consts.ProductRefinance,
	Fields: append(append([]Field{}, contactFields...),
		Field{Name: "propertyType", PartnerKey: "property_type", Kind: FieldString},
		Field{Name: "creditRating", PartnerKey: "credit_rating", Kind: FieldString},
		Field{Name: "homeValue", PartnerKey: "home_value", Kind: FieldNumber},
		Field{Name: "mortgageBalance", PartnerKey: "mortgage_balance", Kind: FieldNumber},
		Field{Name: "interestRate", PartnerKey: "interest_rate", Kind: FieldNumber},
		Field{Name: "monthlyPayment", PartnerKey: "monthly_payment", Kind: FieldNumber},
		Field{Name: "employmentStatus", PartnerKey: "employment_status", Kind: FieldString},
		Field{Name: "secondMortgage", PartnerKey: "has_second_mortgage", Kind: FieldString},
	),
	Conditionals: []ConditionalGroup{
		{
			When:   "secondMortgage",
			Equals: "yes",
			Fields: []Field{
				{Name: "secondMortgageBalance", PartnerKey: "second_mortgage_balance", Kind: FieldNumber},
				{Name: "secondMortgageInterest", PartnerKey: "second_mortgage_interest", Kind: FieldNumber},
			},
		},
	},
	Optional:          consentFields,
	CredentialSources: []string{"LEAD_PROSPER_REFINANCE", "LEAD_PROSPER"},
}

// Purchase describes the home-purchase lead form.
var Purchase = ProductSchema{
	Product: consts.ProductPurchase,
	Fields: append(append([]Field{}, contactFields...),
		Field{Name: "propertyType", PartnerKey: "property_type", Kind: FieldString},
		Field{Name: "creditRating", PartnerKey: "credit_rating", Kind: FieldString},
		Field{Name: "purchasePrice", PartnerKey: "purchase_price", Kind: FieldNumber},
		Field{Name: "downPayment", PartnerKey: "down_payment", Kind: FieldNumber},
		Field{Name: "purchaseTimeframe", PartnerKey: "purchase_timeframe", Kind: FieldString},
		Field{Name: "foundHome", PartnerKey: "found_home", Kind: FieldString},
		Field{Name: "employmentStatus", PartnerKey: "employment_status", Kind: FieldString},
	),
	Optional:          consentFields,
	CredentialSources: []string{"LEAD_PROSPER"},
}
