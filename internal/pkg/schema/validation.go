package schema

import (
	"github.com/go-playground/validator/v10"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/common"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"
)

var validate = validator.New()

// ValidateZip checks the resolved current-address zip code. It runs before
// any other field check; the error carries the addressZip field name alone.
func ValidateZip(zip string) error {
	if err := validate.Var(zip, "required,len=5"); err != nil {
		return &models.ValidationError{
			Message:       consts.ErrorInvalidZipCode.Message,
			MissingFields: []string{"addressZip"},
		}
	}
	return nil
}

// MissingFields collects every required field the submission lacks, in the
// order the schema declares them. Conditional groups contribute only while
// their controlling field matches.
func (s ProductSchema) MissingFields(sub models.Submission) []string {
	var missing []string

	for _, f := range s.Fields {
		if !present(sub[f.Name], f.Kind) {
			missing = append(missing, f.Name)
		}
	}

	for _, group := range s.Conditionals {
		if common.TrimmedString(sub[group.When]) != group.Equals {
			continue
		}
		for _, f := range group.Fields {
			if !present(sub[f.Name], f.Kind) {
				missing = append(missing, f.Name)
			}
		}
	}

	return missing
}

// Validate returns nil for a complete submission, or a ValidationError
// listing every missing field. A submission is never partially valid.
func (s ProductSchema) Validate(sub models.Submission) error {
	if missing := s.MissingFields(sub); len(missing) > 0 {
		return &models.ValidationError{
			Message:       consts.ErrorMissingRequiredFields.Message,
			MissingFields: missing,
		}
	}
	return nil
}

func present(v any, kind FieldKind) bool {
	if kind == FieldNumber {
		return common.IsPresentNumber(v)
	}
	return common.IsPresentString(v)
}
