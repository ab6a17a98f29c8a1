package consts

import "github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/models"

var (
	ErrorInvalidZipCode = &models.CustomError{
		Code:    "ASSURERATES_LEAD_VALIDATION_ZIP_CODE_INVALID",
		Message: "A valid 5-digit zip code is required",
	}
	ErrorMissingRequiredFields = &models.CustomError{
		Code:    "ASSURERATES_LEAD_VALIDATION_MISSING_FIELDS",
		Message: "All fields are required",
	}
	ErrorMissingCredentials = &models.CustomError{
		Code:    "ASSURERATES_LEAD_CONFIG_MISSING_CREDENTIALS",
		Message: "Server configuration error",
	}
	ErrorLeadSubmissionFailed = &models.CustomError{
		Code:    "ASSURERATES_LEAD_SUBMISSION_REJECTED",
		Message: "Lead submission failed",
	}
	ErrorDownstreamRequestFailed = &models.CustomError{
		Code:    "ASSURERATES_LEAD_REQUEST_LEAD_PROSPER_FAILED",
		Message: "Lead forwarding request failed",
	}
	ErrorInternalServer = &models.CustomError{
		Code:    "ASSURERATES_INTERNAL_ERROR",
		Message: "Internal server error",
	}
	ErrorTokenSecretMissing = &models.CustomError{
		Code:    "ASSURERATES_CONFIG_TOKEN_SECRET_MISSING",
		Message: "access token secret is not configured",
	}
	ErrorAccessTokenInvalid = &models.CustomError{
		Code:    "ASSURERATES_THANKYOU_ACCESS_TOKEN_INVALID",
		Message: "Access token is invalid or expired",
	}
)
