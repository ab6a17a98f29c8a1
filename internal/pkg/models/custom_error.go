package models

type CustomError struct {
	Code    string
	Message string
}

func (e CustomError) Error() string {
	return e.Message
}

func (e CustomError) ErrorCode() string {
	return e.Code
}

// ValidationError reports the required fields a submission is missing. The
// field list is ordered the way the product schema declares its fields.
type ValidationError struct {
	Message       string
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigurationError reports every unresolved credential variable for a
// product, not just the first one found missing.
type ConfigurationError struct {
	MissingVars []string
}

func (e *ConfigurationError) Error() string {
	return "missing server configuration"
}
