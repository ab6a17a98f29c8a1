package common

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TrimmedString coerces a decoded JSON value into the trimmed string the
// partner schema expects. json.Number keeps its exact textual form, so a
// submitted 350000 never becomes "3.5e+05".
func TrimmedString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// IsPresentString reports whether v is a string with non-whitespace content.
func IsPresentString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// IsPresentNumber reports whether v is a defined, non-null numeric value.
// A legitimate 0 is present; the empty string and nil are not. Numbers
// submitted as strings ("350000") are accepted because HTML form state
// frequently serializes them that way.
func IsPresentNumber(v any) bool {
	switch t := v.(type) {
	case json.Number:
		return t.String() != ""
	case float64, int, int64:
		return true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return false
		}
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	default:
		return false
	}
}
